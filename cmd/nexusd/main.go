package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/veldrin/nexusgate/internal/config"
	"github.com/veldrin/nexusgate/internal/gameserver"
	"github.com/veldrin/nexusgate/internal/gameserver/packet"
	"github.com/veldrin/nexusgate/internal/transport"
)

const (
	defaultServerConfig  = "config/server.toml"
	defaultPlayersConfig = "config/players.yaml"
)

func main() {
	serverPath := flag.String("server-config", defaultServerConfig, "server config path")
	playersPath := flag.String("players-config", defaultPlayersConfig, "player roster path")
	flag.Parse()

	if err := run(*serverPath, *playersPath); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(serverPath, playersPath string) error {
	cfg, err := config.LoadServer(serverPath)
	if err != nil {
		return fmt.Errorf("loading server config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.LogLevel),
	})))
	slog.Info("nexusgate starting", "log_level", cfg.LogLevel)

	players, err := config.LoadPlayers(playersPath)
	if err != nil {
		return fmt.Errorf("loading players config: %w", err)
	}
	slog.Info("roster loaded", "players", len(players))

	ep, err := transport.Listen(cfg.Address, cfg.Port, 32, packet.ChannelCount)
	if err != nil {
		return fmt.Errorf("binding transport: %w", err)
	}
	defer ep.Close()

	srv, err := gameserver.New(cfg, players, ep)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})
	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			slog.Info("shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})
	return g.Wait()
}
