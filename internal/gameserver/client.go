package gameserver

import (
	"fmt"

	"github.com/veldrin/nexusgate/internal/config"
	"github.com/veldrin/nexusgate/internal/crypto"
	"github.com/veldrin/nexusgate/internal/transport"
	"github.com/veldrin/nexusgate/internal/world"
)

// ClientID is the stable dense index of a roster slot.
type ClientID uint32

// ClientStatus is the lifecycle state of one slot.
type ClientStatus int

// Slot states. A slot has a live peer exactly while its status is
// Loading, Connected or Ready.
const (
	StatusDisconnected ClientStatus = iota
	StatusConnected
	StatusLoading
	StatusReady
)

func (s ClientStatus) String() string {
	switch s {
	case StatusDisconnected:
		return "Disconnected"
	case StatusConnected:
		return "Connected"
	case StatusLoading:
		return "Loading"
	case StatusReady:
		return "Ready"
	}
	return "Unknown"
}

// Client is one roster slot. It exists for the whole process lifetime;
// only its status and peer change as the player connects and drops.
type Client struct {
	ID             ClientID
	PlayerID       uint64
	Name           string
	Champion       string
	SkinID         uint32
	SummonerLevel  uint16
	SummonerSpell0 uint32
	SummonerSpell1 uint32
	ProfileIcon    int32
	Team           world.Team
	Status         ClientStatus

	peer   transport.Peer
	cipher *crypto.PacketCipher

	Hero      world.Entity
	HeroNetID world.NetID
}

func newClient(id ClientID, cfg config.Player, w *world.World) (*Client, error) {
	cipher, err := crypto.NewPacketCipher([]byte(cfg.Key))
	if err != nil {
		return nil, fmt.Errorf("client %q: %w", cfg.Name, err)
	}
	team := world.TeamOrder
	if cfg.Team == "Chaos" {
		team = world.TeamChaos
	}
	hero, netID := w.SpawnChampion(cfg.Champion, team, world.SummonerSpells{
		Spell0: cfg.SummonerSpell0,
		Spell1: cfg.SummonerSpell1,
	})
	return &Client{
		ID:             id,
		PlayerID:       cfg.PlayerID,
		Name:           cfg.Name,
		Champion:       cfg.Champion,
		SkinID:         cfg.SkinID,
		SummonerLevel:  cfg.SummonerLevel,
		SummonerSpell0: cfg.SummonerSpell0,
		SummonerSpell1: cfg.SummonerSpell1,
		ProfileIcon:    cfg.ProfileIcon,
		Team:           team,
		Status:         StatusDisconnected,
		cipher:         cipher,
		Hero:           hero,
		HeroNetID:      netID,
	}, nil
}

// Connected reports whether the slot has a live peer.
func (c *Client) Connected() bool {
	return c.peer != nil
}

// Peer returns the slot's transport peer, nil when unconnected.
func (c *Client) Peer() transport.Peer {
	return c.peer
}

// Cipher returns the slot's packet cipher.
func (c *Client) Cipher() *crypto.PacketCipher {
	return c.cipher
}

// attach binds a peer to the slot and tags it with the client id.
func (c *Client) attach(peer transport.Peer) {
	c.peer = peer
	peer.SetTag(int(c.ID))
	c.Status = StatusLoading
}

// detach clears the peer after a transport disconnect.
func (c *Client) detach() {
	c.peer = nil
	c.Status = StatusDisconnected
}

// disconnect gracefully closes the slot's peer, if any. The transport
// reports the matching Disconnect event later; slot state changes then.
func (c *Client) disconnect(reason uint32) {
	if c.peer != nil {
		c.peer.Disconnect(reason)
	}
}
