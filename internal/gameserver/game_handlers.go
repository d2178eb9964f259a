package gameserver

import (
	"github.com/veldrin/nexusgate/internal/gameserver/clientpackets"
	"github.com/veldrin/nexusgate/internal/gameserver/packet"
	"github.com/veldrin/nexusgate/internal/gameserver/serverpackets"
	"github.com/veldrin/nexusgate/internal/world"
)

func (s *Server) handleQueryStatus(ctx *Context, _ packet.Message) error {
	return ctx.Out.SinglePacket(ctx.ClientID, packet.ChannelBroadcast, uint32(ctx.ClientID),
		&serverpackets.SQueryStatusAns{IsOK: true})
}

func (s *Server) handleReconnect(ctx *Context, _ packet.Message) error {
	return ctx.Out.SinglePacket(ctx.ClientID, packet.ChannelClientToServer, uint32(ctx.ClientID),
		&serverpackets.SReconnect{ClientID: uint32(ctx.ClientID)})
}

func (s *Server) handleSyncVersion(ctx *Context, m packet.Message) error {
	req := m.(*clientpackets.CSyncVersion)
	ans := &serverpackets.SSyncVersion{
		IsVersionOK: true,
		Map:         8,
		Version:     req.Version,
		MapMode:     "ODIN",
	}
	for i, c := range ctx.Clients.All() {
		if i >= serverpackets.PlayerInfoCount {
			break
		}
		ans.PlayerInfo[i] = packet.PlayerLoadInfo{
			PlayerID:       c.PlayerID,
			SummonerLevel:  c.SummonerLevel,
			SummonerSpell1: c.SummonerSpell0,
			SummonerSpell2: c.SummonerSpell1,
			TeamID:         uint32(c.Team),
			ProfileIconID:  c.ProfileIcon,
		}
	}
	return ctx.Out.SinglePacket(ctx.ClientID, packet.ChannelBroadcast, uint32(ctx.ClientID), ans)
}

// handleCharSelected runs the spawn sequence for the requester:
// StartSpawn, then CreateHero + AvatarInfo per roster slot, EndSpawn.
func (s *Server) handleCharSelected(ctx *Context, _ packet.Message) error {
	cid := ctx.ClientID
	if err := ctx.Out.SinglePacket(cid, packet.ChannelBroadcast, uint32(cid),
		&serverpackets.SStartSpawn{}); err != nil {
		return err
	}
	for _, c := range ctx.Clients.All() {
		hero := &serverpackets.SCreateHero{
			UnitNetID:   c.HeroNetID.Value(),
			ClientID:    uint32(c.ID),
			NetNodeID:   world.NodeClassSpawned,
			SkillLevel:  1,
			TeamIsOrder: c.Team == world.TeamOrder,
			SkinID:      c.SkinID,
			Name:        c.Name,
			Skin:        c.Champion,
		}
		if err := ctx.Out.SinglePacket(cid, packet.ChannelBroadcast, uint32(cid), hero); err != nil {
			return err
		}
		avatar := &serverpackets.SAvatarInfo{Level: 1}
		avatar.SummonerSpellIDs[0] = c.SummonerSpell0
		avatar.SummonerSpellIDs[1] = c.SummonerSpell1
		if err := ctx.Out.SinglePacket(cid, packet.ChannelBroadcast, c.HeroNetID.Value(), avatar); err != nil {
			return err
		}
	}
	return ctx.Out.SinglePacket(cid, packet.ChannelBroadcast, uint32(cid), &serverpackets.SEndSpawn{})
}

func (s *Server) handleClientReady(ctx *Context, _ packet.Message) error {
	ctx.Client.Status = StatusReady
	s.advanceIfAllReady()
	return nil
}

// handlePingLoadInfo stamps the sender's identity into the report and
// fans it out to everyone.
func (s *Server) handlePingLoadInfo(ctx *Context, m packet.Message) error {
	req := m.(*clientpackets.CPingLoadInfo)
	info := req.ConnectionInfo
	info.ClientID = uint32(ctx.ClientID)
	info.PlayerID = ctx.Client.PlayerID
	return ctx.Out.AllPacket(packet.ChannelBroadcast, uint32(ctx.ClientID),
		&serverpackets.SPingLoadInfo{ConnectionInfo: info})
}

func (s *Server) handleExit(ctx *Context, _ packet.Message) error {
	ctx.Client.disconnect(0)
	return nil
}

// handleNpcIssueOrder relays move orders as a waypoint group stamped
// with the mover's net id.
func (s *Server) handleNpcIssueOrder(ctx *Context, m packet.Message) error {
	req := m.(*clientpackets.CNpcIssueOrderReq)
	if req.OrderType != clientpackets.OrderMove {
		return nil
	}
	group := &serverpackets.SWaypointGroup{
		SyncID:    0,
		Movements: []packet.MovementDataNormal{req.Movement},
	}
	return ctx.Out.AllPacket(packet.ChannelBroadcast, ctx.SenderNetID, group)
}

func (s *Server) handleNoop(_ *Context, _ packet.Message) error {
	return nil
}

// handleNoopSilent accepts high-rate packets without any logging.
func (s *Server) handleNoopSilent(_ *Context, _ packet.Message) error {
	return nil
}
