package gameserver

import (
	"github.com/veldrin/nexusgate/internal/config"
	"github.com/veldrin/nexusgate/internal/world"
)

// ClientTable owns the roster slots, indexed by ClientID in roster
// order.
type ClientTable struct {
	slots []*Client
}

// NewClientTable builds one slot per roster entry plus its champion
// entity.
func NewClientTable(players []config.Player, w *world.World) (*ClientTable, error) {
	t := &ClientTable{slots: make([]*Client, 0, len(players))}
	for i, p := range players {
		c, err := newClient(ClientID(i), p, w)
		if err != nil {
			return nil, err
		}
		t.slots = append(t.slots, c)
	}
	return t, nil
}

// Get returns the slot for id, nil when out of range.
func (t *ClientTable) Get(id ClientID) *Client {
	if int(id) >= len(t.slots) {
		return nil
	}
	return t.slots[id]
}

// ByPlayerID finds the slot owning a player id.
func (t *ClientTable) ByPlayerID(playerID uint64) *Client {
	for _, c := range t.slots {
		if c.PlayerID == playerID {
			return c
		}
	}
	return nil
}

// All returns the slots in roster order.
func (t *ClientTable) All() []*Client {
	return t.slots
}

// Len returns the roster size.
func (t *ClientTable) Len() int {
	return len(t.slots)
}

// AllDisconnected reports whether no slot has a live peer.
func (t *ClientTable) AllDisconnected() bool {
	for _, c := range t.slots {
		if c.Status != StatusDisconnected {
			return false
		}
	}
	return true
}

// AllReady reports whether every slot reached Ready.
func (t *ClientTable) AllReady() bool {
	for _, c := range t.slots {
		if c.Status != StatusReady {
			return false
		}
	}
	return true
}

// TeamMembers returns the ids of all slots on a team.
func (t *ClientTable) TeamMembers(team world.Team) []ClientID {
	var ids []ClientID
	for _, c := range t.slots {
		if c.Team == team {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
