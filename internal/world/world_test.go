package world

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNetIDClasses(t *testing.T) {
	id := NewSpawnedNetID(1)
	assert.Equal(t, uint32(0x40000001), id.Value())
	assert.Equal(t, NodeClassSpawned, id.NodeClass())
	assert.Equal(t, uint32(1), id.Index())

	m := NewMapNetID(2)
	assert.Equal(t, uint32(0xFF000002), m.Value())
	assert.Equal(t, NodeClassMap, m.NodeClass())
}

func TestNetIDMasksOverflow(t *testing.T) {
	id := NewSpawnedNetID(0x01FFFFFF)
	assert.Equal(t, NodeClassSpawned, id.NodeClass())
	assert.Equal(t, uint32(0x00FFFFFF), id.Index())
}

func TestSpawnChampionAllocatesSequentially(t *testing.T) {
	w := New()
	seen := make(map[NetID]bool)
	for i := 0; i < 5; i++ {
		e, id := w.SpawnChampion("Nasus", TeamOrder, SummonerSpells{})
		assert.Equal(t, NewSpawnedNetID(uint32(i+1)), id)
		assert.False(t, seen[id], "duplicate netid %08X", id.Value())
		seen[id] = true

		got, ok := w.NetID(e)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
	assert.Equal(t, 5, w.Len())
}

func TestSpawnClassesIndependent(t *testing.T) {
	w := New()
	_, c := w.SpawnChampion("Nasus", TeamChaos, SummonerSpells{Spell0: 1, Spell1: 2})
	_, m := w.SpawnMapObject("Turret_T1_L_03_A")
	assert.Equal(t, uint32(0x40000001), c.Value())
	assert.Equal(t, uint32(0xFF000001), m.Value())
}

func TestComponents(t *testing.T) {
	w := New()
	e, _ := w.SpawnChampion("Annie", TeamOrder, SummonerSpells{Spell0: 7, Spell1: 9})

	team, ok := w.Team(e)
	assert.True(t, ok)
	assert.Equal(t, TeamOrder, team)

	name, ok := w.UnitName(e)
	assert.True(t, ok)
	assert.Equal(t, "Annie", name)

	sp, ok := w.Summoner(e)
	assert.True(t, ok)
	assert.Equal(t, uint32(7), sp.Spell0)

	w.Remove(e)
	_, ok = w.NetID(e)
	assert.False(t, ok)
	assert.Equal(t, 0, w.Len())
}

func TestClockGameTimeFreezesWhenPaused(t *testing.T) {
	c := NewClock()
	time.Sleep(time.Millisecond)
	c.Tick(false)
	running := c.GameTime()
	assert.Greater(t, running, 0.0)

	time.Sleep(time.Millisecond)
	c.Tick(true)
	assert.Equal(t, running, c.GameTime())

	time.Sleep(time.Millisecond)
	c.Tick(false)
	assert.Greater(t, c.GameTime(), running)
}
