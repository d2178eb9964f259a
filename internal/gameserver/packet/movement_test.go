package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wpRoundTrip(t *testing.T, pts []Waypoint) []byte {
	t.Helper()
	w := NewWriter(64)
	writeWaypoints(w, pts)
	r := NewReader(w.Bytes())
	got, err := readWaypoints(r, len(pts))
	require.NoError(t, err)
	assert.Equal(t, pts, got)
	assert.Equal(t, 0, r.Remaining())
	return w.Bytes()
}

func TestWaypointRoundTrip(t *testing.T) {
	data := wpRoundTrip(t, []Waypoint{{10, 20}, {11, 21}, {10, 19}, {500, -500}})

	// one flag byte: indices 1,2 are delta-coded, index 3 absolute
	assert.Equal(t, byte(0x0F), data[0])
	// flags(1) + first pair(4) + 2 deltas(2) + 2 deltas(2) + absolute pair(4)
	assert.Len(t, data, 13)
}

func TestWaypointSingle(t *testing.T) {
	data := wpRoundTrip(t, []Waypoint{{-32768, 32767}})
	// unused flag byte still emitted
	assert.Len(t, data, 5)
}

func TestWaypointAllDeltas(t *testing.T) {
	pts := []Waypoint{{0, 0}}
	for i := 1; i < 10; i++ {
		pts = append(pts, Waypoint{X: pts[i-1].X + 127, Z: pts[i-1].Z - 128})
	}
	data := wpRoundTrip(t, pts)
	// header-free size: flag bytes + first pair + (n-1)*2 delta bytes
	flagBytes := (len(pts)-2)/4 + 1
	assert.Len(t, data, flagBytes+4+(len(pts)-1)*2)
}

func TestWaypointDeltaBoundary(t *testing.T) {
	// +128 does not fit an i8, -128 does
	wpRoundTrip(t, []Waypoint{{0, 0}, {128, -128}})
}

func TestWaypointManyPointsMultiFlagByte(t *testing.T) {
	var pts []Waypoint
	for i := 0; i < 20; i++ {
		x := int16(i * 200) // alternates delta / absolute
		if i%2 == 0 {
			x = int16(i)
		}
		pts = append(pts, Waypoint{X: x, Z: int16(-i * 3)})
	}
	wpRoundTrip(t, pts)
}

func TestMovementDataNormalRoundTrip(t *testing.T) {
	tid := uint8(7)
	cases := []*MovementDataNormal{
		{},
		{TeleportNetID: 0x40000001, Waypoints: []Waypoint{{1, 2}, {3, 4}}},
		{TeleportNetID: 0x40000002, TeleportID: &tid, Waypoints: []Waypoint{{100, -100}}},
	}
	for _, c := range cases {
		w := NewWriter(64)
		require.NoError(t, WriteMovementData(w, c))

		r := NewReader(w.Bytes())
		got, err := ReadMovementData(r)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestMovementDataEmptyPathSkipsTeleport(t *testing.T) {
	w := NewWriter(16)
	require.NoError(t, WriteMovementData(w, &MovementDataNormal{TeleportNetID: 99}))
	// tag + flags word + size word only
	assert.Len(t, w.Bytes(), 5)
}

func TestMovementDataStopRoundTrip(t *testing.T) {
	m := &MovementDataStop{
		Position: Vector2{X: 1.5, Y: -2.5},
		Forward:  Vector2{X: 0, Y: 1},
	}
	w := NewWriter(32)
	require.NoError(t, WriteMovementData(w, m))

	r := NewReader(w.Bytes())
	got, err := ReadMovementData(r)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMovementDataSpeedRoundTrip(t *testing.T) {
	m := &MovementDataWithSpeed{
		MovementDataNormal: MovementDataNormal{
			TeleportNetID: 0x4000000A,
			Waypoints:     []Waypoint{{5, 5}, {6, 6}},
		},
		SpeedParams: SpeedParams{
			PathSpeedOverride: 1200,
			Facing:            true,
			FollowNetID:       0x40000001,
		},
	}
	w := NewWriter(64)
	require.NoError(t, WriteMovementData(w, m))

	r := NewReader(w.Bytes())
	got, err := ReadMovementData(r)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMovementDataUnknownTagDecodesNone(t *testing.T) {
	r := NewReader([]byte{9, 0x2A, 0, 0, 0})
	got, err := ReadMovementData(r)
	require.NoError(t, err)
	assert.Equal(t, &MovementDataNone{Value: 42}, got)
}
