package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopbackOrdering(t *testing.T) {
	l := NewLoopback()
	p := l.Connect()
	p.Inject(1, []byte{1})
	p.Inject(1, []byte{2})

	ev := l.Service(0)
	assert.Equal(t, EventConnect, ev.Type)
	ev = l.Service(0)
	assert.Equal(t, EventReceive, ev.Type)
	assert.Equal(t, []byte{1}, ev.Data)
	ev = l.Service(0)
	assert.Equal(t, []byte{2}, ev.Data)
	assert.Equal(t, EventNone, l.Service(0).Type)
}

func TestLoopbackServiceTimeoutIdle(t *testing.T) {
	l := NewLoopback()
	start := time.Now()
	ev := l.Service(50 * time.Millisecond)
	assert.Equal(t, EventNone, ev.Type)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestLoopbackTag(t *testing.T) {
	l := NewLoopback()
	p := l.Connect()
	assert.Equal(t, NoTag, p.Tag())
	p.SetTag(3)
	assert.Equal(t, 3, p.Tag())
}

func TestLoopbackDisconnectQueuesEvent(t *testing.T) {
	l := NewLoopback()
	p := l.Connect()
	_ = l.Service(0)
	p.Disconnect(7)
	ev := l.Service(0)
	assert.Equal(t, EventDisconnect, ev.Type)
	assert.True(t, p.Closed)
	assert.Equal(t, uint32(7), p.CloseReason)
}

func TestLoopbackRecordsSends(t *testing.T) {
	l := NewLoopback()
	p := l.Connect()
	_ = p.Send(3, []byte{9, 9}, true)
	_ = p.Send(5, []byte{1}, false)
	assert.Len(t, p.SentOn(3), 1)
	assert.Len(t, p.SentOn(5), 1)
	assert.True(t, p.Outgoing[0].Reliable)
	assert.False(t, p.Outgoing[1].Reliable)
}
