package datasource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type captureBroadcaster struct {
	events chan Event
}

func (c *captureBroadcaster) Broadcast(ev Event) {
	c.events <- ev
}

func TestRelayModeChanges_ForwardsSwitch(t *testing.T) {
	settings := NewSettings(ModeDatabase)
	b := &captureBroadcaster{events: make(chan Event, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		RelayModeChanges(ctx, settings, b)
		close(done)
	}()

	assert.True(t, settings.SetMode(ModeDemo))

	select {
	case ev := <-b.events:
		assert.Equal(t, EventModeChanged, ev.Type)
		assert.Equal(t, ModeDemo, ev.Mode)
	case <-time.After(time.Second):
		t.Fatal("no event relayed after mode change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("relay did not stop on cancel")
	}
}

func TestRelayModeChanges_IgnoresNoopSwitch(t *testing.T) {
	settings := NewSettings(ModeDatabase)
	b := &captureBroadcaster{events: make(chan Event, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go RelayModeChanges(ctx, settings, b)

	assert.False(t, settings.SetMode(ModeDatabase))

	select {
	case ev := <-b.events:
		t.Fatalf("unexpected event %+v for unchanged mode", ev)
	case <-time.After(50 * time.Millisecond):
	}
}
