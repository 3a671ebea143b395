package datasource

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettings_SetModeNotifiesSubscribers(t *testing.T) {
	s := NewSettings(ModeDatabase)
	ch, cancel := s.Subscribe()
	defer cancel()

	assert.True(t, s.SetMode(ModeDemo))

	select {
	case mode := <-ch:
		assert.Equal(t, ModeDemo, mode)
	case <-time.After(time.Second):
		t.Fatal("no mode change received")
	}
}

func TestSettings_SetModeRejectsUnknown(t *testing.T) {
	s := NewSettings(ModeDatabase)
	assert.False(t, s.SetMode(Mode("carrier-pigeon")))
	assert.Equal(t, ModeDatabase, s.Mode())
}

func TestSettings_SetModeNoopWhenUnchanged(t *testing.T) {
	s := NewSettings(ModeDemo)
	ch, cancel := s.Subscribe()
	defer cancel()

	assert.False(t, s.SetMode(ModeDemo))

	select {
	case <-ch:
		t.Fatal("unchanged mode must not notify")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSettings_CancelStopsDelivery(t *testing.T) {
	s := NewSettings(ModeDatabase)
	ch, cancel := s.Subscribe()
	cancel()

	s.SetMode(ModeDemo)

	_, open := <-ch
	assert.False(t, open)
}

func TestSettings_InvalidInitialModeDefaults(t *testing.T) {
	s := NewSettings(Mode(""))
	assert.Equal(t, ModeDatabase, s.Mode())
}
