package slideshow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	assert.Equal(t, DefaultTicksPerImage, New(0).TicksPerImage())
	assert.Equal(t, DefaultTicksPerImage, New(-5).TicksPerImage())
	assert.Equal(t, 8, New(8).TicksPerImage())
	assert.False(t, New(8).Active())
}

func TestTickCountdown(t *testing.T) {
	s := New(3)
	assert.False(t, s.Tick(), "stopped ticker ignores ticks")

	s.Toggle()
	assert.True(t, s.Active())
	assert.False(t, s.Tick())
	assert.False(t, s.Tick())
	assert.True(t, s.Tick(), "fires after ticksPerImage ticks")
	// Countdown restarts in full.
	assert.False(t, s.Tick())
	assert.False(t, s.Tick())
	assert.True(t, s.Tick())
}

func TestSpeedUp(t *testing.T) {
	s := New(8)
	s.Toggle()
	s.SpeedUp()
	assert.Equal(t, 4, s.TicksPerImage())
	assert.True(t, s.Tick(), "speed-up forces the next tick to fire")

	s.SpeedUp()
	s.SpeedUp()
	s.SpeedUp()
	assert.Equal(t, 1, s.TicksPerImage(), "interval never drops below one tick")
	assert.True(t, s.Tick())
	assert.True(t, s.Tick(), "at one tick per image every tick advances")
}

func TestSlowDown(t *testing.T) {
	s := New(4)
	s.SlowDown()
	assert.Equal(t, 8, s.TicksPerImage())
}

func TestStopResetsCountdown(t *testing.T) {
	s := New(3)
	s.Toggle()
	s.Tick()
	s.Stop()
	assert.False(t, s.Active())

	s.Toggle()
	assert.False(t, s.Tick())
	assert.False(t, s.Tick())
	assert.True(t, s.Tick(), "countdown was reset to full by Stop")
}
