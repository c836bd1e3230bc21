// Package slideshow manages the automatic cycling of the displayed
// image. Timing is expressed in scheduler ticks, not wall-clock
// callbacks, so pausing the scheduler pauses the slideshow exactly.
package slideshow

// DefaultTicksPerImage is ten seconds at the quarter-second tick.
const DefaultTicksPerImage = 40

// Ticker holds the slideshow state: whether it is running, how many
// ticks each image gets, and how many remain for the current one.
type Ticker struct {
	ticksPerImage int
	remaining     int
	active        bool
}

// New creates a stopped Ticker. A non-positive interval falls back to
// DefaultTicksPerImage.
func New(ticksPerImage int) *Ticker {
	if ticksPerImage <= 0 {
		ticksPerImage = DefaultTicksPerImage
	}
	return &Ticker{
		ticksPerImage: ticksPerImage,
		remaining:     ticksPerImage,
	}
}

// Active reports whether the slideshow is running.
func (t *Ticker) Active() bool { return t.active }

// TicksPerImage returns the current advance interval in ticks.
func (t *Ticker) TicksPerImage() int { return t.ticksPerImage }

// Toggle flips the running state without touching the countdown.
func (t *Ticker) Toggle() { t.active = !t.active }

// Stop halts the slideshow and resets the countdown to full. Used
// when new images arrive so the viewer stays on the newcomer.
func (t *Ticker) Stop() {
	t.active = false
	t.remaining = t.ticksPerImage
}

// SpeedUp halves the interval, to a minimum of one tick, and forces
// the countdown to fire on the very next tick.
func (t *Ticker) SpeedUp() {
	if t.ticksPerImage >= 2 {
		t.ticksPerImage /= 2
	}
	t.remaining = 1
}

// SlowDown doubles the interval.
func (t *Ticker) SlowDown() {
	t.ticksPerImage *= 2
}

// Tick consumes one tick. It returns true when the countdown reached
// zero, meaning the caller should advance to the next image; the
// countdown is then reset to full. A stopped Ticker ignores ticks.
func (t *Ticker) Tick() bool {
	if !t.active {
		return false
	}
	t.remaining--
	if t.remaining <= 0 {
		t.remaining = t.ticksPerImage
		return true
	}
	return false
}
