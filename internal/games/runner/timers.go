package runner

import (
	"math"

	"github.com/vovakirdan/guacamole-runner/internal/hexmap"
)

// Countdown fires once every Max+1 ticks. It starts full, so the first
// firing happens on tick Max+1.
type Countdown struct {
	Cur int
	Max int
}

// NewCountdown creates a full countdown.
func NewCountdown(max int) Countdown {
	return Countdown{Cur: max, Max: max}
}

// Step advances one tick and reports whether the countdown ran out.
// Running out resets it to Max.
func (c *Countdown) Step() bool {
	if c.Cur <= 0 {
		c.Cur = c.Max
		return true
	}
	c.Cur--
	return false
}

// SpawnTimer paces plane spawns.
type SpawnTimer = Countdown

// Scroller moves the map left by Rate pixels each time its countdown
// fires. Fractional rates accumulate until a whole pixel is owed.
type Scroller struct {
	Timer  Countdown
	Rate   float64
	stored float64
}

// NewScroller creates a scroller that idles interval ticks between steps.
func NewScroller(rate float64, interval int) Scroller {
	return Scroller{Timer: NewCountdown(interval), Rate: rate}
}

// Step advances the scroller one tick.
func (s *Scroller) Step(m *hexmap.Map) {
	if s.Timer.Step() {
		s.stored += s.Rate
	}
	if s.stored >= 1 {
		whole := math.Floor(s.stored)
		s.stored -= whole
		m.Position.X -= whole
	}
}
