package catch

import (
	"math/rand"

	"github.com/vovakirdan/tui-catch/internal/config"
)

// Spawner drops new objects on a frame counter. Every spawn shortens the
// interval by a fixed decrement until it reaches the floor.
type Spawner struct {
	cfg      config.CatchSpawn
	objects  config.CatchObjects
	timer    int
	interval float64
}

// NewSpawner creates a spawner at its initial interval.
func NewSpawner(spawn config.CatchSpawn, objects config.CatchObjects) *Spawner {
	s := &Spawner{cfg: spawn, objects: objects}
	s.Reset()
	return s
}

// Reset restores the initial interval and clears the frame counter.
func (s *Spawner) Reset() {
	s.timer = 0
	s.interval = s.cfg.Interval
}

// Interval returns the current number of ticks between spawns.
func (s *Spawner) Interval() float64 {
	return s.interval
}

// Timer returns the ticks counted since the last spawn.
func (s *Spawner) Timer() int {
	return s.timer
}

// Level returns the ramp progress in [0, 1].
func (s *Spawner) Level() float64 {
	return config.RampLevel(s.cfg, s.interval)
}

// Tick advances the counter and returns a new object when one is due.
func (s *Spawner) Tick(rng *rand.Rand, field Field) (FallingObject, bool) {
	s.timer++
	if float64(s.timer) < s.interval {
		return FallingObject{}, false
	}

	s.timer = 0
	obj := s.spawn(rng, field)
	s.interval = max(s.interval-s.cfg.Decrement, s.cfg.MinInterval)
	return obj, true
}

// spawn creates one object above the field with random position, speed and size.
func (s *Spawner) spawn(rng *rand.Rand, field Field) FallingObject {
	o := s.objects

	x := field.W / 2
	if lo, hi := o.Margin, field.W-o.Margin; hi > lo {
		x = uniform(rng, lo, hi)
	}

	return FallingObject{
		X:    x,
		Y:    o.StartY,
		VY:   uniform(rng, o.MinSpeed, o.MaxSpeed),
		Size: uniform(rng, o.MinSize, o.MaxSize),
	}
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
