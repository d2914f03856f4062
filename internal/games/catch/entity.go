package catch

import "github.com/vovakirdan/tui-catch/internal/core"

// Field is the play area in cells. Y grows downward; the player sits on
// the bottom edge.
type Field struct {
	W, H float64
}

// MaxPlayerX returns the largest left edge that keeps a player of the given
// width inside the field.
func (f Field) MaxPlayerX(width float64) float64 {
	return max(f.W-width, 0)
}

// Player is the catcher sprite.
type Player struct {
	X, Y  float64 // Top-left corner
	W, H  float64
	Speed float64 // Keyboard nudge per tick
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// snapDistance ends smoothing once the player is visually on target.
const snapDistance = 0.01

// Follow eases the player toward targetX and clamps it to the field.
func (p *Player) Follow(targetX, smoothing float64, field Field) {
	p.X += (targetX - p.X) * smoothing
	if d := targetX - p.X; d < snapDistance && d > -snapDistance {
		p.X = targetX
	}
	p.X = core.ClampF(p.X, 0, field.MaxPlayerX(p.W))
}

// FallingObject is one item dropping toward the player.
// X is the horizontal center, Y the top edge.
type FallingObject struct {
	X, Y float64
	VY   float64
	Size float64
}

// Rect returns the object's bounding box.
func (o FallingObject) Rect() core.RectF {
	return core.RectF{X: o.X - o.Size/2, Y: o.Y, W: o.Size, H: o.Size}
}

// Session holds score, lives and the running flag for one play-through.
type Session struct {
	Score   int
	Lives   int
	Running bool
}

// Start resets the counters and makes the session active.
func (s *Session) Start(lives int) {
	s.Score = 0
	s.Lives = lives
	s.Running = true
}

// Catch awards points. No-op once the session has ended.
func (s *Session) Catch(reward int) {
	if !s.Running {
		return
	}
	s.Score += reward
}

// Miss costs one life and ends the session when none are left.
// Returns true when this miss ended the session.
func (s *Session) Miss() bool {
	if !s.Running {
		return false
	}
	s.Lives--
	if s.Lives <= 0 {
		s.Running = false
		return true
	}
	return false
}
