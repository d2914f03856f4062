package catch

import (
	"math"

	"github.com/vovakirdan/tui-catch/internal/core"
)

// ControlSource names the input that decided the target on the last tick.
type ControlSource int

const (
	SourceKeyboard ControlSource = iota
	SourcePointer
	SourceExternal
)

// String returns a short label for the HUD.
func (s ControlSource) String() string {
	switch s {
	case SourcePointer:
		return "mouse"
	case SourceExternal:
		return "tracker"
	default:
		return "keys"
	}
}

// ControlState is the latest snapshot of the keyboard and pointer sources.
type ControlState struct {
	Left, Right bool
	PointerX    float64
	HasPointer  bool
}

// Reducer combines keyboard, pointer and external control into a single
// target X for the player. Precedence is keyboard < pointer < external.
type Reducer struct {
	state    ControlState
	external core.ExternalControl
	targetX  float64
	source   ControlSource
}

// NewReducer creates a reducer with an optional external control source.
func NewReducer(external core.ExternalControl) *Reducer {
	return &Reducer{external: external}
}

// SetExternal swaps the external control source. Nil detaches it.
func (r *Reducer) SetExternal(external core.ExternalControl) {
	r.external = external
}

// External returns the attached external control source, if any.
func (r *Reducer) External() core.ExternalControl {
	return r.external
}

// Update records the keyboard and pointer state carried by an input frame.
// Non-finite pointer positions are dropped.
func (r *Reducer) Update(in core.InputFrame) {
	r.state = ControlState{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
	if in.HasPointer && isFinite(in.PointerX) {
		r.state.PointerX = in.PointerX
		r.state.HasPointer = true
	}
}

// State returns the last recorded control snapshot.
func (r *Reducer) State() ControlState {
	return r.state
}

// Source returns which input decided the most recent target.
func (r *Reducer) Source() ControlSource {
	return r.source
}

// Reset anchors the keyboard target at the player's position.
func (r *Reducer) Reset(x float64) {
	r.targetX = x
	r.source = SourceKeyboard
}

// TargetX computes this tick's target left edge for the player.
// Keyboard nudges compound on the previous target; a pointer replaces it
// (centering the player under the pointer); an active external source
// replaces both, mapping [0, 1] onto [0, field width - player width].
func (r *Reducer) TargetX(player Player, field Field) float64 {
	maxX := field.MaxPlayerX(player.W)

	target := r.targetX
	r.source = SourceKeyboard
	if r.state.Left {
		target -= player.Speed
	}
	if r.state.Right {
		target += player.Speed
	}

	if r.state.HasPointer {
		target = r.state.PointerX - player.W/2
		r.source = SourcePointer
	}

	if x, ok := r.externalX(); ok {
		target = x * maxX
		r.source = SourceExternal
	}

	r.targetX = core.ClampF(target, 0, maxX)
	return r.targetX
}

// externalX reads the external source when it is active and has a usable
// sample. Out-of-range samples are clamped to [0, 1].
func (r *Reducer) externalX() (float64, bool) {
	if r.external == nil || !r.external.Active() {
		return 0, false
	}
	x, ok := r.external.X()
	if !ok || !isFinite(x) {
		return 0, false
	}
	return core.ClampF(x, 0, 1), true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
