package catch

// PhysicsParams are the per-tick constants for integration and collision.
type PhysicsParams struct {
	Gravity    float64
	Tolerance  float64 // Extra catch width on each side of the player
	MissMargin float64 // Distance below the field before an object counts as missed
}

// Outcome is what happened to one object during a physics step.
type Outcome int

const (
	OutcomeFalling Outcome = iota
	OutcomeCaught
	OutcomeMissed
)

// advance integrates one object and classifies it against the player.
// Position moves by the current velocity before gravity is applied.
func advance(o *FallingObject, player Player, field Field, p PhysicsParams) Outcome {
	o.Y += o.VY
	o.VY += p.Gravity

	if caught(*o, player, p.Tolerance) {
		return OutcomeCaught
	}
	if o.Y > field.H+p.MissMargin {
		return OutcomeMissed
	}
	return OutcomeFalling
}

// caught reports whether the object's vertical span overlaps the player and
// its center lies within the player's span widened by tolerance.
func caught(o FallingObject, player Player, tolerance float64) bool {
	pr := player.Rect()
	if !pr.OverlapsY(o.Rect()) {
		return false
	}
	return pr.ExpandX(tolerance).ContainsX(o.X)
}

// stepObjects advances every object, removes caught and missed ones in
// place and calls onOutcome for each removal in slice order.
func stepObjects(objects []FallingObject, player Player, field Field, p PhysicsParams, onOutcome func(Outcome)) []FallingObject {
	kept := objects[:0]
	for i := range objects {
		o := objects[i]
		switch out := advance(&o, player, field, p); out {
		case OutcomeFalling:
			kept = append(kept, o)
		default:
			onOutcome(out)
		}
	}
	clear(objects[len(kept):])
	return kept
}
