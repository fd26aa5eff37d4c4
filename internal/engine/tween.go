package engine

import "blockroll/internal/geom"

// Tween animates one roll plan over a fixed number of ticks. It is driven by
// the platform's tick loop, one Step per rendered frame; the engine performs
// no suspension of its own.
//
// Legal rolls sweep the full angle with ease-out; illegal rolls bounce
// forward to the reduced angle and swing fully back. Every interpolated frame
// is produced by rotating the start transform with the same primitive that
// validated the plan, so the final frame of a legal roll lands exactly on the
// validated target.
type Tween struct {
	plan     geomPlan
	start    geom.Body
	duration int
	elapsed  int
}

// geomPlan is the slice of Plan the tween needs.
type geomPlan struct {
	legal  bool
	pivot  geom.Vec3
	axis   geom.Vec3
	angle  float64
	target geom.Body
}

// NewTween creates a tween for the given plan starting from the block's
// current transform. duration is in ticks and is clamped to at least 1.
func NewTween(start geom.Body, p Plan, duration int) *Tween {
	if duration < 1 {
		duration = 1
	}
	return &Tween{
		plan: geomPlan{
			legal:  p.Legal,
			pivot:  p.Pivot,
			axis:   p.Axis,
			angle:  p.Angle,
			target: p.Target,
		},
		start:    start,
		duration: duration,
	}
}

// Step advances the tween by one tick and returns the transform to display
// for this frame. Once the tween is done it keeps returning Final().
func (t *Tween) Step() geom.Body {
	if t.elapsed < t.duration {
		t.elapsed++
	}
	if t.Done() {
		return t.Final()
	}

	progress := float64(t.elapsed) / float64(t.duration)
	return t.start.RotatedAround(t.plan.pivot, t.plan.axis, t.plan.angle*t.sweep(progress))
}

// Done reports whether the animation has played out.
func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

// Legal reports whether the underlying plan commits a state change.
func (t *Tween) Legal() bool {
	return t.plan.legal
}

// Final returns the transform the block must hold once the tween completes:
// the validated target for a legal roll, the untouched start for a bounce.
func (t *Tween) Final() geom.Body {
	if t.plan.legal {
		return t.plan.target
	}
	return t.start
}

// sweep maps linear progress to an angle fraction. Legal rolls decelerate
// into place; bounces rotate out during the first half and retrace during
// the second, ending where they began.
func (t *Tween) sweep(progress float64) float64 {
	if t.plan.legal {
		return easeOutQuad(progress)
	}
	if progress < 0.5 {
		return easeOutQuad(progress * 2)
	}
	return easeOutQuad((1 - progress) * 2)
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(p float64) float64 {
	return p * (2 - p)
}
