package interaction

import (
	"physics-sandbox/internal/collision"
	"physics-sandbox/internal/impulse"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// TargetKind tags what a hit test resolved to.
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetSphere
	TargetBox
)

func (k TargetKind) String() string {
	switch k {
	case TargetSphere:
		return "sphere"
	case TargetBox:
		return "box"
	default:
		return "none"
	}
}

// Target is the result of a hit test. Body is nil when Kind is TargetNone.
type Target struct {
	Kind TargetKind
	Body impulse.Body
}

// None is the empty hit result.
var None = Target{Kind: TargetNone}

// HitTester finds the nearest entity under a screen point whose collision group is in mask.
// Implementations decide the target kind so callers never inspect concrete entity types.
type HitTester interface {
	HitTest(point rl.Vector2, mask collision.Group) Target
}

// State is the resolver's position in the tap lifecycle.
type State uint8

const (
	Idle State = iota
	Resolving
)

// Outcome reports what a tap did.
type Outcome uint8

const (
	Ignored Outcome = iota
	Pushed
	Spun
	Missed
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Pushed:
		return "pushed"
	case Spun:
		return "spun"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// Resolver maps taps to impulses. Spheres are queried before the box, so a point covering both
// resolves to the sphere. The container group is never queried.
type Resolver struct {
	hits    HitTester
	applier *impulse.Applier
	groups  collision.Registry
	log     *zap.Logger
	state   State
}

// NewResolver returns an idle resolver.
func NewResolver(hits HitTester, applier *impulse.Applier, groups collision.Registry, log *zap.Logger) *Resolver {
	return &Resolver{hits: hits, applier: applier, groups: groups, log: log}
}

// State returns the current lifecycle state.
func (r *Resolver) State() State {
	return r.state
}

// HandleTap resolves an ended tap into at most one impulse. Events in any other state, and
// taps arriving while a previous one is still resolving, are ignored.
func (r *Resolver) HandleTap(ev TapEvent) Outcome {
	if ev.State != StateEnded || r.state != Idle {
		return Ignored
	}
	r.state = Resolving
	defer func() { r.state = Idle }()

	if t := r.hits.HitTest(ev.Point, r.groups.Sphere); t.Kind == TargetSphere && t.Body != nil {
		r.applier.Push(t.Body)
		r.log.Debug("tap pushed sphere", zap.Float32("x", ev.Point.X), zap.Float32("y", ev.Point.Y))
		return Pushed
	}
	if t := r.hits.HitTest(ev.Point, r.groups.Box); t.Kind == TargetBox && t.Body != nil {
		r.applier.Spin(t.Body)
		r.log.Debug("tap spun box", zap.Float32("x", ev.Point.X), zap.Float32("y", ev.Point.Y))
		return Spun
	}
	r.log.Debug("tap missed", zap.Float32("x", ev.Point.X), zap.Float32("y", ev.Point.Y))
	return Missed
}
