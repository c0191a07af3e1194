package physics

import (
	"physics-sandbox/internal/collision"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// restingSpeed: approach speeds below this never bounce.
	restingSpeed = 0.05
	// angularContactDamping scales how fast friction bleeds angular velocity while touching.
	angularContactDamping = 4.0
)

// World holds a set of bodies and runs a simple 3D physics step: gravity, integration, AABB
// contacts with restitution and friction.
type World struct {
	Gravity rl.Vector3
	Bodies  []*Body
}

// NewWorld returns a new physics world with default gravity (0, -9.8, 0). Y is up.
func NewWorld() *World {
	return &World{
		Gravity: rl.NewVector3(0, -9.8, 0),
		Bodies:  nil,
	}
}

// SetGravity sets the gravity vector.
func (w *World) SetGravity(g rl.Vector3) {
	w.Gravity = g
}

// AddBody appends a body to the world. Order is preserved.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b rl.BoundingBox) (depth float32, axis int) {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth = overlapX
	axis = 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}
	return depth, axis
}

// Step advances the simulation by dt seconds: apply gravity, integrate, then resolve contacts.
// Pairs whose collision filters exclude each other pass through one another.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		switch b.Mode {
		case Dynamic:
			b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(w.Gravity, dt))
			b.integrate(dt)
		case Kinematic:
			b.integrate(dt)
		}
	}

	// A body resting on a surface gains |g|*dt of approach speed every step; keep that from bouncing.
	rest := math32.Max(restingSpeed, 2*rl.Vector3Length(w.Gravity)*dt)
	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Mode != Dynamic && bj.Mode != Dynamic {
				continue
			}
			if !collision.CanCollide(bi.Filter, bj.Filter) {
				continue
			}
			depth, axis := penetrationAxis(bi.Bounds(), bj.Bounds())
			if axis < 0 {
				continue
			}
			resolveContact(bi, bj, depth, axis, rest, dt)
		}
	}
}

// resolveContact separates the pair along axis and exchanges an impulse along the contact
// normal, then applies friction on the two tangential axes.
func resolveContact(bi, bj *Body, depth float32, axis int, rest, dt float32) {
	// n points from bi to bj along axis.
	sign := float32(1)
	if component(bj.Position, axis) < component(bi.Position, axis) {
		sign = -1
	}
	invI := inverseMass(bi)
	invJ := inverseMass(bj)
	invSum := invI + invJ
	if invSum == 0 {
		return
	}

	// Push apart proportionally to inverse mass. Static doesn't move.
	addComponent(&bi.Position, axis, -sign*depth*invI/invSum)
	addComponent(&bj.Position, axis, sign*depth*invJ/invSum)

	rel := sign * (component(bj.Velocity, axis) - component(bi.Velocity, axis))
	if rel >= 0 {
		return
	}
	e := (bi.Material.Restitution + bj.Material.Restitution) * 0.5
	if -rel < rest {
		e = 0
	}
	jn := -(1 + e) * rel / invSum
	addComponent(&bi.Velocity, axis, -sign*jn*invI)
	addComponent(&bj.Velocity, axis, sign*jn*invJ)

	mu := (bi.Material.Friction + bj.Material.Friction) * 0.5
	limit := mu * jn
	for t := 0; t < 3; t++ {
		if t == axis {
			continue
		}
		relT := component(bj.Velocity, t) - component(bi.Velocity, t)
		jt := -relT / invSum
		jt = math32.Max(-limit, math32.Min(limit, jt))
		addComponent(&bi.Velocity, t, -jt*invI)
		addComponent(&bj.Velocity, t, jt*invJ)
	}

	damp := math32.Max(0, 1-mu*angularContactDamping*dt)
	for _, b := range [2]*Body{bi, bj} {
		if b.Mode == Dynamic {
			b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, damp)
		}
	}
}

func inverseMass(b *Body) float32 {
	if b.Mode != Dynamic || b.Mass.Mass <= 0 {
		return 0
	}
	return 1 / b.Mass.Mass
}

func component(v rl.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func addComponent(v *rl.Vector3, axis int, delta float32) {
	switch axis {
	case 0:
		v.X += delta
	case 1:
		v.Y += delta
	default:
		v.Z += delta
	}
}
