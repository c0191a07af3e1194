package physics

import (
	"physics-sandbox/internal/collision"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode controls how a body takes part in the simulation.
type Mode uint8

const (
	// Dynamic bodies are moved by gravity, contacts and impulses.
	Dynamic Mode = iota
	// Static bodies never move.
	Static
	// Kinematic bodies move by their own velocity but ignore gravity, contacts and impulses.
	Kinematic
)

func (m Mode) String() string {
	switch m {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	case Kinematic:
		return "kinematic"
	default:
		return "unknown"
	}
}

// Frame is a reference frame impulse vectors can be expressed in.
type Frame interface {
	WorldOrientation() rl.Quaternion
}

// Body is a rigid body. Position and Orientation are expressed in the space of the body's
// parent (the container anchor for every body in the sandbox).
type Body struct {
	Shape           Shape
	Mass            MassProperties
	Material        Material
	Mode            Mode
	Filter          collision.Filter
	Position        rl.Vector3
	Orientation     rl.Quaternion
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3
}

// NewBody returns a body at rest at position with identity orientation.
func NewBody(shape Shape, mass float32, material Material, mode Mode, position rl.Vector3) *Body {
	return &Body{
		Shape:       shape,
		Mass:        NewMassProperties(shape, mass),
		Material:    material,
		Mode:        mode,
		Filter:      collision.NewFilter(collision.Default),
		Position:    position,
		Orientation: rl.QuaternionIdentity(),
	}
}

// Bounds returns the body's axis-aligned bounding box in parent space.
func (b *Body) Bounds() rl.BoundingBox {
	return b.Shape.Bounds(b.Position, b.Orientation)
}

// ApplyLinearImpulse changes the velocity by impulse/mass. frame rotates impulse from the
// frame it is expressed in into the body's parent space. Only dynamic bodies respond.
func (b *Body) ApplyLinearImpulse(impulse rl.Vector3, frame rl.Quaternion) {
	if b.Mode != Dynamic || b.Mass.Mass <= 0 {
		return
	}
	j := rl.Vector3RotateByQuaternion(impulse, frame)
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(j, 1/b.Mass.Mass))
}

// ApplyAngularImpulse changes the angular velocity by the inverse inertia applied to impulse.
// The inertia tensor is diagonal in body space, so the impulse is moved into body space,
// scaled, and moved back.
func (b *Body) ApplyAngularImpulse(impulse rl.Vector3, frame rl.Quaternion) {
	if b.Mode != Dynamic {
		return
	}
	world := rl.Vector3RotateByQuaternion(impulse, frame)
	local := rl.Vector3RotateByQuaternion(world, rl.QuaternionInvert(b.Orientation))
	i := b.Mass.Inertia
	dw := rl.NewVector3(invOrZero(i.X)*local.X, invOrZero(i.Y)*local.Y, invOrZero(i.Z)*local.Z)
	b.AngularVelocity = rl.Vector3Add(b.AngularVelocity, rl.Vector3RotateByQuaternion(dw, b.Orientation))
}

// integrate advances position and orientation by dt using the current velocities.
func (b *Body) integrate(dt float32) {
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	speed := rl.Vector3Length(b.AngularVelocity)
	if speed == 0 {
		return
	}
	axis := rl.Vector3Scale(b.AngularVelocity, 1/speed)
	dq := rl.QuaternionFromAxisAngle(axis, speed*dt)
	b.Orientation = rl.QuaternionNormalize(rl.QuaternionMultiply(dq, b.Orientation))
}

func invOrZero(v float32) float32 {
	if v == 0 {
		return 0
	}
	return 1 / v
}

func abs32(v float32) float32 {
	return math32.Abs(v)
}
