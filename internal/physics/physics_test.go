package physics

import (
	"testing"

	"physics-sandbox/internal/collision"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got rl.Vector3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func quarterTurn(axis rl.Vector3) rl.Quaternion {
	return rl.QuaternionFromAxisAngle(axis, rl.Pi/2)
}

func TestMassProperties(t *testing.T) {
	sphere := NewMassProperties(NewSphereShape(0.03), 0.005)
	assert.InDelta(t, 1.8e-6, sphere.Inertia.X, 1e-9)
	assert.Equal(t, sphere.Inertia.X, sphere.Inertia.Y)
	assert.Equal(t, sphere.Inertia.X, sphere.Inertia.Z)

	box := NewMassProperties(NewBoxShape(rl.NewVector3(0.12, 0.06, 0.06)), 0.005)
	assert.InDelta(t, 3e-6, box.Inertia.X, 1e-9)
	assert.InDelta(t, 7.5e-6, box.Inertia.Y, 1e-9)
	assert.InDelta(t, 7.5e-6, box.Inertia.Z, 1e-9)
	assert.Equal(t, float32(0.005), box.Mass)
}

func TestShapeBounds(t *testing.T) {
	box := NewBoxShape(rl.NewVector3(0.12, 0.06, 0.06))

	aligned := box.Bounds(rl.NewVector3(0, 0.03, 0), rl.QuaternionIdentity())
	assertVec(t, rl.NewVector3(-0.06, 0, -0.03), aligned.Min, eps)
	assertVec(t, rl.NewVector3(0.06, 0.06, 0.03), aligned.Max, eps)

	turned := box.Bounds(rl.Vector3Zero(), quarterTurn(rl.NewVector3(0, 1, 0)))
	assertVec(t, rl.NewVector3(0.03, 0.03, 0.06), turned.Max, eps)

	sphere := NewSphereShape(0.03).Bounds(rl.NewVector3(1, 1, 1), quarterTurn(rl.NewVector3(1, 0, 0)))
	assertVec(t, rl.NewVector3(0.97, 0.97, 0.97), sphere.Min, eps)
}

func TestApplyLinearImpulse(t *testing.T) {
	b := NewBody(NewSphereShape(0.03), 0.005, Material{}, Dynamic, rl.Vector3Zero())

	b.ApplyLinearImpulse(rl.NewVector3(0, 0, 0.002), rl.QuaternionIdentity())
	assertVec(t, rl.NewVector3(0, 0, 0.4), b.Velocity, eps)

	b.Velocity = rl.Vector3Zero()
	b.ApplyLinearImpulse(rl.NewVector3(0, 0, 0.002), quarterTurn(rl.NewVector3(0, 1, 0)))
	assertVec(t, rl.NewVector3(0.4, 0, 0), b.Velocity, eps)
}

func TestApplyAngularImpulseFollowsBodyAxis(t *testing.T) {
	b := NewBody(NewBoxShape(rl.NewVector3(0.12, 0.06, 0.06)), 0.005, Material{}, Dynamic, rl.Vector3Zero())
	wantSpin := float32(0.0002 / 7.5e-6)

	b.ApplyAngularImpulse(rl.NewVector3(0, 0.0002, 0), b.Orientation)
	assertVec(t, rl.NewVector3(0, wantSpin, 0), b.AngularVelocity, 1e-2)

	// Tipped onto its side the local up axis points along +Z.
	b.AngularVelocity = rl.Vector3Zero()
	b.Orientation = quarterTurn(rl.NewVector3(1, 0, 0))
	b.ApplyAngularImpulse(rl.NewVector3(0, 0.0002, 0), b.Orientation)
	assertVec(t, rl.NewVector3(0, 0, wantSpin), b.AngularVelocity, 1e-2)
}

func TestNonDynamicBodiesIgnoreImpulses(t *testing.T) {
	for _, mode := range []Mode{Static, Kinematic} {
		t.Run(mode.String(), func(t *testing.T) {
			b := NewBody(NewSphereShape(0.03), 0.005, Material{}, mode, rl.Vector3Zero())
			b.ApplyLinearImpulse(rl.NewVector3(1, 1, 1), rl.QuaternionIdentity())
			b.ApplyAngularImpulse(rl.NewVector3(1, 1, 1), rl.QuaternionIdentity())
			assert.Equal(t, rl.Vector3Zero(), b.Velocity)
			assert.Equal(t, rl.Vector3Zero(), b.AngularVelocity)
		})
	}
}

func TestPenetrationAxis(t *testing.T) {
	a := rl.NewBoundingBox(rl.NewVector3(0, 0, 0), rl.NewVector3(1, 1, 1))

	depth, axis := penetrationAxis(a, rl.NewBoundingBox(rl.NewVector3(0.5, 0.9, 0.2), rl.NewVector3(1.5, 2, 0.8)))
	assert.Equal(t, 1, axis)
	assert.InDelta(t, 0.1, depth, eps)

	_, axis = penetrationAxis(a, rl.NewBoundingBox(rl.NewVector3(2, 2, 2), rl.NewVector3(3, 3, 3)))
	assert.Equal(t, -1, axis)
}

func newGround(filter collision.Filter) *Body {
	g := NewBody(NewBoxShape(rl.NewVector3(1, 0.1, 1)), 0, Material{Friction: 0.8, Restitution: 0.8}, Static, rl.NewVector3(0, -0.05, 0))
	g.Filter = filter
	return g
}

func TestSphereSettlesOnGround(t *testing.T) {
	w := NewWorld()
	ground := newGround(collision.NewFilter(collision.Default))
	ball := NewBody(NewSphereShape(0.03), 0.005, Material{Friction: 0.8, Restitution: 0.8}, Dynamic, rl.NewVector3(0, 0.2, 0))
	w.AddBody(ground)
	w.AddBody(ball)

	for range 600 {
		w.Step(1.0 / 60)
	}

	assert.InDelta(t, 0.03, ball.Position.Y, 0.005)
	assert.InDelta(t, 0, ball.Velocity.Y, 0.2)
	assertVec(t, rl.NewVector3(0, -0.05, 0), ground.Position, 0)
}

func TestFrictionStopsSliding(t *testing.T) {
	w := NewWorld()
	w.AddBody(newGround(collision.NewFilter(collision.Default)))
	ball := NewBody(NewSphereShape(0.03), 0.005, Material{Friction: 0.8, Restitution: 0.8}, Dynamic, rl.NewVector3(0, 0.03, 0))
	ball.Velocity = rl.NewVector3(1, 0, 0)
	w.AddBody(ball)

	for range 120 {
		w.Step(1.0 / 60)
	}
	assert.InDelta(t, 0, ball.Velocity.X, 1e-3)
	assert.Greater(t, ball.Position.X, float32(0))
}

func TestFilteredPairPassesThrough(t *testing.T) {
	r := collision.NewRegistry()
	w := NewWorld()
	w.AddBody(newGround(collision.NewFilter(r.Container).Narrow(r.Box)))
	ball := NewBody(NewSphereShape(0.03), 0.005, Material{}, Dynamic, rl.NewVector3(0, 0.03, 0))
	ball.Filter = collision.NewFilter(r.Sphere)
	w.AddBody(ball)

	for range 60 {
		w.Step(1.0 / 60)
	}
	assert.Less(t, ball.Position.Y, float32(-0.5))
}

func TestSpinDecaysOnContact(t *testing.T) {
	w := NewWorld()
	w.AddBody(newGround(collision.NewFilter(collision.Default)))
	box := NewBody(NewBoxShape(rl.NewVector3(0.12, 0.06, 0.06)), 0.005, Material{Friction: 0.8, Restitution: 0.8}, Dynamic, rl.NewVector3(0, 0.03, 0))
	box.ApplyAngularImpulse(rl.NewVector3(0, 0.0002, 0), box.Orientation)
	require.Greater(t, box.AngularVelocity.Y, float32(20))
	w.AddBody(box)

	w.Step(1.0 / 60)
	first := box.AngularVelocity.Y
	assert.Less(t, first, float32(0.0002/7.5e-6))
	for range 120 {
		w.Step(1.0 / 60)
	}
	assert.Less(t, box.AngularVelocity.Y, first)
}
