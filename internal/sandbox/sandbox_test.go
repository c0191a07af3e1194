package sandbox

import (
	"math/rand"
	"testing"

	"physics-sandbox/internal/collision"
	"physics-sandbox/internal/config"
	"physics-sandbox/internal/hittest"
	"physics-sandbox/internal/interaction"
	"physics-sandbox/internal/scene"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// rayHits maps every screen point to one fixed ray, standing in for the camera.
type rayHits struct {
	picker hittest.Picker
	ray    rl.Ray
}

func (h *rayHits) HitTest(_ rl.Vector2, mask collision.Group) interaction.Target {
	return h.picker.PickRay(h.ray, mask)
}

func newSandbox(t *testing.T, cfg config.Config) (*Sandbox, *rayHits) {
	t.Helper()
	hits := &rayHits{}
	s, err := Setup(cfg, rand.New(rand.NewSource(5)), func(p hittest.Picker) interaction.HitTester {
		hits.picker = p
		return hits
	}, zap.NewNop())
	require.NoError(t, err)
	return s, hits
}

func above(e *scene.Entity) rl.Ray {
	p := e.WorldPosition()
	return rl.Ray{Position: rl.NewVector3(p.X, 1, p.Z), Direction: rl.NewVector3(0, -1, 0)}
}

func TestSetupBuildsScene(t *testing.T) {
	s, _ := newSandbox(t, config.Default())

	assert.Len(t, s.Spheres, 5)
	require.NotNil(t, s.Box)
	assert.Len(t, s.Bodies(), 6)
	assert.Len(t, s.World.Bodies, 11)
	assert.Len(t, s.Container.Anchor.Children(), 11)
	for _, surface := range s.Container.Surfaces() {
		assert.Equal(t, s.Groups.Container, surface.Collision.Filter.Group)
	}
	for _, b := range s.Bodies() {
		p := b.Body.Position
		assert.LessOrEqual(t, math32.Abs(p.X), float32(0.25))
		assert.LessOrEqual(t, math32.Abs(p.Z), float32(0.25))
	}
}

func TestSetupFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Container.WallHeight = -1
	_, err := Setup(cfg, rand.New(rand.NewSource(1)), func(p hittest.Picker) interaction.HitTester { return nil }, zap.NewNop())
	assert.ErrorIs(t, err, scene.ErrSetupFailure)
}

func TestTapOnSpherePushesIt(t *testing.T) {
	cfg := config.Default()
	cfg.Bodies.SphereCount = 1
	s, hits := newSandbox(t, cfg)
	// Move the box out of the way so the ray only crosses the sphere.
	s.Box.Body.Position = rl.NewVector3(10, 0.03, 10)
	hits.ray = above(s.Spheres[0])

	out := s.HandleTap(interaction.TapEvent{State: interaction.StateEnded})
	assert.Equal(t, interaction.Pushed, out)
	assert.InDelta(t, 0.4, s.Spheres[0].Body.Velocity.Z, 1e-4)
	assert.Zero(t, s.Box.Body.AngularVelocity.Y)
}

func TestTapOnBoxSpinsIt(t *testing.T) {
	cfg := config.Default()
	cfg.Bodies.SphereCount = 0
	s, hits := newSandbox(t, cfg)
	hits.ray = above(s.Box)

	out := s.HandleTap(interaction.TapEvent{State: interaction.StateEnded})
	assert.Equal(t, interaction.Spun, out)
	assert.InDelta(t, 0.0002/7.5e-6, s.Box.Body.AngularVelocity.Y, 1e-2)
}

func TestTapOnEmptySpaceDoesNothing(t *testing.T) {
	s, hits := newSandbox(t, config.Default())
	hits.ray = rl.Ray{Position: rl.NewVector3(5, 1, 5), Direction: rl.NewVector3(0, -1, 0)}

	assert.Equal(t, interaction.Missed, s.HandleTap(interaction.TapEvent{State: interaction.StateEnded}))
	for _, b := range s.Bodies() {
		assert.Equal(t, rl.Vector3Zero(), b.Body.Velocity)
		assert.Equal(t, rl.Vector3Zero(), b.Body.AngularVelocity)
	}
}

func TestWallsContainPushedSphere(t *testing.T) {
	cfg := config.Default()
	cfg.Bodies.SphereCount = 1
	s, _ := newSandbox(t, cfg)
	s.Box.Body.Position = rl.NewVector3(10, 0.03, 10)
	ball := s.Spheres[0]
	ball.ApplyLinearImpulse(rl.NewVector3(0.002, 0, 0.002), ball.ParentFrame())

	for range 600 {
		s.Step(1.0 / 120)
	}
	p := ball.Body.Position
	assert.Less(t, math32.Abs(p.X), float32(0.25))
	assert.Less(t, math32.Abs(p.Z), float32(0.25))
	assert.InDelta(t, 0.03, p.Y, 0.01)
}
