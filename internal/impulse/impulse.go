package impulse

import (
	"physics-sandbox/internal/config"
	"physics-sandbox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is anything that can receive an impulse expressed in a reference frame.
// *scene.Entity satisfies it.
type Body interface {
	physics.Frame
	ParentFrame() physics.Frame
	ApplyLinearImpulse(impulse rl.Vector3, relativeTo physics.Frame)
	ApplyAngularImpulse(impulse rl.Vector3, relativeTo physics.Frame)
}

// Applier issues the fixed tap impulses.
type Applier struct {
	Linear  rl.Vector3
	Angular rl.Vector3
}

// New returns an applier using the configured vectors.
func New(cfg config.Impulse) *Applier {
	return &Applier{
		Linear:  rl.NewVector3(cfg.Linear[0], cfg.Linear[1], cfg.Linear[2]),
		Angular: rl.NewVector3(cfg.Angular[0], cfg.Angular[1], cfg.Angular[2]),
	}
}

// Push applies the linear impulse in the frame of b's parent, so the direction is the same for
// every sphere regardless of how it has rolled.
func (a *Applier) Push(b Body) {
	b.ApplyLinearImpulse(a.Linear, b.ParentFrame())
}

// Spin applies the angular impulse in b's own frame, turning it about its local axis.
func (a *Applier) Spin(b Body) {
	b.ApplyAngularImpulse(a.Angular, b)
}
