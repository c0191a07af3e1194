package assembler

import (
	"fmt"

	"physics-sandbox/internal/collision"
	"physics-sandbox/internal/scene"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// Report summarizes one assembly pass.
type Report struct {
	Tagged   int
	Skipped  int
	Attached int
}

// Assembler composes the externally supplied container with factory-built bodies. It runs once
// at setup.
type Assembler struct {
	groups collision.Registry
	log    *zap.Logger
}

// New returns an assembler tagging container surfaces with groups.Container.
func New(groups collision.Registry, log *zap.Logger) *Assembler {
	return &Assembler{groups: groups, log: log}
}

// Assemble claims the container's surfaces for the container group and attaches bodies to the
// container's anchor. A surface that carries no collision component is left untouched.
func (a *Assembler) Assemble(c *scene.Container, bodies ...*scene.Entity) (Report, error) {
	var r Report
	for _, surface := range c.Surfaces() {
		if surface == nil || surface.Collision == nil {
			r.Skipped++
			continue
		}
		retagged, err := a.retag(surface.Collision)
		if err != nil {
			return r, fmt.Errorf("retag %s: %w", surface.Name, err)
		}
		surface.SetCollision(retagged)
		r.Tagged++
	}

	for _, b := range bodies {
		c.Anchor.AddChild(b)
		r.Attached++
	}

	a.log.Debug("scene assembled",
		zap.Int("tagged", r.Tagged),
		zap.Int("skipped", r.Skipped),
		zap.Int("attached", r.Attached))
	return r, nil
}

// retag returns a copy of cc with the container filter. Shapes and mode are preserved.
func (a *Assembler) retag(cc *scene.CollisionComponent) (*scene.CollisionComponent, error) {
	next := &scene.CollisionComponent{}
	if err := copier.CopyWithOption(next, cc, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	next.Filter = collision.NewFilter(a.groups.Container)
	return next, nil
}
