package scene

import (
	"errors"
	"fmt"

	"physics-sandbox/internal/collision"
	"physics-sandbox/internal/config"
	"physics-sandbox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrSetupFailure means the container could not be built. The sandbox cannot run without one.
var ErrSetupFailure = errors.New("container setup failed")

var (
	surfaceColor    = rl.NewColor(200, 200, 210, 90)
	surfaceMaterial = physics.Material{Friction: 0.5, Restitution: 0.5}
)

// Container is the static scene the bodies live in: an anchor owning four walls and a ground.
// The ground's top face sits at Y=0 in anchor space and spans [-Size/2, Size/2] on X and Z.
type Container struct {
	Anchor    *Entity
	Size      float32
	WallBack  *Entity
	WallRight *Entity
	WallFront *Entity
	WallLeft  *Entity
	Ground    *Entity
}

// NewContainer builds the container described by cfg. Every surface is a static box with its
// own collision shape, tagged with collision.Default until an assembler claims it.
func NewContainer(cfg config.Container) (*Container, error) {
	s, h, t := cfg.Size, cfg.WallHeight, cfg.WallThickness
	if s <= 0 || h <= 0 || t <= 0 {
		return nil, fmt.Errorf("%w: size=%v wall_height=%v wall_thickness=%v", ErrSetupFailure, s, h, t)
	}

	anchor := NewEntity("anchor", KindAnchor)
	edge := s/2 + t/2
	c := &Container{
		Anchor:    anchor,
		Size:      s,
		WallBack:  newSurface("wallBack", rl.NewVector3(s+2*t, h, t), rl.NewVector3(0, h/2, -edge)),
		WallRight: newSurface("wallRight", rl.NewVector3(t, h, s), rl.NewVector3(edge, h/2, 0)),
		WallFront: newSurface("wallFront", rl.NewVector3(s+2*t, h, t), rl.NewVector3(0, h/2, edge)),
		WallLeft:  newSurface("wallLeft", rl.NewVector3(t, h, s), rl.NewVector3(-edge, h/2, 0)),
		Ground:    newSurface("ground", rl.NewVector3(s, t, s), rl.NewVector3(0, -t/2, 0)),
	}
	for _, surface := range c.Surfaces() {
		anchor.AddChild(surface)
	}
	return c, nil
}

// Surfaces returns the five named surfaces in back, right, front, left, ground order.
// Entries may be nil if a surface was removed from the container.
func (c *Container) Surfaces() []*Entity {
	return []*Entity{c.WallBack, c.WallRight, c.WallFront, c.WallLeft, c.Ground}
}

func newSurface(name string, size, position rl.Vector3) *Entity {
	shape := physics.NewBoxShape(size)
	e := NewEntity(name, KindSurface)
	e.Model = &Model{Mesh: shape, Material: Material{Color: surfaceColor, Roughness: 1}}
	e.Body = physics.NewBody(shape, 0, surfaceMaterial, physics.Static, position)
	e.SetCollision(&CollisionComponent{
		Shapes: []physics.Shape{shape},
		Mode:   CollisionDefault,
		Filter: collision.NewFilter(collision.Default),
	})
	return e
}
