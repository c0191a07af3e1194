package factory

import (
	"fmt"
	"image/color"
	"math/rand"

	"physics-sandbox/internal/collision"
	"physics-sandbox/internal/config"
	"physics-sandbox/internal/physics"
	"physics-sandbox/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Factory builds the sandbox's dynamic bodies at random positions inside the container.
// Bodies are not separated from each other; the first simulation step resolves any overlap.
type Factory struct {
	palette       []color.RGBA
	sphereMass    float32
	boxMass       float32
	material      physics.Material
	containerSize float32
	groups        collision.Registry
	rng           *rand.Rand
	log           *zap.Logger
}

// New returns a factory placing bodies inside a container of the given size. cfg must have
// passed config.Validate.
func New(cfg config.Bodies, containerSize float32, groups collision.Registry, rng *rand.Rand, log *zap.Logger) *Factory {
	return &Factory{
		palette:       cfg.Colors(),
		sphereMass:    cfg.SphereMass,
		boxMass:       cfg.BoxMass,
		material:      physics.Material{Friction: cfg.Friction, Restitution: cfg.Restitution},
		containerSize: containerSize,
		groups:        groups,
		rng:           rng,
		log:           log,
	}
}

// BuildSpheres returns count spheres of the given radius. Sphere i takes palette color i, so
// count must not exceed the palette size.
func (f *Factory) BuildSpheres(count int, radius float32) []*scene.Entity {
	spheres := make([]*scene.Entity, 0, count)
	for i := 0; i < count; i++ {
		spheres = append(spheres, f.buildSphere(i, radius, f.palette[i]))
	}
	return spheres
}

func (f *Factory) buildSphere(index int, radius float32, c color.RGBA) *scene.Entity {
	minMax := f.containerSize/2 - radius/2
	position := rl.NewVector3(f.uniform(minMax), radius/2, f.uniform(minMax))
	shape := physics.NewSphereShape(radius)

	e := scene.NewEntity(fmt.Sprintf("sphere%d", index), scene.KindSphere)
	e.Model = &scene.Model{Mesh: shape, Material: scene.Material{Color: c, Roughness: 0}}
	e.Body = physics.NewBody(shape, f.sphereMass, f.material, physics.Dynamic, position)
	e.SetCollision(&scene.CollisionComponent{
		Shapes: []physics.Shape{shape},
		Mode:   scene.CollisionDefault,
		Filter: collision.NewFilter(f.groups.Sphere),
	})
	f.log.Debug("sphere built",
		zap.String("name", e.Name),
		zap.Float32("x", position.X),
		zap.Float32("y", position.Y),
		zap.Float32("z", position.Z))
	return e
}

// BuildBox returns one box with the given full extents and color.
func (f *Factory) BuildBox(size rl.Vector3, c color.RGBA) *scene.Entity {
	minX := f.containerSize/2 - size.X/2
	minZ := f.containerSize/2 - size.Z/2
	position := rl.NewVector3(f.uniform(minX), size.Y/2, f.uniform(minZ))
	shape := physics.NewBoxShape(size)

	e := scene.NewEntity("box", scene.KindBox)
	e.Model = &scene.Model{Mesh: shape, Material: scene.Material{Color: c, Roughness: 0}}
	e.Body = physics.NewBody(shape, f.boxMass, f.material, physics.Dynamic, position)
	e.SetCollision(&scene.CollisionComponent{
		Shapes: []physics.Shape{shape},
		Mode:   scene.CollisionDefault,
		Filter: collision.NewFilter(f.groups.Box),
	})
	f.log.Debug("box built",
		zap.Float32("x", position.X),
		zap.Float32("y", position.Y),
		zap.Float32("z", position.Z))
	return e
}

// uniform draws from [-bound, bound].
func (f *Factory) uniform(bound float32) float32 {
	return (f.rng.Float32()*2 - 1) * bound
}
