package sandbox

import (
	"fmt"
	"math/rand"

	"physics-sandbox/internal/assembler"
	"physics-sandbox/internal/collision"
	"physics-sandbox/internal/config"
	"physics-sandbox/internal/factory"
	"physics-sandbox/internal/hittest"
	"physics-sandbox/internal/impulse"
	"physics-sandbox/internal/interaction"
	"physics-sandbox/internal/physics"
	"physics-sandbox/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Sandbox is a fully assembled scene: the container, its bodies, the physics world stepping
// them, and the resolver turning taps into impulses.
type Sandbox struct {
	Container *scene.Container
	Spheres   []*scene.Entity
	Box       *scene.Entity
	World     *physics.World
	Groups    collision.Registry
	Picker    hittest.Picker

	resolver *interaction.Resolver
	log      *zap.Logger
}

// Setup builds the sandbox described by cfg. hits wraps the sandbox's picker into the hit tester
// the resolver queries, typically a hittest.Caster bound to the render camera. Every error
// wraps scene.ErrSetupFailure.
func Setup(cfg config.Config, rng *rand.Rand, hits func(hittest.Picker) interaction.HitTester, log *zap.Logger) (*Sandbox, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", scene.ErrSetupFailure, err)
	}
	container, err := scene.NewContainer(cfg.Container)
	if err != nil {
		return nil, err
	}

	groups := collision.NewRegistry()
	f := factory.New(cfg.Bodies, cfg.Container.Size, groups, rng, log)
	spheres := f.BuildSpheres(cfg.Bodies.SphereCount, cfg.Bodies.SphereRadius)
	boxColor, err := config.ParseColor(cfg.Bodies.BoxColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", scene.ErrSetupFailure, err)
	}
	bs := cfg.Bodies.BoxSize
	box := f.BuildBox(rl.NewVector3(bs[0], bs[1], bs[2]), boxColor)

	bodies := append(append([]*scene.Entity{}, spheres...), box)
	report, err := assembler.New(groups, log).Assemble(container, bodies...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", scene.ErrSetupFailure, err)
	}

	world := physics.NewWorld()
	g := cfg.Physics.Gravity
	world.SetGravity(rl.NewVector3(g[0], g[1], g[2]))
	container.Anchor.Walk(func(e *scene.Entity) bool {
		if e.Body != nil {
			world.AddBody(e.Body)
		}
		return true
	})

	picker := hittest.Picker{Root: container.Anchor}
	s := &Sandbox{
		Container: container,
		Spheres:   spheres,
		Box:       box,
		World:     world,
		Groups:    groups,
		Picker:    picker,
		log:       log,
	}
	s.resolver = interaction.NewResolver(hits(picker), impulse.New(cfg.Impulse), groups, log)

	log.Info("sandbox ready",
		zap.Int("spheres", len(spheres)),
		zap.Int("surfaces_tagged", report.Tagged),
		zap.Int("surfaces_skipped", report.Skipped),
		zap.Int("bodies", len(world.Bodies)))
	return s, nil
}

// Bodies returns every dynamic entity: spheres first, then the box.
func (s *Sandbox) Bodies() []*scene.Entity {
	return append(append([]*scene.Entity{}, s.Spheres...), s.Box)
}

// Step advances the physics world by dt seconds.
func (s *Sandbox) Step(dt float32) {
	s.World.Step(dt)
}

// HandleTap forwards a tap to the resolver.
func (s *Sandbox) HandleTap(ev interaction.TapEvent) interaction.Outcome {
	return s.resolver.HandleTap(ev)
}
