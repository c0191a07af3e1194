package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"physics-sandbox/internal/config"
	"physics-sandbox/internal/debug"
	"physics-sandbox/internal/graphics"
	"physics-sandbox/internal/hittest"
	"physics-sandbox/internal/interaction"
	"physics-sandbox/internal/logger"
	"physics-sandbox/internal/sandbox"
	"physics-sandbox/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// maxSubsteps caps catch-up work after a long frame so a stall does not spiral.
const maxSubsteps = 8

func main() {
	configPath := flag.String("config", config.ConfigPath, "path to the sandbox YAML config")
	seed := flag.Int64("seed", 0, "placement seed (overrides config; 0 keeps the config value)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	scn := scene.New()
	sb, err := sandbox.Setup(cfg, rand.New(rand.NewSource(cfg.Seed)), func(p hittest.Picker) interaction.HitTester {
		return hittest.Caster{Picker: p, Camera: &scn.Camera}
	}, log)
	if err != nil {
		log.Fatal("setup failed", zap.Error(err), zap.Int64("seed", cfg.Seed))
	}

	hud := debug.New()
	taps := interaction.NewTapRecognizer()
	step := 1 / float32(cfg.Physics.StepRate)
	var acc float32
	update := func(dt float32) {
		pressed := rl.IsMouseButtonDown(rl.MouseButtonLeft)
		if ev, ok := taps.Sample(pressed, rl.GetMousePosition()); ok {
			out := sb.HandleTap(ev)
			hud.RecordTap(out)
			if out != interaction.Ignored {
				log.Info("tap", zap.Stringer("outcome", out))
			}
		}
		acc += dt
		for n := 0; acc >= step && n < maxSubsteps; n++ {
			sb.Step(step)
			acc -= step
		}
		if acc > step {
			acc = 0
		}
	}
	draw := func() {
		scn.Draw(sb.Container.Anchor)
		rl.DrawText("tap a sphere to push it, tap the box to spin it", 10, 10, 20, rl.DarkGray)
		hud.Draw()
	}
	graphics.Run(cfg.Window, update, draw)
}
