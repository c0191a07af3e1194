package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default path to the sandbox config file, relative to the process working directory.
const ConfigPath = "config/sandbox.yaml"

// ErrInvalid is returned by Validate when a value cannot produce a usable scene.
var ErrInvalid = errors.New("invalid config")

// Config holds everything the sandbox needs at setup: container geometry, body properties,
// tap impulses, physics stepping, window and logging.
type Config struct {
	Container Container `yaml:"container"`
	Bodies    Bodies    `yaml:"bodies"`
	Impulse   Impulse   `yaml:"impulse"`
	Physics   Physics   `yaml:"physics"`
	Window    Window    `yaml:"window"`
	Log       Log       `yaml:"log"`
	// Seed drives body placement. 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// Container is the square floor and its four walls.
type Container struct {
	Size          float32 `yaml:"size"`
	WallHeight    float32 `yaml:"wall_height"`
	WallThickness float32 `yaml:"wall_thickness"`
}

// Bodies configures the body factory.
type Bodies struct {
	Palette      []string   `yaml:"palette"`
	SphereCount  int        `yaml:"sphere_count"`
	SphereRadius float32    `yaml:"sphere_radius"`
	SphereMass   float32    `yaml:"sphere_mass"`
	BoxSize      [3]float32 `yaml:"box_size"`
	BoxColor     string     `yaml:"box_color"`
	BoxMass      float32    `yaml:"box_mass"`
	Friction     float32    `yaml:"friction"`
	Restitution  float32    `yaml:"restitution"`
}

// Impulse holds the fixed vectors applied on tap.
type Impulse struct {
	Linear  [3]float32 `yaml:"linear"`
	Angular [3]float32 `yaml:"angular"`
}

// Physics configures the stepper.
type Physics struct {
	Gravity  [3]float32 `yaml:"gravity"`
	StepRate int        `yaml:"step_rate"`
}

// Window configures the render adapter.
type Window struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

// Log configures the zap logger.
type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path,omitempty"`
}

// Default returns the demo setup: a 0.5 container, five 0.03 spheres and one box.
func Default() Config {
	return Config{
		Container: Container{
			Size:          0.5,
			WallHeight:    0.1,
			WallThickness: 0.01,
		},
		Bodies: Bodies{
			Palette:      []string{"green", "red", "blue", "magenta", "yellow"},
			SphereCount:  5,
			SphereRadius: 0.03,
			SphereMass:   0.005,
			BoxSize:      [3]float32{0.12, 0.06, 0.06},
			BoxColor:     "green",
			BoxMass:      0.005,
			Friction:     0.8,
			Restitution:  0.8,
		},
		Impulse: Impulse{
			Linear:  [3]float32{0, 0, 0.002},
			Angular: [3]float32{0, 0.0002, 0},
		},
		Physics: Physics{
			Gravity:  [3]float32{0, -9.8, 0},
			StepRate: 120,
		},
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "physics sandbox",
			TargetFPS: 60,
		},
		Log: Log{
			Level: "info",
			Path:  "logs/sandbox.log",
		},
	}
}

// Load reads the config at path. A missing file yields Default() without error. Values absent
// from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configs that cannot build a scene.
func (c Config) Validate() error {
	ct := c.Container
	if ct.Size <= 0 || ct.WallHeight <= 0 || ct.WallThickness <= 0 {
		return fmt.Errorf("%w: container dimensions must be positive", ErrInvalid)
	}
	b := c.Bodies
	if len(b.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalid)
	}
	if b.SphereCount < 0 || b.SphereCount > len(b.Palette) {
		return fmt.Errorf("%w: sphere_count %d outside [0, %d]", ErrInvalid, b.SphereCount, len(b.Palette))
	}
	if b.SphereRadius <= 0 || b.SphereRadius >= ct.Size {
		return fmt.Errorf("%w: sphere_radius %v must be in (0, %v)", ErrInvalid, b.SphereRadius, ct.Size)
	}
	for i, s := range b.BoxSize {
		if s <= 0 || s >= ct.Size {
			return fmt.Errorf("%w: box_size[%d] %v must be in (0, %v)", ErrInvalid, i, s, ct.Size)
		}
	}
	if b.SphereMass <= 0 || b.BoxMass <= 0 {
		return fmt.Errorf("%w: masses must be positive", ErrInvalid)
	}
	if b.Friction < 0 || b.Restitution < 0 || b.Restitution > 1 {
		return fmt.Errorf("%w: friction must be >= 0 and restitution in [0, 1]", ErrInvalid)
	}
	for _, name := range append(append([]string{}, b.Palette...), b.BoxColor) {
		if _, err := ParseColor(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if c.Physics.StepRate <= 0 {
		return fmt.Errorf("%w: step_rate must be positive", ErrInvalid)
	}
	return nil
}
