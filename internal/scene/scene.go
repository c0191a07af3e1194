package scene

import (
	"physics-sandbox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 1.0
	gridMinorStep  = 0.05
	gridMajorEvery = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// Scene holds a 3D camera and draws an entity tree. It is the render adapter: entities carry
// plain data and nothing in the simulation depends on this type.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
}

// New returns a scene with a perspective camera looking down at the container from the front.
// Camera: position (0, 0.45, 0.55), target (0, 0, 0), up (0, 1, 0), fovy 45°.
func New() *Scene {
	s := &Scene{}
	s.Camera.Position = rl.NewVector3(0, 0.45, 0.55)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	return s
}

// SetGridVisible sets whether the floor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Draw renders root and its descendants. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw(root *Entity) {
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	root.Walk(func(e *Entity) bool {
		if e.Model != nil {
			drawModel(e.WorldPosition(), e.WorldOrientation(), e.Model)
		}
		return true
	})
	rl.EndMode3D()
}

// drawModel draws a mesh at position with orientation applied through the rlgl matrix stack.
func drawModel(position rl.Vector3, orientation rl.Quaternion, m *Model) {
	var axis rl.Vector3
	var angle float32
	rl.QuaternionToAxisAngle(orientation, &axis, &angle)

	rl.PushMatrix()
	rl.Translatef(position.X, position.Y, position.Z)
	rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	c := m.Material.Color
	switch m.Mesh.Kind {
	case physics.ShapeSphere:
		rl.DrawSphere(rl.Vector3Zero(), m.Mesh.Radius, c)
	case physics.ShapeBox:
		size := m.Mesh.Size
		rl.DrawCube(rl.Vector3Zero(), size.X, size.Y, size.Z, c)
		rl.DrawCubeWires(rl.Vector3Zero(), size.X, size.Y, size.Z, rl.Fade(rl.Black, 0.3))
	}
	rl.PopMatrix()
}

// drawGrid draws a grid on the XZ plane (Y=0) with a major line every gridMajorEvery steps.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	steps := int(gridExtent / gridMinorStep)
	for i := -steps; i <= steps; i++ {
		c := major
		if i%gridMajorEvery != 0 {
			c = minor
		}
		v := float32(i) * gridMinorStep
		start.X, start.Y, start.Z = v, 0, -gridExtent
		end.X, end.Y, end.Z = v, 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, v
		end.X, end.Y, end.Z = gridExtent, 0, v
		rl.DrawLine3D(start, end, c)
	}
}
