package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShapeKind selects the geometry of a collision shape.
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Shape is a collision shape centered on its body. Radius is used by spheres, Size (full
// extents on X, Y, Z) by boxes.
type Shape struct {
	Kind   ShapeKind
	Radius float32
	Size   rl.Vector3
}

// NewSphereShape returns a sphere shape of the given radius.
func NewSphereShape(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// NewBoxShape returns a box shape with the given full extents.
func NewBoxShape(size rl.Vector3) Shape {
	return Shape{Kind: ShapeBox, Size: size}
}

// HalfExtents returns the half size of the shape in its own space.
func (s Shape) HalfExtents() rl.Vector3 {
	if s.Kind == ShapeSphere {
		return rl.NewVector3(s.Radius, s.Radius, s.Radius)
	}
	return rl.Vector3Scale(s.Size, 0.5)
}

// Bounds returns the axis-aligned box enclosing the shape placed at center with the given
// orientation.
func (s Shape) Bounds(center rl.Vector3, orientation rl.Quaternion) rl.BoundingBox {
	half := s.HalfExtents()
	if s.Kind == ShapeBox {
		half = rotatedHalfExtents(half, orientation)
	}
	return rl.NewBoundingBox(rl.Vector3Subtract(center, half), rl.Vector3Add(center, half))
}

// rotatedHalfExtents projects each rotated local half axis onto the world axes.
func rotatedHalfExtents(half rl.Vector3, q rl.Quaternion) rl.Vector3 {
	ax := rl.Vector3RotateByQuaternion(rl.NewVector3(half.X, 0, 0), q)
	ay := rl.Vector3RotateByQuaternion(rl.NewVector3(0, half.Y, 0), q)
	az := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, half.Z), q)
	return rl.NewVector3(
		abs32(ax.X)+abs32(ay.X)+abs32(az.X),
		abs32(ax.Y)+abs32(ay.Y)+abs32(az.Y),
		abs32(ax.Z)+abs32(ay.Z)+abs32(az.Z),
	)
}

// MassProperties holds the mass and the diagonal inertia tensor of a body. Inertia assumes
// uniform density across the shape.
type MassProperties struct {
	Mass    float32
	Inertia rl.Vector3
}

// NewMassProperties derives the inertia of shape for the given mass.
func NewMassProperties(shape Shape, mass float32) MassProperties {
	var inertia rl.Vector3
	switch shape.Kind {
	case ShapeSphere:
		i := 0.4 * mass * shape.Radius * shape.Radius
		inertia = rl.NewVector3(i, i, i)
	case ShapeBox:
		x2 := shape.Size.X * shape.Size.X
		y2 := shape.Size.Y * shape.Size.Y
		z2 := shape.Size.Z * shape.Size.Z
		k := mass / 12
		inertia = rl.NewVector3(k*(y2+z2), k*(x2+z2), k*(x2+y2))
	}
	return MassProperties{Mass: mass, Inertia: inertia}
}

// Material describes surface response. Both coefficients are expected in [0, 1].
type Material struct {
	Friction    float32
	Restitution float32
}
