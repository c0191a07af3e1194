package hittest

import (
	"physics-sandbox/internal/collision"
	"physics-sandbox/internal/interaction"
	"physics-sandbox/internal/physics"
	"physics-sandbox/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Picker intersects rays with the collision shapes of an entity tree.
type Picker struct {
	Root *scene.Entity
}

// PickRay returns the nearest entity hit by ray among those whose collision group is in mask.
// The hit is tagged here: spheres and boxes carrying a body are interactive, everything else
// resolves to interaction.None.
func (p Picker) PickRay(ray rl.Ray, mask collision.Group) interaction.Target {
	var nearest *scene.Entity
	var best float32
	p.Root.Walk(func(e *scene.Entity) bool {
		c := e.Collision
		if c == nil || !c.Filter.Group.Overlaps(mask) {
			return true
		}
		center := e.WorldPosition()
		orientation := e.WorldOrientation()
		for _, shape := range c.Shapes {
			hit := intersect(ray, shape, center, orientation)
			if !hit.Hit {
				continue
			}
			if nearest == nil || hit.Distance < best {
				nearest, best = e, hit.Distance
			}
		}
		return true
	})
	return tag(nearest)
}

func intersect(ray rl.Ray, shape physics.Shape, center rl.Vector3, orientation rl.Quaternion) rl.RayCollision {
	switch shape.Kind {
	case physics.ShapeSphere:
		return rl.GetRayCollisionSphere(ray, center, shape.Radius)
	case physics.ShapeBox:
		// Move the ray into box space so the box is axis aligned at the origin. Rotation keeps
		// distances, so the hit distance is valid in world space.
		inv := rl.QuaternionInvert(orientation)
		local := rl.Ray{
			Position:  rl.Vector3RotateByQuaternion(rl.Vector3Subtract(ray.Position, center), inv),
			Direction: rl.Vector3RotateByQuaternion(ray.Direction, inv),
		}
		half := shape.HalfExtents()
		return rl.GetRayCollisionBox(local, rl.NewBoundingBox(rl.Vector3Negate(half), half))
	default:
		return rl.RayCollision{}
	}
}

func tag(e *scene.Entity) interaction.Target {
	if e == nil || e.Body == nil {
		return interaction.None
	}
	switch e.Kind {
	case scene.KindSphere:
		return interaction.Target{Kind: interaction.TargetSphere, Body: e}
	case scene.KindBox:
		return interaction.Target{Kind: interaction.TargetBox, Body: e}
	default:
		return interaction.None
	}
}

// Caster turns screen points into camera rays and picks with them. It implements
// interaction.HitTester and needs an open window for the screen size.
type Caster struct {
	Picker Picker
	Camera *rl.Camera3D
}

// HitTest casts a ray through point from the camera.
func (c Caster) HitTest(point rl.Vector2, mask collision.Group) interaction.Target {
	ray := rl.GetScreenToWorldRay(point, *c.Camera)
	return c.Picker.PickRay(ray, mask)
}
