package scene

import (
	"image/color"

	"physics-sandbox/internal/collision"
	"physics-sandbox/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Kind says what an entity represents in the sandbox. The hit-test adapter uses it to decide
// which interaction a hit entity supports.
type Kind uint8

const (
	KindAnchor Kind = iota
	KindSurface
	KindSphere
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindAnchor:
		return "anchor"
	case KindSurface:
		return "surface"
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

// Material is the visual surface of a model.
type Material struct {
	Color     color.RGBA
	Roughness float32
	Metallic  bool
}

// Model is the visual part of an entity: a mesh shape and its material.
type Model struct {
	Mesh     physics.Shape
	Material Material
}

// CollisionMode selects whether a collision component produces contacts or only reports overlaps.
type CollisionMode uint8

const (
	CollisionDefault CollisionMode = iota
	CollisionTrigger
)

// CollisionComponent holds the shapes an entity is hit-tested and collided with, and the filter
// deciding which queries and bodies can see it.
type CollisionComponent struct {
	Shapes []physics.Shape
	Mode   CollisionMode
	Filter collision.Filter
}

// Entity is a node of the scene graph. Entities carrying a physics body take their local
// transform from the body, since the stepper owns position and orientation.
type Entity struct {
	ID          uuid.UUID
	Name        string
	Kind        Kind
	Position    rl.Vector3
	Orientation rl.Quaternion
	Model       *Model
	Collision   *CollisionComponent
	Body        *physics.Body

	parent   *Entity
	children []*Entity
}

// NewEntity returns an entity at the origin of its parent with identity orientation.
func NewEntity(name string, kind Kind) *Entity {
	return &Entity{
		ID:          uuid.New(),
		Name:        name,
		Kind:        kind,
		Orientation: rl.QuaternionIdentity(),
	}
}

// AddChild attaches child to e, detaching it from its previous parent first.
func (e *Entity) AddChild(child *Entity) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

func (e *Entity) removeChild(child *Entity) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Parent returns the entity e is attached to, or nil for a root.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Children returns a copy of e's children.
func (e *Entity) Children() []*Entity {
	out := make([]*Entity, len(e.children))
	copy(out, e.children)
	return out
}

// Walk visits e and its descendants depth first. Returning false from fn stops the walk.
func (e *Entity) Walk(fn func(*Entity) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// SetCollision replaces the collision component and keeps the body's filter in sync with it.
func (e *Entity) SetCollision(c *CollisionComponent) {
	e.Collision = c
	if e.Body != nil && c != nil {
		e.Body.Filter = c.Filter
	}
}

// LocalPosition returns the position relative to the parent.
func (e *Entity) LocalPosition() rl.Vector3 {
	if e.Body != nil {
		return e.Body.Position
	}
	return e.Position
}

// LocalOrientation returns the orientation relative to the parent.
func (e *Entity) LocalOrientation() rl.Quaternion {
	if e.Body != nil {
		return e.Body.Orientation
	}
	return e.Orientation
}

// WorldPosition composes the parent chain into a world position.
func (e *Entity) WorldPosition() rl.Vector3 {
	local := e.LocalPosition()
	if e.parent == nil {
		return local
	}
	rotated := rl.Vector3RotateByQuaternion(local, e.parent.WorldOrientation())
	return rl.Vector3Add(e.parent.WorldPosition(), rotated)
}

// WorldOrientation composes the parent chain into a world orientation.
func (e *Entity) WorldOrientation() rl.Quaternion {
	local := e.LocalOrientation()
	if e.parent == nil {
		return local
	}
	return rl.QuaternionMultiply(e.parent.WorldOrientation(), local)
}

// ParentFrame returns the parent as a reference frame, or nil for a root.
func (e *Entity) ParentFrame() physics.Frame {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// ApplyLinearImpulse applies impulse, expressed in relativeTo's frame (world when nil), to the
// entity's body. Entities without a body ignore it.
func (e *Entity) ApplyLinearImpulse(impulse rl.Vector3, relativeTo physics.Frame) {
	if e.Body == nil {
		return
	}
	e.Body.ApplyLinearImpulse(impulse, e.frameRotation(relativeTo))
}

// ApplyAngularImpulse applies an angular impulse expressed in relativeTo's frame (world when nil).
func (e *Entity) ApplyAngularImpulse(impulse rl.Vector3, relativeTo physics.Frame) {
	if e.Body == nil {
		return
	}
	e.Body.ApplyAngularImpulse(impulse, e.frameRotation(relativeTo))
}

// frameRotation maps vectors from relativeTo's frame into the parent space the body lives in.
func (e *Entity) frameRotation(relativeTo physics.Frame) rl.Quaternion {
	parent := rl.QuaternionIdentity()
	if e.parent != nil {
		parent = e.parent.WorldOrientation()
	}
	frame := rl.QuaternionIdentity()
	if relativeTo != nil {
		frame = relativeTo.WorldOrientation()
	}
	return rl.QuaternionMultiply(rl.QuaternionInvert(parent), frame)
}
