package collision

// Group is a collision category. Each category owns a single bit so groups can be combined
// into masks and tested with a bitwise AND.
type Group uint32

// All matches every group. Used as the default mask so an entity can be hit by any query.
const All Group = ^Group(0)

// Default tags authored content that has not been claimed by one of the registry's groups.
const Default Group = 1 << 31

// Overlaps reports whether g and other share at least one bit.
func (g Group) Overlaps(other Group) bool {
	return g&other != 0
}

// Registry holds the three categories the sandbox filters by. Values are fixed bit positions,
// so every registry is identical and construction cannot fail.
type Registry struct {
	Container Group
	Sphere    Group
	Box       Group
}

// NewRegistry returns the container (bit 0), sphere (bit 1) and box (bit 2) groups.
func NewRegistry() Registry {
	return Registry{
		Container: 1 << 0,
		Sphere:    1 << 1,
		Box:       1 << 2,
	}
}

// Groups returns the registry's groups in container, sphere, box order.
func (r Registry) Groups() []Group {
	return []Group{r.Container, r.Sphere, r.Box}
}

// Filter pairs the group an entity belongs to with the mask of groups it interacts with.
type Filter struct {
	Group Group
	Mask  Group
}

// NewFilter returns a filter for group that matches everything.
func NewFilter(group Group) Filter {
	return Filter{Group: group, Mask: All}
}

// Narrow returns a copy of f whose mask only allows the given groups.
func (f Filter) Narrow(mask Group) Filter {
	f.Mask = mask
	return f
}

// Accepts reports whether f's mask lets it interact with group.
func (f Filter) Accepts(group Group) bool {
	return f.Mask.Overlaps(group)
}

// CanCollide reports whether two filters allow contact. Both sides must accept each other.
func CanCollide(a, b Filter) bool {
	return a.Accepts(b.Group) && b.Accepts(a.Group)
}
