package scene

// Group is a plain container used to bundle related shapes.
type Group struct {
	Base
}

// NewGroup returns an unparented empty group.
func NewGroup(name string) *Group {
	g := &Group{}
	g.init(g, name)
	return g
}

// Clone returns a deep copy of the group and its descendants.
func (g *Group) Clone() Instance {
	c := NewGroup(g.name)
	g.cloneMetaInto(c)
	return c
}
