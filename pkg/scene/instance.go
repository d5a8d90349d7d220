// Package scene provides a small retained scene graph: a hierarchy of named
// instances carrying transform, presentation and annotation state. It is the
// construction target for the draw package and the input to the viewer.
package scene

// Instance is a node in the scene graph. All concrete node types embed Base;
// the unexported methods keep the hierarchy closed to this package.
type Instance interface {
	Name() string
	SetName(name string)

	Parent() Instance
	SetParent(parent Instance)
	Children() []Instance
	FindFirstChild(name string) Instance

	// Destroy detaches the instance from its parent and destroys all
	// descendants. A destroyed instance must not be reused.
	Destroy()

	// Clone returns a deep copy of the instance and its descendants,
	// including attributes and tags. The copy has no parent.
	Clone() Instance

	SetAttribute(key string, value any)
	Attribute(key string) (any, bool)
	ClearAttributes()

	AddTag(tag string)
	HasTag(tag string) bool
	Tags() []string
	ClearTags()

	addChild(child Instance)
	removeChild(child Instance)
}

// Base holds hierarchy, attribute and tag state shared by every node type.
// Concrete types embed Base and register themselves via init so reparenting
// links the outer value, not the embedded one.
type Base struct {
	name       string
	parent     Instance
	children   []Instance
	attributes map[string]any
	tags       []string
	this       Instance
}

func (b *Base) init(this Instance, name string) {
	b.this = this
	b.name = name
}

// Name returns the instance name.
func (b *Base) Name() string { return b.name }

// SetName sets the instance name.
func (b *Base) SetName(name string) { b.name = name }

// Parent returns the current parent, or nil for a root.
func (b *Base) Parent() Instance { return b.parent }

// SetParent moves the instance under the given parent. A nil parent detaches
// the instance from the graph without destroying it.
func (b *Base) SetParent(parent Instance) {
	if b.parent == parent {
		return
	}
	if b.parent != nil {
		b.parent.removeChild(b.this)
	}
	b.parent = parent
	if parent != nil {
		parent.addChild(b.this)
	}
}

// Children returns a copy of the child list.
func (b *Base) Children() []Instance {
	out := make([]Instance, len(b.children))
	copy(out, b.children)
	return out
}

// FindFirstChild returns the first child with the given name, or nil.
func (b *Base) FindFirstChild(name string) Instance {
	for _, c := range b.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Destroy detaches the instance and destroys all descendants.
func (b *Base) Destroy() {
	b.SetParent(nil)
	children := b.children
	b.children = nil
	for _, c := range children {
		c.Destroy()
	}
	b.attributes = nil
	b.tags = nil
}

// SetAttribute stores an arbitrary key/value annotation on the instance.
func (b *Base) SetAttribute(key string, value any) {
	if b.attributes == nil {
		b.attributes = make(map[string]any)
	}
	b.attributes[key] = value
}

// Attribute returns the annotation stored under key.
func (b *Base) Attribute(key string) (any, bool) {
	v, ok := b.attributes[key]
	return v, ok
}

// ClearAttributes removes all attributes.
func (b *Base) ClearAttributes() { b.attributes = nil }

// AddTag adds a tag if not already present.
func (b *Base) AddTag(tag string) {
	if b.HasTag(tag) {
		return
	}
	b.tags = append(b.tags, tag)
}

// HasTag reports whether the instance carries the tag.
func (b *Base) HasTag(tag string) bool {
	for _, t := range b.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Tags returns a copy of the tag list.
func (b *Base) Tags() []string {
	out := make([]string, len(b.tags))
	copy(out, b.tags)
	return out
}

// ClearTags removes all tags.
func (b *Base) ClearTags() { b.tags = nil }

func (b *Base) addChild(child Instance) {
	b.children = append(b.children, child)
}

func (b *Base) removeChild(child Instance) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return
		}
	}
}

// cloneMetaInto copies name, attributes, tags and cloned children onto dst.
func (b *Base) cloneMetaInto(dst Instance) {
	dst.SetName(b.name)
	for k, v := range b.attributes {
		dst.SetAttribute(k, v)
	}
	for _, tag := range b.tags {
		dst.AddTag(tag)
	}
	for _, child := range b.children {
		child.Clone().SetParent(dst)
	}
}
