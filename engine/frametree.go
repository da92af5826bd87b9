package engine

// FrameTree is a node in the hierarchy of objects in a solar system. A tree
// belongs to either a star (the system root) or a body, and its children are
// the timeline phases whose orbit frames are centered on that object.
//
// Trees cache a bounding sphere over their subtree; a changed flag tracks
// whether the cache is stale.
type FrameTree struct {
	starParent *Star
	bodyParent *Body
	children   []*TimelinePhase

	defaultFrame ReferenceFrame

	changed              bool
	boundingSphereRadius float64
	maxChildRadius       float64
}

// newStarFrameTree creates the root tree of a star's solar system.
func newStarFrameTree(star *Star) *FrameTree {
	return &FrameTree{
		starParent:   star,
		defaultFrame: NewJ2000EclipticFrame(StarSelection(star)),
		changed:      true,
	}
}

// newBodyFrameTree creates the tree of objects orbiting a body.
func newBodyFrameTree(body *Body) *FrameTree {
	return &FrameTree{
		bodyParent:   body,
		defaultFrame: NewJ2000EclipticFrame(BodySelection(body)),
		changed:      true,
	}
}

// Star returns the tree's star parent, nil for a body tree.
func (t *FrameTree) Star() *Star { return t.starParent }

// Body returns the tree's body parent, nil for the root tree.
func (t *FrameTree) Body() *Body { return t.bodyParent }

// IsRoot reports whether the tree is the root of its solar system.
func (t *FrameTree) IsRoot() bool { return t.bodyParent == nil }

// DefaultFrame returns the canonical inertial frame about the tree's owner:
// the J2000 ecliptic centered on the parent object.
func (t *FrameTree) DefaultFrame() ReferenceFrame { return t.defaultFrame }

// AddChild registers a phase whose orbit frame is centered on this tree's
// owner.
func (t *FrameTree) AddChild(phase *TimelinePhase) {
	t.children = append(t.children, phase)
	t.MarkChanged()
}

// RemoveChild unregisters a phase. A no-op when the phase is not a child.
func (t *FrameTree) RemoveChild(phase *TimelinePhase) {
	for i, c := range t.children {
		if c == phase {
			t.children = append(t.children[:i], t.children[i+1:]...)
			t.MarkChanged()
			return
		}
	}
}

// Child returns the nth child phase.
func (t *FrameTree) Child(n int) *TimelinePhase { return t.children[n] }

// ChildCount returns the number of child phases.
func (t *FrameTree) ChildCount() int { return len(t.children) }

// MarkChanged flags this tree and its ancestors as needing a bounding
// sphere recomputation.
func (t *FrameTree) MarkChanged() {
	if t.changed {
		return
	}
	t.changed = true
	if t.bodyParent != nil {
		t.bodyParent.markChanged()
	}
}

// MarkUpdated clears the changed flag on this tree and its entire subtree.
func (t *FrameTree) MarkUpdated() {
	if !t.changed {
		return
	}
	t.changed = false
	for _, phase := range t.children {
		if sub := phase.Body().FrameTree(); sub != nil {
			sub.MarkUpdated()
		}
	}
}

// UpdateRequired reports whether the cached bounding sphere is stale.
func (t *FrameTree) UpdateRequired() bool { return t.changed }

// RecomputeBoundingSphere refreshes the cached bounding sphere radius: the
// smallest radius about the tree's owner guaranteed to contain every body
// in the subtree. Recurses only into changed subtrees.
func (t *FrameTree) RecomputeBoundingSphere() {
	if !t.changed {
		return
	}
	t.changed = false
	t.boundingSphereRadius = 0
	t.maxChildRadius = 0

	for _, phase := range t.children {
		body := phase.Body()
		r := body.Radius() + phase.Orbit().BoundingRadius()
		if body.Radius() > t.maxChildRadius {
			t.maxChildRadius = body.Radius()
		}

		if sub := body.FrameTree(); sub != nil {
			sub.RecomputeBoundingSphere()
			r += sub.BoundingSphereRadius()
			if sub.MaxChildRadius() > t.maxChildRadius {
				t.maxChildRadius = sub.MaxChildRadius()
			}
		}

		if r > t.boundingSphereRadius {
			t.boundingSphereRadius = r
		}
	}
}

// BoundingSphereRadius returns the cached bounding sphere radius in
// kilometers. Valid after RecomputeBoundingSphere.
func (t *FrameTree) BoundingSphereRadius() float64 { return t.boundingSphereRadius }

// MaxChildRadius returns the radius of the largest body in the subtree, in
// kilometers.
func (t *FrameTree) MaxChildRadius() float64 { return t.maxChildRadius }
