package engine

// Universe owns the set of solar systems. Systems are created lazily the
// first time an object is anchored to a star.
type Universe struct {
	systems map[*Star]*SolarSystem
	stars   []*Star
}

// NewUniverse returns an empty universe.
func NewUniverse() *Universe {
	return &Universe{systems: make(map[*Star]*SolarSystem)}
}

// SolarSystem returns the system rooted at star, creating it on first use.
func (u *Universe) SolarSystem(star *Star) *SolarSystem {
	if s, ok := u.systems[star]; ok {
		return s
	}
	s := &SolarSystem{star: star, tree: newStarFrameTree(star)}
	u.systems[star] = s
	u.stars = append(u.stars, star)
	return s
}

// SolarSystemCount returns the number of systems created so far.
func (u *Universe) SolarSystemCount() int { return len(u.systems) }

// Stars returns the system roots in creation order.
func (u *Universe) Stars() []*Star { return u.stars }

// SolarSystem groups the objects bound, directly or transitively, to one
// star.
type SolarSystem struct {
	star *Star
	tree *FrameTree
}

// Star returns the system's root star.
func (s *SolarSystem) Star() *Star { return s.star }

// FrameTree returns the root frame tree of the system.
func (s *SolarSystem) FrameTree() *FrameTree { return s.tree }

// Bodies returns every distinct body in the system, parents before their
// satellites.
func (s *SolarSystem) Bodies() []*Body {
	var bodies []*Body
	seen := make(map[*Body]bool)
	collectBodies(s.tree, seen, &bodies)
	return bodies
}

// collectBodies walks a frame tree depth-first. A body with a multi-phase
// timeline appears as several children of possibly different trees; the
// seen set keeps each body listed once.
func collectBodies(tree *FrameTree, seen map[*Body]bool, out *[]*Body) {
	for i := 0; i < tree.ChildCount(); i++ {
		body := tree.Child(i).Body()
		if seen[body] {
			continue
		}
		seen[body] = true
		*out = append(*out, body)
		if sub := body.FrameTree(); sub != nil {
			collectBodies(sub, seen, out)
		}
	}
}
