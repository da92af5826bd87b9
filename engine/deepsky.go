package engine

import (
	"github.com/litescript/ls-frames/univ"
)

// DeepSkyObject is a galaxy, nebula or cluster: a far away object with a
// fixed universal position. Deep sky objects can serve as frame centers for
// universal conversions but are unsupported as astrocentric centers.
type DeepSkyObject struct {
	name     string
	position univ.Coord
	radius   float64
}

// NewDeepSkyObject creates a deep sky object at a fixed universal position
// with a characteristic radius in light years.
func NewDeepSkyObject(name string, position univ.Coord, radius float64) *DeepSkyObject {
	return &DeepSkyObject{name: name, position: position, radius: radius}
}

// Name returns the object's name.
func (d *DeepSkyObject) Name() string { return d.name }

// Position returns the object's universal position.
func (d *DeepSkyObject) Position(float64) univ.Coord { return d.position }

// Radius returns the object's characteristic radius in light years.
func (d *DeepSkyObject) Radius() float64 { return d.radius }
