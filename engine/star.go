package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/ephem"
	"github.com/litescript/ls-frames/univ"
)

// Star is a stellar object anchored at a fixed universal position. Stars
// are the roots of frame trees: every orbit frame chain ultimately centers
// on one.
type Star struct {
	name     string
	position univ.Coord
	rotation ephem.RotationModel
}

// NewStar creates a star at a fixed universal position with an identity
// rotation model.
func NewStar(name string, position univ.Coord) *Star {
	return &Star{name: name, position: position, rotation: ephem.Identity()}
}

// Name returns the star's name.
func (s *Star) Name() string { return s.name }

// Position returns the star's universal position; stars do not move in
// this engine.
func (s *Star) Position(float64) univ.Coord { return s.position }

// Velocity returns the star's velocity, always zero.
func (s *Star) Velocity(float64) mgl64.Vec3 { return mgl64.Vec3{} }

// RotationModel returns the star's rotation model, never nil.
func (s *Star) RotationModel() ephem.RotationModel { return s.rotation }

// SetRotationModel replaces the star's rotation model. Must not be called
// once other components hold references to the star.
func (s *Star) SetRotationModel(rm ephem.RotationModel) {
	if rm == nil {
		rm = ephem.Identity()
	}
	s.rotation = rm
}
