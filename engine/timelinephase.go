package engine

import (
	"errors"

	"github.com/litescript/ls-frames/ephem"
)

// Phase creation failures; callers distinguish a malformed interval from an
// unsupported frame center.
var (
	ErrInvalidPhaseInterval   = errors.New("engine: phase end time must be after start time")
	ErrUnsupportedFrameCenter = errors.New("engine: orbit frame center must be a star or body")
)

// TimelinePhase binds a body, over the half-open interval [start, end), to
// an orbit frame + orbit and a body frame + rotation model. Phases are
// immutable and owned by the frame tree node of their orbit frame's center
// for cycle and graph bookkeeping.
type TimelinePhase struct {
	body      *Body
	startTime float64
	endTime   float64

	orbitFrame    ReferenceFrame
	orbit         ephem.Orbit
	bodyFrame     ReferenceFrame
	rotationModel ephem.RotationModel

	owner *FrameTree
}

// NewTimelinePhase creates a phase in the given universe and registers it
// with the frame tree of the orbit frame's center: the center body's tree,
// or the tree of the center star's solar system, either created lazily.
//
// Fails with ErrInvalidPhaseInterval when endTime <= startTime and with
// ErrUnsupportedFrameCenter when the orbit frame is not centered on a star
// or body.
func NewTimelinePhase(universe *Universe, body *Body, startTime, endTime float64,
	orbitFrame ReferenceFrame, orbit ephem.Orbit,
	bodyFrame ReferenceFrame, rotationModel ephem.RotationModel) (*TimelinePhase, error) {

	if endTime <= startTime {
		return nil, ErrInvalidPhaseInterval
	}

	var owner *FrameTree
	center := orbitFrame.Center()
	switch {
	case center.Body() != nil:
		owner = center.Body().OrCreateFrameTree()
	case center.Star() != nil:
		owner = universe.SolarSystem(center.Star()).FrameTree()
	default:
		return nil, ErrUnsupportedFrameCenter
	}

	phase := &TimelinePhase{
		body:          body,
		startTime:     startTime,
		endTime:       endTime,
		orbitFrame:    orbitFrame,
		orbit:         orbit,
		bodyFrame:     bodyFrame,
		rotationModel: rotationModel,
		owner:         owner,
	}
	owner.AddChild(phase)

	return phase, nil
}

// Body returns the body the phase governs.
func (p *TimelinePhase) Body() *Body { return p.body }

// StartTime returns the inclusive start of the phase's interval.
func (p *TimelinePhase) StartTime() float64 { return p.startTime }

// EndTime returns the exclusive end of the phase's interval.
func (p *TimelinePhase) EndTime() float64 { return p.endTime }

// OrbitFrame returns the frame the orbit is expressed in.
func (p *TimelinePhase) OrbitFrame() ReferenceFrame { return p.orbitFrame }

// Orbit returns the phase's orbit.
func (p *TimelinePhase) Orbit() ephem.Orbit { return p.orbit }

// BodyFrame returns the frame the rotation model is expressed in.
func (p *TimelinePhase) BodyFrame() ReferenceFrame { return p.bodyFrame }

// RotationModel returns the phase's rotation model.
func (p *TimelinePhase) RotationModel() ephem.RotationModel { return p.rotationModel }

// FrameTree returns the tree that owns this phase: always the tree
// associated with the orbit frame's center.
func (p *TimelinePhase) FrameTree() *FrameTree { return p.owner }

// Includes reports whether tdb lies within the phase: the phase owns its
// start instant but not its end instant.
func (p *TimelinePhase) Includes(tdb float64) bool {
	return p.startTime <= tdb && tdb < p.endTime
}
