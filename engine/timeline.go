package engine

import "errors"

// ErrDiscontinuousPhase is returned when an appended phase does not begin
// exactly where the previous phase ends.
var ErrDiscontinuousPhase = errors.New("engine: timeline phases must be contiguous")

// Timeline is an ordered sequence of contiguous phases covering a body's
// existence. The timeline spans [StartTime, EndTime); each instant inside
// the span belongs to exactly one phase.
type Timeline struct {
	phases []*TimelinePhase
}

// NewTimeline returns an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// AppendPhase adds a phase at the end of the timeline. The phase must start
// at the exact instant the previous phase ends; the comparison is exact, no
// tolerance is applied.
func (t *Timeline) AppendPhase(phase *TimelinePhase) error {
	if len(t.phases) > 0 && phase.StartTime() != t.phases[len(t.phases)-1].EndTime() {
		return ErrDiscontinuousPhase
	}
	t.phases = append(t.phases, phase)
	return nil
}

// FindPhase returns the phase containing tdb, or nil when tdb lies outside
// the timeline's span. Most timelines have a single phase, so that case is
// dispatched without a search.
func (t *Timeline) FindPhase(tdb float64) *TimelinePhase {
	switch len(t.phases) {
	case 0:
		return nil
	case 1:
		if t.phases[0].Includes(tdb) {
			return t.phases[0]
		}
		return nil
	default:
		for _, phase := range t.phases {
			if phase.Includes(tdb) {
				return phase
			}
		}
		return nil
	}
}

// Phase returns the nth phase.
func (t *Timeline) Phase(n int) *TimelinePhase { return t.phases[n] }

// PhaseCount returns the number of phases.
func (t *Timeline) PhaseCount() int { return len(t.phases) }

// StartTime returns the start of the first phase. Meaningless for an empty
// timeline; callers check PhaseCount first.
func (t *Timeline) StartTime() float64 {
	if len(t.phases) == 0 {
		return 0
	}
	return t.phases[0].StartTime()
}

// EndTime returns the end of the last phase.
func (t *Timeline) EndTime() float64 {
	if len(t.phases) == 0 {
		return 0
	}
	return t.phases[len(t.phases)-1].EndTime()
}

// Includes reports whether tdb lies within the timeline's span. The span is
// half open like its phases; the end instant is excluded.
func (t *Timeline) Includes(tdb float64) bool {
	return len(t.phases) > 0 && t.StartTime() <= tdb && tdb < t.EndTime()
}

// MarkChanged flags the frame tree of every phase for a bounding sphere
// recomputation.
func (t *Timeline) MarkChanged() {
	for _, phase := range t.phases {
		phase.FrameTree().MarkChanged()
	}
}

// detachAll removes every phase from its owning frame tree. Called when a
// body's timeline is replaced.
func (t *Timeline) detachAll() {
	for _, phase := range t.phases {
		phase.FrameTree().RemoveChild(phase)
	}
}
