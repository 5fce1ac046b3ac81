package calendar

import "github.com/lululau/datepick/internal/dates"

// Transition is the state of the three-panel carousel.
type Transition int

const (
	Idle          Transition = 0
	SlidePrevious Transition = -1
	SlideNext     Transition = 1
)

func (t Transition) String() string {
	switch t {
	case SlidePrevious:
		return "sliding(previous)"
	case SlideNext:
		return "sliding(next)"
	}
	return "idle"
}

// Slide starts a one-month transition in direction (+1 next, -1 previous).
// While a transition is running further requests are dropped.
func (m *Machine) Slide(direction int) bool {
	if direction != int(SlideNext) && direction != int(SlidePrevious) {
		return false
	}
	if m.transition != Idle {
		m.logger.Debug("slide dropped", "running", m.transition.String())
		return false
	}
	m.transition = Transition(direction)
	return true
}

// CompleteSlide is signalled by the host once the slide animation finishes.
// Focus lands on the same day of the adjacent month and the lock is released.
func (m *Machine) CompleteSlide() bool {
	if m.transition == Idle {
		return false
	}
	dir := int(m.transition)
	m.transition = Idle
	m.MoveFocus(dates.AddMonths(m.focus, dir))
	return true
}

// Transition returns the carousel state.
func (m *Machine) Transition() Transition { return m.transition }

// PanelOffset is -1, 0 or 1: the panel the carousel is moving towards.
func (m *Machine) PanelOffset() int { return int(m.transition) }

// SlideLocked reports whether a slide is in progress.
func (m *Machine) SlideLocked() bool { return m.transition != Idle }
