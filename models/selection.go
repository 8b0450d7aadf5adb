package models

import "fmt"

// SelectionPhase says which click the date picker expects next.
type SelectionPhase string

const (
	PhasePickingStart SelectionPhase = "PickingStart"
	PhasePickingEnd   SelectionPhase = "PickingEnd"
)

// SelectionState is the explicit, serializable state of the two-click date
// picker. Transitions live in services/selection as pure functions so the
// machine can be unit tested without any HTTP or cache host.
type SelectionState struct {
	Phase  SelectionPhase `json:"phase"`
	Start  *Date          `json:"start,omitempty"`
	End    *Date          `json:"end,omitempty"`
	Locked bool           `json:"locked"`
}

// NewSelectionState returns the initial picker state.
func NewSelectionState() SelectionState {
	return SelectionState{Phase: PhasePickingStart}
}

// Interval returns the chosen range. It is only available once the selection
// is locked, which by construction guarantees start <= end.
func (s SelectionState) Interval() (DateInterval, error) {
	if !s.Locked || s.Start == nil || s.End == nil {
		return DateInterval{}, fmt.Errorf("selection is not complete")
	}
	return NewDateInterval(*s.Start, *s.End)
}
