// Package selection implements the two-click date picker as pure transition
// functions over an explicit state value. Day-selectability is the caller's
// concern: non-selectable days must be rejected before a pick reaches this
// machine.
package selection

import (
	"fmt"

	"roomly/models"
)

// ErrLocked is returned when a pick arrives while a completed range is held.
var ErrLocked = fmt.Errorf("selection is locked; reset it before picking new dates")

// Pick applies one calendar click to the state and returns the new state.
//
// In PickingStart the day becomes the new start and any previous end is
// discarded. In PickingEnd a day earlier than the current start restarts the
// range with that day as start; otherwise the range completes and locks.
func Pick(state models.SelectionState, d models.Date) (models.SelectionState, error) {
	if state.Locked {
		return state, ErrLocked
	}

	switch state.Phase {
	case models.PhasePickingEnd:
		if state.Start != nil && d.Before(*state.Start) {
			// Picking an "end" before the current start restarts the range.
			state.Start = &d
			state.End = nil
			return state, nil
		}
		state.End = &d
		state.Locked = true
		state.Phase = models.PhasePickingStart
		return state, nil

	default: // PickingStart, including the zero state
		state.Start = &d
		state.End = nil
		state.Phase = models.PhasePickingEnd
		return state, nil
	}
}

// Reset clears the selection entirely. It is the only way out of a locked
// state.
func Reset() models.SelectionState {
	return models.NewSelectionState()
}
