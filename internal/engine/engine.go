// Package engine implements the three exercise modes — Sort, Group and
// Buy — as pure in-memory state machines over a session's card set.
//
// WORKING STATE vs DURABLE STATE:
// An engine holds one participant's unsaved arrangement. Nothing here
// touches the store or the network: the caller loads a session's cards,
// drives an engine through user gestures (drags, toggles), and only an
// explicit save turns the engine's Payload() into a snapshot row. A failed
// save therefore never corrupts the arrangement — emitting a payload does
// not mutate the engine, so the participant just retries.
//
// That boundary is also what makes the mode rules testable without a
// database: every invariant (rank completeness, card conservation across
// groups, the affordability ceiling) is checked against plain values.
package engine

import "errors"

var (
	// ErrUnknownCard is returned when an operation references a card id
	// that is not part of the engine's card set.
	ErrUnknownCard = errors.New("engine: unknown card")

	// ErrNoSuchGroup is returned for a group index outside the current
	// group list.
	ErrNoSuchGroup = errors.New("engine: no such group")

	// ErrLastGroup rejects deleting the only remaining group — an
	// arrangement always has at least one group to hold cards.
	ErrLastGroup = errors.New("engine: cannot remove the last group")

	// ErrOverBudget rejects selecting a card priced above the remaining
	// budget. Deselection is never refused.
	ErrOverBudget = errors.New("engine: price exceeds remaining budget")
)

// Move returns a copy of list with the element at from spliced out and
// reinserted at to. Splice semantics (remove-then-insert, not swap) preserve
// the relative order of every untouched element — exactly what a
// drag-and-drop reorder does. Out-of-range indices yield an unchanged copy;
// an invalid drag is a no-op, not a panic.
func Move[T any](list []T, from, to int) []T {
	out := make([]T, len(list))
	copy(out, list)

	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	item := out[from]
	out = append(out[:from], out[from+1:]...)

	// Insert at to within the shortened slice; because to is bounded by the
	// original length, this lands the item at its final resting position.
	out = append(out, item) // grow by one
	copy(out[to+1:], out[to:])
	out[to] = item

	return out
}
