package engine

import (
	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/snapshot"
)

// Sorter holds a working card order for Sort mode. Every drag is a splice
// reorder; the emitted payload assigns 1-based ranks in list order, so the
// full card set is always present exactly once with contiguous ranks.
type Sorter struct {
	cards []model.Card
}

// NewSorter starts a sort pass over the session's card set, in the order
// the cards were handed over (creation order from the facade read). The
// slice is copied — the engine never aliases caller state.
func NewSorter(cards []model.Card) *Sorter {
	working := make([]model.Card, len(cards))
	copy(working, cards)
	return &Sorter{cards: working}
}

// Move drags the card at position from to position to. Moving a card onto
// its own position, or using an out-of-range index, leaves the order
// untouched.
func (s *Sorter) Move(from, to int) {
	s.cards = Move(s.cards, from, to)
}

// Cards returns a copy of the current working order.
func (s *Sorter) Cards() []model.Card {
	out := make([]model.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Payload emits the canonical sort payload: {id, title, rank} with rank
// equal to the 1-based position.
func (s *Sorter) Payload() snapshot.SortPayload {
	payload := make(snapshot.SortPayload, len(s.cards))
	for i, c := range s.cards {
		payload[i] = snapshot.SortItem{
			ID:    c.ID,
			Title: c.Title,
			Rank:  i + 1,
		}
	}
	return payload
}
