package engine

import (
	"fmt"

	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/snapshot"
)

// Grouper holds a working group arrangement for Group mode. It starts as a
// single implicit "Ungrouped" group containing every card; all later
// operations conserve the card set — cards move between groups but are never
// created, lost or duplicated.
type Grouper struct {
	groups []workGroup
}

type workGroup struct {
	name  string
	cards []model.Card
}

// NewGrouper starts a group pass with all cards in one "Ungrouped" group.
func NewGrouper(cards []model.Card) *Grouper {
	initial := make([]model.Card, len(cards))
	copy(initial, cards)
	return &Grouper{
		groups: []workGroup{{name: "Ungrouped", cards: initial}},
	}
}

// AddGroup appends a new empty group. A blank name gets the default
// "Group N" label, matching what the facilitator sees before typing one.
func (g *Grouper) AddGroup(name string) {
	if name == "" {
		name = fmt.Sprintf("Group %d", len(g.groups)+1)
	}
	g.groups = append(g.groups, workGroup{name: name})
}

// RenameGroup changes the label of the group at index. Renaming does not
// change group order or membership — "Ungrouped" is just a name like any
// other once the pass has started.
func (g *Grouper) RenameGroup(index int, name string) error {
	if index < 0 || index >= len(g.groups) {
		return ErrNoSuchGroup
	}
	g.groups[index].name = name
	return nil
}

// MoveCard moves a card into another group, appending it after that group's
// existing cards. Moving a card to the group it is already in is a no-op —
// repositioning within a group is ReorderCard's job.
func (g *Grouper) MoveCard(cardID int64, toGroup int) error {
	if toGroup < 0 || toGroup >= len(g.groups) {
		return ErrNoSuchGroup
	}

	fromGroup, idx := g.find(cardID)
	if fromGroup == -1 {
		return ErrUnknownCard
	}
	if fromGroup == toGroup {
		return nil
	}

	card := g.groups[fromGroup].cards[idx]
	g.groups[fromGroup].cards = append(
		g.groups[fromGroup].cards[:idx],
		g.groups[fromGroup].cards[idx+1:]...,
	)
	g.groups[toGroup].cards = append(g.groups[toGroup].cards, card)
	return nil
}

// ReorderCard repositions a card within one group using the same splice
// semantics as Sort mode. Out-of-range positions inside a valid group are a
// no-op, like any other invalid drag.
func (g *Grouper) ReorderCard(group, from, to int) error {
	if group < 0 || group >= len(g.groups) {
		return ErrNoSuchGroup
	}
	g.groups[group].cards = Move(g.groups[group].cards, from, to)
	return nil
}

// RemoveGroup deletes the group at index and merges its cards into the
// group that is first in group order after the removal, appended after that
// group's existing cards with their relative order preserved. Deleting the
// last remaining group is rejected.
func (g *Grouper) RemoveGroup(index int) error {
	if index < 0 || index >= len(g.groups) {
		return ErrNoSuchGroup
	}
	if len(g.groups) == 1 {
		return ErrLastGroup
	}

	orphaned := g.groups[index].cards
	g.groups = append(g.groups[:index], g.groups[index+1:]...)
	g.groups[0].cards = append(g.groups[0].cards, orphaned...)
	return nil
}

// CardCount returns the total number of cards across all groups. It is
// invariant over every Grouper operation.
func (g *Grouper) CardCount() int {
	n := 0
	for _, grp := range g.groups {
		n += len(grp.cards)
	}
	return n
}

// Payload emits the canonical group payload in group order. Groups that
// were never deleted are retained even when empty.
func (g *Grouper) Payload() snapshot.GroupPayload {
	payload := make(snapshot.GroupPayload, len(g.groups))
	for i, grp := range g.groups {
		cards := make([]snapshot.GroupCard, len(grp.cards))
		for j, c := range grp.cards {
			cards[j] = snapshot.GroupCard{ID: c.ID, Title: c.Title}
		}
		payload[i] = snapshot.Group{Name: grp.name, Cards: cards}
	}
	return payload
}

// find locates a card, returning its group index and position, or (-1, -1).
func (g *Grouper) find(cardID int64) (group, index int) {
	for i, grp := range g.groups {
		for j, c := range grp.cards {
			if c.ID == cardID {
				return i, j
			}
		}
	}
	return -1, -1
}
