package engine

import (
	"github.com/shopspring/decimal"

	"github.com/sakif/feature-workshop/internal/model"
	"github.com/sakif/feature-workshop/internal/snapshot"
)

// Buyer holds a working selection for Buy a Feature. Selecting a card
// spends its price against the session budget; a selection that would
// overspend is refused outright, not flagged.
//
// WHY decimal AND NOT float64?
// The affordability boundary is inclusive: a card priced exactly at the
// remaining budget must be selectable, and one priced a cent above must be
// refused. Comparing accumulated float64 sums would make that boundary
// depend on rounding noise (0.1+0.2 != 0.3), so all arithmetic happens in
// decimal and floats only appear in the emitted payload.
type Buyer struct {
	cards    []model.Card
	budget   decimal.Decimal
	selected map[int64]bool
}

// NewBuyer starts a buy pass over the session's card set with the session's
// budget. Nothing is selected initially.
func NewBuyer(cards []model.Card, budget float64) *Buyer {
	working := make([]model.Card, len(cards))
	copy(working, cards)
	return &Buyer{
		cards:    working,
		budget:   decimal.NewFromFloat(budget),
		selected: make(map[int64]bool),
	}
}

// Toggle flips a card's selected state. Toggle-off always succeeds;
// toggle-on succeeds only when the card's price is at most the remaining
// budget (price == remaining is allowed). On ErrOverBudget the selection is
// unchanged.
func (b *Buyer) Toggle(cardID int64) error {
	card := b.card(cardID)
	if card == nil {
		return ErrUnknownCard
	}

	if b.selected[cardID] {
		delete(b.selected, cardID)
		return nil
	}

	price := decimal.NewFromFloat(card.Price)
	if price.GreaterThan(b.remaining()) {
		return ErrOverBudget
	}
	b.selected[cardID] = true
	return nil
}

// IsSelected reports whether the card is currently in the selection.
func (b *Buyer) IsSelected(cardID int64) bool {
	return b.selected[cardID]
}

// Spent is the sum of selected prices.
func (b *Buyer) Spent() float64 {
	return b.spent().InexactFloat64()
}

// Remaining is budget minus spent. Post-save this is always >= 0 because
// Toggle never lets the selection overshoot.
func (b *Buyer) Remaining() float64 {
	return b.remaining().InexactFloat64()
}

// Payload emits the canonical buy payload: the budget, the exact total, and
// the selected cards in card order (selection order is not meaningful).
func (b *Buyer) Payload() snapshot.BuyPayload {
	selected := []snapshot.BuyItem{}
	for _, c := range b.cards {
		if b.selected[c.ID] {
			selected = append(selected, snapshot.BuyItem{
				ID:    c.ID,
				Title: c.Title,
				Price: c.Price,
			})
		}
	}
	return snapshot.BuyPayload{
		Budget:   b.budget.InexactFloat64(),
		Total:    b.spent().InexactFloat64(),
		Selected: selected,
	}
}

func (b *Buyer) spent() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.cards {
		if b.selected[c.ID] {
			total = total.Add(decimal.NewFromFloat(c.Price))
		}
	}
	return total
}

func (b *Buyer) remaining() decimal.Decimal {
	return b.budget.Sub(b.spent())
}

func (b *Buyer) card(id int64) *model.Card {
	for i := range b.cards {
		if b.cards[i].ID == id {
			return &b.cards[i]
		}
	}
	return nil
}
