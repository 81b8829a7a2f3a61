// Package snapshot owns the mode-tagged payload union and its codec.
//
// A snapshot's data column stores one of three shapes, selected by the mode
// tag: a sort ranking, a group arrangement, or a buy selection. Rather than
// passing untyped maps around, each shape gets a concrete Go type and the
// codec switches exhaustively over the tag — an unrecognized tag is handled
// explicitly (opaque passthrough on decode, generic dump on render), never
// assumed to have a known shape.
package snapshot

// Recognized mode tags. Mode is deliberately NOT a closed enum at the
// storage boundary — unknown tags are stored and rendered generically —
// but these three get typed payloads and shape validation.
const (
	ModeSort  = "sort"
	ModeGroup = "group"
	ModeBuy   = "buy"
)

// SortItem is one entry of a sort ranking. Rank is the 1-based position;
// a valid payload has ranks 1..n with no card omitted or duplicated.
type SortItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Rank  int    `json:"rank"`
}

// SortPayload is the full ranking, in rank order.
type SortPayload []SortItem

// GroupCard is a card reference inside a group. Only id and title are
// recorded — group membership is about identity, not price.
type GroupCard struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Group is one named group and its member cards, in display order.
// A group that was never deleted stays in the payload even when empty.
type Group struct {
	Name  string      `json:"name"`
	Cards []GroupCard `json:"cards"`
}

// GroupPayload is the ordered group arrangement.
type GroupPayload []Group

// BuyItem is one selected card with the price it was bought at.
type BuyItem struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// BuyPayload records a buy pass: the budget it ran under, the total spent,
// and the selection in card order. Total always equals the sum of selected
// prices and never exceeds Budget.
type BuyPayload struct {
	Budget   float64   `json:"budget"`
	Total    float64   `json:"total"`
	Selected []BuyItem `json:"selected"`
}
