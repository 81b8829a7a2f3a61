package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Encode serializes a typed payload to its durable textual form. The mode
// and the payload's Go type must agree — catching a sort payload saved under
// the buy tag here is much cheaper than discovering it at render time.
//
// Unknown modes have no typed payload, so Encode rejects them; opaque
// payloads for unrecognized tags enter the system pre-serialized (see
// Validate).
func Encode(mode string, payload any) (json.RawMessage, error) {
	switch mode {
	case ModeSort:
		if _, ok := payload.(SortPayload); !ok {
			return nil, fmt.Errorf("snapshot: mode %q requires SortPayload, got %T", mode, payload)
		}
	case ModeGroup:
		if _, ok := payload.(GroupPayload); !ok {
			return nil, fmt.Errorf("snapshot: mode %q requires GroupPayload, got %T", mode, payload)
		}
	case ModeBuy:
		if _, ok := payload.(BuyPayload); !ok {
			return nil, fmt.Errorf("snapshot: mode %q requires BuyPayload, got %T", mode, payload)
		}
	default:
		return nil, fmt.Errorf("snapshot: cannot encode unrecognized mode %q", mode)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encoding %s payload: %w", mode, err)
	}
	return raw, nil
}

// Decode parses stored text back into the typed payload for its mode.
// Round-tripping through Encode and Decode is lossless for all three shapes.
//
// For an unrecognized mode the raw document is returned as json.RawMessage —
// the tag is free-form at the storage boundary, so an unknown tag is not an
// error as long as the document is well-formed JSON.
//
// A Decode failure on a recognized mode means the stored text does not match
// its tag. On the write path callers treat that as a validation error; on
// the read path it is a store-integrity fault.
func Decode(mode string, raw []byte) (any, error) {
	switch mode {
	case ModeSort:
		var p SortPayload
		if err := decodeStrict(raw, &p); err != nil {
			return nil, fmt.Errorf("snapshot: decoding sort payload: %w", err)
		}
		for i, item := range p {
			if item.Rank != i+1 {
				return nil, fmt.Errorf("snapshot: sort payload rank at position %d is %d, want %d", i, item.Rank, i+1)
			}
		}
		return p, nil

	case ModeGroup:
		var p GroupPayload
		if err := decodeStrict(raw, &p); err != nil {
			return nil, fmt.Errorf("snapshot: decoding group payload: %w", err)
		}
		return p, nil

	case ModeBuy:
		var p BuyPayload
		if err := decodeStrict(raw, &p); err != nil {
			return nil, fmt.Errorf("snapshot: decoding buy payload: %w", err)
		}
		return p, nil

	default:
		if !json.Valid(raw) {
			return nil, fmt.Errorf("snapshot: payload for mode %q is not valid JSON", mode)
		}
		return json.RawMessage(bytes.Clone(raw)), nil
	}
}

// Validate checks that raw is an acceptable payload for mode without
// returning the decoded value. Used at the write boundary before a snapshot
// row is inserted.
func Validate(mode string, raw []byte) error {
	_, err := Decode(mode, raw)
	return err
}

// decodeStrict decodes a single JSON document, rejecting unknown fields and
// trailing data. Strictness is what makes the shape check meaningful — a buy
// payload posted under the sort tag must not half-parse into an empty slice.
func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after payload")
	}
	return nil
}

// Render maps (mode, stored text) to a human-readable summary:
//
//	sort:   a numbered ranking
//	group:  one "Name: members" line per group
//	buy:    the selection with prices and the total
//	other:  an indented JSON dump — unknown tags degrade, they don't fail
//
// An error from Render means the stored text is malformed for its tag; the
// caller decides how to fall back (typically by showing the raw text).
func Render(mode string, raw []byte) (string, error) {
	decoded, err := Decode(mode, raw)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch p := decoded.(type) {
	case SortPayload:
		b.WriteString("Ranking:")
		for _, item := range p {
			fmt.Fprintf(&b, "\n  %d. %s", item.Rank, item.Title)
		}

	case GroupPayload:
		for i, g := range p {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(g.Name)
			b.WriteString(": ")
			if len(g.Cards) == 0 {
				b.WriteString("(empty)")
				continue
			}
			titles := make([]string, len(g.Cards))
			for j, c := range g.Cards {
				titles[j] = c.Title
			}
			b.WriteString(strings.Join(titles, ", "))
		}

	case BuyPayload:
		fmt.Fprintf(&b, "Selected (total: %s of %s):", money(p.Total), money(p.Budget))
		for _, item := range p.Selected {
			fmt.Fprintf(&b, "\n  - %s (%s)", item.Title, money(item.Price))
		}

	default:
		var dump bytes.Buffer
		if err := json.Indent(&dump, raw, "", "  "); err != nil {
			return "", fmt.Errorf("snapshot: dumping %s payload: %w", mode, err)
		}
		b.Write(dump.Bytes())
	}

	return b.String(), nil
}

// money formats a price the way the workshop UI shows it: no trailing
// zeros, no thousands separators.
func money(f float64) string {
	return "$" + strconv.FormatFloat(f, 'f', -1, 64)
}
