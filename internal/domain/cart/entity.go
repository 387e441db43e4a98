// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"strings"
)

var (
	ErrInvalidLine = errors.New("cart: invalid line")
)

// DefaultSize is applied when the caller adds a product without choosing a size.
const DefaultSize = "Queen"

// Line represents one line item in a cart.
// Identity is (ProductID, Size): adding the same product in the same size
// increments quantity instead of creating a second row. Color is display-only
// and does not participate in the key.
type Line struct {
	ProductID string  `json:"productId" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	UnitPrice float64 `json:"unitPrice" firestore:"unitPrice"`
	ImageRef  string  `json:"imageRef" firestore:"imageRef"`
	Size      string  `json:"size" firestore:"size"`
	Color     string  `json:"color" firestore:"color"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

// Key returns the merge key of the line.
func (l Line) Key() (productID, size string) {
	return strings.TrimSpace(l.ProductID), strings.TrimSpace(l.Size)
}

// Snapshot is the authoritative in-memory cart state.
// Insertion order is kept for display; merge semantics treat the lines as a
// set keyed by (ProductID, Size).
type Snapshot struct {
	Lines []Line
}

// Add merges item into the snapshot.
// A line with the same (ProductID, Size) has its quantity incremented by
// item.Quantity; otherwise item is appended. Quantity must be >= 1.
// No upper bound is enforced.
func (s *Snapshot) Add(item Line) error {
	if s == nil {
		return ErrInvalidLine
	}
	pid, size := item.Key()
	if size == "" {
		size = DefaultSize
	}
	if pid == "" || item.Quantity < 1 {
		return ErrInvalidLine
	}

	for i := range s.Lines {
		epid, esize := s.Lines[i].Key()
		if epid == pid && esize == size {
			s.Lines[i].Quantity += item.Quantity
			return nil
		}
	}

	item.ProductID = pid
	item.Size = size
	s.Lines = append(s.Lines, item)
	return nil
}

// Remove drops every line matching (productID, size).
// Removing a key that is not present is a no-op, not an error.
func (s *Snapshot) Remove(productID, size string) {
	if s == nil || len(s.Lines) == 0 {
		return
	}
	pid := strings.TrimSpace(productID)
	sz := strings.TrimSpace(size)

	kept := s.Lines[:0]
	for _, l := range s.Lines {
		lpid, lsize := l.Key()
		if lpid == pid && lsize == sz {
			continue
		}
		kept = append(kept, l)
	}
	s.Lines = kept
}

// SetQuantity sets the quantity of the matching line to max(1, quantity).
// Zero or negative requests are floored to 1; the line is never removed here
// (removal is always an explicit Remove). Absent key is a no-op.
func (s *Snapshot) SetQuantity(productID, size string, quantity int) {
	if s == nil {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	pid := strings.TrimSpace(productID)
	sz := strings.TrimSpace(size)

	for i := range s.Lines {
		lpid, lsize := s.Lines[i].Key()
		if lpid == pid && lsize == sz {
			s.Lines[i].Quantity = quantity
		}
	}
}

// Clear empties the snapshot.
func (s *Snapshot) Clear() {
	if s == nil {
		return
	}
	s.Lines = nil
}

// Total is the sum of unitPrice * quantity over all lines.
func (s *Snapshot) Total() float64 {
	if s == nil {
		return 0
	}
	var total float64
	for _, l := range s.Lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// Count is the sum of quantities (not the number of lines).
// Used for the cart badge.
func (s *Snapshot) Count() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty reports whether the snapshot has no lines.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || len(s.Lines) == 0
}

// CloneLines returns an independent copy of the lines.
func (s *Snapshot) CloneLines() []Line {
	if s == nil || len(s.Lines) == 0 {
		return nil
	}
	out := make([]Line, len(s.Lines))
	copy(out, s.Lines)
	return out
}

// NormalizeLines drops malformed entries and merges duplicate keys,
// preserving first-seen order. Used when loading persisted carts whose
// content we do not control (guest file, remote doc).
func NormalizeLines(src []Line) []Line {
	if len(src) == 0 {
		return nil
	}

	type key struct{ pid, size string }
	index := map[key]int{}
	out := make([]Line, 0, len(src))

	for _, l := range src {
		pid, size := l.Key()
		if pid == "" || size == "" || l.Quantity < 1 {
			continue
		}
		l.ProductID = pid
		l.Size = size

		k := key{pid: pid, size: size}
		if i, ok := index[k]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		index[k] = len(out)
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
