// Package cart holds the session shopping cart value object. A cart is
// a sequence of book entries with price snapshots taken at add time; it
// is serialized to JSON and stored under the visitor's session.
package cart

import (
	"encoding/json"
	"fmt"

	"github.com/kitoblarda/internal/models"
)

// Entry is one cart line. UnitPrice is the price captured when the
// book was first added, not the current catalog price.
type Entry struct {
	BookID    uint         `json:"book_id"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
}

// LineTotal returns UnitPrice * Quantity.
func (e Entry) LineTotal() models.Money {
	return e.UnitPrice.MulInt(int64(e.Quantity))
}

// Cart keeps entries in insertion order.
type Cart struct {
	entries []Entry
	index   map[uint]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{index: make(map[uint]int)}
}

// Add inserts or updates a line. A missing book gets a new entry with
// the given price snapshot. When replace is true the quantity is set
// outright, otherwise it is added to the current quantity. Quantities
// below one are coerced to one.
func (c *Cart) Add(bookID uint, unitPrice models.Money, quantity int, replace bool) {
	if quantity < 1 {
		quantity = 1
	}
	if c.index == nil {
		c.index = make(map[uint]int)
	}

	pos, ok := c.index[bookID]
	if !ok {
		c.entries = append(c.entries, Entry{BookID: bookID, Quantity: 0, UnitPrice: unitPrice})
		pos = len(c.entries) - 1
		c.index[bookID] = pos
	}

	if replace {
		c.entries[pos].Quantity = quantity
	} else {
		c.entries[pos].Quantity += quantity
	}
}

// Remove drops a line. Removing an absent book is a no-op.
func (c *Cart) Remove(bookID uint) {
	pos, ok := c.index[bookID]
	if !ok {
		return
	}
	c.entries = append(c.entries[:pos], c.entries[pos+1:]...)
	delete(c.index, bookID)
	for i := pos; i < len(c.entries); i++ {
		c.index[c.entries[i].BookID] = i
	}
}

// Get returns the entry for a book, if present.
func (c *Cart) Get(bookID uint) (Entry, bool) {
	pos, ok := c.index[bookID]
	if !ok {
		return Entry{}, false
	}
	return c.entries[pos], true
}

// Len returns the total number of items, summing quantities across
// lines.
func (c *Cart) Len() int {
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

// Lines returns the number of distinct books.
func (c *Cart) Lines() int {
	return len(c.entries)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Entries returns the lines in insertion order. The returned slice is
// a copy.
func (c *Cart) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// TotalPrice sums line totals using the stored price snapshots.
func (c *Cart) TotalPrice() models.Money {
	total := models.NewMoneyFromInt(0)
	for _, e := range c.entries {
		total = total.Add(e.LineTotal())
	}
	return total
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.entries = nil
	c.index = make(map[uint]int)
}

// MarshalJSON renders the cart as an ordered array of entries.
func (c *Cart) MarshalJSON() ([]byte, error) {
	if c.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.entries)
}

// UnmarshalJSON restores the cart from its array form, rebuilding the
// position index. Duplicate book ids keep the last entry.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode cart failed: %w", err)
	}
	c.entries = nil
	c.index = make(map[uint]int)
	for _, e := range entries {
		if pos, ok := c.index[e.BookID]; ok {
			c.entries[pos] = e
			continue
		}
		c.entries = append(c.entries, e)
		c.index[e.BookID] = len(c.entries) - 1
	}
	return nil
}
