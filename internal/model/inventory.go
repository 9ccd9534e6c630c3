package model

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is a single inventory line.
type Entry struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Inventory maps item names to on-hand quantities.
// Names are unique; iteration follows first-insertion order so printed output is stable.
// The zero value is not usable, create one with NewInventory or DefaultInventory.
type Inventory struct {
	names []string
	qty   map[string]int
}

// NewInventory builds an inventory from entries. A repeated item keeps its first position
// and its quantities are summed.
func NewInventory(entries ...Entry) *Inventory {
	inv := &Inventory{qty: make(map[string]int, len(entries))}
	for _, e := range entries {
		if _, ok := inv.qty[e.Item]; !ok {
			inv.names = append(inv.names, e.Item)
		}
		inv.qty[e.Item] += e.Quantity
	}
	return inv
}

// DefaultInventory returns the stock the demo starts from.
func DefaultInventory() *Inventory {
	return NewInventory(
		Entry{Item: "apples", Quantity: 50},
		Entry{Item: "bananas", Quantity: 100},
		Entry{Item: "oranges", Quantity: 75},
		Entry{Item: "grapes", Quantity: 1500},
	)
}

// Process adds quantityToAdd to itemName, inserting the item when it is unknown.
// A line describing which branch ran is written to w. The returned pointer is inv itself,
// so callers see any later mutation. quantityToAdd is not checked for sign.
func (inv *Inventory) Process(w io.Writer, itemName string, quantityToAdd int) *Inventory {
	if _, ok := inv.qty[itemName]; ok {
		inv.qty[itemName] += quantityToAdd
		fmt.Fprintf(w, "Updated inventory for '%s'. New total: %d\n", itemName, inv.qty[itemName])
		return inv
	}
	inv.names = append(inv.names, itemName)
	inv.qty[itemName] = quantityToAdd
	fmt.Fprintf(w, "'%s' not found. Adding with quantity: %d\n", itemName, quantityToAdd)
	return inv
}

// Quantity reports the stored quantity and whether the item exists.
func (inv *Inventory) Quantity(itemName string) (int, bool) {
	q, ok := inv.qty[itemName]
	return q, ok
}

func (inv *Inventory) Len() int { return len(inv.names) }

// Total sums every quantity.
func (inv *Inventory) Total() int {
	sum := 0
	for _, q := range inv.qty {
		sum += q
	}
	return sum
}

// Entries returns a copy of the inventory in insertion order.
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, 0, len(inv.names))
	for _, name := range inv.names {
		out = append(out, Entry{Item: name, Quantity: inv.qty[name]})
	}
	return out
}

// String renders the inventory as {'apples': 50, 'bananas': 100}.
func (inv *Inventory) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range inv.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		b.WriteString(name)
		b.WriteString("': ")
		b.WriteString(strconv.Itoa(inv.qty[name]))
	}
	b.WriteByte('}')
	return b.String()
}
