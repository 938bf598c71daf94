package property

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotOwned is returned when using a property the player does not hold.
	ErrNotOwned = errors.New("property: not owned")
	// ErrUnknown is returned when granting an ID missing from the catalog.
	ErrUnknown = errors.New("property: unknown id")
)

// Inventory is the ordered list of properties a player owns.
type Inventory struct {
	items []*Property
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends a property
func (inv *Inventory) Add(p *Property) {
	if p == nil {
		return
	}
	inv.items = append(inv.items, p)
}

// Grant adds the catalog property with the given id.
func (inv *Inventory) Grant(c *Catalog, id ID) (*Property, error) {
	p, ok := c.Get(id)
	if !ok {
		return nil, errors.Wrapf(ErrUnknown, "id %d", id)
	}
	inv.Add(p)
	return p, nil
}

// Remove drops the first occurrence of p. Returns false if p was not held.
func (inv *Inventory) Remove(p *Property) bool {
	for i, it := range inv.items {
		if it == p {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether a property with the given id is held
func (inv *Inventory) Has(id ID) bool {
	return inv.find(id) != nil
}

// Items returns the held properties in acquisition order
func (inv *Inventory) Items() []*Property {
	out := make([]*Property, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of held properties
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Clear removes every property
func (inv *Inventory) Clear() {
	inv.items = nil
}

// Use applies the first held property with the given id to t. One-off
// properties are removed afterwards.
func (inv *Inventory) Use(id ID, t Target) (*Property, error) {
	p := inv.find(id)
	if p == nil {
		return nil, errors.Wrapf(ErrNotOwned, "id %d", id)
	}
	p.Effect.Apply(t)
	if p.OneOff {
		inv.Remove(p)
	}
	return p, nil
}

func (inv *Inventory) find(id ID) *Property {
	for _, it := range inv.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}
