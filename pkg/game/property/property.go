// Package property defines collectible board properties (items), their
// effects on the player, and the player's inventory of owned properties.
package property

import (
	"github.com/pkg/errors"
)

// ID identifies a property kind.
type ID int

// Property IDs
const (
	HorseID ID = iota
)

// Target is what an effect acts on.
type Target interface {
	SetMoveableTimes(n int)
}

// Effect is the capability every property variant provides.
type Effect interface {
	Apply(t Target)
}

// EffectFunc adapts a function to Effect.
type EffectFunc func(t Target)

// Apply calls f(t).
func (f EffectFunc) Apply(t Target) {
	f(t)
}

// HorseMoves is the movement allowance granted by a horse.
const HorseMoves = 2

// Horse lets the player move twice this turn.
type Horse struct{}

// Apply sets the movement allowance to HorseMoves.
func (Horse) Apply(t Target) {
	t.SetMoveableTimes(HorseMoves)
}

// Property is one collectible item.
type Property struct {
	ID     ID
	Name   string // message id, see package locale
	OneOff bool   // consumed on use
	Effect Effect
}

// Catalog indexes the known property kinds by ID.
type Catalog struct {
	byID  map[ID]*Property
	order []ID
}

// NewCatalog builds a catalog, rejecting duplicate IDs and nil effects.
func NewCatalog(props ...*Property) (*Catalog, error) {
	c := &Catalog{byID: make(map[ID]*Property, len(props))}
	for _, p := range props {
		if p == nil || p.Effect == nil {
			return nil, errors.New("property: nil property or effect")
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, errors.Errorf("property: duplicate id %d", p.ID)
		}
		c.byID[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c, nil
}

// DefaultCatalog returns the built-in properties.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		&Property{ID: HorseID, Name: "PROPERTY_HORSE", OneOff: true, Effect: Horse{}},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the property with the given id
func (c *Catalog) Get(id ID) (*Property, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns every property in registration order
func (c *Catalog) All() []*Property {
	out := make([]*Property, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
