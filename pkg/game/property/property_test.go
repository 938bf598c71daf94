package property

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	moves int
}

func (f *fakeTarget) SetMoveableTimes(n int) {
	f.moves = n
}

func TestHorse_SetsMoveableTimes(t *testing.T) {
	target := &fakeTarget{moves: 1}
	Horse{}.Apply(target)
	assert.Equal(t, HorseMoves, target.moves)
}

func TestInventory_AddRemove(t *testing.T) {
	inv := NewInventory()
	a := &Property{ID: 1, Effect: Horse{}}
	b := &Property{ID: 2, Effect: Horse{}}
	inv.Add(a)
	inv.Add(b)
	inv.Add(nil)

	assert.Equal(t, []*Property{a, b}, inv.Items())
	assert.True(t, inv.Remove(a))
	assert.False(t, inv.Remove(a))
	assert.Equal(t, []*Property{b}, inv.Items())
	assert.False(t, inv.Has(1))
	assert.True(t, inv.Has(2))

	inv.Clear()
	assert.Zero(t, inv.Len())
}

func TestInventory_UseOneOff(t *testing.T) {
	inv := NewInventory()
	_, err := inv.Grant(DefaultCatalog(), HorseID)
	require.NoError(t, err)

	target := &fakeTarget{moves: 1}
	p, err := inv.Use(HorseID, target)
	require.NoError(t, err)
	assert.Equal(t, HorseID, p.ID)
	assert.Equal(t, 2, target.moves)
	assert.Zero(t, inv.Len(), "one-off property is consumed")

	_, err = inv.Use(HorseID, target)
	assert.True(t, errors.Is(err, ErrNotOwned))
}

func TestInventory_UseReusable(t *testing.T) {
	calls := 0
	inv := NewInventory()
	inv.Add(&Property{ID: 7, Effect: EffectFunc(func(Target) { calls++ })})

	for i := 0; i < 3; i++ {
		_, err := inv.Use(7, &fakeTarget{})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, inv.Len())
}

func TestInventory_GrantUnknown(t *testing.T) {
	_, err := NewInventory().Grant(DefaultCatalog(), 99)
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestNewCatalog_Duplicates(t *testing.T) {
	_, err := NewCatalog(&Property{ID: 1, Effect: Horse{}}, &Property{ID: 1, Effect: Horse{}})
	assert.Error(t, err)

	_, err = NewCatalog(&Property{ID: 1})
	assert.Error(t, err)

	c, err := NewCatalog(&Property{ID: 3, Effect: Horse{}}, &Property{ID: 1, Effect: Horse{}})
	require.NoError(t, err)
	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, ID(3), all[0].ID)
}
