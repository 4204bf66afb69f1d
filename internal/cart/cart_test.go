package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maison/internal/catalog"
	"maison/internal/structs"
)

func product(t *testing.T, id int64) structs.Product {
	t.Helper()
	p, err := catalog.New().ByID(id)
	require.NoError(t, err)
	return p
}

func TestAddItemKeepsOneLinePerProduct(t *testing.T) {
	c := New()
	bag := product(t, 1)

	c.AddItem(bag)
	c.AddItem(bag)
	c.AddItem(bag)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(3), lines[0].Quantity)
	assert.Equal(t, int64(3), c.ItemCount())
	assert.Equal(t, int64(135000), c.Total())
}

func TestNewLineTakesFirstSize(t *testing.T) {
	c := New()
	c.AddItem(product(t, 2))

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "XS", lines[0].SelectedSize)
	assert.Equal(t, int64(1), lines[0].Quantity)
}

func TestTotals(t *testing.T) {
	c := New()
	c.AddItem(product(t, 1))
	c.AddItem(product(t, 2))

	assert.Equal(t, int64(134000), c.Total())
	assert.Equal(t, int64(2), c.ItemCount())

	lines := c.Lines()
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, int64(2), lines[1].ID)
}

func TestSetQuantity(t *testing.T) {
	c := New()
	c.AddItem(product(t, 1))
	c.AddItem(product(t, 2))

	require.NoError(t, c.SetQuantity(2, 4))
	assert.Equal(t, int64(45000+4*89000), c.Total())

	require.NoError(t, c.SetQuantity(1, 0))
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ID)

	require.NoError(t, c.SetQuantity(42, 3))
	assert.Len(t, c.Lines(), 1)
}

func TestSetQuantityNegative(t *testing.T) {
	c := New()
	c.AddItem(product(t, 1))

	err := c.SetQuantity(1, -1)
	assert.ErrorIs(t, err, structs.ErrInvalidQuantity)
	assert.Equal(t, int64(1), c.ItemCount())
}

func TestRemoveAndClear(t *testing.T) {
	c := New()
	c.AddItem(product(t, 1))
	c.AddItem(product(t, 3))

	c.RemoveItem(99)
	assert.Len(t, c.Lines(), 2)

	c.RemoveItem(1)
	assert.Equal(t, int64(125000), c.Total())

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
	assert.Zero(t, c.ItemCount())
}

func TestOrderItems(t *testing.T) {
	c := New()
	c.AddItem(product(t, 2))
	require.NoError(t, c.SetQuantity(2, 2))

	items := c.OrderItems()
	require.Len(t, items, 1)
	assert.Equal(t, structs.OrderItem{ID: 2, Name: "Шёлковое платье", Price: 89000, Quantity: 2, SelectedSize: "XS"}, items[0])
}
