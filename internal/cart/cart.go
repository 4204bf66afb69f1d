// Package cart holds the in-memory shopping cart. It is never persisted.
package cart

import (
	"sync"

	"go.uber.org/fx"

	"maison/internal/structs"
)

var Module = fx.Provide(New)

// Cart keeps one line per product id, in the order products were first added.
type Cart struct {
	mu    sync.RWMutex
	lines []structs.CartLine
}

func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of p. A new line takes the first declared size.
func (c *Cart) AddItem(p structs.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}

	line := structs.CartLine{Product: p, Quantity: 1}
	if len(p.Sizes) > 0 {
		line.SelectedSize = p.Sizes[0]
	}
	c.lines = append(c.lines, line)
}

// RemoveItem drops the line for id. Unknown ids are ignored.
func (c *Cart) RemoveItem(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(id)
}

// SetQuantity replaces the quantity of an existing line; zero removes it.
func (c *Cart) SetQuantity(id int64, qty int64) error {
	if qty < 0 {
		return structs.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if qty == 0 {
		c.remove(id)
		return nil
	}
	if i := c.index(id); i >= 0 {
		c.lines[i].Quantity = qty
	}
	return nil
}

func (c *Cart) Total() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) ItemCount() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int64
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Lines() []structs.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]structs.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

func (c *Cart) Info() structs.CartInfo {
	return structs.CartInfo{
		Lines:     c.Lines(),
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}

// OrderItems snapshots the lines in the shape the orders service stores.
func (c *Cart) OrderItems() []structs.OrderItem {
	lines := c.Lines()
	items := make([]structs.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, structs.OrderItem{
			ID:           l.ID,
			Name:         l.Name,
			Price:        structs.Amount(l.Price),
			Quantity:     l.Quantity,
			SelectedSize: l.SelectedSize,
		})
	}
	return items
}

func (c *Cart) index(id int64) int {
	for i, l := range c.lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) remove(id int64) {
	if i := c.index(id); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}
