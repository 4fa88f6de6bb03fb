// Package cart holds the hire user's pre-checkout line items: a pure
// reducer over commands plus a write-through persistent wrapper.
package cart

import (
	"sync"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
)

// Cart is the persistent cart. Every mutation applies the pure reducer and
// then writes the whole snapshot back (write-through). Mutations report
// whether the snapshot write succeeded; the in-memory state advances either
// way so an unavailable disk never blocks the user.
type Cart struct {
	mu    sync.Mutex
	store storage.Store
	items []models.CartItem
}

// New loads the cart snapshot from store, starting empty when none exists.
func New(store storage.Store) *Cart {
	c := &Cart{store: store, items: []models.CartItem{}}
	storage.LoadJSON(store, storage.KeyCart, &c.items)
	return c
}

func (c *Cart) dispatch(cmd Command) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = Apply(c.items, cmd)
	return storage.SaveJSON(c.store, storage.KeyCart, c.items)
}

// Add inserts an item or increments the matching line's quantity.
func (c *Cart) Add(item models.CartItem) bool {
	return c.dispatch(Add{Item: item})
}

// Remove drops the line at index.
func (c *Cart) Remove(index int) bool {
	return c.dispatch(Remove{Index: index})
}

// SetQuantity updates the quantity at index; below one removes the line.
func (c *Cart) SetQuantity(index, quantity int) bool {
	return c.dispatch(SetQuantity{Index: index, Quantity: quantity})
}

// Clear empties the cart.
func (c *Cart) Clear() bool {
	return c.dispatch(Clear{})
}

// Items returns a copy of the current line items.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.CartItem(nil), c.items...)
}

// Total is the cart's derived grand total.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Total(c.items)
}

// Count is the derived number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Count(c.items)
}
