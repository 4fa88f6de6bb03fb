package cart

import "github.com/Tharak23/bridge-full-stack/models"

// Command is a cart mutation. The reducer in Apply is pure; persistence is
// the wrapping Cart's concern.
type Command interface {
	isCommand()
}

// Add appends a line item, or bumps the quantity of the existing line with
// the same (slug, category) identity.
type Add struct {
	Item models.CartItem
}

// Remove drops the line at a positional index from the current snapshot.
type Remove struct {
	Index int
}

// SetQuantity replaces the quantity of the line at index. A quantity below
// one removes the line: an item cannot exist with zero quantity.
type SetQuantity struct {
	Index    int
	Quantity int
}

// Clear empties the cart.
type Clear struct{}

func (Add) isCommand()         {}
func (Remove) isCommand()      {}
func (SetQuantity) isCommand() {}
func (Clear) isCommand()       {}

// Apply returns the cart state after cmd. The input slice is never mutated.
func Apply(state []models.CartItem, cmd Command) []models.CartItem {
	switch c := cmd.(type) {
	case Add:
		item := c.Item
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		for i, existing := range state {
			if existing.ServiceSlug == item.ServiceSlug && existing.ServiceCategory == item.ServiceCategory {
				next := append([]models.CartItem(nil), state...)
				next[i].Quantity += item.Quantity
				return next
			}
		}
		return append(append([]models.CartItem(nil), state...), item)

	case Remove:
		if c.Index < 0 || c.Index >= len(state) {
			return state
		}
		next := append([]models.CartItem(nil), state[:c.Index]...)
		return append(next, state[c.Index+1:]...)

	case SetQuantity:
		if c.Quantity < 1 {
			return Apply(state, Remove{Index: c.Index})
		}
		if c.Index < 0 || c.Index >= len(state) {
			return state
		}
		next := append([]models.CartItem(nil), state...)
		next[c.Index].Quantity = c.Quantity
		return next

	case Clear:
		return []models.CartItem{}
	}
	return state
}

// Total sums price x quantity over all lines, counting a non-positive or
// missing price as zero.
func Total(state []models.CartItem) float64 {
	var sum float64
	for _, item := range state {
		price := item.Price
		if price < 0 {
			price = 0
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		sum += price * float64(qty)
	}
	return sum
}

// Count sums quantities over all lines.
func Count(state []models.CartItem) int {
	var count int
	for _, item := range state {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		count += qty
	}
	return count
}
