package order

import (
	"math"

	"github.com/aurodavid1986/ordering-app/internal/menu"
)

// Line is a menu item with a quantity of at least one.
type Line struct {
	Item     menu.Item
	Quantity int
}

func (l Line) Subtotal() int {
	return l.Item.Price * l.Quantity
}

// Cart keeps lines in selection order, one per item ID.
type Cart struct {
	lines []Line
}

func (c *Cart) find(id int) int {
	for i, l := range c.lines {
		if l.Item.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) remove(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// fits reports whether the cart total stays within int range when the line
// at skip (or no line, for -1) is replaced by price x quantity.
func (c *Cart) fits(skip, price, quantity int) bool {
	headroom := math.MaxInt
	for i, l := range c.lines {
		if i != skip {
			headroom -= l.Subtotal()
		}
	}
	return price == 0 || quantity <= headroom/price
}

// Toggle adds the item with quantity 1, or drops its line if already present.
func (c *Cart) Toggle(item menu.Item) error {
	if i := c.find(item.ID); i >= 0 {
		c.remove(i)
		return nil
	}
	if !c.fits(-1, item.Price, 1) {
		return ErrQuantityTooLarge
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
	return nil
}

// SetQuantity updates an existing line. Zero or below removes it.
// Unknown IDs are ignored. A quantity whose total would not fit in an int
// leaves the cart unchanged.
func (c *Cart) SetQuantity(id, quantity int) error {
	i := c.find(id)
	if i < 0 {
		return nil
	}
	if quantity <= 0 {
		c.remove(i)
		return nil
	}
	if !c.fits(i, c.lines[i].Item.Price, quantity) {
		return ErrQuantityTooLarge
	}
	c.lines[i].Quantity = quantity
	return nil
}

func (c *Cart) Increment(id int) error {
	q, ok := c.Quantity(id)
	if !ok {
		return nil
	}
	if q == math.MaxInt {
		return ErrQuantityTooLarge
	}
	return c.SetQuantity(id, q+1)
}

func (c *Cart) Decrement(id int) error {
	if q, ok := c.Quantity(id); ok {
		return c.SetQuantity(id, q-1)
	}
	return nil
}

func (c *Cart) Quantity(id int) (int, bool) {
	i := c.find(id)
	if i < 0 {
		return 0, false
	}
	return c.lines[i].Quantity, true
}

func (c *Cart) Contains(id int) bool {
	return c.find(id) >= 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is recomputed on every call.
func (c *Cart) Total() int {
	total := 0
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}
