package menu

// Catalog is the read-only weekly menu.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	days  []Day
	index map[string]int
}

func NewCatalog(days []Day) *Catalog {
	c := &Catalog{
		days:  make([]Day, 0, len(days)),
		index: make(map[string]int, len(days)),
	}

	for _, d := range days {
		items := make([]Item, len(d.Items))
		copy(items, d.Items)

		c.index[d.Key] = len(c.days)
		c.days = append(c.days, Day{Key: d.Key, Label: d.Label, Items: items})
	}

	return c
}

// AvailableDates returns every date key in menu order.
func (c *Catalog) AvailableDates() []string {
	keys := make([]string, len(c.days))
	for i, d := range c.days {
		keys[i] = d.Key
	}
	return keys
}

// Days returns the dates with their display labels, without items.
func (c *Catalog) Days() []Day {
	out := make([]Day, len(c.days))
	for i, d := range c.days {
		out[i] = Day{Key: d.Key, Label: d.Label}
	}
	return out
}

// ItemsFor returns the menu for a date.
// Unknown keys yield an empty slice, not an error.
func (c *Catalog) ItemsFor(date string) []Item {
	i, ok := c.index[date]
	if !ok {
		return []Item{}
	}

	items := make([]Item, len(c.days[i].Items))
	copy(items, c.days[i].Items)
	return items
}

// Lookup finds one item on a date's menu.
func (c *Catalog) Lookup(date string, id int) (Item, bool) {
	i, ok := c.index[date]
	if !ok {
		return Item{}, false
	}

	for _, item := range c.days[i].Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}
