package menu

// Item is one dish on a day's menu.
// Prices are whole currency units.
type Item struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Price       int    `json:"price" yaml:"price"`
	Description string `json:"description" yaml:"description"`
	Dietary     string `json:"dietary" yaml:"dietary"`
	Image       string `json:"image" yaml:"image"`
}

// Day is a delivery date offered by the catalog.
type Day struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Items []Item `json:"items,omitempty" yaml:"items"`
}
