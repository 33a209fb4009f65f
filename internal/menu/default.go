package menu

const placeholderImage = "https://via.placeholder.com/80x60"

// DefaultCatalog is the house bento menu served when no MENU_FILE is configured.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Day{
		{
			Key:   "mon",
			Label: "週一",
			Items: []Item{
				{ID: 1, Name: "雞腿便當", Price: 80, Description: "去骨雞腿、季節蔬菜三樣、滷蛋", Dietary: "葷食", Image: placeholderImage},
				{ID: 2, Name: "素食便當", Price: 75, Description: "什錦菇菜、豆干、炒蔬菜", Dietary: "蛋奶素", Image: placeholderImage},
			},
		},
		{
			Key:   "tue",
			Label: "週二",
			Items: []Item{
				{ID: 3, Name: "排骨便當", Price: 85, Description: "炸排骨、季節蔬菜三樣、滷蛋", Dietary: "葷食", Image: placeholderImage},
				{ID: 4, Name: "麻婆豆腐飯", Price: 75, Description: "麻婆豆腐、蔬菜、滷蛋", Dietary: "葷食(含辣)", Image: placeholderImage},
			},
		},
		{
			Key:   "wed",
			Label: "週三",
			Items: []Item{
				{ID: 5, Name: "鯖魚便當", Price: 90, Description: "鯖魚一片、季節蔬菜三樣", Dietary: "葷食", Image: placeholderImage},
				{ID: 6, Name: "雞柳便當", Price: 80, Description: "炸雞柳、季節蔬菜三樣", Dietary: "葷食", Image: placeholderImage},
			},
		},
	})
}
