package naming

// toneNames holds the five candidate names for one tone bucket
// (dark/medium/light) within a single palette. Order is significant:
// selection walks the list from a seeded index.
type toneNames struct {
	Dark   []string
	Medium []string
	Light  []string
}

func (t toneNames) bucket(tone string) []string {
	switch tone {
	case toneDark:
		return t.Dark
	case toneLight:
		return t.Light
	default:
		return t.Medium
	}
}

// neutralNames and earthNames back the two non-hue-keyed palettes in
// §4.5.1.
var neutralNames = toneNames{
	Dark:   []string{"Charcoal", "Onyx", "Raven", "Obsidian", "Graphite"},
	Medium: []string{"Ash", "Slate", "Pewter", "Fog", "Stone"},
	Light:  []string{"Chalk", "Ivory", "Pearl", "Mist", "Linen"},
}

var earthNames = toneNames{
	Dark:   []string{"Umber", "Espresso", "Cocoa", "Walnut", "Loam"},
	Medium: []string{"Clay", "Sienna", "Sand", "Terracotta", "Ochre"},
	Light:  []string{"Sandstone", "Wheat", "Beige", "Dune", "Parchment"},
}

// huePalette is one of the eleven hue-keyed name tables, wrap-aware over
// [minHue, maxHue) in degrees.
type huePalette struct {
	Name    string
	MinHue  float64
	MaxHue  float64
	Names   toneNames
}

func (h huePalette) matches(hue float64) bool {
	if h.MinHue <= h.MaxHue {
		return hue >= h.MinHue && hue < h.MaxHue
	}
	return hue >= h.MinHue || hue < h.MaxHue
}

var huePalettes = []huePalette{
	{
		Name: "Crimson", MinHue: 345, MaxHue: 20,
		Names: toneNames{
			Dark:   []string{"Garnet", "Maroon", "Brick", "Wine", "Mahogany"},
			Medium: []string{"Crimson", "Scarlet", "Ruby", "Cherry", "Rouge"},
			Light:  []string{"Blush", "Coral Pink", "Rosewood", "Salmon", "Watermelon"},
		},
	},
	{
		Name: "Copper", MinHue: 20, MaxHue: 45,
		Names: toneNames{
			Dark:   []string{"Rust", "Copper Sienna", "Mahogany Copper", "Bronze", "Umber Copper"},
			Medium: []string{"Copper", "Terracotta", "Amber Clay", "Burnt Orange", "Clay Copper"},
			Light:  []string{"Peach", "Apricot", "Cantaloupe", "Coral Sand", "Papaya"},
		},
	},
	{
		Name: "Solar", MinHue: 45, MaxHue: 75,
		Names: toneNames{
			Dark:   []string{"Amber", "Mustard", "Bronze Gold", "Saffron Dusk", "Ochre Gold"},
			Medium: []string{"Solar", "Marigold", "Sunflower", "Honey", "Goldenrod"},
			Light:  []string{"Butter", "Daffodil", "Lemon Chiffon", "Vanilla", "Cream Gold"},
		},
	},
	{
		Name: "Lime", MinHue: 75, MaxHue: 110,
		Names: toneNames{
			Dark:   []string{"Olive", "Moss", "Fern Dark", "Avocado", "Pickle"},
			Medium: []string{"Lime", "Chartreuse", "Pear", "Spring Green", "Citron"},
			Light:  []string{"Honeydew", "Pistachio", "Mint Lime", "Pale Lime", "Celery"},
		},
	},
	{
		Name: "Verdant", MinHue: 110, MaxHue: 150,
		Names: toneNames{
			Dark:   []string{"Forest", "Pine", "Hunter Green", "Juniper", "Basil"},
			Medium: []string{"Verdant", "Shamrock", "Clover", "Fern", "Meadow"},
			Light:  []string{"Sage", "Mint", "Seafoam", "Pale Verdant", "Willow"},
		},
	},
	{
		Name: "Emerald", MinHue: 150, MaxHue: 185,
		Names: toneNames{
			Dark:   []string{"Malachite", "Deep Emerald", "Jade Dark", "Spruce", "Bottle Green"},
			Medium: []string{"Emerald", "Jade", "Viridian", "Teal Green", "Kelly"},
			Light:  []string{"Mint Emerald", "Jade Mist", "Aqua Green", "Pale Jade", "Spearmint"},
		},
	},
	{
		Name: "Lagoon", MinHue: 185, MaxHue: 210,
		Names: toneNames{
			Dark:   []string{"Teal Dark", "Deep Lagoon", "Abyss", "Marine", "Navy Teal"},
			Medium: []string{"Lagoon", "Teal", "Turquoise", "Aquamarine", "Cerulean Teal"},
			Light:  []string{"Aqua", "Pale Turquoise", "Seaglass", "Lagoon Mist", "Sky Aqua"},
		},
	},
	{
		Name: "Azure", MinHue: 210, MaxHue: 240,
		Names: toneNames{
			Dark:   []string{"Navy", "Midnight Blue", "Denim Dark", "Sapphire Dark", "Deep Azure"},
			Medium: []string{"Azure", "Cobalt", "Sky Blue", "Cerulean", "Ultramarine"},
			Light:  []string{"Powder Blue", "Baby Blue", "Ice Blue", "Pale Azure", "Periwinkle Mist"},
		},
	},
	{
		Name: "Indigo", MinHue: 240, MaxHue: 275,
		Names: toneNames{
			Dark:   []string{"Midnight Indigo", "Deep Indigo", "Navy Indigo", "Twilight", "Blue Violet Dark"},
			Medium: []string{"Indigo", "Cobalt Violet", "Blue Iris", "Ultramarine Violet", "Denim Indigo"},
			Light:  []string{"Lavender Blue", "Periwinkle", "Iris Mist", "Pale Indigo", "Hyacinth"},
		},
	},
	{
		Name: "Violet", MinHue: 275, MaxHue: 305,
		Names: toneNames{
			Dark:   []string{"Plum", "Deep Violet", "Aubergine", "Eggplant", "Grape Dark"},
			Medium: []string{"Violet", "Amethyst", "Orchid", "Mauve", "Lilac Dark"},
			Light:  []string{"Lilac", "Lavender", "Pale Violet", "Wisteria", "Mauve Mist"},
		},
	},
	{
		Name: "Magenta", MinHue: 305, MaxHue: 345,
		Names: toneNames{
			Dark:   []string{"Mulberry", "Deep Magenta", "Byzantium", "Wine Magenta", "Boysenberry"},
			Medium: []string{"Magenta", "Fuchsia", "Orchid Pink", "Cerise", "Raspberry"},
			Light:  []string{"Pink Magenta", "Cotton Candy", "Pale Fuchsia", "Carnation", "Bubblegum"},
		},
	},
}

func huePaletteFor(hue float64) huePalette {
	for _, p := range huePalettes {
		if p.matches(hue) {
			return p
		}
	}
	return huePalettes[0]
}
