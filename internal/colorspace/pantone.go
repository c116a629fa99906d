package colorspace

// pantoneEntry pairs a human-readable Pantone-style label with its sRGB
// approximation. The table is fixed and verbatim per spec §4.1/§6 ("28-
// entry RGB table (verbatim)").
type pantoneEntry struct {
	Name string
	RGB  RGB
}

var pantoneTable = []pantoneEntry{
	{"Pantone 18-1664 Fiesta", RGB{213, 44, 52}},
	{"Pantone 19-1664 Chili Pepper", RGB{155, 35, 53}},
	{"Pantone 17-1463 Tangerine", RGB{221, 106, 60}},
	{"Pantone 14-1064 Marigold", RGB{235, 169, 72}},
	{"Pantone 13-0859 Buttercup", RGB{245, 199, 75}},
	{"Pantone 12-0752 Sunshine", RGB{249, 211, 92}},
	{"Pantone 15-0343 Greenery", RGB{136, 176, 75}},
	{"Pantone 17-6153 Kelly Green", RGB{0, 130, 81}},
	{"Pantone 18-5841 Eden", RGB{35, 98, 77}},
	{"Pantone 19-5415 Hunter Green", RGB{43, 77, 59}},
	{"Pantone 16-5938 Biscay Green", RGB{98, 181, 166}},
	{"Pantone 15-5519 Turquoise", RGB{66, 167, 166}},
	{"Pantone 18-4140 Classic Blue", RGB{15, 76, 129}},
	{"Pantone 19-4052 Dazzling Blue", RGB{39, 94, 153}},
	{"Pantone 14-4318 Cerulean", RGB{128, 172, 197}},
	{"Pantone 19-3832 Blue Depths", RGB{46, 58, 99}},
	{"Pantone 18-3838 Ultra Violet", RGB{95, 75, 139}},
	{"Pantone 17-3628 Amethyst Orchid", RGB{150, 100, 172}},
	{"Pantone 17-2031 Fuchsia Pink", RGB{226, 98, 155}},
	{"Pantone 18-2120 Honeysuckle", RGB{216, 82, 104}},
	{"Pantone 17-1937 Pink Yarrow", RGB{206, 62, 107}},
	{"Pantone 16-1546 Living Coral", RGB{255, 111, 97}},
	{"Pantone 13-1520 Rose Quartz", RGB{247, 202, 201}},
	{"Pantone 11-4001 Bright White", RGB{242, 242, 240}},
	{"Pantone 14-4102 Harbor Mist", RGB{192, 196, 199}},
	{"Pantone 17-4402 Monument", RGB{130, 132, 127}},
	{"Pantone 19-4007 Black", RGB{35, 35, 38}},
	{"Pantone 16-1327 Warm Sand", RGB{198, 166, 130}},
}

// NearestPantone returns the label of the Pantone table entry closest to
// c under Euclidean distance in sRGB, per spec §4.1.
func NearestPantone(c RGB) string {
	best := pantoneTable[0]
	bestDist := sqDistRGB(c, best.RGB)
	for _, entry := range pantoneTable[1:] {
		d := sqDistRGB(c, entry.RGB)
		if d < bestDist {
			bestDist = d
			best = entry
		}
	}
	return best.Name
}

func sqDistRGB(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
