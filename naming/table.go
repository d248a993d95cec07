package naming

// curated is the built-in reference table. Entry order is significant: ties
// in distance go to the earlier entry.
var curated = []struct{ name, hex string }{
	// Reds
	{"Red", "#FF0000"},
	{"Crimson", "#DC143C"},
	{"Firebrick", "#B22222"},
	{"Indian Red", "#CD5C5C"},
	{"Salmon", "#FA8072"},
	{"Light Coral", "#F08080"},
	{"Dark Red", "#8B0000"},
	{"Maroon", "#800000"},
	{"Scarlet", "#FF2400"},
	{"Ruby", "#E0115F"},
	{"Burgundy", "#800020"},
	{"Wine", "#722F37"},
	// Reds-Oranges
	{"Tomato", "#FF6347"},
	{"Coral", "#FF7F50"},
	{"Vermilion", "#E34234"},
	{"Terracotta", "#E2725B"},
	// Oranges
	{"Orange Red", "#FF4500"},
	{"Dark Orange", "#FF8C00"},
	{"Orange", "#FFA500"},
	{"Tangerine", "#FF9966"},
	{"Peach", "#FFCBA4"},
	{"Apricot", "#FBCEB1"},
	{"Burnt Orange", "#CC5500"},
	{"Rust", "#B7410E"},
	// Gold / Amber
	{"Gold", "#FFD700"},
	{"Amber", "#FFBF00"},
	{"Goldenrod", "#DAA520"},
	{"Dark Goldenrod", "#B8860B"},
	{"Honey", "#EB9605"},
	{"Champagne", "#F7E7CE"},
	// Yellows
	{"Yellow", "#FFFF00"},
	{"Lemon", "#FFF44F"},
	{"Canary", "#FFEF00"},
	{"Mustard", "#FFDB58"},
	{"Saffron", "#F4C430"},
	{"Cream", "#FFFDD0"},
	{"Ivory", "#FFFFF0"},
	{"Flax", "#EEDC82"},
	{"Khaki", "#F0E68C"},
	{"Dark Khaki", "#BDB76B"},
	// Yellow-Greens
	{"Chartreuse", "#7FFF00"},
	{"Lime", "#00FF00"},
	{"Lime Green", "#32CD32"},
	{"Yellow Green", "#9ACD32"},
	{"Lawn Green", "#7CFC00"},
	{"Olive", "#808000"},
	{"Dark Olive", "#556B2F"},
	{"Olive Drab", "#6B8E23"},
	// Greens
	{"Green", "#008000"},
	{"Forest Green", "#228B22"},
	{"Sea Green", "#2E8B57"},
	{"Spring Green", "#00FF7F"},
	{"Emerald", "#50C878"},
	{"Jade", "#00A86B"},
	{"Sage", "#BCB88A"},
	{"Mint", "#98FF98"},
	{"Celadon", "#ACE1AF"},
	{"Hunter Green", "#355E3B"},
	{"Fern", "#4F7942"},
	{"Moss", "#8A9A5B"},
	{"Pistachio", "#93C572"},
	// Teals / Cyans
	{"Teal", "#008080"},
	{"Cyan", "#00FFFF"},
	{"Dark Cyan", "#008B8B"},
	{"Aqua", "#00FFFF"},
	{"Aquamarine", "#7FFFD4"},
	{"Turquoise", "#40E0D0"},
	{"Dark Turquoise", "#00CED1"},
	{"Medium Turquoise", "#48D1CC"},
	{"Light Sea Green", "#20B2AA"},
	{"Cadet Blue", "#5F9EA0"},
	// Blues
	{"Blue", "#0000FF"},
	{"Royal Blue", "#4169E1"},
	{"Cornflower", "#6495ED"},
	{"Steel Blue", "#4682B4"},
	{"Dodger Blue", "#1E90FF"},
	{"Deep Sky Blue", "#00BFFF"},
	{"Sky Blue", "#87CEEB"},
	{"Light Blue", "#ADD8E6"},
	{"Powder Blue", "#B0E0E6"},
	{"Alice Blue", "#F0F8FF"},
	{"Navy", "#000080"},
	{"Midnight Blue", "#191970"},
	{"Dark Blue", "#00008B"},
	{"Medium Blue", "#0000CD"},
	{"Cobalt", "#0047AB"},
	{"Sapphire", "#0F52BA"},
	{"Azure", "#007FFF"},
	{"Cerulean", "#007BA7"},
	{"Denim", "#1560BD"},
	{"Baby Blue", "#89CFF0"},
	{"Periwinkle", "#CCCCFF"},
	// Indigos / Blue-Violets
	{"Indigo", "#4B0082"},
	{"Slate Blue", "#6A5ACD"},
	{"Dark Slate Blue", "#483D8B"},
	{"Medium Slate Blue", "#7B68EE"},
	{"Blue Violet", "#8A2BE2"},
	// Purples / Violets
	{"Purple", "#800080"},
	{"Dark Violet", "#9400D3"},
	{"Dark Orchid", "#9932CC"},
	{"Medium Orchid", "#BA55D3"},
	{"Orchid", "#DA70D6"},
	{"Plum", "#DDA0DD"},
	{"Lavender", "#E6E6FA"},
	{"Thistle", "#D8BFD8"},
	{"Violet", "#EE82EE"},
	{"Eggplant", "#614051"},
	{"Mauve", "#E0B0FF"},
	{"Amethyst", "#9966CC"},
	{"Heather", "#B7C3D0"},
	// Magentas / Pinks
	{"Magenta", "#FF00FF"},
	{"Fuchsia", "#FF00FF"},
	{"Hot Pink", "#FF69B4"},
	{"Deep Pink", "#FF1493"},
	{"Medium Violet Red", "#C71585"},
	{"Pale Violet Red", "#DB7093"},
	{"Pink", "#FFC0CB"},
	{"Light Pink", "#FFB6C1"},
	{"Misty Rose", "#FFE4E1"},
	{"Rose", "#FF007F"},
	{"Blush", "#DE5D83"},
	{"Carnation", "#FFA6C9"},
	{"Raspberry", "#E30B5C"},
	{"Cerise", "#DE3163"},
	// Browns
	{"Brown", "#A52A2A"},
	{"Saddle Brown", "#8B4513"},
	{"Sienna", "#A0522D"},
	{"Chocolate", "#D2691E"},
	{"Peru", "#CD853F"},
	{"Sandy Brown", "#F4A460"},
	{"Tan", "#D2B48C"},
	{"Burlywood", "#DEB887"},
	{"Wheat", "#F5DEB3"},
	{"Bisque", "#FFE4C4"},
	{"Coffee", "#6F4E37"},
	{"Walnut", "#5C5248"},
	{"Mahogany", "#C04000"},
	{"Cinnamon", "#D2691E"},
	{"Chestnut", "#954535"},
	{"Umber", "#635147"},
	// Neutrals
	{"White", "#FFFFFF"},
	{"Snow", "#FFFAFA"},
	{"Ghost White", "#F8F8FF"},
	{"White Smoke", "#F5F5F5"},
	{"Gainsboro", "#DCDCDC"},
	{"Light Gray", "#D3D3D3"},
	{"Silver", "#C0C0C0"},
	{"Dark Gray", "#A9A9A9"},
	{"Gray", "#808080"},
	{"Dim Gray", "#696969"},
	{"Charcoal", "#36454F"},
	{"Onyx", "#353839"},
	{"Jet", "#343434"},
	{"Black", "#000000"},
	// Specialty
	{"Beige", "#F5F5DC"},
	{"Linen", "#FAF0E6"},
	{"Antique White", "#FAEBD7"},
	{"Papaya Whip", "#FFEFD5"},
	{"Blanched Almond", "#FFEBCD"},
	{"Cornsilk", "#FFF8DC"},
	{"Seashell", "#FFF5EE"},
	{"Old Lace", "#FDF5E6"},
	{"Honeydew", "#F0FFF0"},
	{"Lavender Blush", "#FFF0F5"},
}
