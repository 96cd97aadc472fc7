package catalog

import "github.com/lh1862570-stack/backendapp/internal/core/domain"

func ptr(v float64) *float64 { return &v }

// defaultStars is the built-in bright-star catalog, J2000 epoch, ordered
// brightest first. Coordinates follow the Yale Bright Star Catalog and
// IAU star names. A handful of well-studied stars carry physical
// attributes; the rest have positions and magnitudes only.
var defaultStars = []*domain.Star{
	{Name: "Sirius", RADeg: 101.287, DecDeg: -16.716, Magnitude: -1.46,
		DistLY: ptr(8.6), ColorTemp: ptr(9940), BV: ptr(0.00), RGBHex: "#aabfff",
		Aliases: []string{"Alpha Canis Majoris", "Dog Star"},
		IDs:     map[string]int{"hip": 32349, "hr": 2491}},
	{Name: "Canopus", RADeg: 95.988, DecDeg: -52.696, Magnitude: -0.74},
	{Name: "Arcturus", RADeg: 213.915, DecDeg: 19.182, Magnitude: -0.05,
		DistLY: ptr(36.7), ColorTemp: ptr(4286), BV: ptr(1.23), RGBHex: "#ffd2a1",
		IDs: map[string]int{"hip": 69673, "hr": 5340}},
	{Name: "Vega", RADeg: 279.235, DecDeg: 38.784, Magnitude: 0.03,
		DistLY: ptr(25.0), ColorTemp: ptr(9602), BV: ptr(0.00), RGBHex: "#a4c2ff",
		Aliases: []string{"Alpha Lyrae"},
		IDs:     map[string]int{"hip": 91262, "hr": 7001}},
	{Name: "Capella", RADeg: 79.172, DecDeg: 45.998, Magnitude: 0.08},
	{Name: "Rigel", RADeg: 78.634, DecDeg: -8.202, Magnitude: 0.13},
	{Name: "Procyon", RADeg: 114.826, DecDeg: 5.225, Magnitude: 0.34},
	{Name: "Achernar", RADeg: 24.429, DecDeg: -57.237, Magnitude: 0.46},
	{Name: "Betelgeuse", RADeg: 88.793, DecDeg: 7.407, Magnitude: 0.50,
		DistLY: ptr(548), ColorTemp: ptr(3600), BV: ptr(1.85), RGBHex: "#ffb56c",
		Aliases: []string{"Alpha Orionis"},
		IDs:     map[string]int{"hip": 27989, "hr": 2061}},
	{Name: "Altair", RADeg: 297.696, DecDeg: 8.868, Magnitude: 0.76},
	{Name: "Aldebaran", RADeg: 68.980, DecDeg: 16.509, Magnitude: 0.85},
	{Name: "Antares", RADeg: 247.352, DecDeg: -26.432, Magnitude: 0.96},
	{Name: "Spica", RADeg: 201.298, DecDeg: -11.161, Magnitude: 0.97},
	{Name: "Pollux", RADeg: 116.329, DecDeg: 28.026, Magnitude: 1.14},
	{Name: "Fomalhaut", RADeg: 344.413, DecDeg: -29.622, Magnitude: 1.16},
	{Name: "Deneb", RADeg: 310.358, DecDeg: 45.280, Magnitude: 1.25},
	{Name: "Regulus", RADeg: 152.093, DecDeg: 11.967, Magnitude: 1.35},
	{Name: "Adhara", RADeg: 104.656, DecDeg: -28.972, Magnitude: 1.50},
	{Name: "Castor", RADeg: 113.650, DecDeg: 31.889, Magnitude: 1.58},
	{Name: "Shaula", RADeg: 263.402, DecDeg: -37.104, Magnitude: 1.63},
	{Name: "Bellatrix", RADeg: 81.283, DecDeg: 6.350, Magnitude: 1.64},
	{Name: "Elnath", RADeg: 81.573, DecDeg: 28.608, Magnitude: 1.65},
	{Name: "Alnilam", RADeg: 84.053, DecDeg: -1.202, Magnitude: 1.69},
	{Name: "Alnitak", RADeg: 85.190, DecDeg: -1.943, Magnitude: 1.77},
	{Name: "Alioth", RADeg: 193.507, DecDeg: 55.960, Magnitude: 1.77},
	{Name: "Dubhe", RADeg: 165.932, DecDeg: 61.751, Magnitude: 1.79,
		Aliases: []string{"Alpha Ursae Majoris"}},
	{Name: "Mirfak", RADeg: 51.081, DecDeg: 49.861, Magnitude: 1.79},
	{Name: "Kaus Australis", RADeg: 276.043, DecDeg: -34.384, Magnitude: 1.85},
	{Name: "Alkaid", RADeg: 206.885, DecDeg: 49.313, Magnitude: 1.86},
	{Name: "Menkalinan", RADeg: 89.882, DecDeg: 44.948, Magnitude: 1.90},
	{Name: "Alhena", RADeg: 99.428, DecDeg: 16.399, Magnitude: 1.93},
	{Name: "Mirzam", RADeg: 95.675, DecDeg: -17.956, Magnitude: 1.98},
	{Name: "Alphard", RADeg: 141.897, DecDeg: -8.659, Magnitude: 2.00},
	{Name: "Hamal", RADeg: 31.793, DecDeg: 23.463, Magnitude: 2.00},
	{Name: "Polaris", RADeg: 37.954, DecDeg: 89.264, Magnitude: 2.02,
		DistLY: ptr(433), ColorTemp: ptr(6015), BV: ptr(0.60), RGBHex: "#fff4e8",
		Aliases: []string{"Alpha Ursae Minoris", "North Star"},
		IDs:     map[string]int{"hip": 11767, "hr": 424}},
	{Name: "Diphda", RADeg: 10.897, DecDeg: -17.987, Magnitude: 2.02},
	{Name: "Nunki", RADeg: 283.816, DecDeg: -26.297, Magnitude: 2.02},
	{Name: "Mizar", RADeg: 200.981, DecDeg: 54.925, Magnitude: 2.04},
	{Name: "Alpheratz", RADeg: 2.097, DecDeg: 29.091, Magnitude: 2.06},
	{Name: "Mirach", RADeg: 17.433, DecDeg: 35.621, Magnitude: 2.05},
	{Name: "Kochab", RADeg: 222.676, DecDeg: 74.156, Magnitude: 2.08,
		Aliases: []string{"Beta Ursae Minoris"}},
	{Name: "Rasalhague", RADeg: 263.734, DecDeg: 12.560, Magnitude: 2.08},
	{Name: "Saiph", RADeg: 86.939, DecDeg: -9.670, Magnitude: 2.09},
	{Name: "Algol", RADeg: 47.042, DecDeg: 40.957, Magnitude: 2.12},
	{Name: "Denebola", RADeg: 177.265, DecDeg: 14.572, Magnitude: 2.13},
	{Name: "Suhail", RADeg: 136.999, DecDeg: -43.433, Magnitude: 2.21},
	{Name: "Alphecca", RADeg: 233.672, DecDeg: 26.715, Magnitude: 2.23},
	{Name: "Mintaka", RADeg: 83.002, DecDeg: -0.299, Magnitude: 2.23},
	{Name: "Sadr", RADeg: 305.557, DecDeg: 40.257, Magnitude: 2.23},
	{Name: "Eltanin", RADeg: 269.152, DecDeg: 51.489, Magnitude: 2.23,
		Aliases: []string{"Gamma Draconis"}},
	{Name: "Schedar", RADeg: 10.127, DecDeg: 56.537, Magnitude: 2.23,
		Aliases: []string{"Alpha Cassiopeiae"}},
	{Name: "Caph", RADeg: 2.295, DecDeg: 59.150, Magnitude: 2.27},
	{Name: "Dschubba", RADeg: 240.083, DecDeg: -22.622, Magnitude: 2.32},
	{Name: "Merak", RADeg: 165.460, DecDeg: 56.382, Magnitude: 2.37},
	{Name: "Izar", RADeg: 221.247, DecDeg: 27.074, Magnitude: 2.37},
	{Name: "Enif", RADeg: 326.046, DecDeg: 9.875, Magnitude: 2.39},
	{Name: "Phecda", RADeg: 178.458, DecDeg: 53.695, Magnitude: 2.44},
	{Name: "Scheat", RADeg: 345.944, DecDeg: 28.083, Magnitude: 2.42},
	{Name: "Gamma Cassiopeiae", RADeg: 14.177, DecDeg: 60.717, Magnitude: 2.47,
		Aliases: []string{"Navi"}},
	{Name: "Markab", RADeg: 346.190, DecDeg: 15.205, Magnitude: 2.49},
	{Name: "Alderamin", RADeg: 319.645, DecDeg: 62.586, Magnitude: 2.51,
		Aliases: []string{"Alpha Cephei"}},
	{Name: "Ruchbah", RADeg: 21.454, DecDeg: 60.235, Magnitude: 2.68},
	{Name: "Rastaban", RADeg: 262.608, DecDeg: 52.301, Magnitude: 2.79},
	{Name: "Pherkad", RADeg: 230.182, DecDeg: 71.834, Magnitude: 3.00},
	{Name: "Cor Caroli", RADeg: 194.007, DecDeg: 38.318, Magnitude: 2.81},
	{Name: "Aldhibah", RADeg: 256.343, DecDeg: 65.715, Magnitude: 3.17},
	{Name: "Albireo", RADeg: 292.680, DecDeg: 27.960, Magnitude: 3.18},
	{Name: "Errai", RADeg: 354.837, DecDeg: 77.632, Magnitude: 3.21,
		Aliases: []string{"Gamma Cephei"}},
	{Name: "Alfirk", RADeg: 322.165, DecDeg: 70.561, Magnitude: 3.23,
		Aliases: []string{"Beta Cephei"}},
	{Name: "Edasich", RADeg: 231.232, DecDeg: 58.966, Magnitude: 3.29},
	{Name: "Megrez", RADeg: 183.857, DecDeg: 57.033, Magnitude: 3.31},
	{Name: "Zeta Cephei", RADeg: 332.714, DecDeg: 58.201, Magnitude: 3.35},
	{Name: "Segin", RADeg: 28.599, DecDeg: 63.670, Magnitude: 3.37},
	{Name: "Thuban", RADeg: 211.097, DecDeg: 64.376, Magnitude: 3.65,
		Aliases: []string{"Alpha Draconis"}},
	{Name: "Grumium", RADeg: 268.382, DecDeg: 56.873, Magnitude: 3.75},
	{Name: "Giausar", RADeg: 175.942, DecDeg: 69.331, Magnitude: 3.85},
	{Name: "Alcor", RADeg: 201.306, DecDeg: 54.988, Magnitude: 3.99},
	{Name: "Delta Cephei", RADeg: 337.293, DecDeg: 58.415, Magnitude: 4.07},
	{Name: "Gianfar", RADeg: 284.073, DecDeg: 75.388, Magnitude: 4.13},
	{Name: "Epsilon UMi", RADeg: 251.493, DecDeg: 82.037, Magnitude: 4.21},
	{Name: "Zeta UMi", RADeg: 236.015, DecDeg: 77.794, Magnitude: 4.29},
	{Name: "Yildun", RADeg: 263.054, DecDeg: 86.586, Magnitude: 4.36},
	{Name: "Kuma", RADeg: 263.067, DecDeg: 55.173, Magnitude: 4.87},
}

// defaultBodies lists the solar-system bodies served by the ephemeris, in
// display order.
var defaultBodies = []*domain.Body{
	{ID: "sun", Name: "Sun", Type: domain.BodySun},
	{ID: "moon", Name: "Moon", Type: domain.BodyMoon},
	{ID: "mercury", Name: "Mercury", Type: domain.BodyPlanet},
	{ID: "venus", Name: "Venus", Type: domain.BodyPlanet},
	{ID: "mars", Name: "Mars", Type: domain.BodyPlanet},
	{ID: "jupiter", Name: "Jupiter", Type: domain.BodyPlanet},
	{ID: "saturn", Name: "Saturn", Type: domain.BodyPlanet},
	{ID: "uranus", Name: "Uranus", Type: domain.BodyPlanet},
	{ID: "neptune", Name: "Neptune", Type: domain.BodyPlanet},
}

// defaultConstellations holds the drawable circumpolar figures. Edge
// pairs index into the Stars slice of each constellation.
var defaultConstellations = []*domain.Constellation{
	{
		Name:  "Ursa Minor",
		Stars: []string{"Polaris", "Yildun", "Epsilon UMi", "Zeta UMi", "Pherkad", "Kochab"},
		// Little Dipper handle into the bowl, bowl closed on both sides.
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {5, 4}},
	},
	{
		Name:  "Ursa Major",
		Stars: []string{"Dubhe", "Merak", "Phecda", "Megrez", "Alioth", "Mizar", "Alkaid"},
		// Classic Big Dipper outline with the bowl closed.
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {3, 4}, {4, 5}, {5, 6}},
	},
	{
		Name:  "Draco",
		Stars: []string{"Eltanin", "Rastaban", "Grumium", "Kuma", "Edasich", "Thuban", "Gianfar", "Aldhibah"},
		// Serpentine chain from the head across the pole.
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}},
	},
	{
		Name:  "Cepheus",
		Stars: []string{"Alderamin", "Alfirk", "Delta Cephei", "Zeta Cephei", "Errai"},
		// House shape, closed loop.
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}},
	},
	{
		Name:  "Cassiopeia",
		Stars: []string{"Schedar", "Caph", "Gamma Cassiopeiae", "Ruchbah", "Segin"},
		// The W, drawn as an open chain.
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
	},
}
