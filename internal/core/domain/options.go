package domain

// SortKey selects the ordering of a filtered visibility result.
type SortKey string

const (
	// SortByMagnitude orders ascending by magnitude (brightest first).
	SortByMagnitude SortKey = "magnitude"
	// SortByAltitude orders descending by altitude (highest first).
	SortByAltitude SortKey = "altitude"
)

// FilterOptions controls visibility filtering and ordering. Nil pointer
// fields mean "no constraint"; Limit <= 0 means unlimited. The zero value
// filters nothing and sorts by magnitude.
type FilterOptions struct {
	MinAltitude  *float64 `json:"min_altitude,omitempty"`
	MaxMagnitude *float64 `json:"max_magnitude,omitempty"`
	Limit        int      `json:"limit,omitempty"`
	SortKey      SortKey  `json:"sort_key,omitempty"`
}

// FieldOfView describes a rectangular sky window centered on a horizontal
// position. Width and Height are full angular extents in degrees.
type FieldOfView struct {
	CenterAzDeg  float64 `json:"center_az_deg"`
	CenterAltDeg float64 `json:"center_alt_deg"`
	WidthDeg     float64 `json:"width_deg"`
	HeightDeg    float64 `json:"height_deg"`
}

// Resolution is a target screen size in pixels.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ProjectionOptions configures constellation projection. FOV alone selects
// horizontal-mode windowing; FOV plus Screen enables pixel projection.
// The toggles are explicit so callers never rely on hidden defaults.
type ProjectionOptions struct {
	MinAltitude         *float64     `json:"min_altitude,omitempty"`
	FOV                 *FieldOfView `json:"fov,omitempty"`
	Screen              *Resolution  `json:"screen,omitempty"`
	ClipEdgesToFOV      bool         `json:"clip_edges_to_fov"`
	IncludeOffscreen    bool         `json:"include_offscreen"`
	IncludeBelowHorizon bool         `json:"include_below_horizon"`
}
