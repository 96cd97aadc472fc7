package domain

import (
	"time"
)

// Star is a fixed catalog star with J2000 equatorial coordinates.
// Right ascension is stored in degrees [0, 360) regardless of the unit the
// catalog source used; declination in degrees [-90, 90].
type Star struct {
	Name      string         `json:"name"`
	RADeg     float64        `json:"ra_deg"`
	DecDeg    float64        `json:"dec_deg"`
	Magnitude float64        `json:"magnitude"`
	DistLY    *float64       `json:"distance_ly,omitempty"`
	ColorTemp *float64       `json:"color_temp_k,omitempty"`
	BV        *float64       `json:"bv,omitempty"`
	RGBHex    string         `json:"rgb_hex,omitempty"`
	Aliases   []string       `json:"aliases,omitempty"`
	IDs       map[string]int `json:"ids,omitempty"`
}

// BodyType classifies a solar-system body.
type BodyType string

const (
	BodySun    BodyType = "sun"
	BodyMoon   BodyType = "moon"
	BodyPlanet BodyType = "planet"
)

// Body identifies a solar-system body whose equatorial coordinates vary
// with time. Positions come from an Ephemeris, never from the catalog row.
type Body struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type BodyType `json:"type"`
}

// EquatorialCoord is a position on the celestial sphere in degrees.
type EquatorialCoord struct {
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
}

// HorizontalPosition is an observer-relative position in degrees.
// Altitude is negative below the horizon; azimuth is measured from
// north, clockwise, in [0, 360).
type HorizontalPosition struct {
	AltitudeDeg float64 `json:"altitude_deg"`
	AzimuthDeg  float64 `json:"azimuth_deg"`
}

// ObserverFrame fixes an observer and an instant. LSTDeg is the local
// sidereal time in degrees, derived from the instant and longitude.
// Frames are built per request and never stored.
type ObserverFrame struct {
	LatDeg float64   `json:"lat_deg"`
	LonDeg float64   `json:"lon_deg"`
	At     time.Time `json:"at"`
	LSTDeg float64   `json:"lst_deg"`
}

// PositionedStar pairs a catalog star with its computed horizontal position.
type PositionedStar struct {
	Star     *Star              `json:"star"`
	Position HorizontalPosition `json:"position"`
}

// PositionedBody is a solar-system body with its computed position and
// the time-dependent attributes that only make sense per instant.
type PositionedBody struct {
	Body       *Body              `json:"body"`
	Position   HorizontalPosition `json:"position"`
	Magnitude  *float64           `json:"magnitude,omitempty"`
	Phase      *float64           `json:"phase,omitempty"` // illuminated fraction 0..1
	DistanceAU *float64           `json:"distance_au,omitempty"`
	DistanceKm *float64           `json:"distance_km,omitempty"`
}

// Constellation is a drawable figure: member stars (by catalog name) plus
// the edges connecting them. Edge endpoints index into Stars.
type Constellation struct {
	Name  string   `json:"name"`
	Stars []string `json:"stars"`
	Edges [][2]int `json:"edges"`
}

// StarFrame is a snapshot of star positions at one instant.
type StarFrame struct {
	At    time.Time        `json:"at"`
	Stars []PositionedStar `json:"stars"`
}

// BodyFrame is a snapshot of solar-system body positions at one instant.
type BodyFrame struct {
	At     time.Time        `json:"at"`
	Bodies []PositionedBody `json:"bodies"`
}

// ConstellationFrame holds a constellation's member positions, connecting
// edges, and frame center at one instant. Center is the circular mean of
// member azimuths paired with the arithmetic mean of member altitudes;
// BelowHorizon is set when the center altitude is negative.
type ConstellationFrame struct {
	Name         string              `json:"name"`
	At           time.Time           `json:"at"`
	Stars        []PositionedStar    `json:"stars"`
	Edges        []HorizontalEdge    `json:"edges"`
	Center       *HorizontalPosition `json:"center,omitempty"`
	BelowHorizon bool                `json:"below_horizon"`
	Screen       *ScreenProjection   `json:"screen,omitempty"`
}

// HorizontalEdge is a constellation edge expressed as two horizontal
// positions. Clipped edges carry the clipped endpoints.
type HorizontalEdge struct {
	From HorizontalPosition `json:"from"`
	To   HorizontalPosition `json:"to"`
}

// ScreenPoint is a projected pixel coordinate. Values may fall outside
// the target resolution when off-screen objects are requested.
type ScreenPoint struct {
	Name string  `json:"name,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ScreenEdge is a constellation edge in pixel space, clipped to the
// screen rectangle.
type ScreenEdge struct {
	From ScreenPoint `json:"from"`
	To   ScreenPoint `json:"to"`
}

// ScreenProjection is the pixel-space half of a ConstellationFrame,
// produced only when a field of view and resolution were supplied.
type ScreenProjection struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Stars  []ScreenPoint `json:"stars"`
	Edges  []ScreenEdge  `json:"edges"`
}

// EventType tags a discrete astronomical event.
type EventType string

const (
	EventRise      EventType = "rise"
	EventSet       EventType = "set"
	EventMoonPhase EventType = "moon_phase"
)

// AstronomyEvent is a discrete event found inside a query window.
type AstronomyEvent struct {
	Type        EventType `json:"type"`
	Body        string    `json:"body,omitempty"`
	At          time.Time `json:"time"`
	Description string    `json:"description"`
}
