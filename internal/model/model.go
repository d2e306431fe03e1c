package model

import "time"

// Cartographic is a position on the globe. Longitude and latitude are in
// degrees, height in metres above the ellipsoid.
type Cartographic struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Height    float64 `json:"height"`
}

// FromDegrees mirrors the renderer's lon/lat/height argument order.
func FromDegrees(lon, lat, height float64) Cartographic {
	return Cartographic{Longitude: lon, Latitude: lat, Height: height}
}

// Color components are in the range [0, 1]
type Color struct {
	R float64 `json:"red"`
	G float64 `json:"green"`
	B float64 `json:"blue"`
	A float64 `json:"alpha"`
}

var (
	Yellow = Color{R: 1, G: 1, B: 0, A: 1}
	Red    = Color{R: 1, G: 0, B: 0, A: 1}
	White  = Color{R: 1, G: 1, B: 1, A: 1}
)

// WithAlpha returns a copy of c with the alpha component replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = alpha
	return c
}

// RGBAF is the flat [r, g, b, a] form used by CZML.
func (c Color) RGBAF() []float64 {
	return []float64{c.R, c.G, c.B, c.A}
}

// Ellipse
type Ellipse struct {
	SemiMinorAxis float64 `json:"semiMinorAxis"`
	SemiMajorAxis float64 `json:"semiMajorAxis"`
	Material      Color   `json:"material"`
	Outline       bool    `json:"outline"`
	OutlineColor  Color   `json:"outlineColor"`
	OutlineWidth  float64 `json:"outlineWidth"`
}

// Point
type Point struct {
	PixelSize    float64 `json:"pixelSize"`
	Color        Color   `json:"color"`
	OutlineColor Color   `json:"outlineColor"`
	OutlineWidth float64 `json:"outlineWidth"`
}

// Entity is a renderable object. Exactly one of Ellipse and Point is set.
type Entity struct {
	ID       string       `json:"id"`
	Name     string       `json:"name,omitempty"`
	Position Cartographic `json:"position"`
	Ellipse  *Ellipse     `json:"ellipse,omitempty"`
	Point    *Point       `json:"point,omitempty"`
}

// Orientation angles are in radians
type Orientation struct {
	Heading float64 `json:"heading"`
	Pitch   float64 `json:"pitch"`
	Roll    float64 `json:"roll"`
}

// Flight is a one-shot camera transition.
type Flight struct {
	Destination Cartographic  `json:"destination"`
	Orientation Orientation   `json:"orientation"`
	Duration    time.Duration `json:"duration"`
}
