package czml

// Packet is a single CZML packet. The first packet of a document must have
// the id "document" and carry the version.
type Packet struct {
	ID       string    `json:"id"`
	Name     string    `json:"name,omitempty"`
	Version  string    `json:"version,omitempty"`
	Position *Position `json:"position,omitempty"`
	Ellipse  *Ellipse  `json:"ellipse,omitempty"`
	Point    *Point    `json:"point,omitempty"`
}

const (
	DocumentID = "document"
	Version    = "1.0"
)

type Position struct {
	CartographicDegrees []float64 `json:"cartographicDegrees"`
}

type Color struct {
	Rgbaf []float64 `json:"rgbaf"`
}

type SolidColor struct {
	Color *Color `json:"color"`
}

type Material struct {
	SolidColor *SolidColor `json:"solidColor"`
}

type Ellipse struct {
	SemiMajorAxis float64   `json:"semiMajorAxis"`
	SemiMinorAxis float64   `json:"semiMinorAxis"`
	Material      *Material `json:"material,omitempty"`
	Outline       bool      `json:"outline"`
	OutlineColor  *Color    `json:"outlineColor,omitempty"`
	OutlineWidth  float64   `json:"outlineWidth,omitempty"`
}

type Point struct {
	PixelSize    float64 `json:"pixelSize"`
	Color        *Color  `json:"color,omitempty"`
	OutlineColor *Color  `json:"outlineColor,omitempty"`
	OutlineWidth float64 `json:"outlineWidth,omitempty"`
}

// Flight is the camera command the page bootstrap hands to camera.flyTo.
// Angles are radians, duration seconds.
type Flight struct {
	Destination Position    `json:"destination"`
	Orientation Orientation `json:"orientation"`
	Duration    float64     `json:"duration"`
}

type Orientation struct {
	Heading float64 `json:"heading"`
	Pitch   float64 `json:"pitch"`
	Roll    float64 `json:"roll"`
}
