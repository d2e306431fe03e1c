package czml

import (
	"github.com/curbz/visor3d/internal/model"
	"github.com/curbz/visor3d/internal/viewer"
)

// Envelope is what the page bootstrap script consumes: constructor options,
// credit visibility, the CZML document and the camera flight.
type Envelope struct {
	ID          string         `json:"id"`
	Container   string         `json:"container"`
	Options     viewer.Options `json:"options"`
	ShowCredits bool           `json:"showCredits"`
	CZML        []Packet       `json:"czml"`
	Flight      *Flight        `json:"flight,omitempty"`
}

func (s *Scene) Envelope() Envelope {
	return EnvelopeOf(s.State())
}

func (s *Scene) Packets() []Packet {
	return PacketsOf(s.State())
}

func EnvelopeOf(st State) Envelope {
	env := Envelope{
		ID:          st.ID,
		Container:   st.Container,
		Options:     st.Options,
		ShowCredits: st.ShowCredits,
		CZML:        PacketsOf(st),
	}
	if st.Flight != nil {
		f := FlightOf(*st.Flight)
		env.Flight = &f
	}
	return env
}

// PacketsOf returns the document packet followed by one packet per entity,
// in insertion order.
func PacketsOf(st State) []Packet {
	packets := make([]Packet, 0, len(st.Entities)+1)
	packets = append(packets, Packet{ID: DocumentID, Name: st.ID, Version: Version})

	for _, e := range st.Entities {
		packets = append(packets, PacketOf(e))
	}
	return packets
}

func PacketOf(e model.Entity) Packet {
	p := Packet{
		ID:       e.ID,
		Name:     e.Name,
		Position: positionOf(e.Position),
	}

	if e.Ellipse != nil {
		p.Ellipse = &Ellipse{
			SemiMajorAxis: e.Ellipse.SemiMajorAxis,
			SemiMinorAxis: e.Ellipse.SemiMinorAxis,
			Material:      &Material{SolidColor: &SolidColor{Color: colorOf(e.Ellipse.Material)}},
			Outline:       e.Ellipse.Outline,
			OutlineColor:  colorOf(e.Ellipse.OutlineColor),
			OutlineWidth:  e.Ellipse.OutlineWidth,
		}
	}

	if e.Point != nil {
		p.Point = &Point{
			PixelSize:    e.Point.PixelSize,
			Color:        colorOf(e.Point.Color),
			OutlineColor: colorOf(e.Point.OutlineColor),
			OutlineWidth: e.Point.OutlineWidth,
		}
	}

	return p
}

func FlightOf(f model.Flight) Flight {
	return Flight{
		Destination: *positionOf(f.Destination),
		Orientation: Orientation{
			Heading: f.Orientation.Heading,
			Pitch:   f.Orientation.Pitch,
			Roll:    f.Orientation.Roll,
		},
		Duration: f.Duration.Seconds(),
	}
}

func positionOf(c model.Cartographic) *Position {
	return &Position{CartographicDegrees: []float64{c.Longitude, c.Latitude, c.Height}}
}

func colorOf(c model.Color) *Color {
	return &Color{Rgbaf: c.RGBAF()}
}
