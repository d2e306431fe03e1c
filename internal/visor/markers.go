package visor

import (
	"fmt"

	"github.com/curbz/visor3d/internal/model"
	"github.com/curbz/visor3d/internal/viewer"
	"github.com/curbz/visor3d/internal/viewparams"
)

// Entity ids used for the two markers.
const (
	RadiusEntityID = "radius"
	CenterEntityID = "center"
)

type CircleStyle struct {
	Fill         model.Color
	OutlineColor model.Color
	OutlineWidth float64
}

type PointStyle struct {
	PixelSize    float64
	Color        model.Color
	OutlineColor model.Color
	OutlineWidth float64
}

type Style struct {
	Circle CircleStyle
	Point  PointStyle
}

// DefaultStyle: translucent yellow radius, red centre with a white ring.
func DefaultStyle() Style {
	return Style{
		Circle: CircleStyle{
			Fill:         model.Yellow.WithAlpha(0.4),
			OutlineColor: model.Yellow,
			OutlineWidth: 2,
		},
		Point: PointStyle{
			PixelSize:    12,
			Color:        model.Red,
			OutlineColor: model.White,
			OutlineWidth: 2,
		},
	}
}

// CircleEntity is centred on the target with both semi axes equal to the radius.
func CircleEntity(p viewparams.ViewParameters, s CircleStyle) model.Entity {
	return model.Entity{
		ID:       RadiusEntityID,
		Name:     p.Label,
		Position: model.FromDegrees(p.Lon, p.Lat, 0),
		Ellipse: &model.Ellipse{
			SemiMinorAxis: p.Radius,
			SemiMajorAxis: p.Radius,
			Material:      s.Fill,
			Outline:       true,
			OutlineColor:  s.OutlineColor,
			OutlineWidth:  s.OutlineWidth,
		},
	}
}

func PointEntity(p viewparams.ViewParameters, s PointStyle) model.Entity {
	return model.Entity{
		ID:       CenterEntityID,
		Name:     p.Label,
		Position: model.FromDegrees(p.Lon, p.Lat, 0),
		Point: &model.Point{
			PixelSize:    s.PixelSize,
			Color:        s.Color,
			OutlineColor: s.OutlineColor,
			OutlineWidth: s.OutlineWidth,
		},
	}
}

// AddMarkers adds the radius circle and then the centre point to ec.
func AddMarkers(ec viewer.EntityCollection, p viewparams.ViewParameters, s Style) error {
	if _, err := ec.Add(CircleEntity(p, s.Circle)); err != nil {
		return fmt.Errorf("error adding radius circle: %w", err)
	}
	if _, err := ec.Add(PointEntity(p, s.Point)); err != nil {
		return fmt.Errorf("error adding centre point: %w", err)
	}
	return nil
}
