package geojson

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/curbz/visor3d/internal/czml"
	"github.com/curbz/visor3d/internal/model"
	"github.com/curbz/visor3d/pkg/geometry"
)

// DefaultSegments is the number of edges used to approximate a circle.
const DefaultSegments = 64

// Export converts a scene snapshot into a FeatureCollection. Ellipses become
// polygons (only circles are supported, the semi-major axis is used as the
// radius) and points stay points. Styling is written as simplestyle
// properties so generic map tools render it like the globe does.
func Export(st czml.State, segments int) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, e := range st.Entities {
		switch {
		case e.Ellipse != nil:
			fc.Append(circleFeature(e, segments))
		case e.Point != nil:
			fc.Append(pointFeature(e))
		}
	}

	return fc
}

func circleFeature(e model.Entity, segments int) *geojson.Feature {
	ring := geometry.CircleRing(e.Position.Latitude, e.Position.Longitude, e.Ellipse.SemiMajorAxis, segments)

	// geojson wants [lon, lat]
	orbRing := make(orb.Ring, 0, len(ring))
	for _, p := range ring {
		orbRing = append(orbRing, orb.Point{p[1], p[0]})
	}

	f := geojson.NewFeature(orb.Polygon{orbRing})
	f.ID = e.ID
	f.Properties["kind"] = "circle"
	f.Properties["radius"] = e.Ellipse.SemiMajorAxis
	f.Properties["fill"] = hex(e.Ellipse.Material)
	f.Properties["fill-opacity"] = e.Ellipse.Material.A
	if e.Ellipse.Outline {
		f.Properties["stroke"] = hex(e.Ellipse.OutlineColor)
		f.Properties["stroke-width"] = e.Ellipse.OutlineWidth
	}
	return f
}

func pointFeature(e model.Entity) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{e.Position.Longitude, e.Position.Latitude})
	f.ID = e.ID
	f.Properties["kind"] = "point"
	f.Properties["marker-color"] = hex(e.Point.Color)
	f.Properties["pixel-size"] = e.Point.PixelSize
	f.Properties["stroke"] = hex(e.Point.OutlineColor)
	f.Properties["stroke-width"] = e.Point.OutlineWidth
	return f
}

func hex(c model.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int(v*255 + 0.5)
}
