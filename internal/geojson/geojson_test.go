package geojson

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/curbz/visor3d/internal/czml"
	"github.com/curbz/visor3d/internal/model"
	"github.com/curbz/visor3d/pkg/geometry"
)

func testState(radius float64) czml.State {
	pos := model.FromDegrees(-75, 10, 0)
	return czml.State{
		ID: "scene",
		Entities: []model.Entity{
			{
				ID:       "radius",
				Position: pos,
				Ellipse: &model.Ellipse{
					SemiMinorAxis: radius, SemiMajorAxis: radius,
					Material: model.Yellow.WithAlpha(0.4), Outline: true,
					OutlineColor: model.Yellow, OutlineWidth: 2,
				},
			},
			{
				ID:       "center",
				Position: pos,
				Point: &model.Point{
					PixelSize: 12, Color: model.Red,
					OutlineColor: model.White, OutlineWidth: 2,
				},
			},
		},
	}
}

func TestExport(t *testing.T) {
	fc := Export(testState(1000), 32)

	if len(fc.Features) != 2 {
		t.Fatalf("want 2 features, got %d", len(fc.Features))
	}

	circle := fc.Features[0]
	poly, ok := circle.Geometry.(orb.Polygon)
	if !ok {
		t.Fatalf("circle geometry: want polygon, got %T", circle.Geometry)
	}
	if len(poly) != 1 || len(poly[0]) != 33 {
		t.Fatalf("ring shape mismatch: %d rings", len(poly))
	}
	if !poly[0].Closed() {
		t.Error("ring not closed")
	}
	for i, p := range poly[0] {
		if d := geometry.DistM(10, -75, p.Lat(), p.Lon()); math.Abs(d-1000) > 0.01 {
			t.Errorf("vertex %d at %.3f m from centre", i, d)
		}
	}
	if circle.Properties["fill"] != "#ffff00" || circle.Properties["fill-opacity"] != 0.4 {
		t.Errorf("circle style: %v", circle.Properties)
	}
	if circle.ID != "radius" {
		t.Errorf("circle id: %v", circle.ID)
	}

	pt := fc.Features[1]
	if got, ok := pt.Geometry.(orb.Point); !ok || got != (orb.Point{-75, 10}) {
		t.Fatalf("point geometry mismatch: %#v", pt.Geometry)
	}
	if pt.Properties["marker-color"] != "#ff0000" || pt.Properties["stroke"] != "#ffffff" {
		t.Errorf("point style: %v", pt.Properties)
	}
}

func TestExportMarshals(t *testing.T) {
	raw, err := json.Marshal(Export(testState(500), DefaultSegments))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Type != "FeatureCollection" || len(decoded.Features) != 2 {
		t.Fatalf("unexpected collection: %s", raw)
	}
	if decoded.Features[0].Geometry.Type != "Polygon" || decoded.Features[1].Geometry.Type != "Point" {
		t.Errorf("geometry types: %s, %s", decoded.Features[0].Geometry.Type, decoded.Features[1].Geometry.Type)
	}
}

func TestExportEmptyScene(t *testing.T) {
	fc := Export(czml.State{}, DefaultSegments)
	if len(fc.Features) != 0 {
		t.Fatalf("want no features, got %d", len(fc.Features))
	}
}
