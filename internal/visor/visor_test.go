package visor

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/curbz/visor3d/internal/czml"
	"github.com/curbz/visor3d/internal/model"
	"github.com/curbz/visor3d/internal/viewer"
	"github.com/curbz/visor3d/internal/viewparams"
)

// --- mocks ---

type MockWidget struct {
	container   string
	opts        viewer.Options
	entities    []model.Entity
	flights     []model.Flight
	creditCalls []bool
}

func (m *MockWidget) Entities() viewer.EntityCollection { return (*mockEntities)(m) }
func (m *MockWidget) Camera() viewer.Camera             { return (*mockCamera)(m) }
func (m *MockWidget) SetCreditsVisible(v bool)          { m.creditCalls = append(m.creditCalls, v) }

type mockEntities MockWidget

func (m *mockEntities) Add(e model.Entity) (model.Entity, error) {
	m.entities = append(m.entities, e)
	return e, nil
}
func (m *mockEntities) Values() []model.Entity { return m.entities }

type mockCamera MockWidget

func (m *mockCamera) FlyTo(f model.Flight) { m.flights = append(m.flights, f) }

type failingEntities struct{}

func (failingEntities) Add(model.Entity) (model.Entity, error) {
	return model.Entity{}, errors.New("collection closed")
}
func (failingEntities) Values() []model.Entity { return nil }

type element struct{ text string }

func (e *element) SetText(s string) { e.text = s }

type MockPage struct {
	elements map[string]*element
}

func newMockPage(ids ...string) *MockPage {
	p := &MockPage{elements: make(map[string]*element)}
	for _, id := range ids {
		p.elements[id] = &element{}
	}
	return p
}

func (p *MockPage) Element(id string) (viewparams.TextElement, bool) {
	el, ok := p.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

func (p *MockPage) HasElement(id string) bool {
	_, ok := p.elements[id]
	return ok
}

func mockFactory(w *MockWidget) viewer.Factory {
	return func(container string, host viewer.Container, opts viewer.Options) (viewer.Widget, error) {
		if !host.HasElement(container) {
			return nil, viewer.ErrContainerNotFound
		}
		w.container = container
		w.opts = opts
		return w, nil
	}
}

// --- tests ---

func TestCameraHeight(t *testing.T) {
	tests := []struct {
		radius, want float64
	}{
		{500, 2000},
		{1000, 4000},
		{0, 0},
		{-10, -40},
		{1e308, math.MaxFloat64},
		{-1e308, -math.MaxFloat64},
	}
	for _, tc := range tests {
		if got := CameraHeight(tc.radius, DefaultCamera().HeightFactor); got != tc.want {
			t.Errorf("CameraHeight(%v): want %v, got %v", tc.radius, tc.want, got)
		}
	}
}

func TestCameraHeightNaN(t *testing.T) {
	if got := CameraHeight(500, math.NaN()); got != 0 {
		t.Errorf("want 0, got %v", got)
	}
}

func TestFlightFor(t *testing.T) {
	p := viewparams.ViewParameters{Lat: 10, Lon: -75, Radius: 1000, Label: "Medellín"}
	f := FlightFor(p, DefaultCamera())

	if f.Destination.Longitude != -75 {
		t.Errorf("longitude: want -75, got %v", f.Destination.Longitude)
	}
	if math.Abs(f.Destination.Latitude-9.995) > 1e-12 {
		t.Errorf("latitude: want 9.995, got %v", f.Destination.Latitude)
	}
	if f.Destination.Height != 4000 {
		t.Errorf("height: want 4000, got %v", f.Destination.Height)
	}
	if f.Orientation.Heading != 0 || f.Orientation.Roll != 0 {
		t.Errorf("heading/roll: %#v", f.Orientation)
	}
	if math.Abs(f.Orientation.Pitch+math.Pi/4) > 1e-15 {
		t.Errorf("pitch: want -pi/4, got %v", f.Orientation.Pitch)
	}
	if f.Duration != 3*time.Second {
		t.Errorf("duration: want 3s, got %v", f.Duration)
	}
}

func TestAddMarkers(t *testing.T) {
	radii := []float64{500, 1000, 0.5, 0, -1}
	for _, r := range radii {
		w := &MockWidget{}
		p := viewparams.ViewParameters{Lat: 4.5981, Lon: -74.0760, Radius: r, Label: "Bogotá"}

		if err := AddMarkers(w.Entities(), p, DefaultStyle()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(w.entities) != 2 {
			t.Fatalf("want exactly 2 entities, got %d", len(w.entities))
		}

		c, pt := w.entities[0], w.entities[1]
		if c.Ellipse == nil || pt.Point == nil {
			t.Fatalf("want circle then point, got %#v", w.entities)
		}
		if c.Ellipse.SemiMajorAxis != r || c.Ellipse.SemiMinorAxis != r {
			t.Errorf("radius %v: axes %v/%v", r, c.Ellipse.SemiMajorAxis, c.Ellipse.SemiMinorAxis)
		}
		if c.Position != pt.Position || c.Position != model.FromDegrees(-74.0760, 4.5981, 0) {
			t.Errorf("positions differ: %#v %#v", c.Position, pt.Position)
		}
	}
}

func TestMarkerStyle(t *testing.T) {
	s := DefaultStyle()
	c := CircleEntity(viewparams.Defaults(), s.Circle)
	p := PointEntity(viewparams.Defaults(), s.Point)

	if c.Ellipse.Material != (model.Color{R: 1, G: 1, B: 0, A: 0.4}) {
		t.Errorf("circle fill: %#v", c.Ellipse.Material)
	}
	if !c.Ellipse.Outline || c.Ellipse.OutlineColor != model.Yellow || c.Ellipse.OutlineWidth != 2 {
		t.Errorf("circle outline: %#v", c.Ellipse)
	}
	if p.Point.PixelSize != 12 || p.Point.Color != model.Red || p.Point.OutlineColor != model.White || p.Point.OutlineWidth != 2 {
		t.Errorf("point style: %#v", p.Point)
	}
}

func TestAddMarkersError(t *testing.T) {
	if err := AddMarkers(failingEntities{}, viewparams.Defaults(), DefaultStyle()); err == nil {
		t.Fatal("expected error from failing collection")
	}
}

func TestInitialize(t *testing.T) {
	t.Run("Medellin With Panel", func(t *testing.T) {
		w := &MockWidget{}
		page := newMockPage("cesiumContainer", viewparams.TitleElement, viewparams.RadiusElement,
			viewparams.LatElement, viewparams.LonElement)
		in := New(mockFactory(w), "cesiumContainer")

		p := viewparams.ViewParameters{Lat: 10, Lon: -75, Radius: 1000, Label: "Medellín"}
		got, err := in.Initialize(page, p)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != w {
			t.Fatal("initializer returned a different widget")
		}

		if page.elements[viewparams.TitleElement].text != "📍 Medellín" {
			t.Errorf("title: %q", page.elements[viewparams.TitleElement].text)
		}
		if w.opts != viewer.MinimalChrome() {
			t.Errorf("options not minimal: %#v", w.opts)
		}
		if len(w.creditCalls) != 1 || w.creditCalls[0] {
			t.Errorf("credits should be hidden once, calls: %v", w.creditCalls)
		}
		if len(w.entities) != 2 || w.entities[0].Ellipse.SemiMajorAxis != 1000 {
			t.Errorf("entities: %#v", w.entities)
		}
		if len(w.flights) != 1 || w.flights[0].Destination.Height != 4000 {
			t.Errorf("flights: %#v", w.flights)
		}
	})

	t.Run("Defaults Without Panel", func(t *testing.T) {
		w := &MockWidget{}
		page := newMockPage("cesiumContainer")
		in := New(mockFactory(w), "cesiumContainer")

		if _, err := in.Initialize(page, viewparams.Defaults()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(w.flights) != 1 || w.flights[0].Destination.Height != 2000 {
			t.Errorf("flights: %#v", w.flights)
		}
	})

	t.Run("Missing Container Is Fatal", func(t *testing.T) {
		w := &MockWidget{}
		page := newMockPage(viewparams.TitleElement)
		in := New(mockFactory(w), "cesiumContainer")

		if _, err := in.Initialize(page, viewparams.Defaults()); !errors.Is(err, viewer.ErrContainerNotFound) {
			t.Fatalf("want ErrContainerNotFound, got %v", err)
		}
		if len(w.entities) != 0 || len(w.flights) != 0 {
			t.Error("nothing should be drawn without a viewer")
		}
	})

	t.Run("No Factory", func(t *testing.T) {
		in := &Initializer{Container: "cesiumContainer"}
		if _, err := in.Initialize(newMockPage("cesiumContainer"), viewparams.Defaults()); !errors.Is(err, ErrNoFactory) {
			t.Fatalf("want ErrNoFactory, got %v", err)
		}
	})
}

func TestInitializeWithCZMLScene(t *testing.T) {
	page := newMockPage("cesiumContainer")
	in := New(czml.NewWidget, "cesiumContainer")

	w, err := in.Initialize(page, viewparams.Defaults())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scene, ok := w.(*czml.Scene)
	if !ok {
		t.Fatalf("want *czml.Scene, got %T", w)
	}

	st := scene.State()
	if st.ShowCredits {
		t.Error("credits visible")
	}
	if len(st.Entities) != 2 || st.Entities[0].ID != RadiusEntityID || st.Entities[1].ID != CenterEntityID {
		t.Errorf("entities: %#v", st.Entities)
	}
	if st.Flight == nil || st.Flight.Destination.Height != 2000 {
		t.Errorf("flight: %#v", st.Flight)
	}
}
