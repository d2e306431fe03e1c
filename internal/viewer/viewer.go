// Package viewer describes the 3D globe widget the page drives: its
// construction options, entity collection, camera and credit display.
package viewer

import (
	"errors"

	"github.com/curbz/visor3d/internal/model"
)

var ErrContainerNotFound = errors.New("viewer container element not found")

// Options toggles the widget's interactive chrome. Field names follow the
// renderer's constructor options.
type Options struct {
	Animation            bool `json:"animation" yaml:"animation"`
	Timeline             bool `json:"timeline" yaml:"timeline"`
	BaseLayerPicker      bool `json:"baseLayerPicker" yaml:"base_layer_picker"`
	FullscreenButton     bool `json:"fullscreenButton" yaml:"fullscreen_button"`
	HomeButton           bool `json:"homeButton" yaml:"home_button"`
	InfoBox              bool `json:"infoBox" yaml:"info_box"`
	SelectionIndicator   bool `json:"selectionIndicator" yaml:"selection_indicator"`
	SceneModePicker      bool `json:"sceneModePicker" yaml:"scene_mode_picker"`
	NavigationHelpButton bool `json:"navigationHelpButton" yaml:"navigation_help_button"`
	Geocoder             bool `json:"geocoder" yaml:"geocoder"`
}

// MinimalChrome disables every control: no clock, timeline, layer picker,
// fullscreen, home, info box, selection indicator, scene mode picker,
// navigation help or search box.
func MinimalChrome() Options {
	return Options{}
}

// EntityCollection holds the entities rendered by a widget.
type EntityCollection interface {
	Add(e model.Entity) (model.Entity, error)
	Values() []model.Entity
}

// Camera animations are fire-and-forget: FlyTo starts the transition and
// returns without a completion handle.
type Camera interface {
	FlyTo(f model.Flight)
}

type Widget interface {
	Entities() EntityCollection
	Camera() Camera
	SetCreditsVisible(visible bool)
}

// Container reports whether the host page has an element with the given id.
type Container interface {
	HasElement(id string) bool
}

// Factory constructs a widget bound to the container element of host.
type Factory func(container string, host Container, opts Options) (Widget, error)
