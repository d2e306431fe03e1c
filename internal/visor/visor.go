// Package visor runs the page-load sequence: labels, viewer, markers, camera.
package visor

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/curbz/visor3d/internal/viewer"
	"github.com/curbz/visor3d/internal/viewparams"
)

var ErrNoFactory = errors.New("no viewer factory configured")

// Host is the page the viewer is embedded in.
type Host interface {
	viewparams.ElementLookup
	viewer.Container
}

type Initializer struct {
	Factory     viewer.Factory
	Container   string
	Options     viewer.Options
	ShowCredits bool
	Style       Style
	Camera      CameraConfig
	Logger      log.FieldLogger
}

// New returns an Initializer with the stock look: minimal chrome, hidden
// credits, default marker style and camera placement.
func New(factory viewer.Factory, container string) *Initializer {
	return &Initializer{
		Factory:   factory,
		Container: container,
		Options:   viewer.MinimalChrome(),
		Style:     DefaultStyle(),
		Camera:    DefaultCamera(),
		Logger:    log.StandardLogger(),
	}
}

// Initialize writes the labels into host, builds the viewer in its
// container, adds the markers and starts the camera flight. Parameters must
// already be resolved.
func (in *Initializer) Initialize(host Host, p viewparams.ViewParameters) (viewer.Widget, error) {
	if in.Factory == nil {
		return nil, ErrNoFactory
	}

	labelled := viewparams.ApplyLabels(host, p)

	w, err := in.Factory(in.Container, host, in.Options)
	if err != nil {
		return nil, fmt.Errorf("error creating viewer in %q: %w", in.Container, err)
	}
	w.SetCreditsVisible(in.ShowCredits)

	if err := AddMarkers(w.Entities(), p, in.Style); err != nil {
		return nil, err
	}

	DirectCamera(w.Camera(), p, in.Camera)

	in.logger().WithFields(log.Fields{
		"lat":      p.Lat,
		"lon":      p.Lon,
		"radio":    p.Radius,
		"loc":      p.Label,
		"labelled": labelled,
	}).Debug("viewer initialised")

	return w, nil
}

func (in *Initializer) logger() log.FieldLogger {
	if in.Logger == nil {
		return log.StandardLogger()
	}
	return in.Logger
}
