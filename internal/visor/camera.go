package visor

import (
	"math"
	"time"

	"github.com/curbz/visor3d/internal/model"
	"github.com/curbz/visor3d/internal/viewer"
	"github.com/curbz/visor3d/internal/viewparams"
	"github.com/curbz/visor3d/pkg/geometry"
)

// CameraConfig places the camera relative to the target. Angles are degrees.
type CameraConfig struct {
	// HeightFactor multiplies the radius to get the camera height, so the
	// circle fits on screen.
	HeightFactor float64 `yaml:"height_factor"`
	// LatitudeOffset moves the camera this many degrees south of the target.
	LatitudeOffset float64       `yaml:"latitude_offset"`
	Heading        float64       `yaml:"heading"`
	Pitch          float64       `yaml:"pitch"`
	Roll           float64       `yaml:"roll"`
	Duration       time.Duration `yaml:"duration"`
}

func DefaultCamera() CameraConfig {
	return CameraConfig{
		HeightFactor:   4,
		LatitudeOffset: 0.005,
		Heading:        0,
		Pitch:          -45,
		Roll:           0,
		Duration:       3 * time.Second,
	}
}

// CameraHeight is radius*factor clamped to the finite float64 range. NaN
// gives 0.
func CameraHeight(radius, factor float64) float64 {
	h := radius * factor
	switch {
	case math.IsNaN(h):
		return 0
	case math.IsInf(h, 1):
		return math.MaxFloat64
	case math.IsInf(h, -1):
		return -math.MaxFloat64
	}
	return h
}

// FlightFor looks north and down at the target from a point just south of it.
func FlightFor(p viewparams.ViewParameters, c CameraConfig) model.Flight {
	return model.Flight{
		Destination: model.FromDegrees(p.Lon, p.Lat-c.LatitudeOffset, CameraHeight(p.Radius, c.HeightFactor)),
		Orientation: model.Orientation{
			Heading: geometry.ToRadians(c.Heading),
			Pitch:   geometry.ToRadians(c.Pitch),
			Roll:    geometry.ToRadians(c.Roll),
		},
		Duration: c.Duration,
	}
}

// DirectCamera starts the flight and returns immediately.
func DirectCamera(cam viewer.Camera, p viewparams.ViewParameters, c CameraConfig) {
	cam.FlyTo(FlightFor(p, c))
}
