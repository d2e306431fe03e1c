package config

import (
	"os"
	"time"

	"github.com/curbz/visor3d/internal/viewer"
	"github.com/curbz/visor3d/internal/viewparams"
	"github.com/curbz/visor3d/internal/visor"
	"github.com/curbz/visor3d/pkg/util"
)

// EnvConfigPath overrides DefaultPath.
const (
	EnvConfigPath = "VISOR3D_CONFIG"
	DefaultPath   = "config.yaml"
)

// --- configuration structures ---
type Config struct {
	Server   Server                    `yaml:"server"`
	Log      Log                       `yaml:"log"`
	Viewer   Viewer                    `yaml:"viewer"`
	Camera   visor.CameraConfig        `yaml:"camera"`
	Defaults viewparams.ViewParameters `yaml:"defaults"`
	Page     Page                      `yaml:"page"`
}

type Server struct {
	Address         string        `yaml:"address"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// PublicURL is the viewer page address used when building share links.
	// Empty means the address the request came in on.
	PublicURL string `yaml:"public_url"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

type Viewer struct {
	Container   string         `yaml:"container"`
	ShowCredits bool           `yaml:"show_credits"`
	Options     viewer.Options `yaml:"options"`
	// CesiumBaseURL points at a CesiumJS Build/Cesium directory.
	CesiumBaseURL string `yaml:"cesium_base_url"`
	IonToken      string `yaml:"ion_token"`
}

type Page struct {
	ShowPanel       bool   `yaml:"show_panel"`
	Title           string `yaml:"title"`
	DefaultLanguage string `yaml:"default_language"`
}

func Default() Config {
	return Config{
		Server: Server{
			Address:         ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Viewer: Viewer{
			Container:     "cesiumContainer",
			Options:       viewer.MinimalChrome(),
			CesiumBaseURL: "https://cesium.com/downloads/cesiumjs/releases/1.121/Build/Cesium",
		},
		Camera:   visor.DefaultCamera(),
		Defaults: viewparams.Defaults(),
		Page: Page{
			ShowPanel:       true,
			Title:           "Visor 3D",
			DefaultLanguage: "es",
		},
	}
}

// Load overlays the YAML file at path onto Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := util.LoadConfigInto(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path returns the config file location from the environment, or DefaultPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultPath
}
