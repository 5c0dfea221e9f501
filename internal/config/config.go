package config

import (
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            int     `envconfig:"PORT" default:"8080"`
	AssetDir        string  `envconfig:"ASSET_DIR" default:"./asset"`
	Background      string  `envconfig:"BACKGROUND" default:"image.png"`
	SceneFile       string  `envconfig:"SCENE_FILE"`
	WebDir          string  `envconfig:"WEB_DIR" default:"./web"`
	AngularStep     float64 `envconfig:"ANGULAR_STEP" default:"0.05"`
	FallbackGray    uint8   `envconfig:"FALLBACK_GRAY" default:"200"`
	MaxSnapshotSide int     `envconfig:"MAX_SNAPSHOT_SIDE" default:"4096"`
	AllowedOrigins  string  `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel        string  `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string  `envconfig:"LOG_FORMAT" default:"text"`
	LogFile         string  `envconfig:"LOG_FILE"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BackgroundPath resolves the background image against the asset directory
// unless it is already absolute.
func (c *Config) BackgroundPath() string {
	if c.Background == "" || filepath.IsAbs(c.Background) {
		return c.Background
	}
	return filepath.Join(c.AssetDir, c.Background)
}

// Origins splits AllowedOrigins into its trimmed, non-empty entries.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
