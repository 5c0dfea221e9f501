package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.AngularStep != 0.05 {
		t.Errorf("AngularStep = %v, want 0.05", cfg.AngularStep)
	}
	if cfg.FallbackGray != 200 {
		t.Errorf("FallbackGray = %d, want 200", cfg.FallbackGray)
	}
	if cfg.SceneFile != "" {
		t.Errorf("SceneFile = %q, want empty", cfg.SceneFile)
	}
	if got, want := cfg.BackgroundPath(), filepath.Join("./asset", "image.png"); got != want {
		t.Errorf("BackgroundPath() = %q, want %q", got, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ANGULAR_STEP", "0.01")
	t.Setenv("BACKGROUND", "/tmp/denim.jpg")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.AngularStep != 0.01 {
		t.Errorf("AngularStep = %v, want 0.01", cfg.AngularStep)
	}
	if got := cfg.BackgroundPath(); got != "/tmp/denim.jpg" {
		t.Errorf("BackgroundPath() = %q, want absolute path untouched", got)
	}
	want := []string{"http://a.test", "http://b.test"}
	if got := cfg.Origins(); !reflect.DeepEqual(got, want) {
		t.Errorf("Origins() = %v, want %v", got, want)
	}
}

func TestLoadRejectsBadNumber(t *testing.T) {
	t.Setenv("FALLBACK_GRAY", "300")
	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted FALLBACK_GRAY=300")
	}
}
