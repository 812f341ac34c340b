package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-g-everett/lifecompass/scene"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "mqtt:\n  url: tcp://broker:1883\n")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Mqtt.URL != "tcp://broker:1883" {
		t.Errorf("Expected broker URL from file, got %s", c.Mqtt.URL)
	}
	if c.Mqtt.Topics.Stream != "lifecompass/stream" {
		t.Errorf("Expected default stream topic, got %s", c.Mqtt.Topics.Stream)
	}
	if c.Display.Width != 32 || c.Display.Height != 18 || c.Display.FrameRate != 30 {
		t.Errorf("Unexpected display defaults %+v", c.Display)
	}
	if c.Page.Lang != "ar" || c.Page.Dir != "rtl" {
		t.Errorf("Expected ar/rtl page, got %s/%s", c.Page.Lang, c.Page.Dir)
	}
	if len(c.Scenes) != 5 {
		t.Errorf("Expected the default script, got %d scenes", len(c.Scenes))
	}
}

func TestLoadScenes(t *testing.T) {
	path := writeConfig(t, `
display:
  width: 16
  height: 9
scenes:
  - id: 1
    durationMs: 500
    caption: one
    variant: particles
  - id: 2
    durationMs: 700
    caption: two
    variant: bookReveal
`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	l, err := c.SceneList()
	if err != nil {
		t.Fatalf("SceneList failed: %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Expected 2 scenes, got %d", l.Len())
	}
	if l.At(1).Variant != scene.VariantBookReveal || l.At(1).DurationMs != 700 {
		t.Errorf("Unexpected second scene %+v", l.At(1))
	}
}

func TestLoadInvalidScenes(t *testing.T) {
	path := writeConfig(t, `
scenes:
  - id: 1
    durationMs: 0
    variant: particles
`)

	_, err := Load(path)
	if !errors.Is(err, scene.ErrDuration) {
		t.Fatalf("Expected ErrDuration, got %v", err)
	}
}

func TestLoadInvalidDisplay(t *testing.T) {
	path := writeConfig(t, "display:\n  width: -4\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Expected an error for a negative width")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvMqttUsername, "compass")
	t.Setenv(EnvMqttPassword, "secret")
	t.Setenv(EnvHTTPAddr, ":8080")

	path := writeConfig(t, "mqtt:\n  username: fromfile\n")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Mqtt.Username != "compass" || c.Mqtt.Password != "secret" {
		t.Errorf("Expected credentials from the environment, got %s/%s", c.Mqtt.Username, c.Mqtt.Password)
	}
	if c.HTTP.Addr != ":8080" {
		t.Errorf("Expected addr from the environment, got %s", c.HTTP.Addr)
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	c, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Empty config should load with defaults: %v", err)
	}
	if c.HTTP.Addr == "" {
		t.Error("Expected default HTTP address")
	}
}
