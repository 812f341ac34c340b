// Package config loads the YAML configuration and applies environment overrides.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/matt-g-everett/lifecompass/scene"
	"gopkg.in/yaml.v2"
)

// Environment variables that override the YAML file. They may also be set in a
// .env file next to the binary.
const (
	EnvMqttURL      = "LIFECOMPASS_MQTT_URL"
	EnvMqttUsername = "LIFECOMPASS_MQTT_USERNAME"
	EnvMqttPassword = "LIFECOMPASS_MQTT_PASSWORD"
	EnvHTTPAddr     = "LIFECOMPASS_HTTP_ADDR"
)

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Caption string `yaml:"caption"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Display struct {
		Width     int     `yaml:"width"`
		Height    int     `yaml:"height"`
		FrameRate float64 `yaml:"frameRate"`
	} `yaml:"display"`
	HTTP struct {
		Addr      string `yaml:"addr"`
		PublicURL string `yaml:"publicUrl"`
		PreviewPx int    `yaml:"previewPx"`
	} `yaml:"http"`
	Page   Page               `yaml:"page"`
	Scenes []scene.Descriptor `yaml:"scenes"`
}

// Page holds the fixed presentation metadata of the landing page.
type Page struct {
	Title       string `yaml:"title"`
	Heading     string `yaml:"heading"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Lang        string `yaml:"lang"`
	Dir         string `yaml:"dir"`
	StartLabel  string `yaml:"startLabel"`
	ResetLabel  string `yaml:"resetLabel"`
	ScenesLabel string `yaml:"scenesLabel"`
}

// Default returns the configuration used when the YAML file leaves a value out.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load reads the YAML file at path, then .env and process environment overrides.
// A missing .env file is not an error.
func Load(path string) (Config, error) {
	var c Config

	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return c, fmt.Errorf("load .env: %w", err)
	}
	c.applyEnv()
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// SceneList returns the validated scene script.
func (c Config) SceneList() (scene.List, error) {
	l, err := scene.NewList(c.Scenes)
	if err != nil {
		return l, fmt.Errorf("scenes: %w", err)
	}
	return l, nil
}

// Validate checks values that have no sensible default.
func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("display size %dx%d must be positive", c.Display.Width, c.Display.Height)
	}
	if c.Display.Width > 0xffff || c.Display.Height > 0xffff {
		return fmt.Errorf("display size %dx%d exceeds frame header limits", c.Display.Width, c.Display.Height)
	}
	if c.Display.FrameRate <= 0 {
		return fmt.Errorf("frame rate %f must be positive", c.Display.FrameRate)
	}
	if _, err := c.SceneList(); err != nil {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvMqttURL); v != "" {
		c.Mqtt.URL = v
	}
	if v := os.Getenv(EnvMqttUsername); v != "" {
		c.Mqtt.Username = v
	}
	if v := os.Getenv(EnvMqttPassword); v != "" {
		c.Mqtt.Password = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		c.HTTP.Addr = v
	}
}

func (c *Config) applyDefaults() {
	setString(&c.Mqtt.URL, "tcp://localhost:1883")
	setString(&c.Mqtt.ClientID, "lifecompass")
	setString(&c.Mqtt.Topics.Stream, "lifecompass/stream")
	setString(&c.Mqtt.Topics.Caption, "lifecompass/caption")
	setString(&c.Mqtt.Topics.Control, "lifecompass/control")

	if c.Display.Width == 0 {
		c.Display.Width = 32
	}
	if c.Display.Height == 0 {
		c.Display.Height = 18
	}
	if c.Display.FrameRate == 0 {
		c.Display.FrameRate = 30
	}

	setString(&c.HTTP.Addr, ":3000")
	if c.HTTP.PreviewPx == 0 {
		c.HTTP.PreviewPx = 20
	}

	setString(&c.Page.Title, "بوصلة الحياة - Life Compass")
	setString(&c.Page.Heading, "بوصلة الحياة")
	setString(&c.Page.Subtitle, "رحلة تغيير حقيقية في 7 خطوات")
	setString(&c.Page.Description, "رحلة تغيير حقيقية في 7 خطوات")
	setString(&c.Page.Lang, "ar")
	setString(&c.Page.Dir, "rtl")
	setString(&c.Page.StartLabel, "ابدأ المشاهدة")
	setString(&c.Page.ResetLabel, "إعادة التشغيل")
	setString(&c.Page.ScenesLabel, "المشاهد الخمسة:")

	if len(c.Scenes) == 0 {
		c.Scenes = scene.Default()
	}
}

func setString(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
