package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App    AppConfig    `toml:"app"`
	Upload UploadConfig `toml:"upload"`
	Vision VisionConfig `toml:"vision"`
	Log    LogConfig    `toml:"log"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

// UploadConfig bounds what the transport layer accepts before any handler runs.
type UploadConfig struct {
	MaxBytes  int64  `toml:"max_bytes"`
	FormField string `toml:"form_field"`
}

type VisionConfig struct {
	JPEGQuality int   `toml:"jpeg_quality"`
	MaxPixels   int64 `toml:"max_pixels"` // width*height cap checked before decoding
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) validate() error {
	switch c.App.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("app.gin_mode must be debug, release or test, got %q", c.App.GinMode)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be positive, got %d", c.Upload.MaxBytes)
	}
	if c.Upload.FormField == "" {
		return fmt.Errorf("upload.form_field must not be empty")
	}
	if c.Vision.JPEGQuality < 1 || c.Vision.JPEGQuality > 100 {
		return fmt.Errorf("vision.jpeg_quality must be within 1..100, got %d", c.Vision.JPEGQuality)
	}
	if c.Vision.MaxPixels <= 0 {
		return fmt.Errorf("vision.max_pixels must be positive, got %d", c.Vision.MaxPixels)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "foodsnap",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    5000,
			GinMode: "debug",
		},
		Upload: UploadConfig{
			MaxBytes:  5 << 20, // 5 MiB
			FormField: "image",
		},
		Vision: VisionConfig{
			JPEGQuality: 80,
			MaxPixels:   178_956_970,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Upload.MaxBytes = int64(getEnvAsInt("UPLOAD_MAX_BYTES", int(cfg.Upload.MaxBytes)))
	cfg.Upload.FormField = getEnv("UPLOAD_FORM_FIELD", cfg.Upload.FormField)

	cfg.Vision.JPEGQuality = getEnvAsInt("VISION_JPEG_QUALITY", cfg.Vision.JPEGQuality)
	cfg.Vision.MaxPixels = int64(getEnvAsInt("VISION_MAX_PIXELS", int(cfg.Vision.MaxPixels)))

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
