package bootstrap

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	appsvc "foodsnap/internal/app"
	"foodsnap/internal/config"
	"foodsnap/internal/platform/logger"
	"foodsnap/internal/platform/metrics"
)

type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Metrics  *metrics.Metrics
	Analysis *appsvc.AnalysisService

	StartedAt time.Time
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig wires the application around an already loaded config.
func NewWithConfig(cfg *config.Config) (*App, error) {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("init logger failed: %w", err)
	}
	log = log.With().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Logger()

	m := metrics.New(cfg.App.Name)

	return &App{
		Config:    cfg,
		Logger:    log,
		Metrics:   m,
		Analysis:  appsvc.NewAnalysisService(cfg.Vision.JPEGQuality, cfg.Vision.MaxPixels, m),
		StartedAt: time.Now(),
	}, nil
}
