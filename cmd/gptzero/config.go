package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/RichardKnop/gptzero"
	"github.com/RichardKnop/gptzero/adapter/filestorage"
	"github.com/RichardKnop/gptzero/adapter/html"
	"github.com/RichardKnop/gptzero/adapter/pdf"
	"github.com/RichardKnop/gptzero/adapter/transport"
	"github.com/RichardKnop/gptzero/client"
)

type Config struct {
	APIKey       string
	BaseURL      string
	Timeout      time.Duration
	ReportDir    string
	ReportFormat string
	LogLevel     string
}

// LoadConfig reads the YAML config file, then lets GPTZERO_* environment
// variables override it, e.g. GPTZERO_API_KEY for api.key.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("gptzero")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", client.DefaultBaseURL)
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("report.dir", ".")
	v.SetDefault("report.format", "pdf")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return Config{
		APIKey:       v.GetString("api.key"),
		BaseURL:      v.GetString("api.base_url"),
		Timeout:      v.GetDuration("http.timeout"),
		ReportDir:    v.GetString("report.dir"),
		ReportFormat: v.GetString("report.format"),
		LogLevel:     v.GetString("log.level"),
	}, nil
}

var errMissingAPIKey = errors.New("missing API key, set api.key in the config or GPTZERO_API_KEY")

func (c Config) Validate() error {
	if c.APIKey == "" {
		return errMissingAPIKey
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid http.timeout: %s", c.Timeout)
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	return cfg.Build()
}

func newRenderer(format string, logger *zap.Logger) (gptzero.Renderer, error) {
	switch strings.ToLower(format) {
	case "", "pdf":
		return pdf.New(pdf.WithLogger(logger)), nil
	case "html":
		return html.New(html.WithLogger(logger)), nil
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}

// clientOptions wires the adapters described by the config.
func (c Config) clientOptions(logger *zap.Logger) ([]client.Option, error) {
	renderer, err := newRenderer(c.ReportFormat, logger)
	if err != nil {
		return nil, err
	}

	storage, err := filestorage.New(
		filestorage.WithDir(c.ReportDir),
		filestorage.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("report dir: %w", err)
	}

	return []client.Option{
		client.WithBaseURL(c.BaseURL),
		client.WithLogger(logger),
		client.WithRenderer(renderer),
		client.WithStorage(storage),
		client.WithTransport(transport.New(
			transport.WithHttpClient(&http.Client{Timeout: c.Timeout}),
			transport.WithUserAgent("gptzero/"+Version),
			transport.WithLogger(logger),
		)),
	}, nil
}

// setup loads the config and the logger shared by the API commands.
func setup(g *Globals, reportFormat string) (Config, *zap.Logger, error) {
	cfg, err := LoadConfig(g.Config)
	if err != nil {
		return Config{}, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if reportFormat != "" {
		cfg.ReportFormat = reportFormat
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return Config{}, nil, err
	}

	return cfg, logger, nil
}
