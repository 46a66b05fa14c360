// Package config loads the service configuration from a JSON or YAML file
// with optional TG_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/timegridhq/timegrid/core/metrics"
	"github.com/timegridhq/timegrid/core/timetable"
	"github.com/timegridhq/timegrid/infra/mqtt"
)

type Config struct {
	Planner timetable.Config `json:"planner"`
	MQTT    mqtt.Config      `json:"mqtt"`
	Metrics metrics.Config   `json:"metrics"`
	Storage StorageConfig    `json:"storage"`
	History HistoryConfig    `json:"history"`
	API     APIConfig        `json:"api"`
}

// StorageConfig locates the schedule document.
type StorageConfig struct {
	Path string `json:"path"`
}

func (c *StorageConfig) SetDefaults() {
	if c.Path == "" {
		c.Path = "data/schedules.json"
	}
}

// HistoryConfig locates the edit history log. An empty path disables it.
type HistoryConfig struct {
	Path string `json:"path"`
}

// APIConfig sets the read-only HTTP listener.
type APIConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
}

func (c *APIConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("TG_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tg_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Planner.SetDefaults()
	cfg.MQTT.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Storage.SetDefaults()
	cfg.API.SetDefaults()
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.MQTT.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
