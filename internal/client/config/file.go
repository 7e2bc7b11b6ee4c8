package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/divergentflow/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for file unmarshalling. Empty values
// leave the corresponding Config field untouched.
type FileConfig struct {
	APIBaseURL  string `json:"api_base_url" yaml:"api_base_url"`
	Environment string `json:"environment" yaml:"environment"`
	NeuroMode   string `json:"neuro_mode" yaml:"neuro_mode"`
	DBPath      string `json:"db_path" yaml:"db_path"`
	LogBackend  string `json:"log_backend" yaml:"log_backend"`
	LogLevel    string `json:"log_level" yaml:"log_level"`
	LogFormat   string `json:"log_format" yaml:"log_format"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. Files ending in .yaml or .yml are read as YAML, anything else as
// JSON. Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func decodeFile(path string, data []byte) (FileConfig, error) {
	var fc FileConfig

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return fc, fmt.Errorf("parse json config %s: %w", path, err)
		}
	}
	return fc, nil
}

func (fc FileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.APIBaseURL, fc.APIBaseURL)
	set(&cfg.Environment, fc.Environment)
	set(&cfg.NeuroMode, fc.NeuroMode)
	set(&cfg.DBPath, fc.DBPath)
	set(&cfg.LogBackend, fc.LogBackend)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)
}
