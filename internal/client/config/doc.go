// Package config loads runtime configuration for the Divergent Flow CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file (see parseFile) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # File schema
//
//	api_base_url: https://api.example.com/api
//	environment: staging
//	neuro_mode: divergent
//	db_path: /home/me/.divergentflow.db
//	log_backend: zap
//	log_level: debug
//	log_format: json
//
// The same keys are used in JSON files.
package config
