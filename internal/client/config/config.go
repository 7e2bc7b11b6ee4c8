package config

// Config holds runtime settings for the Divergent Flow CLI.
type Config struct {
	// APIBaseURL is the capture API root, e.g. "https://api.example.com/api".
	// Request paths such as "/v1/capture" are appended to it.
	APIBaseURL string

	// Environment names the deployment the CLI talks to. Anything other than
	// "production" prints a banner at start.
	Environment string

	// NeuroMode is the presentation mode used until one is saved locally.
	NeuroMode string

	// DBPath is the SQLite file holding local preferences.
	DBPath string

	LogBackend string
	LogLevel   string
	LogFormat  string
}

const EnvironmentProduction = "production"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api"
	c.Environment = "development"
	c.NeuroMode = "typical"
	c.DBPath = "divergentflow.db"
	c.LogBackend = "slog"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// IsProduction reports whether the CLI targets the production deployment.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a JSON or YAML file (if given) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
