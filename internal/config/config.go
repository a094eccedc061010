package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	// DefaultAPIURL is injected when API_URL is unset or empty.
	DefaultAPIURL = "http://localhost:8080/api"
	// DefaultPlaceholder is the token the docs template carries.
	DefaultPlaceholder = "API_URL_PLACEHOLDER"
	DefaultSpecFile    = "openapi.json"
	DefaultTemplate    = "index.html"
)

// Config holds all runtime configuration for docsprep.
type Config struct {
	Dir         string
	SpecFile    string
	Template    string
	Placeholder string
	APIURL      string
	Validate    bool
	LogLevel    string
	LogConsole  bool
}

// SetDefaults registers the fallback values. Flags bound in cmd/docsprep
// carry the same defaults; these cover callers that never register flags.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dir", ".")
	v.SetDefault("spec_file", DefaultSpecFile)
	v.SetDefault("template", DefaultTemplate)
	v.SetDefault("placeholder", DefaultPlaceholder)
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_console", true)
}

// Load reads configuration from viper, which merges flag values, env vars,
// and defaults (set up by the cobra commands in cmd/docsprep).
func Load(v *viper.Viper) Config {
	cfg := Config{
		Dir:         v.GetString("dir"),
		SpecFile:    v.GetString("spec_file"),
		Template:    v.GetString("template"),
		Placeholder: v.GetString("placeholder"),
		APIURL:      v.GetString("api_url"),
		Validate:    v.GetBool("validate"),
		LogLevel:    v.GetString("log_level"),
		LogConsole:  v.GetBool("log_console"),
	}
	// An exported-but-empty API_URL falls back like an unset one.
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	return cfg
}

// SpecPath is where the pre-generated OpenAPI document is expected.
func (c Config) SpecPath() string {
	return resolve(c.Dir, c.SpecFile)
}

// TemplatePath is the HTML page that receives the API base URL.
func (c Config) TemplatePath() string {
	return resolve(c.Dir, c.Template)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
