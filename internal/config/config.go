package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jrfom/corsfilter"
)

// Config holds all runtime configuration for the corsfilterd demo server.
// Precedence: CLI flags > env vars > defaults.
type Config struct {
	HTTPPort  int
	LogLevel  string
	LogFormat string // log output format: "text" or "json"

	// CORS holds the CORS parameters that were explicitly provided, keyed by
	// parameter name (see corsfilter.ParseParams). Absent parameters take
	// their default value when the filter is built.
	CORS map[string]string
}

// defaults
const (
	defaultHTTPPort  = 8080
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
)

// envPrefix is the prefix for all corsfilterd environment variables.
const envPrefix = "CORSFILTER_"

// corsFlags maps each CORS flag to the parameter it sets.
var corsFlags = map[string]string{
	"cors-allowed-origins":     corsfilter.ParamAllowedOrigins,
	"cors-allowed-methods":     corsfilter.ParamAllowedMethods,
	"cors-allowed-headers":     corsfilter.ParamAllowedHeaders,
	"cors-exposed-headers":     corsfilter.ParamExposedHeaders,
	"cors-preflight-maxage":    corsfilter.ParamPreflightMaxAge,
	"cors-support-credentials": corsfilter.ParamSupportCredentials,
}

// Load parses configuration from args (without the program name) and
// environment variables.
// Precedence: CLI flags > env vars > defaults.
func Load(args []string) (*Config, error) {
	cfg := &Config{CORS: make(map[string]string)}

	fs := flag.NewFlagSet("corsfilterd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&cfg.HTTPPort, "http-port", defaultHTTPPort, "HTTP server listen port")
	fs.StringVar(&cfg.LogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", defaultLogFormat, "log output format (text, json)")

	fs.String("cors-allowed-origins", corsfilter.DefaultAllowedOrigins, "comma-separated list of allowed CORS origins (use * for all)")
	fs.String("cors-allowed-methods", corsfilter.DefaultAllowedMethods, "comma-separated list of allowed methods")
	fs.String("cors-allowed-headers", corsfilter.DefaultAllowedHeaders, "comma-separated list of supported request headers")
	fs.String("cors-exposed-headers", corsfilter.DefaultExposedHeaders, "comma-separated list of exposed response headers")
	fs.String("cors-preflight-maxage", corsfilter.DefaultPreflightMaxAge, "preflight max age in seconds (negative omits the header)")
	fs.String("cors-support-credentials", corsfilter.DefaultSupportCredentials, "whether credentials are supported (true, false, 1, 0)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// Only explicitly set CORS flags are recorded, so that ParseParams
	// remains the single source of CORS defaults.
	fs.Visit(func(f *flag.Flag) {
		if param, ok := corsFlags[f.Name]; ok {
			cfg.CORS[param] = f.Value.String()
		}
	})

	// Apply env var overrides for any flags not explicitly set on the command line.
	applyEnvOverrides(fs, cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// envVar returns the name of the environment variable that overrides the
// flag named flagName, e.g. CORSFILTER_HTTP_PORT for http-port.
func envVar(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// applyEnvOverrides checks environment variables for any flag that was not
// explicitly provided on the command line.
func applyEnvOverrides(fs *flag.FlagSet, cfg *Config) {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	fs.VisitAll(func(f *flag.Flag) {
		if set[f.Name] {
			return
		}
		val, ok := os.LookupEnv(envVar(f.Name))
		if !ok {
			return
		}
		if param, ok := corsFlags[f.Name]; ok {
			// An empty value is meaningful here, e.g. no exposed headers.
			cfg.CORS[param] = val
			return
		}
		if val == "" {
			return
		}
		switch f.Name {
		case "http-port":
			if v, err := strconv.Atoi(val); err == nil {
				cfg.HTTPPort = v
			}
		case "log-level":
			cfg.LogLevel = val
		case "log-format":
			cfg.LogFormat = val
		}
	})
}

// validate checks that the config values are sane.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("http-port must be between 1 and 65535, got %d", c.HTTPPort)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("log-level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.LogFormat)] {
		return fmt.Errorf("log-format must be one of text, json; got %q", c.LogFormat)
	}
	c.LogFormat = strings.ToLower(c.LogFormat)

	return nil
}

// Filter builds the CORS filter described by the CORS parameters.
func (c *Config) Filter() (*corsfilter.Filter, error) {
	cfg, err := corsfilter.ParseParams(c.CORS)
	if err != nil {
		return nil, err
	}
	return corsfilter.NewFilter(cfg), nil
}

// SlogHandler returns a slog.Handler configured with the appropriate format
// (text or json) and log level.
func (c *Config) SlogHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogFormat == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// SlogLevel returns the slog.Level corresponding to the configured log level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
