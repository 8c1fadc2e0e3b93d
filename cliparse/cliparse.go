package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"

	"github.com/danielhkuo/quickly-tally/storage"
)

type Config struct {
	DatabaseURL   string
	DatabaseType  string
	RedirectDelay time.Duration
	RefreshDelay  time.Duration
	WatchDebounce time.Duration
	LogLevel      string
	LogFormat     string
	EnvFile       string
}

// Log formats
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Defaults returns the configuration used when neither a flag nor the
// environment sets a value.
func Defaults() Config {
	return Config{
		DatabaseURL:   "tally.db",
		DatabaseType:  storage.TypeSQLite,
		RedirectDelay: 1500 * time.Millisecond,
		RefreshDelay:  500 * time.Millisecond,
		WatchDebounce: 50 * time.Millisecond,
		LogLevel:      "info",
		LogFormat:     FormatAuto,
		EnvFile:       ".env",
	}
}

// flag name → environment variable
var envFallback = map[string]string{
	"database-url":   "DATABASE_URL",
	"database-type":  "DATABASE_TYPE",
	"redirect-delay": "REDIRECT_DELAY",
	"refresh-delay":  "REFRESH_DELAY",
	"watch-debounce": "WATCH_DEBOUNCE",
	"log-level":      "LOG_LEVEL",
	"log-format":     "LOG_FORMAT",
}

// BindFlags registers every setting on flags with its default.
func BindFlags(flags *pflag.FlagSet, cfg *Config) {
	def := Defaults()

	// Storage config (can be CLI args or env)
	flags.StringVarP(&cfg.DatabaseURL, "database-url", "d", def.DatabaseURL, "Storage file path")
	flags.StringVarP(&cfg.DatabaseType, "database-type", "t", def.DatabaseType, "Storage type ("+strings.Join(storage.Types, ", ")+")")

	// Page timing
	flags.DurationVar(&cfg.RedirectDelay, "redirect-delay", def.RedirectDelay, "Delay before a voter is sent to the dashboard")
	flags.DurationVar(&cfg.RefreshDelay, "refresh-delay", def.RefreshDelay, "Delay between announcing and drawing a dashboard refresh")
	flags.DurationVar(&cfg.WatchDebounce, "watch-debounce", def.WatchDebounce, "Quiet period before a storage file change is reported")

	flags.StringVar(&cfg.LogLevel, "log-level", def.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFormat, "log-format", def.LogFormat, "Log format (auto, text, json)")
	flags.StringVar(&cfg.EnvFile, "env-file", def.EnvFile, "Environment file loaded before resolving settings")
}

// Resolve loads the env file, fills every flag the user did not set from
// the environment and validates the result. CLI flags take precedence over
// environment variables.
func Resolve(flags *pflag.FlagSet, cfg *Config) error {
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	for name, env := range envFallback {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("invalid %s env variable: %w", env, err)
		}
	}

	return cfg.Validate()
}

// Validate checks values that flag parsing cannot.
func (c Config) Validate() error {
	if c.DatabaseURL == "" && c.DatabaseType != storage.TypeMemory {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if !slices.Contains(storage.Types, c.DatabaseType) {
		return fmt.Errorf("%w: %q", storage.ErrUnknownType, c.DatabaseType)
	}
	for name, d := range map[string]time.Duration{
		"redirect delay": c.RedirectDelay,
		"refresh delay":  c.RefreshDelay,
		"watch debounce": c.WatchDebounce,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	switch c.LogFormat {
	case FormatAuto, FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
