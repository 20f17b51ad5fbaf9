package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/nvim-ui-mirror/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Level    string `validate:"loglevel"`
	Trace    bool
}

const (
	envNvim           = "NVIM_UI_MIRROR_NVIM"
	envArgs           = "NVIM_UI_MIRROR_ARGS"
	envWidth          = "NVIM_UI_MIRROR_WIDTH"
	envHeight         = "NVIM_UI_MIRROR_HEIGHT"
	envFont           = "NVIM_UI_MIRROR_FONT"
	envLineSpace      = "NVIM_UI_MIRROR_LINESPACE"
	envResizeDelay    = "NVIM_UI_MIRROR_RESIZE_DELAY"
	envResizeInterval = "NVIM_UI_MIRROR_RESIZE_INTERVAL"
	envTrace          = "NVIM_UI_MIRROR_TRACE"
	envLogFile        = "NVIM_UI_MIRROR_LOG_FILE"
	envLogLevel       = "NVIM_UI_MIRROR_LOG_LEVEL"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("nvim-ui-mirror", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	nvimPath := fs.String("nvim", envOrDefault(env, envNvim, "nvim"), "path to the nvim binary")
	nvimArgs := fs.String("args", envOrDefault(env, envArgs, ""), "extra arguments passed to nvim, split on whitespace")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "UI width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "UI height in rows (0 uses terminal height)")
	guifont := fs.String("font", envOrDefault(env, envFont, ""), "initial font in guifont syntax, e.g. Monospace:h12")
	lineSpace := fs.Int("linespace", envOrInt(env, envLineSpace, 0), "initial extra pixels between rows")
	resizeDelay := fs.Duration("resize-delay", envOrDuration(env, envResizeDelay, 50*time.Millisecond), "delay before a surface resize is sent to nvim")
	resizeInterval := fs.Duration("resize-interval", envOrDuration(env, envResizeInterval, 16*time.Millisecond), "minimum spacing between resize requests")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	logLevel := fs.String("log-level", envOrDefault(env, envLogLevel, "info"), "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			NvimPath:       *nvimPath,
			NvimArgs:       strings.Fields(*nvimArgs),
			Width:          *width,
			Height:         *height,
			Font:           *guifont,
			LineSpace:      *lineSpace,
			ResizeDelay:    *resizeDelay,
			ResizeInterval: *resizeInterval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Level:    *logLevel,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"nvim":           *nvimPath,
			"args":           *nvimArgs,
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"font":           *guifont,
			"linespace":      strconv.Itoa(*lineSpace),
			"resizeDelay":    resizeDelay.String(),
			"resizeInterval": resizeInterval.String(),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
			"logLevel":       *logLevel,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
