package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.NvimPath != "nvim" {
		t.Fatalf("expected nvim path default, got %q", cfg.App.NvimPath)
	}
	if cfg.App.ResizeDelay != 50*time.Millisecond {
		t.Fatalf("expected 50ms resize delay, got %v", cfg.App.ResizeDelay)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected info level, got %q", cfg.Logging.Level)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		envNvim + "=/opt/nvim/bin/nvim",
		envWidth + "=100",
		envHeight + "=30",
		envFont + "=Iosevka:h11",
		envTrace + "=true",
		envResizeDelay + "=200ms",
		"UNRELATED",
	}
	cfg, err := LoadArgs([]string{"-width", "120", "-args", "--clean -n", "-log-level", "debug"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.NvimPath != "/opt/nvim/bin/nvim" {
		t.Fatalf("expected env nvim path, got %q", cfg.App.NvimPath)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 30 {
		t.Fatalf("expected 120x30, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if strings.Join(cfg.App.NvimArgs, ",") != "--clean,-n" {
		t.Fatalf("expected split nvim args, got %q", cfg.App.NvimArgs)
	}
	if cfg.App.Font != "Iosevka:h11" || !cfg.Logging.Trace {
		t.Fatalf("expected env font and trace, got %q %v", cfg.App.Font, cfg.Logging.Trace)
	}
	if cfg.App.ResizeDelay != 200*time.Millisecond {
		t.Fatalf("expected 200ms delay, got %v", cfg.App.ResizeDelay)
	}
	if cfg.Flags["width"] != "120" || cfg.Flags["logLevel"] != "debug" {
		t.Fatalf("unexpected flags map %v", cfg.Flags)
	}
	if len(cfg.Args) != 6 {
		t.Fatalf("expected args recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envWidth + "=wide", envTrace + "=maybe", envResizeDelay + "=soon"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace || cfg.App.ResizeDelay != 50*time.Millisecond {
		t.Fatalf("expected fallbacks, got %+v %+v", cfg.App, cfg.Logging)
	}
}

func TestLoadArgsRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad level", args: []string{"-log-level", "loud"}, want: "loglevel"},
		{name: "bad font", args: []string{"-font", ":h12"}, want: "guifont"},
		{name: "negative linespace", args: []string{"-linespace", "-2"}, want: "min"},
		{name: "empty nvim", args: []string{"-nvim", ""}, want: "required"},
		{name: "negative delay", args: []string{"-resize-delay", "-1s"}, want: "min"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadArgs(tt.args, nil)
			if err != nil {
				t.Fatalf("unexpected load error: %v", err)
			}
			err = Validate(cfg)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}

	cfg, _ := LoadArgs([]string{"-log-level", "WARN", "-font", "Fira Code:h13:b"}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
