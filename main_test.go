package main

import (
	"testing"
	"time"

	"github.com/atomicstack/nvim-ui-mirror/internal/app"
	"github.com/atomicstack/nvim-ui-mirror/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			NvimPath:    "/usr/bin/nvim",
			NvimArgs:    []string{"--clean"},
			Width:       80,
			Height:      24,
			Font:        "Monospace:h12",
			ResizeDelay: 50 * time.Millisecond,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Level:    "debug",
			Trace:    true,
		},
		Flags: map[string]string{
			"nvim":   "/usr/bin/nvim",
			"args":   "--clean",
			"width":  "80",
			"height": "24",
			"font":   "Monospace:h12",
		},
		Args: []string{"-nvim", "/usr/bin/nvim", "-args", "--clean"},
	}
	tty := ttyDetails{Detected: &ttyDetected{Source: "stdout", Width: 100, Height: 30}}

	payload := startupTracePayload(cfg, tty)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	cases := map[string]interface{}{
		"nvim":     "/usr/bin/nvim",
		"args":     "--clean",
		"width":    "80",
		"height":   "24",
		"font":     "Monospace:h12",
		"trace":    true,
		"logFile":  "trace.log",
		"logLevel": "debug",
	}
	for key, want := range cases {
		if flagsValue[key] != want {
			t.Fatalf("expected %s flag %v, got %v", key, want, flagsValue[key])
		}
	}

	gotTTY, ok := payload["tty"].(ttyDetails)
	if !ok {
		t.Fatalf("expected tty details in payload")
	}
	if gotTTY.Detected == nil || gotTTY.Detected.Width != 100 {
		t.Fatalf("expected detected tty passed through, got %+v", gotTTY.Detected)
	}
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if cfgValue.App.NvimPath != cfg.App.NvimPath || cfgValue.App.Width != cfg.App.Width {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
	if _, ok := payload["argv"].([]string); !ok {
		t.Fatalf("expected argv in payload")
	}
}
