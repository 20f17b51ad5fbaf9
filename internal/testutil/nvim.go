package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RequireNvim aborts the calling test when nvim is not present on PATH.
func RequireNvim(t *testing.T) string {
	t.Helper()
	path, err := exec.LookPath("nvim")
	if err != nil {
		t.Skip("skipping: nvim binary not available")
	}
	return path
}

// NvimArgs are the arguments that start nvim without user config,
// plugins, swap files or shada.
func NvimArgs() []string {
	return []string{"--clean", "-n", "-i", "NONE"}
}

// NvimEnv returns the current environment with the XDG directories
// pointed at a per-test temporary tree, so an embedded nvim cannot read
// or write the user's state.
func NvimEnv(t *testing.T) []string {
	t.Helper()
	base := t.TempDir()
	overrides := map[string]string{
		"XDG_CONFIG_HOME": filepath.Join(base, "config"),
		"XDG_DATA_HOME":   filepath.Join(base, "data"),
		"XDG_STATE_HOME":  filepath.Join(base, "state"),
		"XDG_CACHE_HOME":  filepath.Join(base, "cache"),
	}
	env := make([]string, 0, len(os.Environ())+len(overrides))
	for _, entry := range os.Environ() {
		key, _, _ := strings.Cut(entry, "=")
		if _, ok := overrides[key]; ok || key == "NVIM" || key == "NVIM_LISTEN_ADDRESS" {
			continue
		}
		env = append(env, entry)
	}
	for key, value := range overrides {
		env = append(env, key+"="+value)
	}
	return env
}
