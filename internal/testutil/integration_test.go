package testutil

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func TestBinaryRejectsInvalidConfig(t *testing.T) {
	bin := BuildBinary(t)
	cmd := exec.Command(bin, "-log-level", "loud", "-log-file", t.TempDir()+"/mirror.log")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit code 2, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(stderr.String(), "loglevel") {
		t.Fatalf("expected loglevel complaint, got %q", stderr.String())
	}
}

func TestNvimEnvIsolatesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/home/someone/.config")
	env := NvimEnv(t)
	var configs []string
	for _, entry := range env {
		if strings.HasPrefix(entry, "XDG_CONFIG_HOME=") {
			configs = append(configs, entry)
		}
	}
	if len(configs) != 1 {
		t.Fatalf("expected one XDG_CONFIG_HOME entry, got %v", configs)
	}
	if strings.Contains(configs[0], "/home/someone") {
		t.Fatalf("expected user config dir replaced, got %s", configs[0])
	}
}

func TestWaitFor(t *testing.T) {
	start := time.Now()
	calls := 0
	WaitFor(t, time.Second, "third call", func() bool {
		calls++
		return calls == 3
	})
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("expected WaitFor to return early")
	}
}
