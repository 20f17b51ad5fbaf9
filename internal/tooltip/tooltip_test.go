package tooltip

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/nvim-ui-mirror/internal/font"
	"github.com/atomicstack/nvim-ui-mirror/internal/geom"
)

func TestForcedGravityWins(t *testing.T) {
	tt := New(font.Default())
	tt.SetBounds(geom.Rect{Width: 100, Height: 100}, 30)
	tt.MoveTo(geom.Rect{Y: 90, Height: 10})
	if tt.Gravity() != GravityUp {
		t.Fatalf("expected auto gravity up near the bottom, got %s", tt.Gravity())
	}
	tt.ForceGravity(GravityDown)
	tt.RefreshPosition()
	if tt.Gravity() != GravityDown {
		t.Fatalf("expected forced gravity down, got %s", tt.Gravity())
	}
	tt.ForceGravity(GravityAuto)
	tt.RefreshPosition()
	if tt.Gravity() != GravityUp {
		t.Fatalf("expected released gravity to return to auto, got %s", tt.Gravity())
	}
}

func TestLoadStyle(t *testing.T) {
	tt := New(font.Default())
	err := tt.LoadStyle(filepath.Join(t.TempDir(), "missing.css"))
	if !errors.Is(err, ErrStyleNotFound) {
		t.Fatalf("expected ErrStyleNotFound, got %v", err)
	}
	path := filepath.Join(t.TempDir(), "style.css")
	if err := os.WriteFile(path, []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := tt.LoadStyle(path); err != nil {
		t.Fatalf("expected style to load, got %v", err)
	}
	if _, got := tt.Style(); got != path {
		t.Fatalf("expected path %q, got %q", path, got)
	}
}
