package app

import "testing"

func TestUISize(t *testing.T) {
	cases := []struct {
		name     string
		cfg      Config
		termCols int
		termRows int
		wantCols int
		wantRows int
	}{
		{"flags win", Config{Width: 120, Height: 40}, 80, 24, 120, 40},
		{"terminal size", Config{}, 100, 30, 100, 30},
		{"mixed", Config{Width: 90}, 100, 30, 90, 30},
		{"fallback", Config{}, 0, 0, fallbackCols, fallbackRows},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := uiSize(tc.cfg, tc.termCols, tc.termRows)
			if cols != tc.wantCols || rows != tc.wantRows {
				t.Fatalf("expected %dx%d, got %dx%d", tc.wantCols, tc.wantRows, cols, rows)
			}
		})
	}
}
