package font

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Font
	}{
		{"Fira_Code:h13", Font{Family: "Fira Code", Height: 13}},
		{"Iosevka:h10.5:b:i", Font{Family: "Iosevka", Height: 10.5, Bold: true, Italic: true}},
		{"Hack", Font{Family: "Hack", Height: DefaultHeight}},
		{"Hack:h9,Noto Color Emoji:h9", Font{Family: "Hack", Height: 9}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %#v, got %#v", tc.in, tc.want, got)
		}
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", ":h12", "Hack:hx", "Hack:h-1"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
	if got := ParseOrDefault(":h12"); got != Default() {
		t.Fatalf("expected default font, got %#v", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	f := Font{Family: "Fira Code", Height: 13, Bold: true}
	if got := f.String(); got != "Fira_Code:h13:b" {
		t.Fatalf("unexpected guifont %q", got)
	}
}

func TestMeasurers(t *testing.T) {
	w, h := Fixed{Width: 8, Height: 16}.CellSize(Default(), 2)
	if w != 8 || h != 18 {
		t.Fatalf("expected 8x18, got %vx%v", w, h)
	}
	w, h = Terminal{}.CellSize(Default(), 4)
	if w != 1 || h != 1 {
		t.Fatalf("expected 1x1, got %vx%v", w, h)
	}
	w, h = Scaled{WidthRatio: 0.5, HeightRatio: 1.5}.CellSize(Font{Family: "x", Height: 10}, 1)
	if w != 5 || h != 16 {
		t.Fatalf("expected 5x16, got %vx%v", w, h)
	}
}
