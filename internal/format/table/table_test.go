package table

import "testing"

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"id", "size", "kind"},
		{"1", "80x24", "docked"},
		{"12", "40x3", "floating"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	expected := []string{
		"id  size   kind    ",
		" 1  80x24  docked  ",
		"12  40x3   floating",
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("row %d: expected %q, got %q", i, expected[i], got[i])
		}
	}
}

func TestFormatIgnoresEscapesAndCountsWide(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mab\x1b[0m", "x"},
		{"日本", "y"},
		{"a", "z"},
	}
	got := Format(rows, nil)
	if got[2] != "a     z" {
		t.Fatalf("expected width 4 column, got %q", got[2])
	}
	if got[0] != "\x1b[1mab\x1b[0m    x" {
		t.Fatalf("expected styled cell padded by visible width, got %q", got[0])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
