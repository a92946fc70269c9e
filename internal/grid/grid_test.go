package grid

import (
	"errors"
	"testing"
)

func TestNewRejectsNonPositiveDimensions(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
		w, h          float64
	}{
		{"zero columns", 0, 12, 800, 600},
		{"zero rows", 16, 0, 800, 600},
		{"negative columns", -1, 12, 800, 600},
		{"zero width", 16, 12, 0, 600},
		{"negative height", 16, 12, 800, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.columns, tc.rows, tc.w, tc.h, AnchorCenter)
			if err == nil {
				t.Fatalf("New() = %+v, expected an error", l)
			}
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New() error = %v, expected ErrInvalidDimensions", err)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew with zero rows should panic")
		}
	}()
	MustNew(4, 0, 100, 100, AnchorCenter)
}

func TestCellSizes(t *testing.T) {
	l := MustNew(16, 12, 800, 600, AnchorCenter)

	if l.CellWidth() != 50 {
		t.Errorf("CellWidth() = %v, expected 50", l.CellWidth())
	}
	if l.CellHeight() != 50 {
		t.Errorf("CellHeight() = %v, expected 50", l.CellHeight())
	}

	if err := l.Resize(1600, 300); err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	if l.CellWidth() != 100 || l.CellHeight() != 25 {
		t.Errorf("after Resize cell = %vx%v, expected 100x25", l.CellWidth(), l.CellHeight())
	}

	// Invalid resize keeps the previous size
	if err := l.Resize(0, 300); err == nil {
		t.Error("Resize(0, 300) should fail")
	}
	if l.CellWidth() != 100 {
		t.Errorf("failed Resize changed CellWidth to %v", l.CellWidth())
	}
}

func TestCellToCoordAnchors(t *testing.T) {
	tests := []struct {
		anchor Anchor
		want   Point
	}{
		{AnchorStart, Point{X: 100, Y: 150}},
		{AnchorCenter, Point{X: 125, Y: 175}},
		{AnchorEnd, Point{X: 150, Y: 200}},
	}

	for _, tc := range tests {
		t.Run(tc.anchor.String(), func(t *testing.T) {
			l := MustNew(16, 12, 800, 600, tc.anchor)
			got := l.CellToCoord(2, 3)
			if got != tc.want {
				t.Errorf("CellToCoord(2, 3) = %+v, expected %+v", got, tc.want)
			}
			if l.Column(2) != tc.want.X {
				t.Errorf("Column(2) = %v, expected %v", l.Column(2), tc.want.X)
			}
			if l.Row(3) != tc.want.Y {
				t.Errorf("Row(3) = %v, expected %v", l.Row(3), tc.want.Y)
			}
		})
	}
}

func TestCoordToCell(t *testing.T) {
	l := MustNew(16, 12, 800, 600, AnchorCenter)

	tests := []struct {
		x, y float64
		want Cell
	}{
		{0, 0, Cell{0, 0}},
		{49.9, 49.9, Cell{0, 0}},
		{50, 50, Cell{1, 1}},
		{799, 599, Cell{15, 11}},
		{-1, -1, Cell{-1, -1}},
	}

	for _, tc := range tests {
		if got := l.CoordToCell(tc.x, tc.y); got != tc.want {
			t.Errorf("CoordToCell(%v, %v) = %+v, expected %+v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestFractions(t *testing.T) {
	l := MustNew(4, 4, 800, 400, AnchorCenter)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"CenterX", l.CenterX(), 400},
		{"CenterY", l.CenterY(), 200},
		{"W2", l.W2(), 400},
		{"W4", l.W4(), 200},
		{"W8", l.W8(), 100},
		{"H2", l.H2(), 200},
		{"H4", l.H4(), 100},
		{"H8", l.H8(), 50},
		{"AspectRatio", l.AspectRatio(), 2},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s() = %v, expected %v", c.name, c.got, c.want)
		}
	}
}

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in      string
		want    Anchor
		wantErr bool
	}{
		{"", AnchorCenter, false},
		{"center", AnchorCenter, false},
		{"Start", AnchorStart, false},
		{" end ", AnchorEnd, false},
		{"middle", AnchorCenter, true},
	}

	for _, tc := range tests {
		got, err := ParseAnchor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAnchor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseAnchor(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
