// Package grid maps a fixed logical row/column layout onto the pixel
// space of the current viewport. A Layout holds no state beyond the
// numbers needed to keep cell sizes in sync with the last resize.
package grid

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Anchor selects which point of a cell CellToCoord returns.
type Anchor int

const (
	AnchorCenter Anchor = iota // Middle of the cell (default)
	AnchorStart                // Top-left corner of the cell
	AnchorEnd                  // Bottom-right corner of the cell
)

// String returns the config name of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "center"
	}
}

// ParseAnchor converts a config name to an Anchor.
// An empty name selects AnchorCenter.
func ParseAnchor(name string) (Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "center":
		return AnchorCenter, nil
	case "start":
		return AnchorStart, nil
	case "end":
		return AnchorEnd, nil
	default:
		return AnchorCenter, fmt.Errorf("grid: unknown anchor %q", name)
	}
}

// ErrInvalidDimensions is returned when a layout would have an empty axis.
var ErrInvalidDimensions = errors.New("grid: dimensions must be positive")

// Point is a pixel coordinate.
type Point struct {
	X, Y float64
}

// Cell is a column/row index pair.
type Cell struct {
	Col, Row int
}

// Layout divides a screen into Columns x Rows equal cells.
type Layout struct {
	columns      int
	rows         int
	screenWidth  float64
	screenHeight float64
	cellWidth    float64
	cellHeight   float64
	anchor       Anchor
}

// New creates a layout. Every dimension must be positive.
func New(columns, rows int, screenWidth, screenHeight float64, anchor Anchor) (*Layout, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells", ErrInvalidDimensions, columns, rows)
	}
	l := &Layout{
		columns: columns,
		rows:    rows,
		anchor:  anchor,
	}
	if err := l.Resize(screenWidth, screenHeight); err != nil {
		return nil, err
	}
	return l, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(columns, rows int, screenWidth, screenHeight float64, anchor Anchor) *Layout {
	l, err := New(columns, rows, screenWidth, screenHeight, anchor)
	if err != nil {
		panic(err)
	}
	return l
}

// Resize recomputes cell sizes for a new viewport.
// The layout is left untouched if the new size is not positive.
func (l *Layout) Resize(screenWidth, screenHeight float64) error {
	if !(screenWidth > 0) || !(screenHeight > 0) || math.IsInf(screenWidth, 0) || math.IsInf(screenHeight, 0) {
		return fmt.Errorf("%w: %vx%v pixels", ErrInvalidDimensions, screenWidth, screenHeight)
	}
	l.screenWidth = screenWidth
	l.screenHeight = screenHeight
	l.cellWidth = screenWidth / float64(l.columns)
	l.cellHeight = screenHeight / float64(l.rows)
	return nil
}

// Columns returns the number of columns.
func (l *Layout) Columns() int { return l.columns }

// Rows returns the number of rows.
func (l *Layout) Rows() int { return l.rows }

// Anchor returns the anchor used by CellToCoord.
func (l *Layout) Anchor() Anchor { return l.anchor }

// ScreenWidth returns the viewport width in pixels.
func (l *Layout) ScreenWidth() float64 { return l.screenWidth }

// ScreenHeight returns the viewport height in pixels.
func (l *Layout) ScreenHeight() float64 { return l.screenHeight }

// CellWidth returns the width of one column in pixels.
func (l *Layout) CellWidth() float64 { return l.cellWidth }

// CellHeight returns the height of one row in pixels.
func (l *Layout) CellHeight() float64 { return l.cellHeight }

// CoordToCell returns the cell containing a pixel coordinate.
// Coordinates outside the screen yield indices outside the grid.
func (l *Layout) CoordToCell(x, y float64) Cell {
	return Cell{
		Col: int(math.Floor(x / l.cellWidth)),
		Row: int(math.Floor(y / l.cellHeight)),
	}
}

// CellToCoord converts a cell index to a pixel coordinate at the anchor.
// Indices are not bounds-checked so callers may address virtual cells.
func (l *Layout) CellToCoord(col, row int) Point {
	x := float64(col) * l.cellWidth
	y := float64(row) * l.cellHeight

	switch l.anchor {
	case AnchorCenter:
		x += l.cellWidth / 2
		y += l.cellHeight / 2
	case AnchorEnd:
		x += l.cellWidth
		y += l.cellHeight
	}
	return Point{X: x, Y: y}
}

// Column returns the x pixel coordinate of a column.
func (l *Layout) Column(col int) float64 {
	return l.CellToCoord(col, 0).X
}

// Row returns the y pixel coordinate of a row.
func (l *Layout) Row(row int) float64 {
	return l.CellToCoord(0, row).Y
}

// CenterX returns the horizontal middle of the screen.
func (l *Layout) CenterX() float64 { return l.screenWidth / 2 }

// CenterY returns the vertical middle of the screen.
func (l *Layout) CenterY() float64 { return l.screenHeight / 2 }

// W2 returns half the screen width.
func (l *Layout) W2() float64 { return l.screenWidth / 2 }

// W4 returns a quarter of the screen width.
func (l *Layout) W4() float64 { return l.screenWidth / 4 }

// W8 returns an eighth of the screen width.
func (l *Layout) W8() float64 { return l.screenWidth / 8 }

// H2 returns half the screen height.
func (l *Layout) H2() float64 { return l.screenHeight / 2 }

// H4 returns a quarter of the screen height.
func (l *Layout) H4() float64 { return l.screenHeight / 4 }

// H8 returns an eighth of the screen height.
func (l *Layout) H8() float64 { return l.screenHeight / 8 }

// AspectRatio returns width divided by height.
func (l *Layout) AspectRatio() float64 { return l.screenWidth / l.screenHeight }
