package matrix

import (
	"fmt"
	"strings"
)

const (
	// DefaultHeight is the row count of the 8x32 panel.
	DefaultHeight = 32
	// DefaultWidth is the column count of the 8x32 panel.
	DefaultWidth = 8
	// MaxLEDs bounds a table so every index fits a 16-bit cell.
	MaxLEDs = 1 << 16
)

// Corner identifies the grid corner holding LED 0.
type Corner int

const (
	TopRight Corner = iota
	TopLeft
	BottomRight
	BottomLeft
)

var cornerNames = map[Corner]string{
	TopRight:    "top-right",
	TopLeft:     "top-left",
	BottomRight: "bottom-right",
	BottomLeft:  "bottom-left",
}

func (c Corner) String() string {
	if name, ok := cornerNames[c]; ok {
		return name
	}
	return fmt.Sprintf("corner(%d)", int(c))
}

func (c Corner) top() bool  { return c == TopRight || c == TopLeft }
func (c Corner) left() bool { return c == TopLeft || c == BottomLeft }

// ParseCorner parses a corner name such as "top-right".
func ParseCorner(s string) (Corner, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for c, name := range cornerNames {
		if name == norm {
			return c, nil
		}
	}
	return 0, NewLayoutError(ErrCodeInvalidLayout, fmt.Sprintf("unknown start corner %q", s), ErrInvalidLayout)
}

// Axis is the direction a single run of the LED strip follows.
type Axis int

const (
	// AxisRows lays the strip along rows, folding between rows.
	AxisRows Axis = iota
	// AxisColumns lays the strip down columns, folding between columns.
	AxisColumns
)

func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisColumns:
		return "columns"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis parses "rows" or "columns".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rows", "row":
		return AxisRows, nil
	case "columns", "column", "cols", "col":
		return AxisColumns, nil
	default:
		return 0, NewLayoutError(ErrCodeInvalidLayout, fmt.Sprintf("unknown axis %q", s), ErrInvalidLayout)
	}
}

// Layout describes how a chained LED strip is folded into a grid.
//
// The zero Start and Axis values give the classic serpentine panel: LED 0 in
// the top-right corner, even rows running right to left and odd rows left to
// right. Progressive disables the fold so every run goes the same way.
type Layout struct {
	Height      int
	Width       int
	Count       int // total LEDs, 0 means Height*Width
	Start       Corner
	Axis        Axis
	Progressive bool
}

// DefaultLayout returns the 32 row by 8 column serpentine panel.
func DefaultLayout() Layout {
	return Layout{
		Height: DefaultHeight,
		Width:  DefaultWidth,
		Start:  TopRight,
		Axis:   AxisRows,
	}
}

// Normalize validates the layout and resolves Height and Count.
// When Height is 0 it is derived from Count, which must then divide evenly by Width.
func (l Layout) Normalize() (Layout, error) {
	if l.Width <= 0 {
		return l, dimensionsError("width must be positive, got %d", l.Width)
	}
	if l.Height < 0 {
		return l, dimensionsError("height must not be negative, got %d", l.Height)
	}
	if l.Count < 0 {
		return l, dimensionsError("count must not be negative, got %d", l.Count)
	}
	if _, ok := cornerNames[l.Start]; !ok {
		return l, NewLayoutError(ErrCodeInvalidLayout, "unknown start corner "+l.Start.String(), ErrInvalidLayout)
	}
	if l.Axis != AxisRows && l.Axis != AxisColumns {
		return l, NewLayoutError(ErrCodeInvalidLayout, "unknown axis "+l.Axis.String(), ErrInvalidLayout)
	}

	if l.Height == 0 {
		if l.Count == 0 {
			return l, dimensionsError("height or count is required")
		}
		if l.Count%l.Width != 0 {
			return l, dimensionsError("count %d is not divisible by width %d", l.Count, l.Width)
		}
		l.Height = l.Count / l.Width
	}

	if l.Height > MaxLEDs/l.Width {
		return l, dimensionsError("%dx%d exceeds %d LEDs", l.Height, l.Width, MaxLEDs)
	}

	total := l.Height * l.Width
	switch {
	case l.Count == 0:
		l.Count = total
	case l.Count%l.Width != 0:
		return l, dimensionsError("count %d is not divisible by width %d", l.Count, l.Width)
	case l.Count != total:
		return l, dimensionsError("count %d does not match %dx%d", l.Count, l.Height, l.Width)
	}
	return l, nil
}

// Len returns the number of LEDs in a normalized layout.
func (l Layout) Len() int {
	return l.Height * l.Width
}

// Position is the logical grid coordinate of an LED.
type Position struct {
	Row int
	Col int
}

// position maps a wiring-order index to its grid cell. The layout must be
// normalized and i within [0, Len()).
func (l Layout) position(i int) Position {
	runLen, across := l.Width, l.Height
	if l.Axis == AxisColumns {
		runLen, across = l.Height, l.Width
	}

	run, pos := i/runLen, i%runLen

	// Cross coordinate: which row (or column) this run occupies.
	fromNear := l.Start.top()
	fromFar := !l.Start.left()
	if l.Axis == AxisColumns {
		fromNear = l.Start.left()
		fromFar = !l.Start.top()
	}
	cross := run
	if !fromNear {
		cross = across - 1 - run
	}

	// Along coordinate: the first run leaves the start corner, odd runs fold back.
	reversed := fromFar
	if !l.Progressive && run%2 == 1 {
		reversed = !reversed
	}
	along := pos
	if reversed {
		along = runLen - 1 - pos
	}

	if l.Axis == AxisColumns {
		return Position{Row: along, Col: cross}
	}
	return Position{Row: cross, Col: along}
}
