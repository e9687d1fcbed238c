package matrix

import "fmt"

// Table maps logical grid cells to wiring-order LED indices.
// A Table is immutable once Generate returns it.
type Table struct {
	layout    Layout
	cells     [][]int
	positions []Position
}

// Generate builds the lookup table for a layout.
func Generate(layout Layout) (*Table, error) {
	l, err := layout.Normalize()
	if err != nil {
		return nil, err
	}

	cells := make([][]int, l.Height)
	for r := range cells {
		cells[r] = make([]int, l.Width)
		for c := range cells[r] {
			cells[r][c] = -1
		}
	}

	positions := make([]Position, l.Len())
	for i := range positions {
		p := l.position(i)
		cells[p.Row][p.Col] = i
		positions[i] = p
	}

	t := &Table{layout: l, cells: cells, positions: positions}
	if err := t.Verify(); err != nil {
		return nil, err
	}
	return t, nil
}

// Layout returns the normalized layout the table was built from.
func (t *Table) Layout() Layout {
	return t.layout
}

// Height returns the number of rows.
func (t *Table) Height() int {
	return t.layout.Height
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return t.layout.Width
}

// Len returns the number of LEDs.
func (t *Table) Len() int {
	return len(t.positions)
}

// At returns the wiring-order index of the LED at row, col.
func (t *Table) At(row, col int) (int, error) {
	if row < 0 || row >= t.Height() || col < 0 || col >= t.Width() {
		return 0, NewLayoutError(ErrCodeOutOfRange,
			fmt.Sprintf("cell (%d, %d) outside %dx%d grid", row, col, t.Height(), t.Width()), ErrIndexOutOfRange)
	}
	return t.cells[row][col], nil
}

// Position returns the grid cell of a wiring-order index.
func (t *Table) Position(index int) (Position, error) {
	if index < 0 || index >= len(t.positions) {
		return Position{}, NewLayoutError(ErrCodeOutOfRange,
			fmt.Sprintf("LED %d outside [0, %d)", index, len(t.positions)), ErrIndexOutOfRange)
	}
	return t.positions[index], nil
}

// Row returns a copy of one row of the table.
func (t *Table) Row(row int) []int {
	out := make([]int, len(t.cells[row]))
	copy(out, t.cells[row])
	return out
}

// Rows returns a copy of the whole table.
func (t *Table) Rows() [][]int {
	out := make([][]int, len(t.cells))
	for r := range t.cells {
		out[r] = t.Row(r)
	}
	return out
}

// Verify checks that every index in [0, Len()) appears exactly once.
func (t *Table) Verify() error {
	seen := make([]bool, t.Len())
	for r, row := range t.cells {
		for c, v := range row {
			if v < 0 || v >= len(seen) {
				return NewLayoutError(ErrCodeNotBijective,
					fmt.Sprintf("cell (%d, %d) holds %d", r, c, v), ErrNotBijective)
			}
			if seen[v] {
				return NewLayoutError(ErrCodeNotBijective,
					fmt.Sprintf("LED %d appears more than once, again at (%d, %d)", v, r, c), ErrNotBijective)
			}
			seen[v] = true
		}
	}
	for i, ok := range seen {
		if !ok {
			return NewLayoutError(ErrCodeNotBijective, fmt.Sprintf("LED %d is missing", i), ErrNotBijective)
		}
	}
	return nil
}
