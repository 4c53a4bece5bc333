package paintwar

import (
	"fmt"

	"github.com/vovakirdan/tui-paintwar/internal/config"
	"github.com/vovakirdan/tui-paintwar/internal/physics"
)

// ErrLayoutMismatch is returned when a layout's shape differs from the
// requested rows x cols. It is the same sentinel config validation uses.
var ErrLayoutMismatch = config.ErrLayoutMismatch

// Layout is an immutable 2D array of block teams, indexed [row][col].
type Layout struct {
	cells [][]physics.Team
}

// ParseLayout converts rows of 'b'/'w' tokens into a Layout.
// Rows may differ in length here; BuildGrid checks the shape.
func ParseLayout(rows []string) (Layout, error) {
	cells := make([][]physics.Team, len(rows))
	for r, row := range rows {
		cells[r] = make([]physics.Team, len(row))
		for c := 0; c < len(row); c++ {
			team, err := physics.ParseTeam(string(row[c]))
			if err != nil {
				return Layout{}, fmt.Errorf("paintwar: layout (%d,%d): %w", r, c, err)
			}
			cells[r][c] = team
		}
	}
	return Layout{cells: cells}, nil
}

// Rows returns the number of rows.
func (l Layout) Rows() int {
	return len(l.cells)
}

// Cols returns the length of row r, or 0 if r is out of range.
func (l Layout) Cols(r int) int {
	if r < 0 || r >= len(l.cells) {
		return 0
	}
	return len(l.cells[r])
}

// At returns the team at (r, c). The caller must stay in bounds.
func (l Layout) At(r, c int) physics.Team {
	return l.cells[r][c]
}

// Strings renders the layout back to token rows.
func (l Layout) Strings() []string {
	out := make([]string, len(l.cells))
	for r, row := range l.cells {
		buf := make([]byte, len(row))
		for c, team := range row {
			buf[c] = team.Token()
		}
		out[r] = string(buf)
	}
	return out
}

// BuildGrid creates rows*cols static blocks in row-major order. Block (r, c)
// is centered at (c*cell + cell/2, r*cell + cell/2) and belongs to layout[r][c].
func BuildGrid(rows, cols int, cell float64, layout Layout) ([]*physics.Body, error) {
	if layout.Rows() != rows {
		return nil, fmt.Errorf("paintwar: %w: want %d rows, got %d", ErrLayoutMismatch, rows, layout.Rows())
	}
	for r := 0; r < rows; r++ {
		if n := layout.Cols(r); n != cols {
			return nil, fmt.Errorf("paintwar: %w: row %d: want %d cols, got %d", ErrLayoutMismatch, r, cols, n)
		}
	}

	blocks := make([]*physics.Body, 0, rows*cols)
	half := cell / 2
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := float64(c)*cell + half
			y := float64(r)*cell + half
			blocks = append(blocks, physics.NewBlock(layout.At(r, c), x, y, cell))
		}
	}
	return blocks, nil
}
