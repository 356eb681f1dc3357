// Package sudoku encodes Sudoku puzzles as exact-cover instances and solves
// them with package dlx, generalized over the box dimension the way
// qur2-go-cover's SudokuConstraintMatrix is, specialized by default to the
// classic 9x9/3x3 case the way kpitt-sudoku's Dancing Links solver is.
package sudoku

import (
	"fmt"

	"github.com/tmarsh/exactcover/dlx"
)

// Grid is a size x size board of digits 1..size, with 0 marking an empty
// cell.
type Grid [][]int

// Puzzle holds the exact-cover universe for one box dimension. The universe
// is rebuilt fresh for every Solve or CountSolutions call, since pre-seeding is destructive and
// meant to be unwound once via Destroy.
type Puzzle struct {
	boxDim int
	size   int // size = boxDim * boxDim
}

// NewPuzzle returns a Puzzle for the given box dimension (3 for classic
// 9x9 Sudoku, 2 for a 4x4 "mini Sudoku"). boxDim must be at least 2.
func NewPuzzle(boxDim int) (*Puzzle, error) {
	if boxDim < 2 {
		return nil, fmt.Errorf("sudoku: box dimension must be at least 2, got %d", boxDim)
	}
	return &Puzzle{boxDim: boxDim, size: boxDim * boxDim}, nil
}

// Size returns the board's side length (9 for classic Sudoku).
func (p *Puzzle) Size() int { return p.size }

// buildUniverse constructs the four constraint families — cell, row, column,
// box — as exact-cover columns, and one row per (r, c, value) candidate,
// exactly mirroring the structure kpitt-sudoku's buildMatrix builds and
// qur2-go-cover's SudokuConstraintMatrix generalizes over dimension.
func (p *Puzzle) buildUniverse() *dlx.Universe {
	n := p.size
	elements := make([]string, 0, 4*n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			elements = append(elements, cellName(r, c))
		}
	}
	for r := 0; r < n; r++ {
		for v := 1; v <= n; v++ {
			elements = append(elements, rowName(r, v))
		}
	}
	for c := 0; c < n; c++ {
		for v := 1; v <= n; v++ {
			elements = append(elements, colName(c, v))
		}
	}
	for b := 0; b < n; b++ {
		for v := 1; v <= n; v++ {
			elements = append(elements, boxName(b, v))
		}
	}

	u := dlx.NewUniverse(elements)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			box := p.boxOf(r, c)
			for v := 1; v <= n; v++ {
				u.DefineSubset(candidateName(r, c, v), []string{
					cellName(r, c),
					rowName(r, v),
					colName(c, v),
					boxName(box, v),
				})
			}
		}
	}

	return u
}

func (p *Puzzle) boxOf(r, c int) int {
	return (r/p.boxDim)*p.boxDim + c/p.boxDim
}

func cellName(r, c int) string         { return fmt.Sprintf("cell:%d,%d", r, c) }
func rowName(r, v int) string          { return fmt.Sprintf("row:%d#%d", r, v) }
func colName(c, v int) string          { return fmt.Sprintf("col:%d#%d", c, v) }
func boxName(b, v int) string          { return fmt.Sprintf("box:%d#%d", b, v) }
func candidateName(r, c, v int) string { return fmt.Sprintf("R%dC%d#%d", r, c, v) }

// Solve finds a solution for grid, which must be an n x n board (0 marking
// empty cells), and returns the completed grid without mutating grid.
func (p *Puzzle) Solve(grid Grid) (Grid, error) {
	if err := p.validateGrid(grid); err != nil {
		return nil, err
	}

	u := p.buildUniverse()
	defer u.Destroy()

	for r := 0; r < p.size; r++ {
		for c := 0; c < p.size; c++ {
			if v := grid[r][c]; v != 0 {
				if !u.RequireInSolution(candidateName(r, c, v)) {
					return nil, fmt.Errorf("sudoku: clue at (%d,%d)=%d is inconsistent with an earlier clue", r, c, v)
				}
			}
		}
	}

	result := newGrid(p.size)
	var solved bool
	u.SetSolutionSink(func(_ *dlx.Universe, names []string, _ any) {
		solved = true
		for _, name := range names {
			r, c, v := parseCandidateName(name)
			result[r][c] = v
		}
	}, nil)

	u.Search(true)
	if !solved {
		return nil, fmt.Errorf("sudoku: no solution")
	}
	return result, nil
}

// CountSolutions reports how many solutions grid has, without bounding the
// search to the first one — useful for verifying a puzzle is uniquely
// solvable.
func (p *Puzzle) CountSolutions(grid Grid) (uint64, error) {
	if err := p.validateGrid(grid); err != nil {
		return 0, err
	}

	u := p.buildUniverse()
	defer u.Destroy()

	for r := 0; r < p.size; r++ {
		for c := 0; c < p.size; c++ {
			if v := grid[r][c]; v != 0 {
				if !u.RequireInSolution(candidateName(r, c, v)) {
					return 0, fmt.Errorf("sudoku: clue at (%d,%d)=%d is inconsistent with an earlier clue", r, c, v)
				}
			}
		}
	}

	return u.Search(false), nil
}

func (p *Puzzle) validateGrid(grid Grid) error {
	if len(grid) != p.size {
		return fmt.Errorf("sudoku: grid has %d rows, want %d", len(grid), p.size)
	}
	for r, row := range grid {
		if len(row) != p.size {
			return fmt.Errorf("sudoku: row %d has %d cells, want %d", r, len(row), p.size)
		}
		for _, v := range row {
			if v < 0 || v > p.size {
				return fmt.Errorf("sudoku: value %d out of range at row %d", v, r)
			}
		}
	}
	return nil
}

func newGrid(n int) Grid {
	g := make(Grid, n)
	for i := range g {
		g[i] = make([]int, n)
	}
	return g
}

func parseCandidateName(name string) (r, c, v int) {
	fmt.Sscanf(name, "R%dC%d#%d", &r, &c, &v)
	return
}
