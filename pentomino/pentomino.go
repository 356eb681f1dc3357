// Package pentomino tiles a board with the twelve free pentominoes by
// encoding the tiling as an exact-cover instance and solving it with
// package dlx, the way sudoku.go encodes a Sudoku board over the same
// kernel.
package pentomino

import (
	"fmt"

	"github.com/tmarsh/exactcover/dlx"
	"github.com/tmarsh/exactcover/internal/set"
)

// Cell is a single (row, col) square of a pentomino shape, relative
// to some anchor.
type Cell struct{ R, C int }

// shapes holds the twelve free pentominoes in one canonical orientation,
// named by the standard F,I,L,N,P,T,U,V,W,X,Y,Z letters.
var shapes = map[string][]Cell{
	"F": {{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
	"I": {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}},
	"L": {{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}},
	"N": {{0, 1}, {1, 1}, {2, 0}, {2, 1}, {3, 0}},
	"P": {{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}},
	"T": {{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}},
	"U": {{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}},
	"V": {{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
	"W": {{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}},
	"X": {{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}},
	"Y": {{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}},
	"Z": {{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}},
}

// Board is an m x n grid with a set of holes that no piece may cover,
// such as the 2x2 center cut from the classic 8x8-minus-4 board.
type Board struct {
	rows, cols int
	holes      *set.Set[Cell]
}

// NewBoard returns a rows x cols board with no holes.
func NewBoard(rows, cols int) *Board {
	return &Board{rows: rows, cols: cols, holes: set.NewSet[Cell]()}
}

// NewClassicBoard returns the traditional 8x8 board with its center 2x2
// cut out, leaving exactly 60 squares for the twelve pentominoes.
func NewClassicBoard() *Board {
	b := NewBoard(8, 8)
	b.holes.Add(Cell{3, 3}, Cell{3, 4}, Cell{4, 3}, Cell{4, 4})
	return b
}

// Hole marks (r, c) as unavailable to any placement.
func (b *Board) Hole(r, c int) {
	b.holes.Add(Cell{r, c})
}

func (b *Board) inBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols && !b.holes.Contains(Cell{r, c})
}

func (b *Board) available() int {
	return b.rows*b.cols - b.holes.Size()
}

// Solution maps each used piece letter to the cells it covers.
type Solution map[string][]Cell

// orientations returns every distinct orientation of shape reachable by
// the 4 rotations and their mirror image, normalized so the minimum row
// and column are both 0, with duplicates removed. The Y pentomino's
// reflection and the L pentomino's reflection are genuinely distinct
// shapes (free pentominoes, not one-sided), so all 8 candidates are kept
// except where rotation/reflection symmetry collapses them.
func orientations(cells []Cell) [][]Cell {
	seen := make(map[string]bool)
	var out [][]Cell

	cur := cells
	for reflect := 0; reflect < 2; reflect++ {
		for rot := 0; rot < 4; rot++ {
			norm := normalize(cur)
			key := shapeKey(norm)
			if !seen[key] {
				seen[key] = true
				out = append(out, norm)
			}
			cur = rotate90(cur)
		}
		cur = mirror(cells)
	}
	return out
}

func rotate90(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, p := range cells {
		out[i] = Cell{p.C, -p.R}
	}
	return out
}

func mirror(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, p := range cells {
		out[i] = Cell{p.R, -p.C}
	}
	return out
}

func normalize(cells []Cell) []Cell {
	minR, minC := cells[0].R, cells[0].C
	for _, p := range cells {
		if p.R < minR {
			minR = p.R
		}
		if p.C < minC {
			minC = p.C
		}
	}
	out := make([]Cell, len(cells))
	for i, p := range cells {
		out[i] = Cell{p.R - minR, p.C - minC}
	}
	sortCells(out)
	return out
}

func sortCells(cells []Cell) {
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && less(cells[j], cells[j-1]); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
}

func less(a, b Cell) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	return a.C < b.C
}

func shapeKey(cells []Cell) string {
	s := ""
	for _, p := range cells {
		s += fmt.Sprintf("%d,%d;", p.R, p.C)
	}
	return s
}

func pieceColumnName(letter string) string { return "piece:" + letter }
func cellColumnName(r, c int) string       { return fmt.Sprintf("cell:%d,%d", r, c) }

// placementName identifies a single placement option: which piece, which
// orientation index, anchored at which board cell.
func placementName(letter string, orientIdx, r, c int) string {
	return fmt.Sprintf("%s@%d#%d,%d", letter, orientIdx, r, c)
}

// breakSquareSymmetry keeps only the first orientation of the Y pentomino
// on a square board. Y has no symmetry of its own, so its eight
// orientations are distinct; on a board with the full dihedral symmetry of
// the square, the eight images of a tiling place Y in eight different
// orientations, and exactly one of them is kept, so each fundamentally
// distinct tiling is reported once instead of eight times. It is a no-op on
// boards that are not square or that do not use the Y piece; on a square
// board whose holes lack that symmetry it still applies.
func breakSquareSymmetry(board *Board, letter string, orientIdx int) bool {
	if letter != "Y" || board.rows != board.cols {
		return true
	}
	return orientIdx == 0
}

// Solve tiles b with the requested pieces (letters from F,I,L,N,P,T,U,V,
// W,X,Y,Z; nil means all twelve). On a square board that includes the Y
// piece, placements of Y in any but its first orientation are excluded via
// breakSquareSymmetry, so Solve on the classic board reports
// each tiling once rather than once per whole-board rotation/reflection.
// It returns every tiling found.
func (b *Board) Solve(pieces []string) ([]Solution, error) {
	u, placements, err := b.prepare(pieces)
	if err != nil {
		return nil, err
	}
	defer u.Destroy()

	var solutions []Solution
	u.SetSolutionSink(func(_ *dlx.Universe, names []string, _ any) {
		solutions = append(solutions, namesToSolution(names, placements))
	}, nil)

	u.Search(false)
	return solutions, nil
}

// SolveFirst tiles b with the requested pieces the same way Solve does, but
// stops the search as soon as one tiling is found instead of exploring the
// rest of the search tree. found is false if the board admits no tiling.
func (b *Board) SolveFirst(pieces []string) (sol Solution, found bool, err error) {
	u, placements, err := b.prepare(pieces)
	if err != nil {
		return nil, false, err
	}
	defer u.Destroy()

	u.SetSolutionSink(func(_ *dlx.Universe, names []string, _ any) {
		sol = namesToSolution(names, placements)
		found = true
	}, nil)

	u.Search(true)
	return sol, found, nil
}

func namesToSolution(names []string, placements map[string]placement) Solution {
	sol := make(Solution)
	for _, name := range names {
		p := placements[name]
		sol[p.letter] = append(sol[p.letter], p.cells...)
	}
	return sol
}

// prepare validates the requested piece set against board's open cell count
// and builds the exact-cover universe shared by Solve and SolveFirst.
func (b *Board) prepare(pieces []string) (*dlx.Universe, map[string]placement, error) {
	if pieces == nil {
		pieces = allPieceLetters()
	}
	total := 0
	for _, letter := range pieces {
		if _, ok := shapes[letter]; !ok {
			return nil, nil, fmt.Errorf("pentomino: unknown piece %q", letter)
		}
		total += 5
	}
	if total != b.available() {
		return nil, nil, fmt.Errorf("pentomino: %d piece cells do not match %d open board cells", total, b.available())
	}

	u, placements := buildUniverse(b, pieces)
	return u, placements, nil
}

type placement struct {
	letter string
	cells  []Cell
}

func buildUniverse(board *Board, pieces []string) (*dlx.Universe, map[string]placement) {
	elements := make([]string, 0)
	for _, letter := range pieces {
		elements = append(elements, pieceColumnName(letter))
	}
	for r := 0; r < board.rows; r++ {
		for c := 0; c < board.cols; c++ {
			if board.inBounds(r, c) {
				elements = append(elements, cellColumnName(r, c))
			}
		}
	}

	u := dlx.NewUniverse(elements)
	placements := make(map[string]placement)

	for _, letter := range pieces {
		orients := orientations(shapes[letter])
		for orientIdx, shape := range orients {
			for r := 0; r < board.rows; r++ {
				for c := 0; c < board.cols; c++ {
					cells, ok := placeAt(board, shape, r, c)
					if !ok {
						continue
					}
					if !breakSquareSymmetry(board, letter, orientIdx) {
						continue
					}
					name := placementName(letter, orientIdx, r, c)
					elems := make([]string, 0, len(cells)+1)
					elems = append(elems, pieceColumnName(letter))
					for _, rc := range cells {
						elems = append(elems, cellColumnName(rc.R, rc.C))
					}
					u.DefineSubset(name, elems)
					placements[name] = placement{letter: letter, cells: cells}
				}
			}
		}
	}

	return u, placements
}

func placeAt(board *Board, shape []Cell, r, c int) ([]Cell, bool) {
	cells := make([]Cell, len(shape))
	for i, p := range shape {
		rc := Cell{r + p.R, c + p.C}
		if !board.inBounds(rc.R, rc.C) {
			return nil, false
		}
		cells[i] = rc
	}
	return cells, true
}

func allPieceLetters() []string {
	letters := make([]string, 0, len(shapes))
	for l := range shapes {
		letters = append(letters, l)
	}
	sortStrings(letters)
	return letters
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
