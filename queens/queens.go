// Package queens solves the N-queens problem as an exact-cover instance
// over package dlx. The exact cover itself only ever enforces one queen
// per rank and one per file; rather than reaching for secondary
// dancing-links columns to add diagonal safety, each rank/file permutation
// the search finds is checked for diagonal conflicts before being
// reported, so the encoding stays a plain exact cover throughout.
package queens

import (
	"fmt"

	"github.com/tmarsh/exactcover/dlx"
)

// Board is an assignment of exactly one queen per rank, Board[rank] =
// file, both zero-based.
type Board []int

func rankName(r int) string         { return fmt.Sprintf("rank:%d", r) }
func fileName(c int) string         { return fmt.Sprintf("file:%d", c) }
func placementName(r, c int) string { return fmt.Sprintf("Q%d,%d", r, c) }

// buildUniverse defines one column per rank and one per file — a queen's
// diagonals are never represented as columns, so the search reports every
// rank/file permutation and diagonal safety is checked afterwards by
// boardIsSafe, keeping the size and shape of a plain rank/file exact-cover
// matrix.
func buildUniverse(n int) (*dlx.Universe, map[string][2]int) {
	elements := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		elements = append(elements, rankName(i))
	}
	for i := 0; i < n; i++ {
		elements = append(elements, fileName(i))
	}
	u := dlx.NewUniverse(elements)

	placements := make(map[string][2]int)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			name := placementName(r, c)
			u.DefineSubset(name, []string{rankName(r), fileName(c)})
			placements[name] = [2]int{r, c}
		}
	}
	return u, placements
}

// onBoardDiagonal reports whether two placements share a diagonal.
func onBoardDiagonal(r1, c1, r2, c2 int) bool {
	return r1-c1 == r2-c2 || r1+c1 == r2+c2
}

// Solve returns every placement of n mutually non-attacking queens on an
// n x n board. The underlying exact cover only enforces one queen per
// rank and one per file; each raw cover solution is checked for diagonal
// conflicts before being reported, so the search still explores the full
// rank/file permutation space but only surfaces the safe permutations.
func Solve(n int) ([]Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("queens: n must be positive, got %d", n)
	}

	u, placements := buildUniverse(n)
	defer u.Destroy()

	var boards []Board
	u.SetSolutionSink(func(_ *dlx.Universe, names []string, _ any) {
		board := make(Board, n)
		cells := make([][2]int, 0, n)
		for _, name := range names {
			rc := placements[name]
			board[rc[0]] = rc[1]
			cells = append(cells, rc)
		}
		if boardIsSafe(cells) {
			boards = append(boards, board)
		}
	}, nil)

	u.Search(false)
	return boards, nil
}

func boardIsSafe(cells [][2]int) bool {
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			if onBoardDiagonal(cells[i][0], cells[i][1], cells[j][0], cells[j][1]) {
				return false
			}
		}
	}
	return true
}

// CountSolutions returns len(Solve(n)), for callers that only need the
// count (OEIS A000170). It builds the boards via Solve and discards them.
func CountSolutions(n int) (int, error) {
	boards, err := Solve(n)
	if err != nil {
		return 0, err
	}
	return len(boards), nil
}
