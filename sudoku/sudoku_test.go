package sudoku

import "testing"

// seventeenClue is a published minimal 17-clue Sudoku with a unique
// solution — the smallest known clue count for a uniquely solvable puzzle.
var seventeenClue = Grid{
	{0, 0, 0, 0, 0, 0, 0, 1, 0},
	{4, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 2, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 5, 0, 4, 0, 7},
	{0, 0, 8, 0, 0, 0, 3, 0, 0},
	{0, 0, 1, 0, 9, 0, 0, 0, 0},
	{3, 0, 0, 4, 0, 0, 2, 0, 0},
	{0, 5, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 8, 0, 6, 0, 0, 0},
}

func TestScenarioG_SeventeenClueUnique(t *testing.T) {
	p, err := NewPuzzle(3)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}

	n, err := p.CountSolutions(seventeenClue)
	if err != nil {
		t.Fatalf("CountSolutions: %v", err)
	}
	if n != 1 {
		t.Fatalf("CountSolutions = %d, want 1", n)
	}

	solved, err := p.Solve(seventeenClue)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if err := verifyComplete(solved); err != nil {
		t.Fatalf("solved grid is invalid: %v", err)
	}
	if err := verifyMatchesGiven(seventeenClue, solved); err != nil {
		t.Fatalf("solved grid dropped a clue: %v", err)
	}
}

func TestEmptyGridHasManySolutions(t *testing.T) {
	p, err := NewPuzzle(2) // 4x4 mini Sudoku keeps the search small.
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	empty := Grid{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	n, err := p.CountSolutions(empty)
	if err != nil {
		t.Fatalf("CountSolutions: %v", err)
	}
	if n == 0 {
		t.Fatal("an empty grid must have at least one completion")
	}

	solved, err := p.Solve(empty)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if err := verifyComplete(solved); err != nil {
		t.Fatalf("solved grid is invalid: %v", err)
	}
}

func TestInconsistentCluesRejected(t *testing.T) {
	p, err := NewPuzzle(2)
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	grid := Grid{
		{1, 1, 0, 0}, // two 1s in the same row: unsolvable
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if _, err := p.Solve(grid); err == nil {
		t.Error("Solve accepted a grid with a row conflict")
	}
}

func TestNewPuzzleRejectsSmallBoxDim(t *testing.T) {
	if _, err := NewPuzzle(1); err == nil {
		t.Error("NewPuzzle(1) should be rejected")
	}
}

func verifyComplete(g Grid) error {
	n := len(g)
	boxDim := 1
	for boxDim*boxDim < n {
		boxDim++
	}

	for i := 0; i < n; i++ {
		if err := verifyGroup(groupValues(g, n, func(j int) (int, int) { return i, j })); err != nil {
			return err
		}
		if err := verifyGroup(groupValues(g, n, func(j int) (int, int) { return j, i })); err != nil {
			return err
		}
	}
	for b := 0; b < n; b++ {
		baseRow, baseCol := (b/boxDim)*boxDim, (b%boxDim)*boxDim
		err := verifyGroup(groupValues(g, n, func(j int) (int, int) {
			return baseRow + j/boxDim, baseCol + j%boxDim
		}))
		if err != nil {
			return err
		}
	}
	return nil
}

func groupValues(g Grid, count int, at func(int) (int, int)) []int {
	vals := make([]int, count)
	for j := 0; j < count; j++ {
		r, c := at(j)
		vals[j] = g[r][c]
	}
	return vals
}

func verifyGroup(vals []int) error {
	seen := make(map[int]bool, len(vals))
	for _, v := range vals {
		if v < 1 || v > len(vals) {
			return errOutOfRange(v)
		}
		if seen[v] {
			return errDuplicate(v)
		}
		seen[v] = true
	}
	return nil
}

type errOutOfRange int

func (e errOutOfRange) Error() string { return "value out of range" }

type errDuplicate int

func (e errDuplicate) Error() string { return "duplicate value in row/column/box" }

func verifyMatchesGiven(given, solved Grid) error {
	for r := range given {
		for c := range given[r] {
			if given[r][c] != 0 && given[r][c] != solved[r][c] {
				return errDuplicate(given[r][c])
			}
		}
	}
	return nil
}
