// Command dlxdemo exercises package dlx and its three domain encoders —
// sudoku, pentomino, and queens — from the command line, the way
// cmd/dancing_links_demo walked through kpitt-sudoku's solver.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/tmarsh/exactcover/dlx"
	"github.com/tmarsh/exactcover/pentomino"
	"github.com/tmarsh/exactcover/queens"
	"github.com/tmarsh/exactcover/sudoku"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	var err error
	switch sub {
	case "knuth":
		err = runKnuth(args)
	case "sudoku":
		err = runSudoku(args)
	case "pentomino":
		err = runPentomino(args)
	case "queens":
		err = runQueens(args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, color.HiRedString("error: %v", err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dlxdemo <knuth|sudoku|pentomino|queens> [flags]")
}

// runKnuth reruns the textbook 7-element exact-cover instance from
// Knuth's Dancing Links paper and prints the solution it finds. Only this
// subcommand exposes -trace: sudoku, pentomino, and queens each build
// their own dlx.Universe internally and don't hand it back to the caller.
func runKnuth(args []string) error {
	fs := flag.NewFlagSet("knuth", flag.ExitOnError)
	trace := fs.Bool("trace", false, "log every cover/uncover step to stderr")
	fs.Parse(args)

	u := dlx.NewUniverse([]string{"A", "B", "C", "D", "E", "F", "G"})
	u.SetTrace(*trace)
	u.DefineSubset("L1", []string{"C", "E", "F"})
	u.DefineSubset("L2", []string{"A", "D", "G"})
	u.DefineSubset("L3", []string{"B", "C", "F"})
	u.DefineSubset("L4", []string{"A", "D"})
	u.DefineSubset("L5", []string{"B", "G"})
	u.DefineSubset("L6", []string{"D", "E", "G"})
	defer u.Destroy()

	u.SetSolutionSink(func(_ *dlx.Universe, names []string, _ any) {
		fmt.Println(color.HiGreenString("solution:"), names)
	}, nil)

	n := u.Search(false)
	fmt.Printf("%s %d\n", color.HiBlueString("solutions found:"), n)
	return nil
}

func runSudoku(args []string) error {
	fs := flag.NewFlagSet("sudoku", flag.ExitOnError)
	boxDim := fs.Int("box", 3, "box dimension (3 for classic 9x9)")
	fs.Parse(args)

	if isStdinTTY() {
		fmt.Printf("Enter a %d-line board, %d characters per line. Use 0 for empty cells.\n", *boxDim*(*boxDim), *boxDim*(*boxDim))
	}

	grid, err := readGrid(os.Stdin, *boxDim**boxDim)
	if err != nil {
		return err
	}

	p, err := sudoku.NewPuzzle(*boxDim)
	if err != nil {
		return err
	}

	solved, err := p.Solve(grid)
	if err != nil {
		return err
	}

	color.HiWhite("Solution:")
	printGrid(solved, *boxDim)
	return nil
}

func runPentomino(args []string) error {
	fs := flag.NewFlagSet("pentomino", flag.ExitOnError)
	first := fs.Bool("first", true, "stop after the first tiling instead of counting all of them")
	fs.Parse(args)

	board := pentomino.NewClassicBoard()

	if *first {
		sol, found, err := board.SolveFirst(nil)
		if err != nil {
			return err
		}
		if !found {
			fmt.Println(color.HiRedString("no tiling found"))
			return nil
		}
		printPentominoSolution(sol)
		return nil
	}

	solutions, err := board.Solve(nil)
	if err != nil {
		return err
	}
	fmt.Printf("%s %d\n", color.HiBlueString("tilings found:"), len(solutions))
	if len(solutions) > 0 {
		printPentominoSolution(solutions[0])
	}
	return nil
}

func runQueens(args []string) error {
	fs := flag.NewFlagSet("queens", flag.ExitOnError)
	n := fs.Int("n", 8, "board size")
	fs.Parse(args)

	boards, err := queens.Solve(*n)
	if err != nil {
		return err
	}

	fmt.Printf("%s %d\n", color.HiBlueString("placements found:"), len(boards))
	if len(boards) > 0 {
		printQueensBoard(boards[0])
	}
	return nil
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func readGrid(f *os.File, size int) (sudoku.Grid, error) {
	grid := make(sudoku.Grid, size)
	for i := range grid {
		grid[i] = make([]int, size)
	}

	scanner := bufio.NewScanner(f)
	row := 0
	for scanner.Scan() {
		if row >= size {
			return nil, fmt.Errorf("too many input lines, want %d", size)
		}
		line := scanner.Text()
		if len(line) < size {
			return nil, fmt.Errorf("line %d too short, want %d characters", row, size)
		}
		for col := 0; col < size; col++ {
			if v := line[col]; v >= '1' && v <= '9' {
				grid[row][col] = int(v - '0')
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if row < size {
		return nil, fmt.Errorf("not enough input lines, want %d", size)
	}
	return grid, nil
}

func printGrid(g sudoku.Grid, boxDim int) {
	for r, row := range g {
		if r > 0 && r%boxDim == 0 {
			fmt.Println()
		}
		for c, v := range row {
			if c > 0 && c%boxDim == 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%s ", color.HiGreenString("%d", v))
		}
		fmt.Println()
	}
}

func printPentominoSolution(sol pentomino.Solution) {
	grid := make([][]string, 8)
	for i := range grid {
		grid[i] = make([]string, 8)
		for j := range grid[i] {
			grid[i][j] = "."
		}
	}
	for letter, cells := range sol {
		for _, c := range cells {
			grid[c.R][c.C] = letter
		}
	}
	for _, row := range grid {
		for _, v := range row {
			fmt.Printf("%s ", color.HiYellowString(v))
		}
		fmt.Println()
	}
}

func printQueensBoard(b queens.Board) {
	n := len(b)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b[r] == c {
				fmt.Print(color.HiGreenString("Q "))
			} else {
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}
