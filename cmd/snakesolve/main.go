// Command snakesolve searches a snake rescue board for a move plan that
// collects every apple.
//
// Usage:
//
//	snakesolve board.txt
//	snakesolve --strategy dfs --trace board.txt
//	echo '>*.*' | snakesolve --stats
//
// The board comes from the file argument, or stdin when no file is given.
// Breadth-first (the default) returns a shortest plan; depth-first returns
// the first plan found. The process exits non-zero when the board is
// malformed or has no solution.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/snake"
)

var (
	strategy      string
	maxExpansions int
	trace         bool
	stats         bool

	rootCmd = &cobra.Command{
		Use:   "snakesolve [board file]",
		Short: "Solve a snake rescue board with breadth-first or depth-first search",
		Long: `Reads a rune-grid board and searches for a move plan that collects every
apple without leaving the grid or colliding with an obstacle or the snake's
own body.

Board alphabet:

  #  obstacle   .  empty   *  apple   o  body segment
  ^ v < >  the head, facing up, down, left or right

The board comes from the file argument, or stdin when no file is given.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         runSolve,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.Flags().StringVar(&strategy, "strategy", "bfs", "search strategy: bfs (shortest plan) or dfs")
	rootCmd.Flags().IntVar(&maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "print the board after every move of the plan")
	rootCmd.Flags().BoolVar(&stats, "stats", false, "log board and search statistics")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	setupLogging()

	rows, err := readBoard(args)
	if err != nil {
		return err
	}
	p, err := snake.Parse(rows)
	if err != nil {
		return fmt.Errorf("parse board: %w", err)
	}

	initial := p.Initial()
	slog.Info("board loaded",
		"width", p.Width, "height", p.Height,
		"segments", len(initial.Body()), "apples", len(initial.Apples()))

	run, err := solver(strategy)
	if err != nil {
		return err
	}

	expanded := 0
	opts := &search.Options[snake.State, snake.Move]{
		Ctx:           cmd.Context(),
		MaxExpansions: maxExpansions,
		OnExpand: func(_ *search.Node[snake.State, snake.Move], _ []*search.Node[snake.State, snake.Move]) {
			expanded++
		},
	}

	goal, err := run(p, opts)
	slog.Info("search finished", "strategy", strategy, "expanded", expanded, "solved", err == nil)
	if errors.Is(err, search.ErrNoSolution) {
		return fmt.Errorf("board has no solution (explored %d states): %w", expanded, err)
	}
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	plan := goal.Solution()
	fmt.Printf("solved in %d moves: %s\n", len(plan), snake.FormatPlan(plan))
	if trace {
		printTrace(p, goal)
	}

	return nil
}

// setupLogging keeps diagnostics quiet unless statistics were requested.
func setupLogging() {
	level := slog.LevelWarn
	if stats {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// solver maps a strategy name to its search wrapper.
func solver(name string) (func(search.Problem[snake.State, snake.Move], *search.Options[snake.State, snake.Move]) (*search.Node[snake.State, snake.Move], error), error) {
	switch name {
	case "bfs":
		return search.BreadthFirstSearch[snake.State, snake.Move], nil
	case "dfs":
		return search.DepthFirstSearch[snake.State, snake.Move], nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want bfs or dfs)", name)
	}
}

// readBoard loads grid rows from the file argument, or stdin when no
// argument is given. Trailing whitespace and blank lines are dropped.
func readBoard(args []string) ([]string, error) {
	r := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open board: %w", err)
		}
		defer f.Close()
		r = f
	}

	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}

	return rows, nil
}

// printTrace replays the plan, printing the board after every move.
func printTrace(p *snake.Puzzle, goal *search.Node[snake.State, snake.Move]) {
	states := goal.States()
	fmt.Println()
	fmt.Println(p.Render(states[0]))
	for i, m := range goal.Solution() {
		fmt.Printf("\n%d. %s\n", i+1, m)
		fmt.Println(p.Render(states[i+1]))
	}
}
