package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/katalvlaran/statespace/snake"
)

func TestSolver_KnownStrategies(t *testing.T) {
	// Both strategies must collect the single apple in one Forward move.
	board := []string{">*"}

	for _, name := range []string{"bfs", "dfs"} {
		t.Run(name, func(t *testing.T) {
			run, err := solver(name)
			if err != nil {
				t.Fatalf("solver(%q) returned error: %v", name, err)
			}

			p, err := snake.Parse(board)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			goal, err := run(p, nil)
			if err != nil {
				t.Fatalf("search failed: %v", err)
			}
			if want := []snake.Move{snake.Forward}; !reflect.DeepEqual(goal.Solution(), want) {
				t.Errorf("Solution() = %v, want %v", goal.Solution(), want)
			}
		})
	}
}

func TestSolver_UnknownStrategy(t *testing.T) {
	// Strategy names are case-sensitive, matching the flag help text.
	for _, name := range []string{"", "astar", "BFS"} {
		if _, err := solver(name); err == nil {
			t.Errorf("solver(%q) = nil error, want unknown-strategy error", name)
		}
	}
}

func TestReadBoard_FileTrimsAndSkipsBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	content := "\n>*.*  \n\n#...\t\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	rows, err := readBoard([]string{path})
	if err != nil {
		t.Fatalf("readBoard failed: %v", err)
	}
	if want := []string{">*.*", "#..."}; !reflect.DeepEqual(rows, want) {
		t.Errorf("readBoard rows = %q, want %q", rows, want)
	}
}

func TestReadBoard_MissingFile(t *testing.T) {
	if _, err := readBoard([]string{filepath.Join(t.TempDir(), "absent.txt")}); err == nil {
		t.Error("readBoard on a missing file = nil error, want open error")
	}
}

func TestRootCommandFlags(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{name: "strategy", def: "bfs"},
		{name: "max-expansions", def: "0"},
		{name: "trace", def: "false"},
		{name: "stats", def: "false"},
	}

	for _, tt := range tests {
		flag := rootCmd.Flags().Lookup(tt.name)
		if flag == nil {
			t.Errorf("flag --%s not registered", tt.name)
			continue
		}
		if flag.DefValue != tt.def {
			t.Errorf("flag --%s default = %q, want %q", tt.name, flag.DefValue, tt.def)
		}
	}
}

func TestRootCommandConfig(t *testing.T) {
	if rootCmd.Use != "snakesolve [board file]" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "snakesolve [board file]")
	}
	if rootCmd.RunE == nil {
		t.Error("rootCmd.RunE is nil")
	}
	if !rootCmd.SilenceUsage {
		t.Error("rootCmd.SilenceUsage is unset")
	}
}
