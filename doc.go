// Package statespace is a toolkit for searching state spaces: describe a
// problem once, then explore it breadth-first, depth-first, or in any
// priority order you can phrase as a key function.
//
// 🚀 What is statespace?
//
//	A small, generic search engine that brings together:
//		• Problem contract: opaque comparable states & actions, ordered successors
//		• Node bookkeeping: parent links, path cost, depth, plan reconstruction
//		• Frontiers: Stack (LIFO), Queue (FIFO), PriorityQueue (Min/Max policy)
//		• GraphSearch: one duplicate-suppressing driver for every strategy
//		• Snake puzzle: a complete grid formulation, parser, renderer & CLI
//
// ✨ Why statespace?
//
//   - Strategy-agnostic: the frontier's pop order IS the algorithm
//   - Deterministic: ordered successors, reproducible exploration
//   - Observable: OnPop/OnExpand hooks, context cancellation, expansion caps
//   - Pure Go: generics over comparable types, no reflection, no cgo
//
// Everything is organized under four subpackages:
//
//	search/   — Problem contract, Node, GraphSearch driver, BFS/DFS wrappers
//	frontier/ — Stack, Queue and PriorityQueue open-list containers
//	snake/    — snake-rescue grid puzzle: formulation, parser, renderer
//	cmd/      — snakesolve, a board-solving CLI
//
// Quick ASCII example:
//
//	>..*
//
//	a snake head chasing an apple: BreadthFirstSearch returns the
//	three-move plan Forward, Forward, Forward.
//
// Runnable scenarios live in examples/; each package's doc.go covers its
// options, determinism notes, and error contracts.
//
//	go get github.com/katalvlaran/statespace
package statespace
