/*
Package switchback finds shortest move sequences for toggle-grid puzzles.

A token moves on a rectangular field. Entering a cell flips the feature (gate
or platform) of every orthogonally adjacent cell, and some cells act as
triggers (levers, door buttons) that must all be activated before the exit
counts as reached. Switchback explores the finite configuration space
breadth-first and returns the first, and therefore shortest, solution.

# Architecture

  - pkg/domain: the generic state contract and the Move action.
  - pkg/search: the breadth-first engine, generic over any domain.State.
  - pkg/toggle: the toggle-grid puzzle (Board, Grid, State).
  - pkg/observability: Prometheus metrics fed by search hooks.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/switchback"
		"github.com/aretw0/switchback/pkg/toggle"
	)

	func main() {
		board, err := toggle.NewBoard(3, 3, toggle.Point{X: 2, Y: 0},
			toggle.WithTriggers(toggle.Point{X: 0, Y: 2}),
		)
		if err != nil {
			log.Fatal(err)
		}

		initial, err := board.Start(toggle.Point{X: 1, Y: 2}, [][]int{
			{0, 1, 1},
			{0, 0, 0},
			{0, 0, 0},
		})
		if err != nil {
			log.Fatal(err)
		}

		sol, ok := switchback.New().Solve(initial)
		if !ok {
			fmt.Println("no solution")
			return
		}
		for _, m := range sol.Moves {
			fmt.Println(m)
		}
	}
*/
package switchback
