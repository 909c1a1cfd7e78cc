// Package main provides the grid library CLI.
package main

import (
	"fmt"
	"os"

	"github.com/grid-ml/grid/grid"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("grid %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintf(os.Stderr, "demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("grid - fixed-shape multi-dimensional arrays for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Walk through a 2x3 grid example")
}

func demo() error {
	g, err := grid.Generate(grid.Shape{2, 3}, func(i int) int { return i })
	if err != nil {
		return err
	}
	fmt.Printf("generate:  %s\n", g)

	v, err := g.At(grid.Coord{1, 2})
	if err != nil {
		return err
	}
	fmt.Printf("at (1,2):  %d\n", v)

	updated, err := g.Update([]grid.Entry[int]{{Coord: grid.Coord{0, 1}, Value: 42}})
	if err != nil {
		return err
	}
	fmt.Printf("update:    %s\n", updated)

	squared := grid.Map(g, func(v int) int { return v * v })
	fmt.Printf("map x^2:   %s\n", squared)

	sum := grid.Monoid[int]{Identity: 0, Combine: func(a, b int) int { return a + b }}
	combined, err := sum.Concat(g, squared)
	if err != nil {
		return err
	}
	fmt.Printf("pointwise: %s\n", combined)

	return nil
}
