package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleTable_Ray casts a beam east from the start marker until the table edge.
func ExampleTable_Ray() {
	tb, _ := grid.Parse("S...\n....")
	start, _ := tb.Find('S')
	ray, _ := tb.Ray(start, start.Neighbor(geom.East))
	for p := range ray {
		_ = tb.Set(p, '>')
	}
	fmt.Println(tb)
	// Output:
	// S>>>
	// ....
}

// ExampleTable_RotateRight turns a table clockwise.
func ExampleTable_RotateRight() {
	tb, _ := grid.Parse("ab\ncd\nef")
	fmt.Println(tb.RotateRight())
	// Output:
	// eca
	// fdb
}
