package geom_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/geom"
)

// ExamplePoint_Ray walks three steps east of the origin.
func ExamplePoint_Ray() {
	for p := range geom.Limit(geom.Origin.Ray(geom.East), 3) {
		fmt.Print(p, " ")
	}
	fmt.Println()
	// Output: (1,0) (2,0) (3,0)
}

// ExamplePoint_DirTo shows the direction algebra.
func ExamplePoint_DirTo() {
	d, _ := geom.Pt(2, 5).DirTo(geom.Pt(2, 1))
	fmt.Println(d, d.Opposite(), d.RotateRight())
	// Output: North South East
}
