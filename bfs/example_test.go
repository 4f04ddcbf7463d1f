package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 lattice of "r_c" nodes,
// linked to the right and downward neighbor.
func ExampleBFS() {
	exp := core.ExpanderFunc[string](func(n string) []core.Edge[string] {
		var r, c int
		fmt.Sscanf(n, "%d_%d", &r, &c)
		var out []core.Edge[string]
		if c+1 < 3 {
			out = append(out, core.Edge[string]{To: fmt.Sprintf("%d_%d", r, c+1), Weight: 1})
		}
		if r+1 < 3 {
			out = append(out, core.Edge[string]{To: fmt.Sprintf("%d_%d", r+1, c), Weight: 1})
		}
		return out
	})

	res, err := bfs.BFS(exp, []string{"0_0"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Nodes())
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleFindPath finds the fewest-hop route when a longer one also exists.
func ExampleFindPath() {
	adj := map[string][]string{
		"A": {"B", "E"}, "B": {"C"}, "C": {"D"}, "D": {"K"},
		"E": {"F"}, "F": {"K"},
	}
	exp := core.ExpanderFunc[string](func(n string) []core.Edge[string] {
		out := make([]core.Edge[string], 0, len(adj[n]))
		for _, to := range adj[n] {
			out = append(out, core.Edge[string]{To: to, Weight: 1})
		}
		return out
	})

	path, ok, _ := bfs.FindPath(exp, []string{"A"}, func(n string) bool { return n == "K" })
	fmt.Println(ok, path.Nodes, path.Len())
	// Output: true [A E F K] 3
}
