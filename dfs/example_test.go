package dfs_test

import (
	"fmt"

	"github.com/quaddro/stargraph/core"
	"github.com/quaddro/stargraph/dfs"
	"github.com/quaddro/stargraph/digraph"
)

// ExampleRun demonstrates a classifying traversal of a cycle with a branch.
//
// Graph structure:
//
//	1 ──▶ 2
//	▲     │
//	│     ▼
//	└──── 3      1 ──▶ 4
//
// The cycle 1→2→3→1 yields one back edge; 1→4 is a plain tree edge.
func ExampleRun() {
	bag := core.NewEdgeBag(4)
	for _, p := range [][2]core.VertexID{{1, 2}, {2, 3}, {3, 1}, {1, 4}} {
		e, _ := core.NewEdge(p[0], p[1])
		_ = bag.Add(e)
	}
	g, err := digraph.NewForward(4, bag)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("tree edges:")
	res, err := dfs.Run(g, dfs.WithOnTreeEdge(func(orig, dest core.VertexID) {
		fmt.Printf("  (%d -> %d)\n", orig, dest)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	class, _ := res.ClassifyEdge(3, 1)
	fmt.Printf("(3 -> 1) is a %s edge\n", class)

	// Output:
	// tree edges:
	//   (1 -> 2)
	//   (2 -> 3)
	//   (1 -> 4)
	// (3 -> 1) is a back edge
}

// ExampleResult_Entries walks the frozen bookkeeping of a two-component
// forest: vertex 3 has no incoming edge and becomes its own root.
func ExampleResult_Entries() {
	bag := core.NewEdgeBag(1)
	e, _ := core.NewEdge(1, 2)
	_ = bag.Add(e)
	g, err := digraph.NewForward(3, bag)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dfs.Run(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for v, entry := range res.Entries() {
		fmt.Printf("vertex %d: discovered %d, finished %d, parent %d\n",
			v, entry.Discovery, entry.Finish, entry.Parent)
	}

	// Output:
	// vertex 1: discovered 1, finished 4, parent 0
	// vertex 2: discovered 2, finished 3, parent 1
	// vertex 3: discovered 5, finished 6, parent 0
}
