package core_test

import (
	"fmt"

	"github.com/katalvlaran/incgraph/core"
)

// ExampleGraph walks the storage lifecycle: build, soft-remove,
// restore, and recycle.
func ExampleGraph() {
	g := core.NewGraph()
	a := g.AddVertexWithLabel("a")
	b := g.AddVertexWithLabel("b")
	arc, _ := g.AddArc(a, b)

	fmt.Println("arcs:", g.NumArcs(true))

	// soft removal keeps identity; the arc can come back
	g.DeactivateArc(arc)
	fmt.Println("arcs while deactivated:", g.NumArcs(true))
	g.ActivateArc(arc)
	fmt.Println("arcs restored:", g.NumArcs(true))

	// hard removal pools the vertex; its id is recycled LIFO
	id := b.ID()
	_ = g.RemoveVertex(b)
	reborn := g.AddVertex()
	fmt.Println("id recycled:", reborn.ID() == id)
	// Output:
	// arcs: 1
	// arcs while deactivated: 0
	// arcs restored: 1
	// id recycled: true
}

// ExampleGraph_BundleParallelArcs collapses parallel arcs into a
// single bundle and expands them back.
func ExampleGraph_BundleParallelArcs() {
	g := core.NewGraph()
	v, w := g.AddVertex(), g.AddVertex()
	for i := 0; i < 3; i++ {
		_, _ = g.AddArc(v, w)
	}

	g.BundleParallelArcs()
	fmt.Println("objects:", g.NumArcs(true))
	fmt.Println("edges:  ", g.NumArcs(false))

	g.UnbundleParallelArcs()
	fmt.Println("objects after unbundle:", g.NumArcs(true))
	// Output:
	// objects: 1
	// edges:   3
	// objects after unbundle: 3
}
