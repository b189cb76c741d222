package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/incgraph/core"
)

func TestGraph_CopyFrom(t *testing.T) {
	src := core.NewGraph()
	a := src.AddVertexWithLabel("a")
	b := src.AddVertexWithLabel("b")
	c := src.AddVertex()
	if _, err := src.AddArc(a, b); err != nil {
		t.Fatal(err)
	}
	if _, err := src.AddMultiArc(b, c, 4); err != nil {
		t.Fatal(err)
	}

	dst := core.NewGraph()
	vertexCorr := make(map[uint64]uint64)
	arcCorr := make(map[uint64]uint64)
	if err := dst.CopyFrom(src, vertexCorr, arcCorr); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}

	if dst.Size() != 3 {
		t.Errorf("Size = %d; want 3", dst.Size())
	}
	if dst.NumArcs(true) != 2 || dst.NumArcs(false) != 5 {
		t.Errorf("NumArcs = %d/%d; want 2/5", dst.NumArcs(true), dst.NumArcs(false))
	}
	if len(vertexCorr) != 3 || len(arcCorr) != 2 {
		t.Errorf("correspondence sizes = %d/%d; want 3/2", len(vertexCorr), len(arcCorr))
	}

	// labels and degrees carry over through the correspondence
	la, err := dst.VertexAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if la.Label() != "a" {
		t.Errorf("copied label = %q; want %q", la.Label(), "a")
	}
	for i := 0; i < src.Size(); i++ {
		sv, _ := src.VertexAt(i)
		dv, _ := dst.VertexAt(i)
		if sv.OutDegree(false) != dv.OutDegree(false) {
			t.Errorf("out-degree(%d) = %d; want %d", i, dv.OutDegree(false), sv.OutDegree(false))
		}
	}

	// the copy is independent: mutating it leaves the source alone
	dv, _ := dst.VertexAt(0)
	if err := dst.RemoveVertex(dv); err != nil {
		t.Fatal(err)
	}
	if src.Size() != 3 {
		t.Errorf("source mutated through the copy")
	}
}

func TestGraph_CopyFromReplacesState(t *testing.T) {
	src := core.NewGraph()
	src.AddVertex()

	dst := core.NewGraph()
	for i := 0; i < 5; i++ {
		dst.AddVertex()
	}

	if err := dst.CopyFrom(src, nil, nil); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if dst.Size() != 1 {
		t.Errorf("Size = %d; want 1 (old state cleared)", dst.Size())
	}
}

func TestGraph_CopyFromBundlesAsMulti(t *testing.T) {
	src := core.NewGraph()
	v, w := src.AddVertex(), src.AddVertex()
	for i := 0; i < 3; i++ {
		if _, err := src.AddArc(v, w); err != nil {
			t.Fatal(err)
		}
	}
	src.BundleParallelArcs()

	dst := core.NewGraph()
	if err := dst.CopyFrom(src, nil, nil); err != nil {
		t.Fatalf("CopyFrom: %v", err)
	}
	if dst.NumArcs(true) != 1 || dst.NumArcs(false) != 3 {
		t.Errorf("NumArcs = %d/%d; want 1/3", dst.NumArcs(true), dst.NumArcs(false))
	}
	dv, _ := dst.VertexAt(0)
	arc, err := dv.OutgoingArcAt(0, true)
	if err != nil {
		t.Fatal(err)
	}
	// bundle membership is local regrouping, not topology
	if arc.Kind() != core.Multi || arc.Size() != 3 {
		t.Errorf("cloned arc = %v size %d; want Multi size 3", arc.Kind(), arc.Size())
	}
}

func TestGraph_CopyFromErrors(t *testing.T) {
	g := core.NewGraph()
	if err := g.CopyFrom(nil, nil, nil); !errors.Is(err, core.ErrNilGraph) {
		t.Errorf("nil source: want ErrNilGraph, got %v", err)
	}

	g.AddVertex()
	if err := g.CopyFrom(g, nil, nil); err != nil {
		t.Errorf("self copy: %v; want nil no-op", err)
	}
	if g.Size() != 1 {
		t.Errorf("self copy mutated the graph")
	}
}

func TestGraph_SetOwner(t *testing.T) {
	g := core.NewGraph()
	v, w := g.AddVertex(), g.AddVertex()
	arc, err := g.AddArc(v, w)
	if err != nil {
		t.Fatal(err)
	}

	// reparenting to a facade keeps membership checks coherent
	facade := core.NewGraph()
	g.SetOwner(facade)
	if !g.ContainsVertex(v) || !g.ContainsArc(arc) {
		t.Errorf("membership broken after reparenting")
	}

	// and the engine still mutates normally under the new owner
	if _, err := g.AddArc(w, v); err != nil {
		t.Errorf("AddArc under new owner: %v", err)
	}
	if g.NumArcs(true) != 2 {
		t.Errorf("NumArcs = %d; want 2", g.NumArcs(true))
	}
}
