package core_test

import (
	"testing"

	"github.com/katalvlaran/incgraph/core"
)

// buildTriangle returns a graph with arcs a→b, b→c, c→a.
func buildTriangle(t *testing.T) (*core.Graph, [3]*core.Vertex) {
	t.Helper()
	g := core.NewGraph()
	vs := [3]*core.Vertex{g.AddVertex(), g.AddVertex(), g.AddVertex()}
	for i := range vs {
		if _, err := g.AddArc(vs[i], vs[(i+1)%3]); err != nil {
			t.Fatalf("AddArc: %v", err)
		}
	}
	return g, vs
}

func TestGraph_DeactivateArcRoundTrip(t *testing.T) {
	g, vs := buildTriangle(t)
	arc := g.FindArc(vs[0], vs[1])
	if arc == nil {
		t.Fatal("triangle arc missing")
	}

	if !g.DeactivateArc(arc) {
		t.Fatalf("DeactivateArc returned false on an active arc")
	}
	if arc.IsValid() || g.ContainsArc(arc) {
		t.Errorf("deactivated arc still active")
	}
	if g.NumArcs(true) != 2 {
		t.Errorf("NumArcs = %d; want 2", g.NumArcs(true))
	}
	if got := vs[0].OutDegree(true); got != 0 {
		t.Errorf("tail out-degree = %d; want 0", got)
	}
	if got := vs[1].InDegree(true); got != 0 {
		t.Errorf("head in-degree = %d; want 0", got)
	}
	// identity and endpoints survive the soft removal
	if !vs[0].HasOutgoingArc(arc) || !vs[1].HasIncomingArc(arc) {
		t.Errorf("deactivated arc lost incidence membership")
	}

	// double deactivation is a normal false, not an error
	if g.DeactivateArc(arc) {
		t.Errorf("DeactivateArc returned true on a deactivated arc")
	}

	if !g.ActivateArc(arc) {
		t.Fatalf("ActivateArc returned false")
	}
	if !g.ContainsArc(arc) || g.NumArcs(true) != 3 {
		t.Errorf("activation did not restore the arc")
	}
	if g.ActivateArc(arc) {
		t.Errorf("ActivateArc returned true on an active arc")
	}
}

func TestGraph_DeactivateVertexRoundTrip(t *testing.T) {
	g, vs := buildTriangle(t)
	before := g.NumArcs(true)

	if !g.DeactivateVertex(vs[1]) {
		t.Fatalf("DeactivateVertex returned false")
	}
	if g.ContainsVertex(vs[1]) {
		t.Errorf("deactivated vertex still contained")
	}
	if g.Size() != 2 {
		t.Errorf("Size = %d; want 2", g.Size())
	}
	// both arcs touching vs[1] went with it
	if g.NumArcs(true) != 1 {
		t.Errorf("NumArcs = %d; want 1", g.NumArcs(true))
	}
	if got := vs[0].OutDegree(true); got != 0 {
		t.Errorf("peer out-degree = %d; want 0", got)
	}
	if g.DeactivateVertex(vs[1]) {
		t.Errorf("double deactivation returned true")
	}
	requireIndexInvariant(t, g)

	if !g.ActivateVertex(vs[1], true) {
		t.Fatalf("ActivateVertex returned false")
	}
	if !g.ContainsVertex(vs[1]) || g.Size() != 3 {
		t.Errorf("vertex not restored")
	}
	if g.NumArcs(true) != before {
		t.Errorf("NumArcs after round trip = %d; want %d", g.NumArcs(true), before)
	}
	if got := vs[0].OutDegree(true); got != 1 {
		t.Errorf("peer out-degree after round trip = %d; want 1", got)
	}
	if g.FindArc(vs[1], vs[2]) == nil {
		t.Errorf("outgoing arc membership not restored")
	}
	requireIndexInvariant(t, g)
}

func TestGraph_ActivateVertexWithoutArcs(t *testing.T) {
	g, vs := buildTriangle(t)

	g.DeactivateVertex(vs[1])
	if !g.ActivateVertex(vs[1], false) {
		t.Fatalf("ActivateVertex returned false")
	}
	// the vertex is back, its arcs still suspended
	if !g.ContainsVertex(vs[1]) {
		t.Errorf("vertex not restored")
	}
	if g.NumArcs(true) != 1 {
		t.Errorf("NumArcs = %d; want 1 (arcs stay suspended)", g.NumArcs(true))
	}

	// ActivateAll picks up the leftover suspended arcs
	g.ActivateAll()
	if g.NumArcs(true) != 3 {
		t.Errorf("NumArcs after ActivateAll = %d; want 3", g.NumArcs(true))
	}
}

func TestGraph_ActivateArcRejectsSuspended(t *testing.T) {
	g, vs := buildTriangle(t)
	arc := g.FindArc(vs[0], vs[1])

	g.DeactivateVertex(vs[1])
	// arcs suspended by a vertex deactivation come back through the
	// vertex, not through ActivateArc
	if g.ActivateArc(arc) {
		t.Errorf("ActivateArc resurrected a vertex-suspended arc")
	}
	if !g.ActivateVertex(vs[1], true) {
		t.Fatalf("ActivateVertex returned false")
	}
	if !g.ContainsArc(arc) {
		t.Errorf("arc not restored with its vertex")
	}
}

func TestGraph_ActivateArcRejectsDownedEndpoint(t *testing.T) {
	g, vs := buildTriangle(t)
	arc := g.FindArc(vs[0], vs[1])

	// individually deactivated arc, then its tail goes down: the arc
	// stays engine-parked and must not resurrect while the tail is off
	g.DeactivateArc(arc)
	g.DeactivateVertex(vs[0])
	if g.ActivateArc(arc) {
		t.Fatalf("ActivateArc resurrected an arc with a deactivated tail")
	}
	if arc.IsValid() {
		t.Errorf("arc valid while its tail is deactivated")
	}
	if obj, exp := g.NumArcs(true), g.NumArcs(false); obj != exp {
		t.Errorf("arc counts desynced: objects %d, expanded %d", obj, exp)
	}

	// bring the tail back; the arc resumes through ActivateArc again
	if !g.ActivateVertex(vs[0], true) {
		t.Fatalf("ActivateVertex returned false")
	}
	if !g.ActivateArc(arc) {
		t.Fatalf("ActivateArc returned false after the tail came back")
	}
	if g.NumArcs(true) != 3 {
		t.Errorf("NumArcs = %d; want 3", g.NumArcs(true))
	}
}

func TestGraph_ActivateVertexSkipsDownedPeer(t *testing.T) {
	g, vs := buildTriangle(t)
	ab := g.FindArc(vs[0], vs[1])
	ca := g.FindArc(vs[2], vs[0])

	// both endpoints of a→b down; a's suspended list holds a→b and c→a
	g.DeactivateVertex(vs[0])
	g.DeactivateVertex(vs[1])

	// reactivating a restores c→a but must leave a→b suspended while b
	// is still down
	if !g.ActivateVertex(vs[0], true) {
		t.Fatalf("ActivateVertex returned false")
	}
	if ab.IsValid() || g.ContainsArc(ab) {
		t.Errorf("arc to a deactivated peer came back")
	}
	if !g.ContainsArc(ca) {
		t.Errorf("arc between active endpoints not restored")
	}
	if obj, exp := g.NumArcs(true), g.NumArcs(false); obj != 1 || obj != exp {
		t.Errorf("arc counts = %d/%d; want 1/1", obj, exp)
	}

	if !g.ActivateVertex(vs[1], true) {
		t.Fatalf("ActivateVertex returned false")
	}
	if g.NumArcs(true) != 2 {
		t.Errorf("NumArcs = %d; want 2 (a→b still parked on a)", g.NumArcs(true))
	}

	// ActivateAll sweeps the arc left parked on the active vertex
	g.ActivateAll()
	if !g.ContainsArc(ab) {
		t.Errorf("ActivateAll did not sweep the parked arc")
	}
	if obj, exp := g.NumArcs(true), g.NumArcs(false); obj != 3 || obj != exp {
		t.Errorf("arc counts after ActivateAll = %d/%d; want 3/3", obj, exp)
	}
	requireIndexInvariant(t, g)
}

func TestGraph_ActivateAll(t *testing.T) {
	g, vs := buildTriangle(t)
	loner := g.AddVertex()
	extra, err := g.AddArc(loner, vs[0])
	if err != nil {
		t.Fatal(err)
	}

	g.DeactivateArc(extra)
	g.DeactivateVertex(vs[2])
	g.DeactivateVertex(vs[0])

	g.ActivateAll()
	if g.Size() != 4 {
		t.Errorf("Size = %d; want 4", g.Size())
	}
	if g.NumArcs(true) != 4 {
		t.Errorf("NumArcs = %d; want 4", g.NumArcs(true))
	}
	requireIndexInvariant(t, g)
}

func TestGraph_RemoveVertexSweepsDeactivatedArcs(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddVertex(), g.AddVertex()
	arc, err := g.AddArc(a, b)
	if err != nil {
		t.Fatal(err)
	}

	g.DeactivateArc(arc)
	if err := g.RemoveVertex(a); err != nil {
		t.Fatalf("RemoveVertex: %v", err)
	}
	// the deactivated arc is gone from the peer too
	if b.HasIncomingArc(arc) {
		t.Errorf("deactivated arc survived endpoint removal")
	}
	if g.NumArcs(true) != 0 {
		t.Errorf("NumArcs = %d; want 0", g.NumArcs(true))
	}
}

func TestGraph_ClearRestoreOrder(t *testing.T) {
	g, vs := buildTriangle(t)
	wantIDs := [3]uint64{vs[0].ID(), vs[1].ID(), vs[2].ID()}

	g.Clear(false, true)
	if !g.IsEmpty() || g.NumArcs(true) != 0 {
		t.Fatalf("Clear left state behind")
	}

	// rebuild replays the same ids in the same order
	for i := range wantIDs {
		if got := g.AddVertex().ID(); got != wantIDs[i] {
			t.Errorf("rebuilt vertex %d id = %d; want %d", i, got, wantIDs[i])
		}
	}
}

func TestGraph_ClearWithDeactivatedElements(t *testing.T) {
	g, vs := buildTriangle(t)
	g.DeactivateVertex(vs[1])

	// Clear reactivates internally; nothing may leak
	g.Clear(false, false)
	if !g.IsEmpty() || g.NumArcs(true) != 0 {
		t.Errorf("Clear left deactivated state behind")
	}
	if g.ContainsVertex(vs[1]) {
		t.Errorf("cleared vertex still contained")
	}
}

func TestGraph_ClearEmptyReserves(t *testing.T) {
	g, _ := buildTriangle(t)

	g.Clear(true, false)
	// identity assignment restarts from zero
	if got := g.AddVertex().ID(); got != 0 {
		t.Errorf("first id after empty reserves = %d; want 0", got)
	}
}

func TestGraph_ClearKeepsIDsUnique(t *testing.T) {
	g := core.NewGraph()
	v := g.AddVertex()
	firstID := v.ID()

	// without emptyReserves the fresh-id counter never rewinds, so a
	// pooled id cannot collide with a newly constructed one
	g.Clear(false, false)
	a, b := g.AddVertex(), g.AddVertex()
	if a.ID() == b.ID() {
		t.Fatalf("duplicate ids after clear: %d", a.ID())
	}
	if a.ID() != firstID && b.ID() != firstID {
		t.Errorf("pooled id %d not reused after clear", firstID)
	}
}

func TestGraph_DeactivateSelfLoop(t *testing.T) {
	g := core.NewGraph()
	v := g.AddVertex()
	if _, err := g.AddArc(v, v); err != nil {
		t.Fatal(err)
	}

	if !g.DeactivateVertex(v) {
		t.Fatalf("DeactivateVertex returned false")
	}
	if g.NumArcs(true) != 0 {
		t.Errorf("NumArcs = %d; want 0", g.NumArcs(true))
	}
	if !g.ActivateVertex(v, true) {
		t.Fatalf("ActivateVertex returned false")
	}
	if g.NumArcs(true) != 1 {
		t.Errorf("NumArcs after round trip = %d; want 1", g.NumArcs(true))
	}
	if got := v.OutDegree(true); got != 1 {
		t.Errorf("loop out-degree = %d; want 1", got)
	}
}
