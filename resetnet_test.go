package resetinfer

import "testing"

func TestResetMapUnionMergesNets(t *testing.T) {
	m := NewResetMap()
	a := &WireOp{Name: "a", Typ: ResetType{}}
	b := &WireOp{Name: "b", Typ: ResetType{}}
	c := &WireOp{Name: "c", Typ: ResetType{}}

	refA, refB, refC := RootFieldRef(a), RootFieldRef(b), RootFieldRef(c)
	m.Union(refA, refB)
	m.Union(refB, refC)

	if m.Net(refA).node != m.Net(refC).node {
		t.Fatalf("a and c should be in the same net after transitive union")
	}
	members := m.Net(refA).Members()
	if len(members) != 3 {
		t.Fatalf("net has %d members, want 3", len(members))
	}
}

func TestResetMapVotesTallyMemberTypes(t *testing.T) {
	m := NewResetMap()
	abstract := &WireOp{Name: "a", Typ: ResetType{}}
	asyncA := &WireOp{Name: "asyncA", Typ: AsyncResetType{}}
	asyncB := &WireOp{Name: "asyncB", Typ: AsyncResetType{}}
	syncA := &WireOp{Name: "syncA", Typ: UIntType{Width: 1}}

	m.Union(RootFieldRef(abstract), RootFieldRef(asyncA))
	m.Union(RootFieldRef(asyncA), RootFieldRef(asyncB))
	m.Union(RootFieldRef(asyncB), RootFieldRef(syncA))

	net := m.Net(RootFieldRef(abstract))
	async, sync, invalid := net.Votes()
	if async != 2 || sync != 1 || invalid != 0 {
		t.Fatalf("Votes() = (%d async, %d sync, %d invalid), want (2, 1, 0)", async, sync, invalid)
	}
}

func TestResetMapVotesCountInvalidLiterals(t *testing.T) {
	m := NewResetMap()
	abstract := &WireOp{Name: "a", Typ: ResetType{}}
	inv := &InvalidValueOp{Typ: ResetType{}}

	m.Union(RootFieldRef(abstract), RootFieldRef(inv))

	net := m.Net(RootFieldRef(abstract))
	async, sync, invalid := net.Votes()
	if async != 0 || sync != 0 || invalid != 1 {
		t.Fatalf("Votes() = (%d async, %d sync, %d invalid), want (0, 0, 1)", async, sync, invalid)
	}
}

func TestResetMapUnionIsIdempotentOnSameRef(t *testing.T) {
	m := NewResetMap()
	a := &WireOp{Name: "a", Typ: ResetType{}}
	ref := RootFieldRef(a)
	n1 := m.Union(ref, ref)
	n2 := m.Union(ref, ref)
	if n1.node != n2.node {
		t.Fatalf("unioning a ref with itself should be a no-op returning the same net")
	}
}

func TestResetMapForgetRefusesNonLeaf(t *testing.T) {
	m := NewResetMap()
	a := &WireOp{Name: "a", Typ: ResetType{}}
	b := &WireOp{Name: "b", Typ: ResetType{}}
	refA, refB := RootFieldRef(a), RootFieldRef(b)
	m.Union(refA, refB)

	root := m.Net(refA).node
	before := len(m.index)
	// root has a member now; forgetting either ref must be a no-op.
	m.Forget(refA)
	m.Forget(refB)
	if len(m.index) != before {
		t.Fatalf("Forget removed a merged node's entry from the index")
	}
	_ = root
}
