package resetinfer

import "testing"

func TestTracerUnionsThroughWireChain(t *testing.T) {
	m := NewModule("M")
	p := m.Port("in", Input, ResetType{})
	w1 := m.Wire("w1", ResetType{})
	w2 := m.Wire("w2", ResetType{})
	m.Connect(w1, p)
	m.Connect(w2, w1)

	tr := NewTracer()
	trace(t, tr.TraceModule(m.Module()))

	net1 := tr.Nets.Net(RootFieldRef(p))
	net2 := tr.Nets.Net(RootFieldRef(w2))
	if net1.node != net2.node {
		t.Fatalf("port and the far end of a wire chain driven from it must end up in the same net")
	}
}

func TestTracerVotesFromConcreteSource(t *testing.T) {
	m := NewModule("M")
	asyncSrc := m.Wire("asyncSrc", AsyncResetType{})
	dst := m.Wire("dst", ResetType{})
	m.Connect(dst, asyncSrc)

	tr := NewTracer()
	trace(t, tr.TraceModule(m.Module()))

	net := tr.Nets.Net(RootFieldRef(dst))
	async, sync, invalid := net.Votes()
	if async != 1 || sync != 0 || invalid != 0 {
		t.Fatalf("Votes() = (%d async, %d sync, %d invalid), want (1, 0, 0) after a connect from a concrete AsyncReset source", async, sync, invalid)
	}
}

func TestTracerRecordsRegResetUse(t *testing.T) {
	m := NewModule("M")
	clk := m.Port("clock", Input, ClockType{})
	rst := m.Port("rst", Input, AsyncResetType{})
	zero := m.Constant(UIntType{Width: 8}, 0)
	m.RegReset("r", clk, rst, zero, UIntType{Width: 8})

	tr := NewTracer()
	trace(t, tr.TraceModule(m.Module()))

	if len(tr.RegUses) != 1 {
		t.Fatalf("RegUses has %d entries, want 1", len(tr.RegUses))
	}
	if tr.RegUses[0].Ref != RootFieldRef(rst) {
		t.Fatalf("RegUses[0].Ref = %+v, want the register's reset port FieldRef", tr.RegUses[0].Ref)
	}
}
