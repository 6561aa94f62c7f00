package resetinfer

import "testing"

func buildDomainFixture() *Circuit {
	child := NewModule("Child")
	cclk := child.Port("clock", Input, ClockType{})
	child.Reg("r", cclk, UIntType{Width: 4})
	childMod := child.Module()

	top := NewModule("Top")
	rootWire := top.Wire("reset", AsyncResetType{})
	top.Annotate(rootWire, FullAsyncResetAnnotationClass)
	top.Instance("child", childMod)
	topMod := top.Module()

	return NewCircuit("Top", []Moduleish{topMod, childMod})
}

func TestDomainBuilderAssignsChildToParentDomain(t *testing.T) {
	ckt := buildDomainFixture()
	collector := NewAnnotationCollector()
	trace(t, collector.CollectCircuit(ckt))

	b := NewDomainBuilder(ckt, collector, "reset")
	plan, err := b.Build()
	trace(t, err)
	if err != nil {
		t.Fatal(err)
	}

	topDomain, ok := plan.ModuleDomain["Top"]
	if !ok {
		t.Fatalf("Top was not assigned a domain")
	}
	childDomain, ok := plan.ModuleDomain["Child"]
	if !ok {
		t.Fatalf("Child was not assigned a domain")
	}
	if topDomain != childDomain {
		t.Fatalf("Child should inherit Top's domain, got a different one")
	}
	if plan.Actions["Child"].Kind != ActionSynthesize {
		t.Fatalf("Child should need a synthesized reset port, got action kind %v", plan.Actions["Child"].Kind)
	}
	if plan.Actions["Top"].Kind != ActionNone {
		t.Fatalf("Top declares its own root and should need no port action, got %v", plan.Actions["Top"].Kind)
	}
}

func TestDomainBuilderDetectsConflict(t *testing.T) {
	shared := NewModule("Shared")
	shared.Port("clock", Input, ClockType{})
	sharedMod := shared.Module()

	topA := NewModule("TopA")
	rootA := topA.Wire("rootA", AsyncResetType{})
	topA.Annotate(rootA, FullAsyncResetAnnotationClass)
	topA.Instance("shared", sharedMod)

	topB := NewModule("TopB")
	rootB := topB.Wire("rootB", AsyncResetType{})
	topB.Annotate(rootB, FullAsyncResetAnnotationClass)
	topB.Instance("shared", sharedMod)

	root := NewModule("Root")
	root.Instance("a", topA.Module())
	root.Instance("b", topB.Module())

	ckt := NewCircuit("Root", []Moduleish{root.Module(), topA.Module(), topB.Module(), sharedMod})

	collector := NewAnnotationCollector()
	trace(t, collector.CollectCircuit(ckt))

	b := NewDomainBuilder(ckt, collector, "reset")
	if _, err := b.Build(); err == nil {
		t.Fatalf("expected a conflict error when Shared is reachable from two distinct domains")
	}
}

// TestDomainBuilderSynthesizesSuffixedNameOnCollision covers a module that
// already has a port named after the inherited domain reset, but of the
// wrong type: the planner must pick "rst_0" rather than reusing it or
// clobbering it.
func TestDomainBuilderSynthesizesSuffixedNameOnCollision(t *testing.T) {
	a := NewModule("A")
	a.Port("rst", Input, UIntType{Width: 1})
	aMod := a.Module()

	top := NewModule("Top")
	rootWire := top.Wire("rst", AsyncResetType{})
	top.Annotate(rootWire, FullAsyncResetAnnotationClass)
	top.Instance("a", aMod)
	topMod := top.Module()

	ckt := NewCircuit("Top", []Moduleish{topMod, aMod})

	collector := NewAnnotationCollector()
	trace(t, collector.CollectCircuit(ckt))

	b := NewDomainBuilder(ckt, collector, "reset")
	plan, err := b.Build()
	trace(t, err)
	if err != nil {
		t.Fatal(err)
	}

	action := plan.Actions["A"]
	if action.Kind != ActionSynthesize {
		t.Fatalf("A should need a synthesized reset port, got action kind %v", action.Kind)
	}
	if action.PortName != "rst_0" {
		t.Fatalf("A's synthesized port name = %q, want %q", action.PortName, "rst_0")
	}
}
