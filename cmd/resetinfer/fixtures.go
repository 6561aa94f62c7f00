package main

import "github.com/db47h/resetinfer"

// fixtures maps a demo name to a thunk building the circuit it names.
// Real FIRRTL parsing is out of scope; -in selects one of these
// in-memory demo circuits instead.
var fixtures = map[string]func() *resetinfer.Circuit{
	"leaf-reg": leafRegFixture,
	"domain":   domainFixture,
}

// leafRegFixture is a single module with one unreset register and no
// reset domain at all: a minimal smoke test for the pass running over a
// circuit it has nothing to do in.
func leafRegFixture() *resetinfer.Circuit {
	b := resetinfer.NewModule("Leaf")
	clk := b.Port("clock", resetinfer.Input, resetinfer.ClockType{})
	b.Reg("r", clk, resetinfer.UIntType{Width: 8})
	top := b.Module()
	return resetinfer.NewCircuit("Leaf", []resetinfer.Moduleish{top})
}

// domainFixture builds a two-module instance tree where the top module
// declares a FullAsyncResetAnnotation root and a leaf register in the
// child module has no reset at all, exercising the pass's actual job:
// inserting a reset port into Child and a reset into its register.
func domainFixture() *resetinfer.Circuit {
	child := resetinfer.NewModule("Child")
	cclk := child.Port("clock", resetinfer.Input, resetinfer.ClockType{})
	child.Reg("r", cclk, resetinfer.UIntType{Width: 4})
	childMod := child.Module()

	top := resetinfer.NewModule("Top")
	tclk := top.Port("clock", resetinfer.Input, resetinfer.ClockType{})
	rootWire := top.Wire("resetRoot", resetinfer.AsyncResetType{})
	top.Annotate(rootWire, resetinfer.FullAsyncResetAnnotationClass)
	top.Instance("child", childMod)
	_ = tclk

	topMod := top.Module()
	return resetinfer.NewCircuit("Top", []resetinfer.Moduleish{topMod, childMod})
}
