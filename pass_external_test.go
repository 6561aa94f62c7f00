package resetinfer_test

import (
	"testing"

	"github.com/db47h/resetinfer"
	"github.com/db47h/resetinfer/irtest"
)

func buildExternalDomainFixture() *resetinfer.Circuit {
	child := resetinfer.NewModule("Child")
	cclk := child.Port("clock", resetinfer.Input, resetinfer.ClockType{})
	child.Reg("r", cclk, resetinfer.UIntType{Width: 4})
	childMod := child.Module()

	top := resetinfer.NewModule("Top")
	rootWire := top.Wire("resetRoot", resetinfer.AsyncResetType{})
	top.Annotate(rootWire, resetinfer.FullAsyncResetAnnotationClass)
	top.Instance("child", childMod)
	topMod := top.Module()

	return resetinfer.NewCircuit("Top", []resetinfer.Moduleish{topMod, childMod})
}

func TestPassIdempotentAtInterfaceLevel(t *testing.T) {
	irtest.AssertIdempotent(t, buildExternalDomainFixture, func(c *resetinfer.Circuit) error {
		_, err := resetinfer.Run(c, resetinfer.DefaultOptions())
		return err
	})
}
