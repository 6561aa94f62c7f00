package resetinfer

import "testing"

func TestAnnotationCollectorFindsRoot(t *testing.T) {
	b := NewModule("M")
	w := b.Wire("resetRoot", AsyncResetType{})
	b.Annotate(w, FullAsyncResetAnnotationClass)
	m := b.Module()

	c := NewAnnotationCollector()
	trace(t, c.CollectModule(m))

	root, ok := c.Roots["M"]
	if !ok {
		t.Fatalf("collector did not find the module's root")
	}
	if root != RootFieldRef(w) {
		t.Fatalf("root = %+v, want %+v", root, RootFieldRef(w))
	}
}

func TestAnnotationCollectorRejectsIllegalTarget(t *testing.T) {
	b := NewModule("M")
	clk := b.Port("clock", Input, ClockType{})
	rst := b.Port("rst", Input, AsyncResetType{})
	reg := b.RegReset("r", clk, rst, b.Constant(UIntType{Width: 1}, 0), UIntType{Width: 1})
	b.Annotate(reg, FullAsyncResetAnnotationClass)
	m := b.Module()

	c := NewAnnotationCollector()
	if err := c.CollectModule(m); err == nil {
		t.Fatalf("expected an error for a FullAsyncResetAnnotation on a register, got nil")
	}
}

func TestAnnotationCollectorRejectsBothRootAndIgnore(t *testing.T) {
	b := NewModule("M")
	w := b.Wire("resetRoot", AsyncResetType{})
	b.Annotate(w, FullAsyncResetAnnotationClass)
	b.AnnotateModule(IgnoreFullAsyncResetAnnotationClass)
	m := b.Module()

	c := NewAnnotationCollector()
	if err := c.CollectModule(m); err == nil {
		t.Fatalf("expected an error for a module with both a root and an ignore annotation")
	}
}

func TestAnnotationCollectorRejectsFullOnModule(t *testing.T) {
	b := NewModule("M")
	b.AnnotateModule(FullAsyncResetAnnotationClass)
	m := b.Module()

	c := NewAnnotationCollector()
	if err := c.CollectModule(m); err == nil {
		t.Fatalf("expected an error for a FullAsyncResetAnnotation placed directly on a module")
	}
}

func TestAnnotationCollectorRejectsIgnoreOnPort(t *testing.T) {
	b := NewModule("M")
	rst := b.Port("rst", Input, AsyncResetType{})
	b.Annotate(rst, IgnoreFullAsyncResetAnnotationClass)
	m := b.Module()

	c := NewAnnotationCollector()
	if err := c.CollectModule(m); err == nil {
		t.Fatalf("expected an error for an IgnoreFullAsyncResetAnnotation placed on a port")
	}
}

func TestAnnotationCollectorRejectsIgnoreOnWire(t *testing.T) {
	b := NewModule("M")
	w := b.Wire("w", AsyncResetType{})
	b.Annotate(w, IgnoreFullAsyncResetAnnotationClass)
	m := b.Module()

	c := NewAnnotationCollector()
	if err := c.CollectModule(m); err == nil {
		t.Fatalf("expected an error for an IgnoreFullAsyncResetAnnotation placed on a wire")
	}
}

func TestAnnotationCollectorRejectsMultipleRoots(t *testing.T) {
	b := NewModule("M")
	w1 := b.Wire("r1", AsyncResetType{})
	w2 := b.Wire("r2", AsyncResetType{})
	b.Annotate(w1, FullAsyncResetAnnotationClass)
	b.Annotate(w2, FullAsyncResetAnnotationClass)
	m := b.Module()

	c := NewAnnotationCollector()
	if err := c.CollectModule(m); err == nil {
		t.Fatalf("expected an error for a module with two FullAsyncResetAnnotations")
	}
}
