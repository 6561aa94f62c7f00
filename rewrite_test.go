package resetinfer

import "testing"

func TestRewriteAllResolvesAbstractLeafToAsync(t *testing.T) {
	m := NewResetMap()
	w := &WireOp{Name: "w", Typ: ResetType{}}
	driver := &WireOp{Name: "driver", Typ: AsyncResetType{}}
	m.Union(RootFieldRef(w), RootFieldRef(driver))

	if err := NewInferrer().Decide(m); err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	NewRewriter(m).RewriteAll()

	if !IsAsyncResetType(w.Typ) {
		t.Fatalf("w.Typ = %s, want AsyncReset after rewriting", w.Typ)
	}
}

func TestRewriteAllPreservesBundleSiblings(t *testing.T) {
	bt := &BundleType{Elements: []BundleField{
		{Name: "a", Type: UIntType{Width: 3}},
		{Name: "b", Type: ResetType{}},
	}}
	w := &WireOp{Name: "w", Typ: bt}
	ref, _, ok := Field(RootFieldRef(w), "b")
	if !ok {
		t.Fatal("Field(b) not found")
	}
	driver := &WireOp{Name: "driver", Typ: AsyncResetType{}}

	m := NewResetMap()
	m.Union(ref, RootFieldRef(driver))
	if err := NewInferrer().Decide(m); err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	NewRewriter(m).RewriteAll()

	got, ok := w.Typ.(*BundleType)
	if !ok {
		t.Fatalf("w.Typ is no longer a *BundleType: %T", w.Typ)
	}
	if got.Elements[0].Type.String() != "UInt<3>" {
		t.Fatalf("sibling field a changed: %s", got.Elements[0].Type)
	}
	if got.Elements[1].Type.String() != "AsyncReset" {
		t.Fatalf("field b = %s, want AsyncReset", got.Elements[1].Type)
	}
}

func TestRewriteAllIsIdempotent(t *testing.T) {
	m := NewResetMap()
	w := &WireOp{Name: "w", Typ: ResetType{}}
	driver := &WireOp{Name: "driver", Typ: AsyncResetType{}}
	m.Union(RootFieldRef(w), RootFieldRef(driver))
	if err := NewInferrer().Decide(m); err != nil {
		trace(t, err)
		t.Fatal(err)
	}

	rw := NewRewriter(m)
	rw.RewriteAll()
	typeAfterFirst := w.Typ.String()
	rw.RewriteAll()
	if w.Typ.String() != typeAfterFirst {
		t.Fatalf("a second RewriteAll changed an already-concrete type: %s -> %s", typeAfterFirst, w.Typ)
	}
}
