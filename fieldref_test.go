package resetinfer

import "testing"

func bundleABType() *BundleType {
	return &BundleType{Elements: []BundleField{
		{Name: "a", Type: ResetType{}},
		{Name: "b", Type: UIntType{Width: 4}, Flip: true},
	}}
}

func TestFieldNavigatesBundle(t *testing.T) {
	w := &WireOp{Name: "w", Typ: bundleABType()}
	root := RootFieldRef(w)

	refA, flipA, ok := Field(root, "a")
	if !ok || flipA {
		t.Fatalf("Field(a) = (%v, %v, %v), want ok, not flipped", refA, flipA, ok)
	}
	if LeafType(refA).String() != "Reset" {
		t.Fatalf("LeafType(a) = %s, want Reset", LeafType(refA))
	}

	refB, flipB, ok := Field(root, "b")
	if !ok || !flipB {
		t.Fatalf("Field(b) = (%v, %v, %v), want ok, flipped", refB, flipB, ok)
	}
	if refA.FieldID == refB.FieldID {
		t.Fatalf("distinct fields must have distinct field-ids")
	}
}

func TestFieldUnknownNameNotOK(t *testing.T) {
	w := &WireOp{Name: "w", Typ: bundleABType()}
	if _, _, ok := Field(RootFieldRef(w), "nosuchfield"); ok {
		t.Fatalf("Field should report !ok for an absent field name")
	}
}

func TestRootFieldRefThroughProjections(t *testing.T) {
	w := &WireOp{Name: "w", Typ: bundleABType()}
	sub := &SubfieldOp{Input: w, Field: "a", Typ: ResetType{}}

	direct, _, _ := Field(RootFieldRef(w), "a")
	viaProjection := rootFieldRef(sub)

	if direct != viaProjection {
		t.Fatalf("rootFieldRef through a SubfieldOp must equal the direct Field() computation: got %+v, want %+v", viaProjection, direct)
	}
}

func TestIndexCollapsesVectorFieldID(t *testing.T) {
	vt := &VectorType{Element: ResetType{}, Len: 8}
	w := &WireOp{Name: "w", Typ: vt}
	root := RootFieldRef(w)
	e3 := Index(root, 3)
	e5 := Index(root, 5)
	if e3 != e5 {
		t.Fatalf("under vector widening, all element FieldRefs must collapse to the same leaf: got %+v and %+v", e3, e5)
	}
}
