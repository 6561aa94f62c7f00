package resetinfer

import (
	"testing"

	"github.com/pkg/errors"
)

// trace logs a stack trace for err when it carries one, to make a
// failing assertion easier to chase down.
func trace(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	if st, ok := err.(interface{ StackTrace() errors.StackTrace }); ok {
		for _, f := range st.StackTrace() {
			t.Logf("%+v", f)
		}
	}
}

func TestLeafCountGround(t *testing.T) {
	if n := LeafCount(UIntType{Width: 8}); n != 1 {
		t.Fatalf("LeafCount(UInt<8>) = %d, want 1", n)
	}
	if n := LeafCount(ResetType{}); n != 1 {
		t.Fatalf("LeafCount(Reset) = %d, want 1", n)
	}
}

func TestLeafCountBundle(t *testing.T) {
	bt := &BundleType{Elements: []BundleField{
		{Name: "a", Type: UIntType{Width: 1}},
		{Name: "b", Type: ResetType{}},
		{Name: "c", Type: &BundleType{Elements: []BundleField{
			{Name: "d", Type: UIntType{Width: 2}},
			{Name: "e", Type: ResetType{}},
		}}},
	}}
	if n := LeafCount(bt); n != 4 {
		t.Fatalf("LeafCount(bt) = %d, want 4", n)
	}
}

func TestLeafCountVectorCollapses(t *testing.T) {
	vt := &VectorType{Element: ResetType{}, Len: 100}
	if n := LeafCount(vt); n != 1 {
		t.Fatalf("LeafCount(vector of 100 Reset) = %d, want 1 (vector widening collapses to one leaf range)", n)
	}
}

func TestUpdateFieldTypePreservesSiblings(t *testing.T) {
	bt := &BundleType{Elements: []BundleField{
		{Name: "a", Type: UIntType{Width: 1}},
		{Name: "b", Type: ResetType{}},
		{Name: "c", Type: UIntType{Width: 2}},
	}}
	updated := updateFieldType(bt, 1, AsyncResetType{})
	ut, ok := updated.(*BundleType)
	if !ok {
		t.Fatalf("updateFieldType did not return a *BundleType")
	}
	if ut.Elements[0].Type.String() != "UInt<1>" {
		t.Fatalf("sibling field a changed: got %s", ut.Elements[0].Type)
	}
	if ut.Elements[1].Type.String() != "AsyncReset" {
		t.Fatalf("field b not updated: got %s", ut.Elements[1].Type)
	}
	if ut.Elements[2].Type.String() != "UInt<2>" {
		t.Fatalf("sibling field c changed: got %s", ut.Elements[2].Type)
	}
	// original must be untouched (structural sharing, not mutation).
	if bt.Elements[1].Type.String() != "Reset" {
		t.Fatalf("updateFieldType mutated its input")
	}
}
