package resetinfer

import "strconv"

// Type is the IR's type lattice: ground types (clock, reset, async reset,
// [su]int, analog) and aggregates (bundle, vector). Aggregates are the only
// recursion site in the type system; everything else is a leaf.
type Type interface {
	String() string
	isType()
}

// ClockType is the type of clock signals.
type ClockType struct{}

func (ClockType) String() string { return "Clock" }
func (ClockType) isType()        {}

// ResetType is the abstract reset type: neither sync nor async until
// inference resolves it.
type ResetType struct{}

func (ResetType) String() string { return "Reset" }
func (ResetType) isType()        {}

// AsyncResetType is the concrete one-bit asynchronous reset type.
type AsyncResetType struct{}

func (AsyncResetType) String() string { return "AsyncReset" }
func (AsyncResetType) isType()        {}

// UIntType is an unsigned integer type. Width <= 0 means unknown (inferred
// later); a one-bit UInt is also the concrete sync reset type.
type UIntType struct{ Width int }

func (t UIntType) String() string {
	if t.Width <= 0 {
		return "UInt"
	}
	return "UInt<" + strconv.Itoa(t.Width) + ">"
}
func (UIntType) isType() {}

// SIntType is a signed integer type, same width convention as UIntType.
type SIntType struct{ Width int }

func (t SIntType) String() string {
	if t.Width <= 0 {
		return "SInt"
	}
	return "SInt<" + strconv.Itoa(t.Width) + ">"
}
func (SIntType) isType() {}

// AnalogType is a bidirectional analog wire of the given width.
type AnalogType struct{ Width int }

func (t AnalogType) String() string {
	if t.Width <= 0 {
		return "Analog"
	}
	return "Analog<" + strconv.Itoa(t.Width) + ">"
}
func (AnalogType) isType() {}

// BundleField is one named, possibly flipped, field of a BundleType.
type BundleField struct {
	Name string
	Flip bool
	Type Type
}

// BundleType is a named, heterogeneous record type.
type BundleType struct{ Elements []BundleField }

func (t *BundleType) String() string {
	s := "{"
	for i, f := range t.Elements {
		if i > 0 {
			s += ", "
		}
		if f.Flip {
			s += "flip "
		}
		s += f.Name + ": " + f.Type.String()
	}
	return s + "}"
}
func (*BundleType) isType() {}

// FieldIndex returns the index of the named field, or -1 if absent.
func (t *BundleType) FieldIndex(name string) int {
	for i, f := range t.Elements {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// VectorType is a uniform, statically sized array type.
type VectorType struct {
	Element Type
	Len     int
}

func (t *VectorType) String() string {
	return t.Element.String() + "[" + strconv.Itoa(t.Len) + "]"
}
func (*VectorType) isType() {}

// IsGround reports whether t is a ground (leaf) type, as opposed to an
// aggregate (bundle or vector).
func IsGround(t Type) bool {
	switch t.(type) {
	case *BundleType, *VectorType:
		return false
	default:
		return true
	}
}

// IsResetType reports whether t is the abstract reset type.
func IsResetType(t Type) bool {
	_, ok := t.(ResetType)
	return ok
}

// IsAsyncResetType reports whether t is the concrete async reset type.
func IsAsyncResetType(t Type) bool {
	_, ok := t.(AsyncResetType)
	return ok
}

// IsSyncResetType reports whether t is the concrete sync reset type, i.e.
// a one-bit unsigned integer.
func IsSyncResetType(t Type) bool {
	u, ok := t.(UIntType)
	return ok && u.Width == 1
}

// LeafCount returns the number of leaves (ground-typed FieldRef slots)
// addressable within t by a canonical, order-preserving traversal. Bundles
// sum their fields' leaf counts; vectors report their element's leaf count
// only once: every index of a vector collapses onto the same shared leaf
// range rather than being counted Len times over.
func LeafCount(t Type) int {
	switch tt := t.(type) {
	case *BundleType:
		n := 0
		for _, f := range tt.Elements {
			n += LeafCount(f.Type)
		}
		return n
	case *VectorType:
		return LeafCount(tt.Element)
	default:
		return 1
	}
}

// fieldBase returns the field-id of the first leaf of the i-th field of a
// bundle type, i.e. the cumulative leaf count of the preceding fields.
func fieldBase(t *BundleType, i int) int {
	n := 0
	for _, f := range t.Elements[:i] {
		n += LeafCount(f.Type)
	}
	return n
}

// indexForFieldID locates the bundle field owning the leaf addressed by id
// (relative to the bundle's own field-id range), returning the field index
// and the field-id relative to that field's own range.
func indexForFieldID(t *BundleType, id int) (index, rem int) {
	base := 0
	for i, f := range t.Elements {
		n := LeafCount(f.Type)
		if id < base+n {
			return i, id - base
		}
		base += n
	}
	panic("resetinfer: field-id out of range for bundle type")
}

// updateFieldType replaces the leaf at fieldID within old with leaf,
// rebuilding just enough of the aggregate shape to hold it and leaving
// every sibling field (and flip bit) untouched.
func updateFieldType(old Type, fieldID int, leaf Type) Type {
	switch t := old.(type) {
	case *BundleType:
		idx, rem := indexForFieldID(t, fieldID)
		fields := make([]BundleField, len(t.Elements))
		copy(fields, t.Elements)
		fields[idx].Type = updateFieldType(fields[idx].Type, rem, leaf)
		return &BundleType{Elements: fields}
	case *VectorType:
		return &VectorType{Element: updateFieldType(t.Element, fieldID, leaf), Len: t.Len}
	default:
		if fieldID != 0 {
			panic("resetinfer: non-zero field-id on ground type")
		}
		return leaf
	}
}
