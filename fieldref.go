package resetinfer

// FieldRef names one leaf field of a Value: the value itself, plus a
// field-id locating a ground-typed leaf within it under the pure
// leaf-indexing scheme (field-id 0 addresses the first leaf, or the whole
// value when it is already ground). Two FieldRefs are the same leaf iff
// they compare equal, since Value is always a pointer or an interface
// wrapping one.
type FieldRef struct {
	Value   Value
	FieldID int
}

// RootFieldRef returns the FieldRef addressing the first (or only) leaf of
// v, i.e. field-id 0.
func RootFieldRef(v Value) FieldRef {
	return FieldRef{Value: v, FieldID: 0}
}

// LeafType returns the ground type addressed by r.
func LeafType(r FieldRef) Type {
	return leafTypeAt(r.Value.Type(), r.FieldID)
}

func leafTypeAt(t Type, id int) Type {
	switch tt := t.(type) {
	case *BundleType:
		idx, rem := indexForFieldID(tt, id)
		return leafTypeAt(tt.Elements[idx].Type, rem)
	case *VectorType:
		return leafTypeAt(tt.Element, id)
	default:
		if id != 0 {
			panic("resetinfer: non-zero field-id on ground type")
		}
		return t
	}
}

// Field returns the FieldRef for the named sub-field of r, which must
// currently address a bundle-typed leaf range. flip reports whether the
// field is flipped relative to r's own orientation.
func Field(r FieldRef, name string) (ref FieldRef, flip bool, ok bool) {
	bt, rem := bundleAt(r.Value.Type(), r.FieldID)
	if bt == nil {
		return FieldRef{}, false, false
	}
	idx := bt.FieldIndex(name)
	if idx < 0 {
		return FieldRef{}, false, false
	}
	base := fieldBase(bt, idx)
	return FieldRef{Value: r.Value, FieldID: r.FieldID - rem + base}, bt.Elements[idx].Flip, true
}

// bundleAt walks down to the bundle type directly containing field-id id
// within t, returning that bundle type and id's offset relative to it.
func bundleAt(t Type, id int) (*BundleType, int) {
	switch tt := t.(type) {
	case *BundleType:
		idx, rem := indexForFieldID(tt, id)
		if rem == 0 {
			if _, isBundle := tt.Elements[idx].Type.(*BundleType); !isBundle {
				if _, isVec := tt.Elements[idx].Type.(*VectorType); !isVec {
					return tt, id - rem
				}
			}
		}
		return bundleAt(tt.Elements[idx].Type, rem)
	case *VectorType:
		return bundleAt(tt.Element, id)
	default:
		return nil, 0
	}
}

// Index returns the FieldRef for element i of r, which must currently
// address a vector-typed leaf range. Under the pure leaf-indexing scheme
// every element shares the same field-id range as the vector itself, so
// Index is a no-op on the field-id and exists purely for readability at
// call sites that are conceptually indexing a vector.
func Index(r FieldRef, i int) FieldRef {
	return r
}
