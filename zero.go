package resetinfer

import "github.com/pkg/errors"

// zeroCache memoizes the zero-value description produced for a given
// type's string form, so that two fields sharing the same (say) deeply
// nested bundle shape reuse one synthesized literal description instead
// of walking the type tree afresh each time. Dispatch is a type switch
// over the closed type set; unsupported kinds panic rather than return an
// error, since they indicate a malformed Type the builder should never
// have produced.
type zeroCache struct {
	m map[string]ZeroValue
}

func newZeroCache() *zeroCache {
	return &zeroCache{m: make(map[string]ZeroValue)}
}

// ZeroValue describes the literal needed to drive t to its reset value:
// for ground types this is a single constant (0, or an invalid literal
// for Clock/Reset/AsyncReset/Analog, which have no numeric zero); for
// aggregates it is a recursively built structural description.
// buildZeroOp materializes only the top level of an aggregate
// description; the per-field entries are not turned into ops.
type ZeroValue struct {
	Typ    Type
	Fields []ZeroValue // populated only when Typ is a *BundleType
	Elems  []ZeroValue // populated only when Typ is a *VectorType (len 1: shared by all indices)
}

// zeroValueOf builds (or returns the cached description of) the zero
// value for t.
func (c *zeroCache) zeroValueOf(t Type) ZeroValue {
	key := t.String()
	if zv, ok := c.m[key]; ok {
		return zv
	}
	var zv ZeroValue
	switch tt := t.(type) {
	case *BundleType:
		fields := make([]ZeroValue, len(tt.Elements))
		for i, f := range tt.Elements {
			fields[i] = c.zeroValueOf(f.Type)
		}
		zv = ZeroValue{Typ: t, Fields: fields}
	case *VectorType:
		zv = ZeroValue{Typ: t, Elems: []ZeroValue{c.zeroValueOf(tt.Element)}}
	case ClockType, ResetType, AsyncResetType, AnalogType:
		zv = ZeroValue{Typ: t}
	case UIntType, SIntType:
		zv = ZeroValue{Typ: t}
	default:
		panic(errors.Errorf("resetinfer: unsupported type %T for zero-value synthesis", t))
	}
	c.m[key] = zv
	return zv
}

// buildZeroOp materializes v's zero value as ops appended to m's body,
// returning the resulting Value. Ground numeric types become a
// ConstantOp; the clock/reset/analog ground types (which have no sane
// numeric zero) become an InvalidValueOp, matching how the original
// leaves non-reset-bearing reset-typed fields untouched. A bundle or
// vector becomes a single InvalidValueOp of the whole aggregate type; its
// fields and elements are not driven to zero individually.
func buildZeroOp(m *Module, v ZeroValue, loc Pos) Value {
	switch tt := v.Typ.(type) {
	case UIntType:
		op := &ConstantOp{Typ: tt, Value: 0, Loc: loc}
		m.Body = append(m.Body, op)
		return op
	case SIntType:
		op := &ConstantOp{Typ: tt, Value: 0, Loc: loc}
		m.Body = append(m.Body, op)
		return op
	case ClockType, ResetType, AsyncResetType, AnalogType:
		op := &InvalidValueOp{Typ: v.Typ, Loc: loc}
		m.Body = append(m.Body, op)
		return op
	case *BundleType:
		// One InvalidValueOp stands for the whole bundle; v.Fields is not
		// used and no field is connected separately.
		op := &InvalidValueOp{Typ: v.Typ, Loc: loc}
		m.Body = append(m.Body, op)
		return op
	case *VectorType:
		op := &InvalidValueOp{Typ: v.Typ, Loc: loc}
		m.Body = append(m.Body, op)
		return op
	default:
		panic(errors.Errorf("resetinfer: unsupported type %T for zero-value synthesis", v.Typ))
	}
}
