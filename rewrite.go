package resetinfer

// Rewriter replaces each abstract Reset leaf with its concrete
// type (AsyncReset or UInt<1>), rebuilding the owning value's full type
// structurally via updateFieldType so that every other field of an
// aggregate is left bit-for-bit identical.
type Rewriter struct {
	Nets *ResetMap
}

// NewRewriter returns a Rewriter over the given reset-network store.
func NewRewriter(nets *ResetMap) *Rewriter {
	return &Rewriter{Nets: nets}
}

// concreteType returns the type a net of the given kind resolves its
// abstract Reset leaves to.
func concreteType(k ResetKind) Type {
	if k == ResetKindAsync {
		return AsyncResetType{}
	}
	return UIntType{Width: 1}
}

// RewriteAll walks every net in the store and, for each member whose leaf
// is still the abstract Reset type, rewrites it to the net's decided
// concrete type. It is idempotent: a leaf already rewritten to a concrete
// type is left untouched on a second pass, since IsResetType is false for
// it by then.
func (rw *Rewriter) RewriteAll() {
	for _, net := range rw.Nets.Nets() {
		leaf := concreteType(net.Kind())
		for _, ref := range net.Members() {
			if !IsResetType(LeafType(ref)) {
				continue
			}
			rw.rewriteLeaf(ref, leaf)
		}
	}
}

// rewriteLeaf updates ref's value in place to carry leaf at ref.FieldID,
// preserving every other field of the value's type.
func (rw *Rewriter) rewriteLeaf(ref FieldRef, leaf Type) {
	old := ref.Value.Type()
	updated := updateFieldType(old, ref.FieldID, leaf)
	ref.Value.SetType(updated)
}
