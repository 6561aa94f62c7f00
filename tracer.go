package resetinfer

// rootFieldRef resolves v, following any chain of subfield/subindex/
// subaccess projections, down to the FieldRef of its underlying storage
// location (port, wire, node, register, register reset, instance result,
// invalid-value, or constant) plus the field-id addressing v's own leaf
// range within that root's type. Projections are transient addressing and
// never a separate union-find identity; only the root is.
func rootFieldRef(v Value) FieldRef {
	switch o := v.(type) {
	case *SubfieldOp:
		parent := rootFieldRef(o.Input)
		ref, _, ok := Field(parent, o.Field)
		if !ok {
			panic("resetinfer: subfield of non-bundle type")
		}
		return ref
	case *SubindexOp:
		return Index(rootFieldRef(o.Input), o.Index)
	case *SubaccessOp:
		return Index(rootFieldRef(o.Input), 0)
	default:
		return RootFieldRef(v)
	}
}

// RegUse records that a register's reset operand belongs to the net
// represented by Ref. It is bookkeeping only: the inferrer and the
// implementer do not read it.
type RegUse struct {
	Reg *RegResetOp
	Ref FieldRef
}

// Tracer walks a module's body, merging every reset-typed FieldRef that a
// connect (or partial connect) links into one equivalence class in the
// module's ResetMap, and records every register that consumes a reset
// signal, giving that reset a node of its own even when nothing connects
// to it.
type Tracer struct {
	Nets    *ResetMap
	RegUses []RegUse
}

// NewTracer returns a Tracer backed by a fresh ResetMap.
func NewTracer() *Tracer {
	return &Tracer{Nets: NewResetMap()}
}

// TraceModule walks m's body once, in order, tracing connects and
// recording register reset usages. Each result of an instance of a
// *Module is joined with the matching port of that module (an input port
// is driven from the instance, an output port drives the instance), which
// stitches the per-module nets together across instance boundaries;
// instances of an ExtModule are skipped.
func (tr *Tracer) TraceModule(m *Module) error {
	for _, op := range m.Body {
		switch o := op.(type) {
		case *ConnectOp:
			tr.traceConnect(o.Dest, o.Src, o.Loc)
		case *PartialConnectOp:
			tr.traceConnect(o.Dest, o.Src, o.Loc)
		case *InstanceOp:
			target, ok := o.Target.(*Module)
			if !ok {
				continue
			}
			for i, r := range o.Results {
				p := target.Ports[i]
				if p.Dir == Input {
					tr.traceLeaf(RootFieldRef(p), RootFieldRef(r), p.Typ, o.Loc)
				} else {
					tr.traceLeaf(RootFieldRef(r), RootFieldRef(p), r.Typ, o.Loc)
				}
			}
		case *RegResetOp:
			ref := rootFieldRef(o.Reset)
			tr.Nets.Node(ref)
			tr.RegUses = append(tr.RegUses, RegUse{Reg: o, Ref: ref})
		}
	}
	return nil
}

// traceConnect decomposes a connect between two arbitrarily aggregate
// values into per-leaf unions, following dest's structural type (partial
// connects with an asymmetric field set simply skip fields absent on the
// other side).
func (tr *Tracer) traceConnect(dest, src Value, loc Pos) {
	destRef := rootFieldRef(dest)
	srcRef := rootFieldRef(src)
	tr.traceLeaf(destRef, srcRef, dest.Type(), loc)
}

func (tr *Tracer) traceLeaf(destRef, srcRef FieldRef, typ Type, loc Pos) {
	switch t := typ.(type) {
	case *BundleType:
		for _, f := range t.Elements {
			dr, _, ok := Field(destRef, f.Name)
			if !ok {
				continue
			}
			sr, _, ok := Field(srcRef, f.Name)
			if !ok {
				// asymmetric partial connect: field only on dest side
				continue
			}
			tr.traceLeaf(dr, sr, f.Type, loc)
		}
	case *VectorType:
		tr.traceLeaf(Index(destRef, 0), Index(srcRef, 0), t.Element, loc)
	default:
		tr.traceGroundLeaf(destRef, srcRef, t, loc)
	}
}

func (tr *Tracer) traceGroundLeaf(destRef, srcRef FieldRef, destTyp Type, loc Pos) {
	if !IsResetType(destTyp) {
		return
	}
	tr.Nets.Union(destRef, srcRef)
	tr.Nets.RecordDrive(destRef, srcRef, loc)
}
