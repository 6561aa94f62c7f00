package resetinfer

// Op is any operation in a module body. The op set is closed and finite, so
// the tracer, rewriter, and implementer dispatch on it with a plain type
// switch rather than a virtual hierarchy.
type Op interface {
	Pos() Pos
}

// WireOp declares a new wire of the given type.
type WireOp struct {
	Name  string
	Typ   Type
	Loc   Pos
	Annos []Annotation
}

func (o *WireOp) Type() Type             { return o.Typ }
func (o *WireOp) SetType(t Type)         { o.Typ = t }
func (o *WireOp) Pos() Pos                { return o.Loc }
func (o *WireOp) getAnnos() []Annotation  { return o.Annos }
func (o *WireOp) setAnnos(a []Annotation) { o.Annos = a }

// NodeOp names the value of Input; unlike a wire, a node's type always
// tracks its input and is never itself mutated independent of it, but for
// reset inference purposes it is still a value that can be the target or
// source of a drive.
type NodeOp struct {
	Name  string
	Input Value
	Typ   Type
	Loc   Pos
	Annos []Annotation
}

func (o *NodeOp) Type() Type             { return o.Typ }
func (o *NodeOp) SetType(t Type)         { o.Typ = t }
func (o *NodeOp) Pos() Pos                { return o.Loc }
func (o *NodeOp) getAnnos() []Annotation  { return o.Annos }
func (o *NodeOp) setAnnos(a []Annotation) { o.Annos = a }

// RegOp is a clocked register with no reset.
type RegOp struct {
	Name  string
	Clock Value
	Typ   Type
	Loc   Pos
	Annos []Annotation
}

func (o *RegOp) Type() Type             { return o.Typ }
func (o *RegOp) SetType(t Type)         { o.Typ = t }
func (o *RegOp) Pos() Pos                { return o.Loc }
func (o *RegOp) getAnnos() []Annotation  { return o.Annos }
func (o *RegOp) setAnnos(a []Annotation) { o.Annos = a }

// RegResetOp is a clocked register with a reset signal and reset value.
type RegResetOp struct {
	Name       string
	Clock      Value
	Reset      Value
	ResetValue Value
	Typ        Type
	Loc        Pos
	Annos      []Annotation
}

func (o *RegResetOp) Type() Type             { return o.Typ }
func (o *RegResetOp) SetType(t Type)         { o.Typ = t }
func (o *RegResetOp) Pos() Pos                { return o.Loc }
func (o *RegResetOp) getAnnos() []Annotation  { return o.Annos }
func (o *RegResetOp) setAnnos(a []Annotation) { o.Annos = a }

// Verify checks that the register's reset signal and reset value are
// internally consistent: the reset value must have the register's type,
// and the reset signal must have a sync or async reset type. The
// implementer calls this even on a register that already has an async
// reset, so a malformed reset/reset-value pairing is caught rather than
// silently skipped.
func (o *RegResetOp) Verify() error {
	if o.ResetValue.Type().String() != o.Typ.String() {
		return errorf(o.Loc, "register %q reset value type %s does not match register type %s", o.Name, o.ResetValue.Type(), o.Typ)
	}
	if IsAsyncResetType(o.Reset.Type()) {
		return nil
	}
	if IsSyncResetType(o.Reset.Type()) {
		return nil
	}
	return errorf(o.Loc, "register %q reset signal has non-reset type %s", o.Name, o.Reset.Type())
}

// InvalidValueOp produces an unconstrained value of the given type; used
// as the zero value for abstract-reset/analog aggregates fields.
type InvalidValueOp struct {
	Typ   Type
	Loc   Pos
	Annos []Annotation
}

func (o *InvalidValueOp) Type() Type             { return o.Typ }
func (o *InvalidValueOp) SetType(t Type)         { o.Typ = t }
func (o *InvalidValueOp) Pos() Pos                { return o.Loc }
func (o *InvalidValueOp) getAnnos() []Annotation  { return o.Annos }
func (o *InvalidValueOp) setAnnos(a []Annotation) { o.Annos = a }

// ConstantOp is a literal integer constant.
type ConstantOp struct {
	Typ   Type
	Value int64
	Loc   Pos
	Annos []Annotation
}

func (o *ConstantOp) Type() Type             { return o.Typ }
func (o *ConstantOp) SetType(t Type)         { o.Typ = t }
func (o *ConstantOp) Pos() Pos                { return o.Loc }
func (o *ConstantOp) getAnnos() []Annotation  { return o.Annos }
func (o *ConstantOp) setAnnos(a []Annotation) { o.Annos = a }

// MuxOp selects High when Sel is true, Low otherwise.
type MuxOp struct {
	Sel, High, Low Value
	Typ            Type
	Loc            Pos
	Annos          []Annotation
}

func (o *MuxOp) Type() Type             { return o.Typ }
func (o *MuxOp) SetType(t Type)         { o.Typ = t }
func (o *MuxOp) Pos() Pos                { return o.Loc }
func (o *MuxOp) getAnnos() []Annotation  { return o.Annos }
func (o *MuxOp) setAnnos(a []Annotation) { o.Annos = a }

// AsClockOp casts a one-bit value to Clock.
type AsClockOp struct {
	Input Value
	Loc   Pos
	Annos []Annotation
}

func (o *AsClockOp) Type() Type             { return ClockType{} }
func (o *AsClockOp) SetType(Type)           {}
func (o *AsClockOp) Pos() Pos                { return o.Loc }
func (o *AsClockOp) getAnnos() []Annotation  { return o.Annos }
func (o *AsClockOp) setAnnos(a []Annotation) { o.Annos = a }

// AsAsyncResetOp casts a one-bit value to AsyncReset.
type AsAsyncResetOp struct {
	Input Value
	Loc   Pos
	Annos []Annotation
}

func (o *AsAsyncResetOp) Type() Type             { return AsyncResetType{} }
func (o *AsAsyncResetOp) SetType(Type)           {}
func (o *AsAsyncResetOp) Pos() Pos                { return o.Loc }
func (o *AsAsyncResetOp) getAnnos() []Annotation  { return o.Annos }
func (o *AsAsyncResetOp) setAnnos(a []Annotation) { o.Annos = a }

// SubfieldOp projects a named field out of a bundle-typed value.
type SubfieldOp struct {
	Input Value
	Field string
	Typ   Type
	Loc   Pos
	Annos []Annotation
}

func (o *SubfieldOp) Type() Type             { return o.Typ }
func (o *SubfieldOp) SetType(t Type)         { o.Typ = t }
func (o *SubfieldOp) Pos() Pos                { return o.Loc }
func (o *SubfieldOp) getAnnos() []Annotation  { return o.Annos }
func (o *SubfieldOp) setAnnos(a []Annotation) { o.Annos = a }

// SubindexOp projects a constant element index out of a vector-typed value.
type SubindexOp struct {
	Input Value
	Index int
	Typ   Type
	Loc   Pos
	Annos []Annotation
}

func (o *SubindexOp) Type() Type             { return o.Typ }
func (o *SubindexOp) SetType(t Type)         { o.Typ = t }
func (o *SubindexOp) Pos() Pos                { return o.Loc }
func (o *SubindexOp) getAnnos() []Annotation  { return o.Annos }
func (o *SubindexOp) setAnnos(a []Annotation) { o.Annos = a }

// SubaccessOp projects a dynamically indexed element out of a vector-typed
// value; Index is itself a Value (e.g. a register holding the address).
type SubaccessOp struct {
	Input Value
	Index Value
	Typ   Type
	Loc   Pos
	Annos []Annotation
}

func (o *SubaccessOp) Type() Type             { return o.Typ }
func (o *SubaccessOp) SetType(t Type)         { o.Typ = t }
func (o *SubaccessOp) Pos() Pos                { return o.Loc }
func (o *SubaccessOp) getAnnos() []Annotation  { return o.Annos }
func (o *SubaccessOp) setAnnos(a []Annotation) { o.Annos = a }

// ConnectOp drives Src onto Dest. The op has no result, so it is not
// itself a Value.
type ConnectOp struct {
	Dest, Src Value
	Loc       Pos
	Annos     []Annotation
}

func (o *ConnectOp) Pos() Pos                { return o.Loc }
func (o *ConnectOp) getAnnos() []Annotation  { return o.Annos }
func (o *ConnectOp) setAnnos(a []Annotation) { o.Annos = a }

// PartialConnectOp drives Src onto Dest, pairing bundle fields by name and
// tolerating asymmetric field sets.
type PartialConnectOp struct {
	Dest, Src Value
	Loc       Pos
	Annos     []Annotation
}

func (o *PartialConnectOp) Pos() Pos                { return o.Loc }
func (o *PartialConnectOp) getAnnos() []Annotation  { return o.Annos }
func (o *PartialConnectOp) setAnnos(a []Annotation) { o.Annos = a }

// InstanceResult is one result of an InstanceOp, corresponding 1:1 to a
// port of the instantiated module.
type InstanceResult struct {
	Inst  *InstanceOp
	Index int
	Name  string
	Typ   Type
	Dir   Direction
}

func (r *InstanceResult) Type() Type     { return r.Typ }
func (r *InstanceResult) SetType(t Type) { r.Typ = t }
func (r *InstanceResult) Pos() Pos        { return r.Inst.Loc }

// InstanceOp instantiates Target (a *Module or *ExtModule), producing one
// result per port of the target. ResultAnnotations runs parallel to
// Results; it exists so the implementer can grow it in lock-step when it
// prepends a reset result.
type InstanceOp struct {
	Name              string
	Target            Moduleish
	Results           []*InstanceResult
	ResultAnnotations [][]Annotation
	Loc               Pos
	Annos             []Annotation
}

func (o *InstanceOp) Pos() Pos                { return o.Loc }
func (o *InstanceOp) getAnnos() []Annotation  { return o.Annos }
func (o *InstanceOp) setAnnos(a []Annotation) { o.Annos = a }

// Result returns the i-th result.
func (o *InstanceOp) Result(i int) *InstanceResult { return o.Results[i] }
