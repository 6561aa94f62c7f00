package resetinfer

// ModuleBuilder assembles a *Module op by op. Parsing real FIRRTL text is
// out of scope; this is the in-memory construction surface tests and
// embedders use instead: a struct assembled field by field, then handed
// to the pass rather than read from a file.
type ModuleBuilder struct {
	m *Module
}

// NewModule starts building a module named name.
func NewModule(name string) *ModuleBuilder {
	return &ModuleBuilder{m: &Module{Name: name}}
}

// Port adds a port and returns it, for use as an operand elsewhere.
func (b *ModuleBuilder) Port(name string, dir Direction, t Type) *Port {
	p := &Port{Name: name, Dir: dir, Typ: t}
	b.m.Ports = append(b.m.Ports, p)
	return p
}

// Wire adds a wire and returns it.
func (b *ModuleBuilder) Wire(name string, t Type) *WireOp {
	op := &WireOp{Name: name, Typ: t}
	b.m.Body = append(b.m.Body, op)
	return op
}

// Node adds a node naming input's value and returns it.
func (b *ModuleBuilder) Node(name string, input Value) *NodeOp {
	op := &NodeOp{Name: name, Input: input, Typ: input.Type()}
	b.m.Body = append(b.m.Body, op)
	return op
}

// Reg adds an unreset register and returns it.
func (b *ModuleBuilder) Reg(name string, clock Value, t Type) *RegOp {
	op := &RegOp{Name: name, Clock: clock, Typ: t}
	b.m.Body = append(b.m.Body, op)
	return op
}

// RegReset adds a register with a reset signal and reset value, and
// returns it.
func (b *ModuleBuilder) RegReset(name string, clock, reset, resetValue Value, t Type) *RegResetOp {
	op := &RegResetOp{Name: name, Clock: clock, Reset: reset, ResetValue: resetValue, Typ: t}
	b.m.Body = append(b.m.Body, op)
	return op
}

// Instance adds an instance of target and returns it, with one result
// pre-populated per port of target.
func (b *ModuleBuilder) Instance(name string, target Moduleish) *InstanceOp {
	inst := &InstanceOp{Name: name, Target: target}
	for i, p := range target.PortList() {
		inst.Results = append(inst.Results, &InstanceResult{Inst: inst, Index: i, Name: p.Name, Typ: p.Typ, Dir: p.Dir})
		inst.ResultAnnotations = append(inst.ResultAnnotations, nil)
	}
	b.m.Body = append(b.m.Body, inst)
	return inst
}

// Connect adds a connect from src to dest.
func (b *ModuleBuilder) Connect(dest, src Value) *ConnectOp {
	op := &ConnectOp{Dest: dest, Src: src}
	b.m.Body = append(b.m.Body, op)
	return op
}

// PartialConnect adds a partial connect from src to dest.
func (b *ModuleBuilder) PartialConnect(dest, src Value) *PartialConnectOp {
	op := &PartialConnectOp{Dest: dest, Src: src}
	b.m.Body = append(b.m.Body, op)
	return op
}

// Subfield adds a bundle field projection and returns it.
func (b *ModuleBuilder) Subfield(input Value, field string) *SubfieldOp {
	bt, ok := input.Type().(*BundleType)
	if !ok {
		panic("resetinfer: Subfield of non-bundle value")
	}
	idx := bt.FieldIndex(field)
	if idx < 0 {
		panic("resetinfer: no such field " + field)
	}
	op := &SubfieldOp{Input: input, Field: field, Typ: bt.Elements[idx].Type}
	b.m.Body = append(b.m.Body, op)
	return op
}

// Constant adds an integer literal of the given type.
func (b *ModuleBuilder) Constant(t Type, value int64) *ConstantOp {
	op := &ConstantOp{Typ: t, Value: value}
	b.m.Body = append(b.m.Body, op)
	return op
}

// AsAsyncReset casts input to AsyncReset.
func (b *ModuleBuilder) AsAsyncReset(input Value) *AsAsyncResetOp {
	op := &AsAsyncResetOp{Input: input}
	b.m.Body = append(b.m.Body, op)
	return op
}

// Annotate attaches an annotation of the given class to v.
func (b *ModuleBuilder) Annotate(v annotatable, class AnnotationClass) {
	v.setAnnos(append(v.getAnnos(), Annotation{Class: class}))
}

// AnnotateModule attaches an annotation of the given class to the module
// itself.
func (b *ModuleBuilder) AnnotateModule(class AnnotationClass) {
	b.m.Annotations = append(b.m.Annotations, Annotation{Class: class})
}

// Module returns the built module.
func (b *ModuleBuilder) Module() *Module { return b.m }
