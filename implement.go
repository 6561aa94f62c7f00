package resetinfer

// Implementer takes a finished DomainPlan, with every reset already
// resolved to a concrete type by the rewriter, and executes it:
// synthesizing or reusing each module's reset port, prepending a matching
// result to every instance of a module that gains a port (no connect is
// created to drive that result), and inserting a reset into every
// register of every module the
// domain reaches, including registers that had no reset at all before
// this pass ran. This last part is the actual "full async reset
// insertion": a domain does not merely resolve abstract resets, it gives
// every storage element in its scope one.
type Implementer struct {
	Circuit *Circuit
	Plan    *DomainPlan
	Zero    *zeroCache
}

// NewImplementer returns an Implementer for the given circuit and plan.
func NewImplementer(ckt *Circuit, plan *DomainPlan) *Implementer {
	return &Implementer{Circuit: ckt, Plan: plan, Zero: newZeroCache()}
}

// Run executes the plan over every module it touches.
func (im *Implementer) Run() error {
	for name, domain := range im.Plan.ModuleDomain {
		m, err := im.Circuit.Lookup(name)
		if err != nil {
			return err
		}
		mod, ok := m.(*Module)
		if !ok {
			continue // ExtModule: ports only, nothing to rewrite into
		}
		if err := im.implementModule(mod, domain); err != nil {
			return err
		}
	}
	return nil
}

func (im *Implementer) implementModule(m *Module, domain *ResetDomain) error {
	action := im.Plan.Actions[m.Name]

	var resetPort Value
	switch action.Kind {
	case ActionSynthesize:
		p := &Port{Name: action.PortName, Dir: Input, Typ: AsyncResetType{}, Loc: m.Loc}
		m.InsertPort(0, p)
		im.wireInstancesTo(m, p)
		resetPort = p
	case ActionReuse:
		resetPort = m.Port(action.PortName)
	case ActionNone:
		if domain.Module == m.Name {
			resetPort = domainRootValue(domain)
		}
	}

	if resetPort == nil {
		return nil
	}

	// A verify failure on an already-async register is reported at the end
	// of the module rather than aborting the walk immediately, mirroring
	// how the original absorbs that failure into signalPassFailure() while
	// still visiting every other op in the body.
	var deferredErr error
	for _, op := range m.Body {
		switch o := op.(type) {
		case *RegOp:
			if err := im.insertReset(m, o, resetPort); err != nil {
				return err
			}
		case *RegResetOp:
			if IsAsyncResetType(o.Reset.Type()) {
				if err := o.Verify(); err != nil && deferredErr == nil {
					deferredErr = err
				}
				continue
			}
			if err := im.lowerSyncReset(m, o, resetPort); err != nil {
				return err
			}
		}
	}
	return deferredErr
}

// lowerSyncReset converts reg, which already carries a sync-typed reset,
// into full-async-reset form. Every drive site that reaches reg through
// zero or more subfield/subindex/subaccess projections gets an explicit
// mux selecting reg's own existing reset value whenever its own existing
// sync reset is asserted; only once every site is lowered does reg's
// reset itself get overwritten to the domain's actual async reset and a
// fresh zero value.
func (im *Implementer) lowerSyncReset(m *Module, reg *RegResetOp, actualReset Value) error {
	if err := reg.Verify(); err != nil {
		return err
	}
	im.insertResetMux(m, reg, reg.Reset, reg.ResetValue)
	reg.Reset = actualReset
	reg.ResetValue = buildZeroOp(m, im.Zero.zeroValueOf(reg.Typ), reg.Loc)
	return nil
}

// insertResetMux rewrites every connect/partial-connect that drives
// target directly, muxing reset/resetValue in ahead of the existing
// source, then recurses through every subfield/subindex/subaccess
// projection of target so an aggregate register's reset is lowered field
// by field and element by element. resetValue is projected alongside
// target at each recursive step so the mux at a leaf site always selects
// the matching leaf of the original reset value.
func (im *Implementer) insertResetMux(m *Module, target, reset, resetValue Value) {
	for _, op := range m.Body {
		switch o := op.(type) {
		case *ConnectOp:
			if o.Dest == target {
				o.Src = &MuxOp{Sel: reset, High: resetValue, Low: o.Src, Typ: target.Type(), Loc: o.Loc}
			}
		case *PartialConnectOp:
			if o.Dest == target {
				o.Src = &MuxOp{Sel: reset, High: resetValue, Low: o.Src, Typ: target.Type(), Loc: o.Loc}
			}
		case *SubfieldOp:
			if o.Input == target {
				sub := &SubfieldOp{Input: resetValue, Field: o.Field, Typ: o.Typ, Loc: o.Loc}
				m.Body = append(m.Body, sub)
				im.insertResetMux(m, o, reset, sub)
			}
		case *SubindexOp:
			if o.Input == target {
				sub := &SubindexOp{Input: resetValue, Index: o.Index, Typ: o.Typ, Loc: o.Loc}
				m.Body = append(m.Body, sub)
				im.insertResetMux(m, o, reset, sub)
			}
		case *SubaccessOp:
			if o.Input == target {
				sub := &SubaccessOp{Input: resetValue, Index: o.Index, Typ: o.Typ, Loc: o.Loc}
				m.Body = append(m.Body, sub)
				im.insertResetMux(m, o, reset, sub)
			}
		}
	}
}

// domainRootValue returns the Value the domain's own declared root
// FieldRef names, for use as the reset signal within the module that
// declares the domain itself.
func domainRootValue(d *ResetDomain) Value {
	return d.Root.Value
}

// wireInstancesTo finds every InstanceOp anywhere in the circuit that
// targets m and prepends a reset result wired to port, keeping
// ResultAnnotations in lock-step with Results per the InstanceOp
// invariant.
func (im *Implementer) wireInstancesTo(m *Module, port *Port) {
	for _, mm := range im.Circuit.Modules {
		owner, ok := mm.(*Module)
		if !ok {
			continue
		}
		for _, op := range owner.Body {
			inst, ok := op.(*InstanceOp)
			if !ok || inst.Target != Moduleish(m) {
				continue
			}
			res := &InstanceResult{Inst: inst, Index: 0, Name: port.Name, Typ: port.Typ, Dir: port.Dir}
			inst.Results = append([]*InstanceResult{res}, inst.Results...)
			inst.ResultAnnotations = append([][]Annotation{nil}, inst.ResultAnnotations...)
			for i, r := range inst.Results {
				r.Index = i
			}
			// This function only shapes the instance's result list; no
			// connect from the owning module's reset signal to the new
			// result is created, here or elsewhere in the implementer.
		}
	}
}

// insertReset converts a plain RegOp into an equivalent RegResetOp driven
// by port, with a synthesized zero reset value.
func (im *Implementer) insertReset(m *Module, reg *RegOp, port Value) error {
	zv := im.Zero.zeroValueOf(reg.Typ)
	resetValue := buildZeroOp(m, zv, reg.Loc)
	replacement := &RegResetOp{
		Name:       reg.Name,
		Clock:      reg.Clock,
		Reset:      port,
		ResetValue: resetValue,
		Typ:        reg.Typ,
		Loc:        reg.Loc,
		Annos:      reg.Annos,
	}
	for i, op := range m.Body {
		if op == Op(reg) {
			m.Body[i] = replacement
			break
		}
	}
	for _, op := range m.Body {
		switch o := op.(type) {
		case *NodeOp:
			if o.Input == Value(reg) {
				o.Input = replacement
			}
		case *MuxOp:
			if o.Sel == Value(reg) {
				o.Sel = replacement
			}
			if o.High == Value(reg) {
				o.High = replacement
			}
			if o.Low == Value(reg) {
				o.Low = replacement
			}
		case *ConnectOp:
			if o.Src == Value(reg) {
				o.Src = replacement
			}
		case *PartialConnectOp:
			if o.Src == Value(reg) {
				o.Src = replacement
			}
		}
	}
	return nil
}
