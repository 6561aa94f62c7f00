package resetinfer

// Moduleish is anything an InstanceOp can target: a Module with a body, or
// an ExtModule declared but not defined in this circuit. Reset inference
// treats the two very differently: ExtModule ports are never rewritten,
// since there is no body to drive a synthesized reset into.
type Moduleish interface {
	ModuleName() string
	PortList() []*Port
}

// Module is a single module definition: an ordered port list and a flat,
// unordered list of body operations. Instance nesting forms the module
// tree that reset domains are built over.
type Module struct {
	Name        string
	Ports       []*Port
	Body        []Op
	Loc         Pos
	Annotations []Annotation
}

func (m *Module) ModuleName() string { return m.Name }
func (m *Module) PortList() []*Port  { return m.Ports }
func (m *Module) Pos() Pos            { return m.Loc }
func (m *Module) getAnnos() []Annotation  { return m.Annotations }
func (m *Module) setAnnos(a []Annotation) { m.Annotations = a }

// Port looks up a port by name, or returns nil.
func (m *Module) Port(name string) *Port {
	for _, p := range m.Ports {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// AddPort appends a new port to m's port list; callers are responsible
// for also updating every InstanceOp targeting m.
func (m *Module) AddPort(p *Port) {
	m.Ports = append(m.Ports, p)
}

// InsertPort inserts a new port at the given index, shifting later ports
// right. The implementer prepends synthesized reset ports, since they are
// conventionally inserted first.
func (m *Module) InsertPort(i int, p *Port) {
	m.Ports = append(m.Ports, nil)
	copy(m.Ports[i+1:], m.Ports[i:])
	m.Ports[i] = p
}

// ExtModule is an externally defined module: ports only, no body. Reset
// inference may read an ExtModule's ports (to trace resets passed into an
// instance of it) but never rewrites them.
type ExtModule struct {
	Name        string
	Ports       []*Port
	Loc         Pos
	Annotations []Annotation
}

func (m *ExtModule) ModuleName() string { return m.Name }
func (m *ExtModule) PortList() []*Port  { return m.Ports }
func (m *ExtModule) Pos() Pos            { return m.Loc }
func (m *ExtModule) getAnnos() []Annotation  { return m.Annotations }
func (m *ExtModule) setAnnos(a []Annotation) { m.Annotations = a }

// Circuit is the top-level container: a named top module plus every
// module and ext-module reachable from it, keyed by name for lookup
// during instance tree traversal.
type Circuit struct {
	Top     string
	Modules map[string]Moduleish
}

// NewCircuit builds a Circuit from a flat list of modules, indexing them
// by name. It does not validate that Top exists or that the instance graph
// is acyclic: Lookup and TopModule report a missing module as a
// diagnostic, and nothing checks the instance graph for cycles.
func NewCircuit(top string, mods []Moduleish) *Circuit {
	c := &Circuit{Top: top, Modules: make(map[string]Moduleish, len(mods))}
	for _, m := range mods {
		c.Modules[m.ModuleName()] = m
	}
	return c
}

// Lookup returns the named module, or an error if no such module exists.
func (c *Circuit) Lookup(name string) (Moduleish, error) {
	m, ok := c.Modules[name]
	if !ok {
		return nil, errorf(NoPos, "no such module %q", name)
	}
	return m, nil
}

// TopModule returns the circuit's top module, which must be a full
// Module (not an ExtModule), since the pass needs a body to rewrite.
func (c *Circuit) TopModule() (*Module, error) {
	m, err := c.Lookup(c.Top)
	if err != nil {
		return nil, err
	}
	top, ok := m.(*Module)
	if !ok {
		return nil, errorf(NoPos, "top module %q has no body", c.Top)
	}
	return top, nil
}

// Uses returns every op in m's body that reads v as an operand, in body
// order.
func Uses(m *Module, v Value) []Op {
	var out []Op
	each := func(op Op, operand Value) {
		if operand == v {
			out = append(out, op)
		}
	}
	for _, op := range m.Body {
		switch o := op.(type) {
		case *NodeOp:
			each(op, o.Input)
		case *RegOp:
			each(op, o.Clock)
		case *RegResetOp:
			each(op, o.Clock)
			each(op, o.Reset)
			each(op, o.ResetValue)
		case *MuxOp:
			each(op, o.Sel)
			each(op, o.High)
			each(op, o.Low)
		case *AsClockOp:
			each(op, o.Input)
		case *AsAsyncResetOp:
			each(op, o.Input)
		case *SubfieldOp:
			each(op, o.Input)
		case *SubindexOp:
			each(op, o.Input)
		case *SubaccessOp:
			each(op, o.Input)
			each(op, o.Index)
		case *ConnectOp:
			each(op, o.Dest)
			each(op, o.Src)
		case *PartialConnectOp:
			each(op, o.Dest)
			each(op, o.Src)
		}
	}
	return out
}
