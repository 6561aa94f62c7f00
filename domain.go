package resetinfer

import "fmt"

// InstancePath is the chain of instance names from the top module down to
// a particular instance, used only to make domain-conflict diagnostics
// readable.
type InstancePath []string

func (p InstancePath) String() string {
	s := ""
	for i, n := range p {
		if i > 0 {
			s += "."
		}
		s += n
	}
	return s
}

// ResetDomain is one full-async-reset domain: the module that declared
// its root (via FullAsyncResetAnnotation) and the FieldRef naming that
// root within it.
type ResetDomain struct {
	Module string
	Root   FieldRef
}

// PortActionKind is what the planner decided to do about a module's reset
// port within its domain.
type PortActionKind int

const (
	// ActionNone means the module needs no reset port: it declares its
	// own root (so nothing is inherited into it) or the domain does not
	// reach it at all.
	ActionNone PortActionKind = iota
	// ActionReuse means the module already has an AsyncReset-typed port
	// under the inherited reset name, which is used as is.
	ActionReuse
	// ActionSynthesize means the module needs a brand new reset port
	// inserted and wired to every instance site within the domain.
	ActionSynthesize
)

// PortAction is the planner's decision for one module.
type PortAction struct {
	Kind     PortActionKind
	PortName string
}

// DomainPlan is the result of building and planning reset domains over an
// entire circuit.
type DomainPlan struct {
	Domains      map[string]*ResetDomain // keyed by the declaring module's name
	ModuleDomain map[string]*ResetDomain // keyed by every module reached within a domain
	Actions      map[string]PortAction   // keyed by module name
}

// DomainBuilder walks the instance tree from the circuit's top module,
// assigning each reachable module to at most one reset domain, and plans
// what port action each domain member needs.
type DomainBuilder struct {
	Circuit     *Circuit
	Collector   *AnnotationCollector
	conventional string // fallback port name when the inherited reset has no name
}

// NewDomainBuilder returns a builder. Reused and synthesized reset ports
// take the name of the reset inherited from the parent module;
// conventionalName (conventionally "reset") is used only when that
// inherited name is empty.
func NewDomainBuilder(ckt *Circuit, collector *AnnotationCollector, conventionalName string) *DomainBuilder {
	return &DomainBuilder{Circuit: ckt, Collector: collector, conventional: conventionalName}
}

// Build walks the instance tree and produces a DomainPlan, or an error if
// two distinct domains claim the same module: a module shared by two
// differently rooted instantiation sites cannot be rewritten to serve
// both.
func (b *DomainBuilder) Build() (*DomainPlan, error) {
	plan := &DomainPlan{
		Domains:      make(map[string]*ResetDomain),
		ModuleDomain: make(map[string]*ResetDomain),
		Actions:      make(map[string]PortAction),
	}
	top, err := b.Circuit.TopModule()
	if err != nil {
		return nil, err
	}

	var visit func(m *Module, inherited *ResetDomain, path InstancePath, parentName string) error
	visit = func(m *Module, inherited *ResetDomain, path InstancePath, parentName string) error {
		domain := inherited
		if root, ok := b.Collector.Roots[m.Name]; ok {
			domain = &ResetDomain{Module: m.Name, Root: root}
			plan.Domains[m.Name] = domain
		}
		if b.Collector.Ignored[m.Name] {
			domain = nil
		}

		childName := parentName
		if domain != nil {
			if existing, ok := plan.ModuleDomain[m.Name]; ok && existing != domain {
				return errorf(m.Loc, "module %q is reachable from two different reset domains (conflict at instance path %s)", m.Name, path)
			}
			plan.ModuleDomain[m.Name] = domain
			name, err := b.plan(plan, m, domain, parentName)
			if err != nil {
				return err
			}
			childName = name
		}

		for _, op := range m.Body {
			inst, ok := op.(*InstanceOp)
			if !ok {
				continue
			}
			target, ok := inst.Target.(*Module)
			if !ok {
				continue // ExtModule: nothing to recurse into
			}
			if err := visit(target, domain, append(path, inst.Name), childName); err != nil {
				return err
			}
		}
		return nil
	}

	if err := visit(top, nil, nil, ""); err != nil {
		return nil, err
	}
	return plan, nil
}

// rootName returns the declared name of whichever port, wire, or node a
// domain's root FieldRef addresses. Every legalRootTarget has a Name
// field, so this only falls through to "" for a malformed domain.
func rootName(ref FieldRef) string {
	switch v := ref.Value.(type) {
	case *Port:
		return v.Name
	case *WireOp:
		return v.Name
	case *NodeOp:
		return v.Name
	default:
		return ""
	}
}

// suffixedName returns the lowest-numbered "base_N" not already taken by a
// port of m, starting at N=0.
func suffixedName(m *Module, base string) string {
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s_%d", base, i)
		if m.Port(candidate) == nil {
			return candidate
		}
	}
}

// plan decides, for module m within domain, whether it needs a
// synthesized reset port, can reuse an existing one, or needs nothing
// because it itself declares the root (so no reset flows in from above).
// It returns the name this module's own reset ends up under, so the
// caller can hand that down as the next level's parentName: a module that
// synthesizes "rst_0" because "rst" collided with something else hands
// "rst_0" to its own children, not the original "rst".
func (b *DomainBuilder) plan(p *DomainPlan, m *Module, domain *ResetDomain, parentName string) (string, error) {
	if domain.Module == m.Name {
		p.Actions[m.Name] = PortAction{Kind: ActionNone}
		return rootName(domain.Root), nil
	}
	name := parentName
	if name == "" {
		// Defensive fallback: every real domain root has a name, but an
		// empty parentName (malformed domain) still needs something to
		// synthesize under.
		name = b.conventional
	}
	existing := m.Port(name)
	switch {
	case existing != nil && IsAsyncResetType(existing.Typ):
		p.Actions[m.Name] = PortAction{Kind: ActionReuse, PortName: existing.Name}
		return existing.Name, nil
	case existing != nil:
		synth := suffixedName(m, name)
		p.Actions[m.Name] = PortAction{Kind: ActionSynthesize, PortName: synth}
		return synth, nil
	default:
		p.Actions[m.Name] = PortAction{Kind: ActionSynthesize, PortName: name}
		return name, nil
	}
}
