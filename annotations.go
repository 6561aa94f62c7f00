package resetinfer

// AnnotationCollector walks a circuit's modules once, consuming
// FullAsyncResetAnnotation and IgnoreFullAsyncResetAnnotation
// off every module, port, wire, and node, validating that each appears
// only on a legal target, and handing the result to the domain builder.
type AnnotationCollector struct {
	// Roots maps a module name to the FieldRef its FullAsyncResetAnnotation
	// names, for every module carrying exactly one.
	Roots map[string]FieldRef
	// Ignored is the set of module names carrying
	// IgnoreFullAsyncResetAnnotation.
	Ignored map[string]bool
}

// NewAnnotationCollector returns an empty collector.
func NewAnnotationCollector() *AnnotationCollector {
	return &AnnotationCollector{
		Roots:   make(map[string]FieldRef),
		Ignored: make(map[string]bool),
	}
}

// legalRootTarget reports whether v is one of the three kinds of value a
// FullAsyncResetAnnotation may legally name: a port, a wire, or a node.
// Registers, instance results, and every other op are not legal targets,
// since none of them declare a new reset-bearing storage location in the
// sense the annotation means.
func legalRootTarget(v Value) bool {
	switch v.(type) {
	case *Port, *WireOp, *NodeOp:
		return true
	default:
		return false
	}
}

// CollectModule scans m's own annotations plus every WireOp/NodeOp in its
// body (ports are scanned as part of the same pass, via PortList), and
// folds any it finds into the collector. It returns a diagnostic if a
// module carries more than one FullAsyncResetAnnotation, or if it carries
// both a FullAsyncResetAnnotation and an IgnoreFullAsyncResetAnnotation.
func (c *AnnotationCollector) CollectModule(m *Module) error {
	modAnnos := removeAnnotations(m, FullAsyncResetAnnotationClass, IgnoreFullAsyncResetAnnotationClass)
	if c.hasClass(modAnnos, IgnoreFullAsyncResetAnnotationClass) {
		c.Ignored[m.Name] = true
	}
	if c.hasClass(modAnnos, FullAsyncResetAnnotationClass) {
		return errorf(m.Loc, "'FullAsyncResetAnnotation' cannot target module; must target port or wire/node instead.")
	}

	var found []FieldRef
	for _, p := range m.Ports {
		portAnnos := removeAnnotations(p, FullAsyncResetAnnotationClass, IgnoreFullAsyncResetAnnotationClass)
		if c.hasClass(portAnnos, IgnoreFullAsyncResetAnnotationClass) {
			return errorf(p.Loc, "'IgnoreFullAsyncResetAnnotation' cannot target port; must target module instead.")
		}
		if c.hasClass(portAnnos, FullAsyncResetAnnotationClass) {
			found = append(found, RootFieldRef(p))
		}
	}
	for _, op := range m.Body {
		a, ok := op.(annotatable)
		if !ok {
			continue
		}
		opAnnos := removeAnnotations(a, FullAsyncResetAnnotationClass, IgnoreFullAsyncResetAnnotationClass)
		if c.hasClass(opAnnos, IgnoreFullAsyncResetAnnotationClass) {
			return errorf(op.Pos(), "'IgnoreFullAsyncResetAnnotation' cannot target port; must target module instead.")
		}
		if !c.hasClass(opAnnos, FullAsyncResetAnnotationClass) {
			continue
		}
		v, ok := op.(Value)
		if !ok || !legalRootTarget(v) {
			return errorf(op.Pos(), "FullAsyncResetAnnotation on illegal target in module %q", m.Name)
		}
		found = append(found, RootFieldRef(v))
	}

	if len(found) == 0 {
		return nil
	}
	if len(found) > 1 {
		return errorf(m.Loc, "module %q has %d FullAsyncResetAnnotations, expected at most one", m.Name, len(found))
	}
	if c.Ignored[m.Name] {
		return errorf(m.Loc, "module %q has both FullAsyncResetAnnotation and IgnoreFullAsyncResetAnnotation", m.Name)
	}
	c.Roots[m.Name] = found[0]
	return nil
}

func (c *AnnotationCollector) hasClass(annos []Annotation, class AnnotationClass) bool {
	for _, a := range annos {
		if a.IsClass(class) {
			return true
		}
	}
	return false
}

// CollectCircuit runs CollectModule over every *Module in the circuit
// (ExtModules carry no body and so can never name a root).
func (c *AnnotationCollector) CollectCircuit(ckt *Circuit) error {
	for _, m := range ckt.Modules {
		mod, ok := m.(*Module)
		if !ok {
			continue
		}
		if err := c.CollectModule(mod); err != nil {
			return err
		}
	}
	return nil
}
