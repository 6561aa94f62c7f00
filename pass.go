package resetinfer

// Options configures one run of the pass.
type Options struct {
	// ResetPortName is the fallback name for a synthesized reset port
	// whose inherited reset has no name; "reset" unless overridden.
	// Otherwise reset ports take the name of the inherited reset.
	ResetPortName string
}

// DefaultOptions returns the pass's default configuration.
func DefaultOptions() Options {
	return Options{ResetPortName: "reset"}
}

// Result summarizes one completed run, for logging and for tests that
// assert on what the pass actually did rather than just that it didn't
// error.
type Result struct {
	Nets          []ResetNet
	Plan          *DomainPlan
	ModulesTouched int
}

// Run executes the full reset-inference-and-async-reset-insertion pass
// over ckt, in the single-threaded, strictly sequential phase order the
// pass is specified to run in: trace, collect annotations, infer,
// rewrite, build domains, implement. Phases never interleave and
// never run concurrently with each other; only an owning CLI may run
// multiple independent Circuits through separate Run calls in parallel
// (see cmd/resetinfer).
func Run(ckt *Circuit, opts Options) (*Result, error) {
	if opts.ResetPortName == "" {
		opts.ResetPortName = "reset"
	}

	tracer := NewTracer()

	// Trace every module's body once, building the reset-network store.
	for _, m := range ckt.Modules {
		mod, ok := m.(*Module)
		if !ok {
			continue
		}
		if err := tracer.TraceModule(mod); err != nil {
			return nil, err
		}
	}

	// Collect root/ignore annotations before inference, so the inferrer
	// can see which nets contain a declared domain root.
	collector := NewAnnotationCollector()
	if err := collector.CollectCircuit(ckt); err != nil {
		return nil, err
	}
	for _, root := range collector.Roots {
		// Ensure the declared root has a node of its own even if nothing
		// ever connects to it directly, so it still casts its own vote.
		tracer.Nets.Node(root)
	}

	// Infer every net's final kind, then rewrite every abstract Reset
	// leaf to its net's concrete type.
	if err := NewInferrer().Decide(tracer.Nets); err != nil {
		return nil, err
	}
	nets := tracer.Nets.Nets()
	NewRewriter(tracer.Nets).RewriteAll()

	// Build reset domains and plan each member module's port action.
	builder := NewDomainBuilder(ckt, collector, opts.ResetPortName)
	plan, err := builder.Build()
	if err != nil {
		return nil, err
	}

	// Execute the plan, inserting a reset into every register the
	// domain reaches.
	if err := NewImplementer(ckt, plan).Run(); err != nil {
		return nil, err
	}

	return &Result{Nets: nets, Plan: plan, ModulesTouched: len(plan.ModuleDomain)}, nil
}
