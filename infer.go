package resetinfer

import "github.com/pkg/errors"

// Inferrer decides each net's final ResetKind from the concrete types its
// member nodes captured when they were first traced.
//
// Every node in a net casts a vote by its own captured type: a concrete
// async-reset node votes async, a concrete sync (UInt<1>) node votes sync,
// an invalid-literal filling an still-abstract leaf votes invalid, and an
// abstract Reset leaf that is none of those casts no vote at all. A net
// that never receives any vote (an abstract reset that nothing concrete
// ever touches) cannot be resolved and fails the pass; a net that
// receives both async and sync votes is wired to two incompatible kinds
// and also fails the pass, with a note on every dissenting drive. Only
// when the votes are unambiguous does the net decide: async if it saw
// any async vote, sync otherwise (invalid votes alone, with no async or
// sync, also decide sync, matching plain FIRRTL's treatment of an
// unconstrained Reset fed only by invalid literals as a 1-bit UInt).
type Inferrer struct{}

// NewInferrer returns a stateless Inferrer.
func NewInferrer() *Inferrer { return &Inferrer{} }

// Decide assigns a final kind to every net known to m, or returns the
// first diagnostic encountered. It stops at the first failing net rather
// than collecting every failure, matching the pass's single-threaded,
// fail-fast error model.
func (inf *Inferrer) Decide(m *ResetMap) error {
	for _, net := range m.Nets() {
		if err := inf.decideNet(m, net); err != nil {
			return err
		}
	}
	return nil
}

func (inf *Inferrer) decideNet(m *ResetMap, net ResetNet) error {
	if bad := net.nonResetTypeNode(); bad != nil {
		return inf.nonResetTypeError(m, net, bad)
	}

	async, sync, invalid := net.Votes()

	if async == 0 && sync == 0 && invalid == 0 {
		return errorf(netLoc(net), "reset network never driven with concrete type")
	}

	if async > 0 && sync > 0 {
		loc := netLoc(net)
		majorityAsync := async >= sync
		intent := "sync?"
		if majorityAsync {
			intent = "async?"
		}
		diag := newDiagnostic(loc, "reset network simultaneously connected to async and sync resets")
		diag.WithNote(loc, "did you intend for the reset to be %s", intent)
		minority := "async"
		if majorityAsync {
			minority = "sync"
		}
		for _, d := range m.DrivesInNet(net) {
			if inf.isDissenting(m, d, majorityAsync) {
				diag.WithNote(d.Loc, "offending %s drive here", minority)
			}
		}
		return errors.WithStack(diag)
	}

	if async > 0 {
		net.setDecided(ResetKindAsync)
	} else {
		net.setDecided(ResetKindSync)
	}
	return nil
}

// isDissenting reports whether drive d touches a node on the losing side
// of the net's majority: an async node when sync won, or a sync node when
// async won. Invalid and abstract nodes never dissent.
func (inf *Inferrer) isDissenting(m *ResetMap, d Drive, majorityAsync bool) bool {
	dstTyp := m.Node(d.Dst).typ
	srcTyp := m.Node(d.Src).typ
	if majorityAsync {
		return IsSyncResetType(dstTyp) || IsSyncResetType(srcTyp)
	}
	return IsAsyncResetType(dstTyp) || IsAsyncResetType(srcTyp)
}

// nonResetTypeError reports a node whose captured type isn't any
// reset-family type at all, attributing the failure to whichever recorded
// drive actually touches it.
func (inf *Inferrer) nonResetTypeError(m *ResetMap, net ResetNet, bad *ResetNode) error {
	for _, d := range m.DrivesInNet(net) {
		if d.Dst == bad.ref {
			return errorf(d.Loc, "reset network drives a non-reset type %s", bad.typ)
		}
		if d.Src == bad.ref {
			return errorf(d.Loc, "reset network driven with non-reset type %s", bad.typ)
		}
	}
	return errorf(bad.ref.Value.Pos(), "reset network drives a non-reset type %s", bad.typ)
}

// netLoc attributes a whole-net diagnostic to guessRoot's pick, or, if the
// net contains no legal root candidate at all, to its representative
// node's own value.
func netLoc(net ResetNet) Pos {
	if root, ok := guessRoot(net); ok {
		return root.Value.Pos()
	}
	return net.node.findRoot().ref.Value.Pos()
}

// guessRoot picks, among the FieldRefs in a net that are legal root
// candidates (ports, wires, nodes), the one that should serve as the
// canonical driver when a diagnostic needs to point at a single value: the
// earliest-traced legal candidate, identified by walking the union-find
// forest and comparing node.order, so the choice is reproducible across
// runs over the same input regardless of merge direction.
func guessRoot(net ResetNet) (FieldRef, bool) {
	root := net.node.findRoot()
	var best *ResetNode
	var walk func(*ResetNode)
	walk = func(n *ResetNode) {
		if legalRootTarget(n.ref.Value) && (best == nil || n.order < best.order) {
			best = n
		}
		for _, m := range n.members {
			walk(m)
		}
	}
	walk(root)
	if best == nil {
		return FieldRef{}, false
	}
	return best.ref, true
}
