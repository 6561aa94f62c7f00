package resetinfer

// ResetKind is what a reset net has been inferred to drive: nothing yet,
// a synchronous (UInt<1>) reset, an asynchronous reset, or invalid (driven
// only by invalid-literal filler, contributing no type information of its
// own).
type ResetKind int

const (
	ResetKindUnknown ResetKind = iota
	ResetKindSync
	ResetKindAsync
	ResetKindInvalid
)

func (k ResetKind) String() string {
	switch k {
	case ResetKindSync:
		return "sync"
	case ResetKindAsync:
		return "async"
	case ResetKindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Drive records one connect (or partial connect, or instance port
// binding) edge the tracer followed, for diagnostic attribution: the two FieldRefs
// it joined and the source location responsible, so the inferrer can
// later point at the exact offending drive in a mixed or untyped net.
type Drive struct {
	Dst FieldRef
	Src FieldRef
	Loc Pos
}

// ResetNode is one FieldRef's slot in the union-find forest. org is the
// node it has been merged into (nil at a root); members is the reverse
// edge list, mirroring the org/outs pointer-chain idiom used to track
// fan-out in a wiring graph. size is maintained only at roots, for
// union-by-size. typ is the leaf type this FieldRef addressed at the
// moment its node was first allocated, i.e. before the rewriter has had
// any chance to resolve an abstract Reset to something concrete: the
// inferrer's vote tally is a pure function of these captured types, never
// of the IR's current (possibly already-rewritten) state.
type ResetNode struct {
	ref     FieldRef
	typ     Type
	org     *ResetNode
	members []*ResetNode
	size    int
	order   int // insertion order, for deterministic tie-breaking
	decided ResetKind
}

// findRoot walks the org chain to this node's net representative. No path
// compression: nets are small and short-lived per pass run, and an
// uncompressed chain keeps merge order (and therefore guessRoot's
// tie-breaking) reproducible across repeated runs on the same input.
func (n *ResetNode) findRoot() *ResetNode {
	for n.org != nil {
		n = n.org
	}
	return n
}

// ResetNet is a live equivalence class of connected reset-typed FieldRefs,
// as seen from its representative node.
type ResetNet struct {
	node *ResetNode
}

// Kind returns the net's final decided kind, as set by the inferrer's
// Decide; zero (ResetKindUnknown) before inference has run.
func (n ResetNet) Kind() ResetKind { return n.node.findRoot().decided }

// setDecided records the net's final decided kind. Only the inferrer calls
// this.
func (n ResetNet) setDecided(k ResetKind) { n.node.findRoot().decided = k }

// Members returns every FieldRef currently in the net, in depth-first
// order from the net's representative (each node before the nets merged
// into it, in merge order).
func (n ResetNet) Members() []FieldRef {
	root := n.node.findRoot()
	out := make([]FieldRef, 0, root.size)
	var walk func(*ResetNode)
	walk = func(node *ResetNode) {
		out = append(out, node.ref)
		for _, m := range node.members {
			walk(m)
		}
	}
	walk(root)
	return out
}

// Votes tallies, across every node currently in the net, how many have a
// concrete async type, a concrete sync type, or are invalid-literal
// filler for an still-abstract leaf. A node whose captured type is the
// abstract Reset type and is not invalid-literal filler casts no vote at
// all: it is exactly the kind of leaf this pass exists to resolve.
func (n ResetNet) Votes() (async, sync, invalid int) {
	root := n.node.findRoot()
	var walk func(*ResetNode)
	walk = func(node *ResetNode) {
		switch {
		case IsAsyncResetType(node.typ):
			async++
		case IsSyncResetType(node.typ):
			sync++
		case IsResetType(node.typ) && isInvalidLiteral(node.ref.Value):
			invalid++
		}
		for _, m := range node.members {
			walk(m)
		}
	}
	walk(root)
	return
}

// nonResetTypeNode returns the first node in the net whose captured type
// is neither the abstract Reset type nor one of its two concrete
// refinements, or nil if every node has a legitimate reset-family type.
func (n ResetNet) nonResetTypeNode() *ResetNode {
	root := n.node.findRoot()
	var found *ResetNode
	var walk func(*ResetNode)
	walk = func(node *ResetNode) {
		if found != nil {
			return
		}
		if !isResetFamilyType(node.typ) {
			found = node
			return
		}
		for _, m := range node.members {
			walk(m)
		}
	}
	walk(root)
	return found
}

func isResetFamilyType(t Type) bool {
	return IsResetType(t) || IsAsyncResetType(t) || IsSyncResetType(t)
}

func isInvalidLiteral(v Value) bool {
	_, ok := v.(*InvalidValueOp)
	return ok
}

// ResetMap is the reset-network store: an arena of ResetNodes keyed
// by FieldRef, with a free list so that nodes released by Forget can be
// reused by later allocations instead of growing the arena. A merge
// retires no node: the losing root stays in the net as a member.
type ResetMap struct {
	index  map[FieldRef]*ResetNode
	arena  []*ResetNode
	free   []*ResetNode
	next   int
	Drives []Drive
}

// NewResetMap returns an empty reset-network store.
func NewResetMap() *ResetMap {
	return &ResetMap{index: make(map[FieldRef]*ResetNode)}
}

// Node returns the node for ref, allocating a fresh singleton net if ref
// has not been seen before. The ref's current leaf type is captured at
// allocation time and never updated, even if the rewriter later resolves
// it to something concrete.
func (m *ResetMap) Node(ref FieldRef) *ResetNode {
	if n, ok := m.index[ref]; ok {
		return n
	}
	n := m.alloc(ref)
	m.index[ref] = n
	return n
}

func (m *ResetMap) alloc(ref FieldRef) *ResetNode {
	var n *ResetNode
	reused := false
	if l := len(m.free); l > 0 {
		n = m.free[l-1]
		m.free = m.free[:l-1]
		*n = ResetNode{}
		reused = true
	} else {
		n = &ResetNode{}
	}
	n.ref = ref
	n.typ = LeafType(ref)
	n.size = 1
	n.order = m.next
	m.next++
	if !reused {
		// A reused node is already present in arena from its first
		// allocation; Nets() would otherwise list it twice.
		m.arena = append(m.arena, n)
	}
	return n
}

// Net returns the net currently containing ref.
func (m *ResetMap) Net(ref FieldRef) ResetNet {
	return ResetNet{node: m.Node(ref).findRoot()}
}

// Union merges the nets containing a and b, returning the surviving net.
// The larger net (by member count) absorbs the smaller one; on a tie the
// net with the lower insertion order wins, so that repeated runs over the
// same input merge in the same direction every time.
func (m *ResetMap) Union(a, b FieldRef) ResetNet {
	ra := m.Node(a).findRoot()
	rb := m.Node(b).findRoot()
	if ra == rb {
		return ResetNet{node: ra}
	}
	winner, loser := ra, rb
	if rb.size > ra.size || (rb.size == ra.size && rb.order < ra.order) {
		winner, loser = rb, ra
	}
	loser.org = winner
	winner.members = append(winner.members, loser)
	winner.size += loser.size
	return ResetNet{node: winner}
}

// RecordDrive appends a diagnostic-only edge: dst was driven by src at
// loc. It does not affect union-find membership (callers still call Union
// separately); it only feeds the inferrer's dissent notes and non-reset-
// type diagnostics.
func (m *ResetMap) RecordDrive(dst, src FieldRef, loc Pos) {
	m.Drives = append(m.Drives, Drive{Dst: dst, Src: src, Loc: loc})
}

// DrivesInNet returns every recorded Drive whose destination or source
// currently resolves into net.
func (m *ResetMap) DrivesInNet(net ResetNet) []Drive {
	root := net.node.findRoot()
	var out []Drive
	for _, d := range m.Drives {
		if m.Node(d.Dst).findRoot() == root || m.Node(d.Src).findRoot() == root {
			out = append(out, d)
		}
	}
	return out
}

// Nets returns every currently live net, in the order its representative
// was first allocated. Retired (non-root) nodes are skipped.
func (m *ResetMap) Nets() []ResetNet {
	var out []ResetNet
	for _, n := range m.arena {
		if n.org == nil {
			out = append(out, ResetNet{node: n})
		}
	}
	return out
}

// Forget removes ref's node from the map and returns it to the free list
// for reuse by a later allocation. Only a leaf, never-merged node (no
// members, not itself merged into another) can be forgotten; for any
// other node Forget does nothing.
func (m *ResetMap) Forget(ref FieldRef) {
	n, ok := m.index[ref]
	if !ok || n.org != nil || len(n.members) != 0 {
		return
	}
	delete(m.index, ref)
	m.free = append(m.free, n)
}
