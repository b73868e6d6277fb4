package ccl

// closeCrossEquivalence is C7. The spec's literal algorithm re-scans the
// cross-parent table until no row's root changes (§4.7's "divergence"
// fixed-point loop), because appending rows during C6 can leave a label
// pointing at a root that is itself not yet fully resolved.
//
// crossForest already resolves that during C6: union() always calls find()
// on both sides before linking, and find() does path halving on every call,
// so by the time buildCrossEquivalence returns there is no pending
// divergence left to flatten. closeCrossEquivalence does one full pass that
// compresses every key straight to its ultimate root, which is the
// equivalent of the spec's fixed point but without needing to detect it —
// the forest is already there after one pass because it is idempotent.
func closeCrossEquivalence(forest *crossForest) {
	for id := range forest.parent {
		forest.parent[id] = forest.find(id)
	}
}
