package ccl

// tileLabel identifies a local-root label within a specific tile — the key
// the spec's cross-parent table indexes by (tile, local-root) pairs
// (spec §3).
type tileLabel struct {
	TX, TY int
	Local  uint32
}

// crossForest is the cross-tile equivalence closure for C6 and C7. The spec
// describes the cross-parent table as a flat, row-indexed list of
// (Tp,Lp,Tr,Lr) tuples, closed by back-pointer propagation and a
// divergence-resolution scan that appends rows while it runs (§4.6–§4.7).
// §9's re-architecture notes flag exactly this as fragile ("should be
// proven, not assumed") and recommend separating storage from lookup: "a
// vector of class records, plus a hash map from (tile, local_root) to a
// stable class handle". crossForest is that hash-keyed union-find: classID
// assigns (or looks up) a stable handle per key, and union merges two
// classes directly, with path compression standing in for the spec's
// back-pointer chasing.
type crossForest struct {
	idOf   map[tileLabel]int
	keys   []tileLabel // keys[id] is the key that first created id
	parent []int
	rank   []int
}

func newCrossForest() *crossForest {
	return &crossForest{idOf: make(map[tileLabel]int)}
}

// classID returns tl's handle, registering it if this is the first sighting.
// Calling it again for an already-registered key is a no-op lookup — this is
// how self-root registration (spec §4.6 step 3) becomes idempotent instead
// of needing an explicit "already named by a seam row" check.
func (f *crossForest) classID(tl tileLabel) int {
	if id, ok := f.idOf[tl]; ok {
		return id
	}
	id := len(f.parent)
	f.idOf[tl] = id
	f.keys = append(f.keys, tl)
	f.parent = append(f.parent, id)
	f.rank = append(f.rank, 0)
	return id
}

func (f *crossForest) find(id int) int {
	for f.parent[id] != id {
		f.parent[id] = f.parent[f.parent[id]]
		id = f.parent[id]
	}
	return id
}

func (f *crossForest) union(a, b tileLabel) {
	ra, rb := f.find(f.classID(a)), f.find(f.classID(b))
	if ra == rb {
		return
	}
	if f.rank[ra] < f.rank[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	if f.rank[ra] == f.rank[rb] {
		f.rank[ra]++
	}
}

// buildCrossEquivalence is C6: it walks the tile grid in row-major order and
// unions each tile's local roots with its north and west neighbors across
// the shared seam (spec §4.6), then registers every remaining local root so
// C8's renumbering can reach components with no cross-tile neighbor.
//
// tiles is indexed [ty][tx] and must already hold the C2–C5 output for every
// tile; per spec §5, neighbor tiles must have completed C2–C5 before this
// runs, which the pipeline guarantees with a barrier.
func buildCrossEquivalence(p Params, tiles [][]*tileResult) *crossForest {
	forest := newCrossForest()
	ntX, ntY := p.NumTilesX(), p.NumTilesY()

	for ty := 0; ty < ntY; ty++ {
		for tx := 0; tx < ntX; tx++ {
			res := tiles[ty][tx]

			if ty > 0 {
				north := tiles[ty-1][tx]
				for c := 0; c < p.TX; c++ {
					nv := north.Lab.At(c, p.TY-1)
					ov := res.Lab.At(c, 0)
					if nv != 0 && ov != 0 {
						forest.union(tileLabel{tx, ty, ov}, tileLabel{tx, ty - 1, nv})
					}
				}
			}

			if tx > 0 {
				west := tiles[ty][tx-1]
				for r := 0; r < p.TY; r++ {
					wv := west.Lab.At(p.TX-1, r)
					ov := res.Lab.At(0, r)
					if wv != 0 && ov != 0 {
						forest.union(tileLabel{tx, ty, ov}, tileLabel{tx - 1, ty, wv})
					}
				}
			}

			for _, root := range res.Roots {
				forest.classID(tileLabel{tx, ty, root})
			}
		}
	}

	return forest
}
