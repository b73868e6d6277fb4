package ccl

import "testing"

func TestEquivTable_RecordAndFind(t *testing.T) {
	et := newEquivTable(4)
	a := et.newLabel()
	b := et.newLabel()
	c := et.newLabel()

	et.record(b, a)
	et.record(c, b)

	root := et.find(a)
	if et.find(b) != root || et.find(c) != root {
		t.Fatalf("a, b, c should share a root after chained record calls: a=%d b=%d c=%d",
			et.find(a), et.find(b), et.find(c))
	}
}

func TestEquivTable_SelfRecordIsNoop(t *testing.T) {
	et := newEquivTable(1)
	a := et.newLabel()
	before := et.find(a)
	et.record(a, a)
	if et.find(a) != before {
		t.Fatal("record(a, a) changed a's root")
	}
}

func TestCrossForest_UnionAndFind(t *testing.T) {
	f := newCrossForest()
	k1 := tileLabel{0, 0, 1}
	k2 := tileLabel{1, 0, 1}
	k3 := tileLabel{0, 1, 1}

	f.union(k1, k2)
	f.union(k2, k3)

	id1 := f.find(f.classID(k1))
	if f.find(f.classID(k2)) != id1 || f.find(f.classID(k3)) != id1 {
		t.Fatal("keys unioned transitively should share a root")
	}
}

func TestCrossForest_ClassIDIsIdempotent(t *testing.T) {
	f := newCrossForest()
	k := tileLabel{2, 3, 5}
	id1 := f.classID(k)
	id2 := f.classID(k)
	if id1 != id2 {
		t.Fatalf("classID returned different ids for the same key: %d vs %d", id1, id2)
	}
	if len(f.keys) != 1 {
		t.Fatalf("registering the same key twice grew keys to %d, want 1", len(f.keys))
	}
}

func TestAssignGlobalIDs_DenseAndStable(t *testing.T) {
	f := newCrossForest()
	f.union(tileLabel{0, 0, 1}, tileLabel{1, 0, 1})
	f.classID(tileLabel{0, 1, 1}) // an isolated class with no cross-tile neighbor

	closeCrossEquivalence(f)
	globalOf, g := assignGlobalIDs(f)

	if g != 2 {
		t.Fatalf("NumComponents = %d, want 2", g)
	}
	if globalOf[tileLabel{0, 0, 1}] != globalOf[tileLabel{1, 0, 1}] {
		t.Fatal("unioned keys got different global ids")
	}
	if globalOf[tileLabel{0, 1, 1}] == globalOf[tileLabel{0, 0, 1}] {
		t.Fatal("unrelated class was merged into the other component")
	}
	for _, gid := range globalOf {
		if gid == 0 || gid > g {
			t.Fatalf("global id %d out of range [1, %d]", gid, g)
		}
	}
}
