package ccl

import "fmt"

// thirdScan is C9: it rewrites a tile's label matrix in place from local
// roots to global component IDs, using the table C8 produced (spec §4.9).
//
// Every nonzero entry in res.Lab is, by construction, one of res.Roots
// (secondScan already collapsed provisional labels down to local roots), so
// every lookup must hit globalOf. A miss means the cross-tile closure
// missed a key the intra-tile pass produced — the invariant violation spec
// §7 calls out as unrecoverable, so thirdScan reports it rather than
// silently emitting a wrong label.
func thirdScan(res *tileResult, globalOf map[tileLabel]uint32) error {
	for i, v := range res.Lab.Lab {
		if v == 0 {
			continue
		}
		gid, ok := globalOf[tileLabel{res.TX, res.TY, v}]
		if !ok {
			return fmt.Errorf("%w: tile (%d,%d) local root %d has no global id",
				ErrInvariantViolation, res.TX, res.TY, v)
		}
		res.Lab.Lab[i] = gid
	}
	return nil
}
