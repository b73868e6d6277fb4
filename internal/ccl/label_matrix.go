package ccl

// LabelMatrix is a W×H grid of nonnegative integer labels for one tile
// (spec §3's lab_mat). Zero is background; through stages C2–C4 positive
// values are provisional local labels, and from C5 (secondScan) onward they
// are local-root labels (and, after C9, dense global IDs).
type LabelMatrix struct {
	W, H int
	Lab  []uint32
}

func newLabelMatrix(w, h int) *LabelMatrix {
	return &LabelMatrix{W: w, H: h, Lab: make([]uint32, w*h)}
}

// At returns the label at (x, y), or 0 for any coordinate outside the
// matrix. As with Raster.At, this lets the first scan read the forward-scan
// mask {nw, nn, ne, ww} at tile edges without separate bounds checks.
func (m *LabelMatrix) At(x, y int) uint32 {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return 0
	}
	return m.Lab[y*m.W+x]
}

func (m *LabelMatrix) Set(x, y int, v uint32) {
	m.Lab[y*m.W+x] = v
}
