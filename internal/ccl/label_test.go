package ccl

import (
	"strings"
	"testing"
)

// parseRaster builds a Raster from rows of '0'/'1' characters, one string
// per row, so test fixtures read like the picture they describe. Every row
// must be the same length.
func parseRaster(rows ...string) *Raster {
	h := len(rows)
	w := len(rows[0])
	r := NewRaster(w, h)
	for y, row := range rows {
		for x := 0; x < w; x++ {
			if row[x] == '1' {
				r.Set(x, y, Vo)
			}
		}
	}
	return r
}

func labelAt(t *testing.T, res *Result, x, y int) uint32 {
	t.Helper()
	return res.At(x, y)
}

// TestLabel_SingleTile_TwoComponents uses a tile large enough to hold the
// whole raster in one tile (ntX = ntY = 1), with two diagonally-offset
// blobs that never touch.
func TestLabel_SingleTile_TwoComponents(t *testing.T) {
	raster := parseRaster(
		"11000",
		"11000",
		"00000",
		"00110",
		"00000",
	)
	p := Params{TX: 5, TY: 5, NC1: 3, NR1: 3}
	res, err := Label(raster, p, Config{Concurrency: 2}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if res.NumComponents() != 2 {
		t.Fatalf("NumComponents = %d, want 2", res.NumComponents())
	}

	topLeft := labelAt(t, res, 0, 0)
	bottomRight := labelAt(t, res, 3, 3)
	if topLeft == 0 || bottomRight == 0 {
		t.Fatalf("expected nonzero labels, got top-left=%d bottom-right=%d", topLeft, bottomRight)
	}
	if topLeft == bottomRight {
		t.Fatalf("disjoint blobs got the same label %d", topLeft)
	}
	for _, pt := range [][2]int{{1, 0}, {0, 1}, {1, 1}} {
		if got := labelAt(t, res, pt[0], pt[1]); got != topLeft {
			t.Errorf("pixel %v = %d, want %d (same component as top-left)", pt, got, topLeft)
		}
	}
}

func TestLabel_DiagonalConnectivity(t *testing.T) {
	// Eight-connectivity joins diagonal neighbors: the two foreground pixels
	// here touch only at a corner.
	raster := parseRaster(
		"100",
		"010",
		"000",
	)
	p := Params{TX: 3, TY: 3, NC1: 1, NR1: 1}
	res, err := Label(raster, p, Config{Concurrency: 1}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if res.NumComponents() != 1 {
		t.Fatalf("NumComponents = %d, want 1 (diagonal touch should merge)", res.NumComponents())
	}
	if labelAt(t, res, 0, 0) != labelAt(t, res, 1, 1) {
		t.Error("diagonal neighbors got different labels")
	}
}

func TestLabel_AllBackground(t *testing.T) {
	raster := parseRaster(
		"000",
		"000",
		"000",
	)
	p := Params{TX: 3, TY: 3, NC1: 1, NR1: 1}
	res, err := Label(raster, p, Config{}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if res.NumComponents() != 0 {
		t.Fatalf("NumComponents = %d, want 0", res.NumComponents())
	}
	for _, v := range res.Flatten() {
		if v != 0 {
			t.Fatalf("expected all-zero output, found label %d", v)
		}
	}
}

func TestLabel_AllForeground(t *testing.T) {
	raster := parseRaster(
		"111",
		"111",
		"111",
	)
	p := Params{TX: 3, TY: 3, NC1: 1, NR1: 1}
	res, err := Label(raster, p, Config{}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if res.NumComponents() != 1 {
		t.Fatalf("NumComponents = %d, want 1", res.NumComponents())
	}
}

// TestLabel_CrossTileComponent covers a component that spans the seam
// between four tiles at once — the corner case spec §4.6 calls out as
// needing both a north and a west union applied to the same pixel.
func TestLabel_CrossTileComponent(t *testing.T) {
	raster := parseRaster(
		"00000",
		"01100",
		"01100",
		"00000",
		"00000",
	)
	// TX=TY=3 gives two tiles per axis, seam at column/row 2, right where
	// the 2x2 foreground block sits.
	p := Params{TX: 3, TY: 3, NC1: 3, NR1: 3}
	res, err := Label(raster, p, Config{Concurrency: 4}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if res.NumComponents() != 1 {
		t.Fatalf("NumComponents = %d, want 1 (single blob split across 4 tiles)", res.NumComponents())
	}
	want := labelAt(t, res, 1, 1)
	for _, pt := range [][2]int{{2, 1}, {1, 2}, {2, 2}} {
		if got := labelAt(t, res, pt[0], pt[1]); got != want {
			t.Errorf("pixel %v = %d, want %d", pt, got, want)
		}
	}
}

func TestLabel_InvalidParams(t *testing.T) {
	raster := NewRaster(4, 4)
	tests := []struct {
		name string
		p    Params
	}{
		{"tile too small", Params{TX: 1, TY: 2, NC1: 3, NR1: 3}},
		{"single-column raster (NC1=0)", Params{TX: 2, TY: 2, NC1: 0, NR1: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Label(raster, tt.p, Config{}, nil); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

// TestLabel_Histogram_NoDoubleCounting places a horizontal bar that crosses
// the tile seam: summing each tile's raw per-tile pixel count would count
// the shared seam column twice.
func TestLabel_Histogram_NoDoubleCounting(t *testing.T) {
	raster := parseRaster(
		"1111100",
		"0000000",
		"0000000",
	)
	p := Params{TX: 4, TY: 3, NC1: 4, NR1: 1}
	res, err := Label(raster, p, Config{Concurrency: 2}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	hist := res.Histogram()
	if len(hist) != 1 {
		t.Fatalf("want 1 component in histogram, got %d: %v", len(hist), hist)
	}
	for _, count := range hist {
		if count != 5 {
			t.Errorf("histogram count = %d, want 5 (raster has 5 foreground pixels)", count)
		}
	}
}

// TestLabel_Deterministic uses the smallest possible tile size (TX=TY=2,
// one pixel of overlap) over an 8x4 raster, producing a dense 7x3 tile
// grid, and checks that the global labeling is identical regardless of
// worker count.
func TestLabel_Deterministic(t *testing.T) {
	raster := parseRaster(
		"10100110",
		"01000101",
		"00110010",
		"10001100",
	)
	p := Params{TX: 2, TY: 2, NC1: 6, NR1: 2}

	first, err := Label(raster, p, Config{Concurrency: 1}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	second, err := Label(raster, p, Config{Concurrency: 8}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if first.NumComponents() != second.NumComponents() {
		t.Fatalf("component count differs across concurrency levels: %d vs %d",
			first.NumComponents(), second.NumComponents())
	}
	f1, f2 := first.Flatten(), second.Flatten()
	if len(f1) != len(f2) {
		t.Fatalf("flattened length differs: %d vs %d", len(f1), len(f2))
	}
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Errorf("pixel %d: concurrency=1 got %d, concurrency=8 got %d", i, f1[i], f2[i])
		}
	}
}

func TestLabel_Idempotent(t *testing.T) {
	raster := parseRaster(
		"10100110",
		"01000101",
		"00110010",
		"10001100",
	)
	p := Params{TX: 2, TY: 2, NC1: 6, NR1: 2}

	first, err := Label(raster, p, Config{Concurrency: 3}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	second, err := Label(raster, p, Config{Concurrency: 3}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	if first.NumComponents() != second.NumComponents() {
		t.Fatalf("repeated run produced a different component count: %d vs %d",
			first.NumComponents(), second.NumComponents())
	}
}

// TestLabel_ProgressCallback uses TX=TY=2 to force a 3x3 tile grid so the
// callback has more than one tile to fire for in each of the two
// tile-parallel stages.
func TestLabel_ProgressCallback(t *testing.T) {
	raster := parseRaster(
		"1100",
		"1100",
		"0011",
		"0011",
	)
	p := Params{TX: 2, TY: 2, NC1: 2, NR1: 2}
	var calls int
	_, err := Label(raster, p, Config{Concurrency: 2}, func() { calls++ })
	if err != nil {
		t.Fatalf("Label: %v", err)
	}
	ntX, ntY := p.NumTilesX(), p.NumTilesY()
	want := 2 * ntX * ntY // one call per tile in each of the two tile-parallel stages
	if calls != want {
		t.Errorf("progress callback invoked %d times, want %d", calls, want)
	}
}

func TestParseRaster_Fixture(t *testing.T) {
	r := parseRaster("10", "01")
	if r.At(0, 0) != Vo || r.At(1, 1) != Vo {
		t.Fatal("diagonal fixture parsed incorrectly")
	}
	if r.At(1, 0) != Vb || r.At(0, 1) != Vb {
		t.Fatal("diagonal fixture parsed incorrectly")
	}
	if strings.Count("10\n01", "1") != 2 {
		t.Fatal("sanity check failed")
	}
}
