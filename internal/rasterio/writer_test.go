package rasterio

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/giulange/tiledccl/internal/ccl"
)

func TestWriteLabels_RoundTripsThroughFlatten(t *testing.T) {
	raster := ccl.NewRaster(5, 5)
	for _, pt := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {3, 3}} {
		raster.Set(pt[0], pt[1], ccl.Vo)
	}
	p := ccl.Params{TX: 5, TY: 5, NC1: 3, NR1: 3}
	res, err := ccl.Label(raster, p, ccl.Config{}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteLabels(path, res); err != nil {
		t.Fatalf("WriteLabels: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != p.NR1+1 {
		t.Fatalf("wrote %d rows, want %d", len(lines), p.NR1+1)
	}
	flat := res.Flatten()
	for y, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != p.NC1+1 {
			t.Fatalf("row has %d fields, want %d", len(fields), p.NC1+1)
		}
		for x, f := range fields {
			if want := strconv.FormatUint(uint64(flat[y*(p.NC1+1)+x]), 10); f != want {
				t.Errorf("pixel (%d,%d) = %s, want %s (Flatten)", x, y, f, want)
			}
		}
	}
}
