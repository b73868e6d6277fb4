package viz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/giulange/tiledccl/internal/ccl"
	"github.com/giulange/tiledccl/internal/pmtiles"
)

func TestZoomFor(t *testing.T) {
	tests := []struct {
		ntX, ntY int
		want     int
	}{
		{1, 1, 1},
		{2, 1, 1},
		{3, 3, 2},
		{5, 2, 3},
	}
	for _, tt := range tests {
		if got := zoomFor(tt.ntX, tt.ntY); got != tt.want {
			t.Errorf("zoomFor(%d,%d) = %d, want %d", tt.ntX, tt.ntY, got, tt.want)
		}
	}
}

// TestArchive_RoundTrip verifies Archive by reading the written file's own
// header and root directory back with the package's deserializers, the same
// way writer_test.go checks Finalize's output — no general-purpose archive
// reader is needed just to confirm the tile count and PNG magic bytes.
func TestArchive_RoundTrip(t *testing.T) {
	p := ccl.Params{TX: 4, TY: 4, NC1: 6, NR1: 6}
	raster := ccl.NewRaster(p.PaddedWidth(), p.PaddedHeight())
	for _, pt := range [][2]int{{0, 0}, {1, 0}, {5, 5}, {6, 6}} {
		raster.Set(pt[0], pt[1], ccl.Vo)
	}
	res, err := ccl.Label(raster, p, ccl.Config{}, nil)
	if err != nil {
		t.Fatalf("Label: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.pmtiles")
	if err := Archive(res, path, Config{Format: "png", Concurrency: 2}); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	if len(data) < pmtiles.HeaderSize {
		t.Fatalf("archive is %d bytes, too short for a header", len(data))
	}

	hdr, err := pmtiles.DeserializeHeader(data[:pmtiles.HeaderSize])
	if err != nil {
		t.Fatalf("DeserializeHeader: %v", err)
	}

	ntX, ntY := p.NumTilesX(), p.NumTilesY()
	want := uint64(ntX * ntY)
	if hdr.NumAddressedTiles != want {
		t.Fatalf("header reports %d addressed tiles, want %d", hdr.NumAddressedTiles, want)
	}
	if hdr.TileType != pmtiles.TileTypePNG {
		t.Fatalf("header tile type = %d, want %d (PNG)", hdr.TileType, pmtiles.TileTypePNG)
	}

	rootDir := data[hdr.RootDirOffset : hdr.RootDirOffset+hdr.RootDirLength]
	entries, err := pmtiles.DeserializeDirectory(rootDir)
	if err != nil {
		t.Fatalf("DeserializeDirectory: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("root directory has no entries")
	}

	first := entries[0]
	tile := data[hdr.TileDataOffset+first.Offset : hdr.TileDataOffset+first.Offset+uint64(first.Length)]
	if len(tile) < 8 || string(tile[1:4]) != "PNG" {
		t.Fatalf("first tile does not look like PNG data: % x", tile[:min(8, len(tile))])
	}
}
