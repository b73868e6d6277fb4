// Command cclinfo labels a raster and prints diagnostic information about
// the tile grid and resulting components: tile geometry, the global
// component count, and (with -histogram) per-label pixel counts. It prints
// nothing per tile: per-tile label counts are not shown. It is the Go-native
// counterpart to the original C program's print_mat/print_vec debug dumps.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/giulange/tiledccl/internal/ccl"
	"github.com/giulange/tiledccl/internal/rasterio"
)

func main() {
	var (
		tileX     int
		tileY     int
		histogram bool
	)
	flag.IntVar(&tileX, "tile-x", 256, "Tile width")
	flag.IntVar(&tileY, "tile-y", 256, "Tile height")
	flag.BoolVar(&histogram, "histogram", false, "Print per-component pixel counts")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cclinfo [flags] <input.txt>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(1)
	}

	raw, err := rasterio.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := ccl.Params{TX: tileX, TY: tileY, NC1: raw.Width - 1, NR1: raw.Height - 1}
	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Input: %s\n", args[0])
	fmt.Printf("Raster: %d x %d\n", raw.Width, raw.Height)
	fmt.Printf("Tile size: %d x %d\n", p.TX, p.TY)
	fmt.Printf("Tile grid: %d x %d (%d tiles)\n", p.NumTilesX(), p.NumTilesY(), p.NumTilesX()*p.NumTilesY())
	fmt.Printf("Padded raster: %d x %d\n", p.PaddedWidth(), p.PaddedHeight())

	padded := raw.ToPadded(p)
	res, err := ccl.Label(padded, p, ccl.Config{}, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Components (G): %d\n", res.NumComponents())

	if histogram {
		hist := res.Histogram()
		fmt.Printf("\nlabel\tpixels\n")
		for id := uint32(1); id <= res.NumComponents(); id++ {
			fmt.Printf("%d\t%d\n", id, hist[id])
		}
	}
}
