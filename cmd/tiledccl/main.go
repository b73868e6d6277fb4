// Command tiledccl labels connected components in a binary raster using
// tiled eight-connectivity labeling, writing the result as a text grid and,
// optionally, a colorized PMTiles visualization archive.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/giulange/tiledccl/internal/ccl"
	"github.com/giulange/tiledccl/internal/rasterio"
	"github.com/giulange/tiledccl/internal/viz"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var (
		tileX       int
		tileY       int
		concurrency int
		verbose     bool
		showVersion bool
		cpuProfile  string
		vizPath     string
		vizFormat   string
		vizQuality  int
		histogram   bool
	)

	flag.IntVar(&tileX, "tile-x", 256, "Tile width (nominal, before the 1-pixel overlap)")
	flag.IntVar(&tileY, "tile-y", 256, "Tile height (nominal, before the 1-pixel overlap)")
	flag.IntVar(&concurrency, "concurrency", runtime.NumCPU(), "Number of parallel workers")
	flag.BoolVar(&verbose, "verbose", false, "Verbose progress output")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	flag.StringVar(&vizPath, "viz", "", "Also write a colorized PMTiles archive to this path")
	flag.StringVar(&vizFormat, "viz-format", "png", "Visualization tile encoding: png, jpeg, webp")
	flag.IntVar(&vizQuality, "viz-quality", 90, "JPEG/WebP quality 1-100 for -viz")
	flag.BoolVar(&histogram, "histogram", false, "Print the per-component pixel count to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tiledccl [flags] <input.txt> <output.txt>\n\n")
		fmt.Fprintf(os.Stderr, "Label connected components in a whitespace-separated binary raster.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("tiledccl %s (commit %s)\n", version, commit)
		os.Exit(0)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatalf("creating CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("starting CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	start := time.Now()
	raw, err := rasterio.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	if verbose {
		log.Printf("read %dx%d raster in %v", raw.Width, raw.Height, time.Since(start).Round(time.Millisecond))
	}

	p := ccl.Params{TX: tileX, TY: tileY, NC1: raw.Width - 1, NR1: raw.Height - 1}
	if err := p.Validate(); err != nil {
		log.Fatalf("invalid geometry: %v", err)
	}

	padded := raw.ToPadded(p)

	labelStart := time.Now()
	res, err := ccl.Label(padded, p, ccl.Config{Concurrency: concurrency, Verbose: verbose}, nil)
	if err != nil {
		log.Fatalf("labeling: %v", err)
	}
	if verbose {
		log.Printf("labeled %d components in %v", res.NumComponents(), time.Since(labelStart).Round(time.Millisecond))
	}

	if err := rasterio.WriteLabels(outputPath, res); err != nil {
		log.Fatalf("writing output: %v", err)
	}

	if histogram {
		hist := res.Histogram()
		fmt.Fprintf(os.Stderr, "component\tpixels\n")
		for id := uint32(1); id <= res.NumComponents(); id++ {
			fmt.Fprintf(os.Stderr, "%d\t%d\n", id, hist[id])
		}
	}

	if vizPath != "" {
		if !strings.HasSuffix(vizPath, ".pmtiles") {
			log.Fatal("-viz output must have a .pmtiles extension")
		}
		if err := viz.Archive(res, vizPath, viz.Config{
			Format:      vizFormat,
			Quality:     vizQuality,
			Concurrency: concurrency,
			Verbose:     verbose,
		}); err != nil {
			log.Fatalf("rendering visualization: %v", err)
		}
	}

	fmt.Printf("Done: %d component(s), %v → %s\n", res.NumComponents(), time.Since(start).Round(time.Millisecond), outputPath)
}
