package rasterio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/giulange/tiledccl/internal/ccl"
)

// WriteLabels writes res's flattened, non-overlapping label grid (spec §6)
// to path as whitespace-separated decimal integers, one logical row per
// line, matching the input format ReadFile accepts.
func WriteLabels(path string, res *ccl.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rasterio: creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	p := res.Params()
	width := p.NC1 + 1
	height := p.NR1 + 1
	flat := res.Flatten()

	for y := 0; y < height; y++ {
		row := flat[y*width : (y+1)*width]
		for x, v := range row {
			if x > 0 {
				if err := w.WriteByte(' '); err != nil {
					return fmt.Errorf("rasterio: writing %s: %w", path, err)
				}
			}
			if _, err := w.WriteString(strconv.FormatUint(uint64(v), 10)); err != nil {
				return fmt.Errorf("rasterio: writing %s: %w", path, err)
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("rasterio: writing %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("rasterio: flushing %s: %w", path, err)
	}
	return nil
}
