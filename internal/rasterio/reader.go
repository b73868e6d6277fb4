// Package rasterio reads and writes the plain-text raster format tiledccl
// operates on: whitespace-separated decimal sample values, one logical row
// per line. It is the only package in this module that touches a
// filesystem path for raster data; internal/ccl stays pure.
package rasterio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/giulange/tiledccl/internal/ccl"
)

// Raster is a decoded text raster together with its logical dimensions.
type Raster struct {
	Width, Height int
	Samples       []byte
}

// At returns the sample at (x, y), or 0 if out of bounds.
func (r *Raster) At(x, y int) byte {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return 0
	}
	return r.Samples[y*r.Width+x]
}

// ReadFile reads a whitespace-separated binary raster from path. Every line
// must carry the same number of fields; each field must parse as 0 or 1
// (spec §3's Vb/Vo sample domain).
func ReadFile(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rasterio: opening %s: %w", path, err)
	}
	defer f.Close()

	var samples []byte
	width := -1
	lineNo := 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if width == -1 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, fmt.Errorf("rasterio: %s line %d: expected %d fields, got %d", path, lineNo, width, len(fields))
		}
		for _, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("rasterio: %s line %d: %w", path, lineNo, err)
			}
			if v != int(ccl.Vb) && v != int(ccl.Vo) {
				return nil, fmt.Errorf("rasterio: %s line %d: sample %d outside {0,1}", path, lineNo, v)
			}
			samples = append(samples, byte(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("rasterio: reading %s: %w", path, err)
	}
	if width <= 0 {
		return nil, fmt.Errorf("rasterio: %s: no data rows", path)
	}

	height := len(samples) / width
	return &Raster{Width: width, Height: height, Samples: samples}, nil
}

// ToPadded builds the padded ccl.Raster a Label call expects (spec §6:
// NC x NR, tile-aligned), copying r into the top-left corner and leaving
// the pad region as background.
func (r *Raster) ToPadded(p ccl.Params) *ccl.Raster {
	out := ccl.NewRaster(p.PaddedWidth(), p.PaddedHeight())
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if v := r.At(x, y); v != ccl.Vb {
				out.Set(x, y, v)
			}
		}
	}
	return out
}
