// Package viz renders a ccl.Result as a colorized tile pyramid and archives
// it with the pmtiles writer, so a labeling run can be inspected visually
// instead of only as raw integer output (SPEC_FULL §11's visualization
// sink).
package viz

import (
	"fmt"
	"image"
	"log"
	"math"
	"sync"

	"github.com/giulange/tiledccl/internal/ccl"
	"github.com/giulange/tiledccl/internal/encode"
	"github.com/giulange/tiledccl/internal/pmtiles"
	"github.com/giulange/tiledccl/internal/progress"
)

// Config controls how a Result is rendered into an archive.
type Config struct {
	Format      string // "png", "jpeg", or "webp"
	Quality     int    // encoder quality, format-dependent
	Concurrency int
	Verbose     bool
}

// zoomFor picks the smallest zoom level z >= 1 whose 2^z grid covers every
// tile in an ntX x ntY grid, so ZXYToTileID(z, tx, ty) gives every tile a
// unique id. z=0 is reserved by ZXYToTileID for the single (0,0) tile, so a
// grid wider than one tile always needs z >= 1; a 1x1 grid also gets z = 1.
func zoomFor(ntX, ntY int) int {
	n := ntX
	if ntY > n {
		n = ntY
	}
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n))))
}

// Archive renders every tile of res as a colorized raster image (one pixel
// per labeled sample, background transparent) and writes the images into a
// single-zoom PMTiles v3 archive at path.
func Archive(res *ccl.Result, path string, cfg Config) error {
	enc, err := encode.NewEncoder(cfg.Format, cfg.Quality)
	if err != nil {
		return err
	}

	p := res.Params()
	ntX, ntY := p.NumTilesX(), p.NumTilesY()
	z := zoomFor(ntX, ntY)

	w, err := pmtiles.NewWriter(path, pmtiles.WriterOptions{
		MinZoom:     z,
		MaxZoom:     z,
		Bounds:      pmtiles.Bounds{MinLon: 0, MinLat: 0, MaxLon: float64(p.NC1), MaxLat: float64(p.NR1)},
		TileFormat:  enc.PMTileType(),
		TileSize:    p.TX,
		Name:        "tiledccl",
		Description: "Connected-component labels visualized as a tile pyramid",
		Type:        "overlay",
	})
	if err != nil {
		return fmt.Errorf("viz: creating archive: %w", err)
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	type job struct{ tx, ty int }
	jobs := make(chan job, concurrency*2)
	errCh := make(chan error, 1)
	var wg sync.WaitGroup

	bar := progress.New("render", "tiles", int64(ntX*ntY))
	pool := newTilePool(p.TX, p.TY)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				img := renderTile(res, p, j.tx, j.ty, pool)
				data, err := enc.Encode(img)
				pool.Put(img)
				if err != nil {
					select {
					case errCh <- fmt.Errorf("viz: encoding tile (%d,%d): %w", j.tx, j.ty, err):
					default:
					}
					return
				}
				if err := w.WriteTile(z, j.tx, j.ty, data); err != nil {
					select {
					case errCh <- fmt.Errorf("viz: writing tile (%d,%d): %w", j.tx, j.ty, err):
					default:
					}
					return
				}
				bar.Increment()
			}
		}()
	}

	for ty := 0; ty < ntY; ty++ {
		for tx := 0; tx < ntX; tx++ {
			jobs <- job{tx, ty}
		}
	}
	close(jobs)
	wg.Wait()
	bar.Finish()

	select {
	case err := <-errCh:
		w.Abort()
		return err
	default:
	}

	if cfg.Verbose {
		log.Printf("viz: writing archive to %s (zoom %d, %d tiles)", path, z, ntX*ntY)
	}

	if err := w.Finalize(); err != nil {
		return fmt.Errorf("viz: finalizing archive: %w", err)
	}
	return nil
}

// renderTile draws tile (tx, ty)'s owned sub-rectangle, so the rendered
// pyramid shows each pixel exactly once even though tiles overlap by one
// pixel in the underlying label data.
func renderTile(res *ccl.Result, p ccl.Params, tx, ty int, pool *tilePool) *image.RGBA {
	ow, oh := p.TX-1, p.TY-1
	if tx == p.NumTilesX()-1 {
		ow = (p.NC1 + 1) - tx*(p.TX-1)
	}
	if ty == p.NumTilesY()-1 {
		oh = (p.NR1 + 1) - ty*(p.TY-1)
	}
	img := pool.Get()
	ox, oy := p.TileOrigin(tx, ty)

	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			gid := res.At(ox+x, oy+y)
			c := LabelColor(gid)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}
