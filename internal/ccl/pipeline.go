package ccl

import (
	"fmt"
	"log"
	"sync"
)

// Config holds labeling configuration independent of the raster geometry
// itself (spec §5's concurrency model).
type Config struct {
	Concurrency int // worker count for the per-tile passes; <= 0 means 1
	Verbose     bool
}

// ProgressFunc, if non-nil, is called once per completed unit of work so a
// caller can drive a progress indicator without the core importing one.
type ProgressFunc func()

// Label runs the full pipeline (C1 through C9) over raster, producing a
// dense, globally-consistent component labeling (spec §1, §4).
//
// Stage 1 (C2–C5) runs tile-parallel: each tile is independent until its
// neighbors' seams are read, so a worker pool processes all tiles with no
// synchronization beyond the final barrier, grounded on the teacher's
// Generate zoom-level worker pool (job channel, bounded goroutines, a
// buffered error channel drained after wg.Wait). Stage 2 (C6–C8) is a
// sequential global reduction: the spec requires one consistent view of
// every tile's seam before cross-tile unions are safe (§5: "tile (tx,ty)
// depends on the completed C2–C5 output of tiles (tx−1,ty) and
// (tx,ty−1)"), and the closure itself is cheap relative to I/O so
// parallelizing it is not worth the complexity. Stage 3 (C9) is tile-parallel
// again, using the same pool shape as stage 1.
func Label(raster *Raster, p Params, cfg Config, progress ProgressFunc) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	wantW, wantH := p.PaddedWidth(), p.PaddedHeight()
	if raster.W != wantW || raster.H != wantH {
		return nil, fmt.Errorf("%w: raster is %dx%d, want padded %dx%d for TX=%d TY=%d NC1=%d NR1=%d",
			ErrInvalidGeometry, raster.W, raster.H, wantW, wantH, p.TX, p.TY, p.NC1, p.NR1)
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	ntX, ntY := p.NumTilesX(), p.NumTilesY()
	tiles := make([][]*tileResult, ntY)
	for ty := range tiles {
		tiles[ty] = make([]*tileResult, ntX)
	}

	if cfg.Verbose {
		log.Printf("ccl: labeling %dx%d tile grid (tile %dx%d, %d workers)", ntX, ntY, p.TX, p.TY, concurrency)
	}

	type tileJob struct{ tx, ty int }
	jobs := make(chan tileJob, concurrency*2)
	var wg sync.WaitGroup
	errCh := make(chan error, 1)

	runPool := func(work func(tx, ty int) error) {
		for w := 0; w < concurrency; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for job := range jobs {
					if err := work(job.tx, job.ty); err != nil {
						select {
						case errCh <- err:
						default:
						}
						return
					}
					if progress != nil {
						progress()
					}
				}
			}()
		}
	}

	runPool(func(tx, ty int) error {
		tiles[ty][tx] = processTile(raster, p, tx, ty)
		return nil
	})
	for ty := 0; ty < ntY; ty++ {
		for tx := 0; tx < ntX; tx++ {
			jobs <- tileJob{tx, ty}
		}
	}
	close(jobs)
	wg.Wait()
	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	if cfg.Verbose {
		log.Printf("ccl: intra-tile pass complete, building cross-tile equivalence")
	}

	forest := buildCrossEquivalence(p, tiles)
	closeCrossEquivalence(forest)
	globalOf, g := assignGlobalIDs(forest)

	if cfg.Verbose {
		log.Printf("ccl: %d global components", g)
	}

	jobs = make(chan tileJob, concurrency*2)
	wg = sync.WaitGroup{}
	errCh = make(chan error, 1)

	runPool(func(tx, ty int) error {
		return thirdScan(tiles[ty][tx], globalOf)
	})
	for ty := 0; ty < ntY; ty++ {
		for tx := 0; tx < ntX; tx++ {
			jobs <- tileJob{tx, ty}
		}
	}
	close(jobs)
	wg.Wait()
	select {
	case err := <-errCh:
		return nil, err
	default:
	}

	return &Result{p: p, tiles: tiles, g: g}, nil
}
