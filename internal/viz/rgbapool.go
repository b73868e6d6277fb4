package viz

import (
	"image"
	"sync"
)

// tilePool recycles *image.RGBA buffers for a single fixed tile size.
// Unlike a GeoTIFF pyramid, which renders a different physical tile size per
// zoom level, Archive renders every tile of a run at the same p.TX x p.TY
// dimensions, so a size-keyed map of pools is unnecessary generality; one
// sync.Pool scoped to that one size is enough.
type tilePool struct {
	w, h int
	pool sync.Pool
}

func newTilePool(w, h int) *tilePool {
	return &tilePool{w: w, h: h}
}

// Get returns a zeroed *image.RGBA with Rect (0,0)-(w,h), or allocates a new one.
func (tp *tilePool) Get() *image.RGBA {
	if v := tp.pool.Get(); v != nil {
		img := v.(*image.RGBA)
		clear(img.Pix)
		return img
	}
	return image.NewRGBA(image.Rect(0, 0, tp.w, tp.h))
}

// Put returns an *image.RGBA to the pool for reuse. Nil images are ignored.
func (tp *tilePool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	tp.pool.Put(img)
}
