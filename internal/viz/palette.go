package viz

import "image/color"

// LabelColor derives a deterministic, visually distinct color for a global
// component id. Background (id 0) is always fully transparent so archives
// render only the labeled components. The hue is spread via a fixed golden-
// angle step so adjacent ids land far apart on the color wheel even though
// ids are assigned in raster order and are often spatially close together.
func LabelColor(id uint32) color.RGBA {
	if id == 0 {
		return color.RGBA{}
	}
	const goldenAngle = 137.50776405003785
	hue := float64(id) * goldenAngle
	hue -= float64(int64(hue/360)) * 360
	r, g, b := hsvToRGB(hue, 0.65, 0.95)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRGB converts HSV (h in [0,360), s and v in [0,1]) to 8-bit RGB.
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - abs(mod2(h/60)-1))
	m := v - c

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	return to8(rf + m), to8(gf + m), to8(bf + m)
}

func mod2(x float64) float64 {
	for x >= 2 {
		x -= 2
	}
	return x
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func to8(x float64) uint8 {
	return uint8(x * 255)
}
