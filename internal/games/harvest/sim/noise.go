package sim

import "math"

// valueNoise is a seeded 2D value-noise field: random values on an integer
// lattice, smoothly interpolated between lattice points. Sampling is pure,
// so the same seed and coordinates always give the same value.
type valueNoise struct {
	seed  uint64
	scale float64 // lattice spacing in cells
}

func newValueNoise(seed int64, scale float64) valueNoise {
	if scale <= 0 {
		scale = 1
	}
	return valueNoise{seed: uint64(seed), scale: scale}
}

// At returns the noise value in [0, 1) at cell (x, y).
func (n valueNoise) At(x, y int) float64 {
	fx := float64(x) / n.scale
	fy := float64(y) / n.scale
	x0 := math.Floor(fx)
	y0 := math.Floor(fy)
	tx := smoothstep(fx - x0)
	ty := smoothstep(fy - y0)

	ix, iy := int64(x0), int64(y0)
	v00 := n.lattice(ix, iy)
	v10 := n.lattice(ix+1, iy)
	v01 := n.lattice(ix, iy+1)
	v11 := n.lattice(ix+1, iy+1)

	top := lerp(v00, v10, tx)
	bottom := lerp(v01, v11, tx)
	v := lerp(top, bottom, ty)
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}
	return v
}

// lattice hashes an integer lattice point to [0, 1).
func (n valueNoise) lattice(x, y int64) float64 {
	h := n.seed ^ 0x9e3779b97f4a7c15
	h ^= uint64(x) * 0xbf58476d1ce4e5b9
	h = mix64(h)
	h ^= uint64(y) * 0x94d049bb133111eb
	h = mix64(h)
	return float64(h>>11) / float64(1<<53)
}

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
