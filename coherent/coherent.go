package coherent

import "math"

// latticeFold is 2³⁰; coordinates at or beyond ±latticeFold are folded
// back by MakeInt32Range so that lattice indices stay inside int32.
const latticeFold = 1073741824.0

// gradients holds the fixed unit-cube edge vectors a lattice corner's
// gradient is drawn from. Sixteen entries so selection is a cheap mask;
// the last four repeat members of the regular twelve.
var gradients = [16][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 1, 0}, {-1, 1, 0}, {0, -1, 1}, {0, -1, -1},
}

// latticeHash mixes a lattice corner and seed into 64 pseudo-random
// bits, SplitMix64-style. Stable across runs for identical inputs.
func latticeHash(ix, iy, iz, seed int64) uint64 {
	v := uint64(ix)*0x9E3779B97F4A7C15 +
		uint64(iy)*0x517CC1B727220A95 +
		uint64(iz)*0x6C62272E07BB0142 +
		uint64(seed)*0xD6E8FEB86659FD93
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB

	return v ^ (v >> 31)
}

// gradientDot returns the contribution of the lattice corner
// (ix, iy, iz): its hashed gradient dotted with the offset from the
// corner to the query point.
func gradientDot(ix, iy, iz, seed int64, dx, dy, dz float64) float64 {
	g := gradients[latticeHash(ix, iy, iz, seed)&15]

	return g[0]*dx + g[1]*dy + g[2]*dz
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// sCurve3 is the cubic fade 3t² - 2t³.
func sCurve3(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// sCurve5 is the quintic fade 6t⁵ - 15t⁴ + 10t³.
func sCurve5(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

// GradientCoherent3D samples gradient-coherent noise at (x, y, z) for
// the given seed and quality. Output is smooth over space, zero-mean,
// and lies in roughly [-1, 1].
//
// Callers feeding coordinates of unbounded magnitude should pass them
// through MakeInt32Range first; the lattice is indexed in int32 space.
func GradientCoherent3D(x, y, z float64, seed int64, q Quality) float64 {
	x0 := int64(math.Floor(x))
	y0 := int64(math.Floor(y))
	z0 := int64(math.Floor(z))
	x1, y1, z1 := x0+1, y0+1, z0+1

	// Offsets of the query point within its unit cube.
	fx := x - float64(x0)
	fy := y - float64(y0)
	fz := z - float64(z0)

	// Interpolation weights per quality curve.
	var xs, ys, zs float64
	switch q {
	case Fast:
		xs, ys, zs = fx, fy, fz
	case Best:
		xs, ys, zs = sCurve5(fx), sCurve5(fy), sCurve5(fz)
	default:
		xs, ys, zs = sCurve3(fx), sCurve3(fy), sCurve3(fz)
	}

	// Eight corner contributions, trilinearly blended.
	n000 := gradientDot(x0, y0, z0, seed, fx, fy, fz)
	n100 := gradientDot(x1, y0, z0, seed, fx-1, fy, fz)
	n010 := gradientDot(x0, y1, z0, seed, fx, fy-1, fz)
	n110 := gradientDot(x1, y1, z0, seed, fx-1, fy-1, fz)
	n001 := gradientDot(x0, y0, z1, seed, fx, fy, fz-1)
	n101 := gradientDot(x1, y0, z1, seed, fx-1, fy, fz-1)
	n011 := gradientDot(x0, y1, z1, seed, fx, fy-1, fz-1)
	n111 := gradientDot(x1, y1, z1, seed, fx-1, fy-1, fz-1)

	ix0 := lerp(n000, n100, xs)
	ix1 := lerp(n010, n110, xs)
	ix2 := lerp(n001, n101, xs)
	ix3 := lerp(n011, n111, xs)
	iy0 := lerp(ix0, ix1, ys)
	iy1 := lerp(ix2, ix3, ys)

	return lerp(iy0, iy1, zs)
}

// MakeInt32Range folds n into the coordinate range the lattice can
// index. Values inside (−2³⁰, 2³⁰) pass through unchanged; beyond that
// the coordinate wraps:
//
//	n ≥ 2³⁰:  2·mod(n, 2³⁰) − 2³⁰
//	n ≤ −2³⁰: 2·mod(n, 2³⁰) + 2³⁰
func MakeInt32Range(n float64) float64 {
	if n >= latticeFold {
		return 2.0*math.Mod(n, latticeFold) - latticeFold
	}
	if n <= -latticeFold {
		return 2.0*math.Mod(n, latticeFold) + latticeFold
	}

	return n
}
