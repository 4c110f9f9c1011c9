package math

import "math"

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Mix returns a*(1-t) + b*t, the GLSL mix.
func Mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Mix64 is Mix for float64.
func Mix64(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// Fract returns x - floor(x), always in [0, 1).
func Fract(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		// x a hair below an integer rounds up to exactly 1.
		return math.Nextafter(1, 0)
	}
	return f
}

// Smoothstep01 applies the cubic Hermite curve u*u*(3-2u) to u in [0, 1].
func Smoothstep01(u float64) float64 {
	return u * u * (3 - 2*u)
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Pow is float32 math.Pow.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
