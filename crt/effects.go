package crt

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Every stage takes a Frame and produces a Frame of the same size with all
// channels clamped to 0..1. A disabling parameter value (zero strength,
// zero shift, and so on) short-circuits and returns the input untouched.

// Bloom blends a Gaussian-blurred copy over the frame so bright areas bleed
// into their surroundings, like a warm phosphor mask.
func Bloom(f *Frame, radius, gain float64) *Frame {
	if radius <= 0 || gain <= 0 {
		return f
	}
	glow := gaussianBlur(f, radius)
	out := NewFrame(f.W, f.H)
	for i, p := range f.pixels {
		g := glow.pixels[i]
		out.pixels[i] = colorful.Color{
			R: p.R + (g.R-p.R)*gain,
			G: p.G + (g.G-p.G)*gain,
			B: p.B + (g.B-p.B)*gain,
		}
	}
	return out.Clamp()
}

// ChromaShift fringes the colour channels: red slides one way, blue the
// other, green stays put. Shifts wrap around the frame edges.
func ChromaShift(f *Frame, shiftPx int) *Frame {
	if shiftPx <= 0 {
		return f
	}
	out := NewFrame(f.W, f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			out.Set(x, y, colorful.Color{
				R: f.At(wrap(x+shiftPx, f.W), y).R,
				G: f.At(x, y).G,
				B: f.At(wrap(x-shiftPx, f.W), y).B,
			})
		}
	}
	return out.Clamp()
}

// Tearing slips a few random horizontal bands sideways to fake a vertical
// sync glitch. Bands are picked independently and may overlap; each wraps
// horizontally rather than leaving a gap.
func Tearing(f *Frame, maxShift, minBands, maxBands int, rng *rand.Rand) *Frame {
	if maxShift <= 0 {
		return f
	}
	out := f.Clone()
	bands := minBands + rng.Intn(maxBands-minBands+1)
	for n := 0; n < bands; n++ {
		hi := int(float64(f.H) * 0.06)
		if hi < 6 {
			hi = 6
		}
		th := 4 + rng.Intn(hi-4+1)
		if th > f.H {
			th = f.H
		}
		ty := rng.Intn(f.H - th + 1)
		shift := rng.Intn(2*maxShift+1) - maxShift
		shiftRows(out, ty, th, shift)
	}
	return out.Clamp()
}

// shiftRows moves a horizontal strip sideways in place with wrap-around.
func shiftRows(f *Frame, top, height, shift int) {
	if shift == 0 {
		return
	}
	row := make([]colorful.Color, f.W)
	for y := top; y < top+height; y++ {
		base := y * f.W
		for x := 0; x < f.W; x++ {
			row[wrap(x+shift, f.W)] = f.pixels[base+x]
		}
		copy(f.pixels[base:base+f.W], row)
	}
}

// Scanlines dims every odd row to suggest an interlaced raster.
func Scanlines(f *Frame, opacity float64) *Frame {
	if opacity <= 0 {
		return f
	}
	out := f.Clone()
	factor := 1 - opacity
	for y := 1; y < f.H; y += 2 {
		for x := 0; x < f.W; x++ {
			p := out.At(x, y)
			out.Set(x, y, colorful.Color{R: p.R * factor, G: p.G * factor, B: p.B * factor})
		}
	}
	return out.Clamp()
}

// Vignette darkens the frame radially toward the edges.
func Vignette(f *Frame, strength float64) *Frame {
	if strength <= 0 {
		return f
	}
	out := NewFrame(f.W, f.H)
	cx, cy := float64(f.W)/2, float64(f.H)/2
	rmax := math.Hypot(cx, cy)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			r := math.Hypot(float64(x)-cx, float64(y)-cy) / rmax
			m := 1 - strength*math.Pow(r, 1.5)
			p := f.At(x, y)
			out.Set(x, y, colorful.Color{R: p.R * m, G: p.G * m, B: p.B * m})
		}
	}
	return out.Clamp()
}

// Noise adds independent uniform grain to every channel of every pixel.
func Noise(f *Frame, strength float64, rng *rand.Rand) *Frame {
	if strength <= 0 {
		return f
	}
	out := NewFrame(f.W, f.H)
	for i, p := range f.pixels {
		out.pixels[i] = colorful.Color{
			R: p.R + uniform(rng, -strength, strength),
			G: p.G + uniform(rng, -strength, strength),
			B: p.B + uniform(rng, -strength, strength),
		}
	}
	return out.Clamp()
}

// Flicker scales the whole frame by one random brightness factor, drawn
// once per call.
func Flicker(f *Frame, low, high float64, rng *rand.Rand) *Frame {
	factor := uniform(rng, low, high)
	out := NewFrame(f.W, f.H)
	for i, p := range f.pixels {
		out.pixels[i] = colorful.Color{R: p.R * factor, G: p.G * factor, B: p.B * factor}
	}
	return out.Clamp()
}

// BarrelDistort resamples the frame through a curved-glass lens mapping.
// Each destination pixel pulls from the source at d / (1 + k*r^2) in
// centre-normalized coordinates, nearest neighbour, clamped at the edges
// so the distortion never introduces black borders.
func BarrelDistort(f *Frame, k float64) *Frame {
	if k <= 0 {
		return f
	}
	out := NewFrame(f.W, f.H)
	cx, cy := float64(f.W-1)/2, float64(f.H-1)/2
	for y := 0; y < f.H; y++ {
		ny := (float64(y) - cy) / cy
		for x := 0; x < f.W; x++ {
			nx := (float64(x) - cx) / cx
			factor := 1 + k*(nx*nx+ny*ny)
			sx := clampInt(int(math.Round(nx/factor*cx+cx)), 0, f.W-1)
			sy := clampInt(int(math.Round(ny/factor*cy+cy)), 0, f.H-1)
			out.Set(x, y, f.At(sx, sy))
		}
	}
	return out.Clamp()
}

// gaussianBlur runs a separable two-pass blur with sigma = radius and a
// kernel extent of ceil(3*sigma), clamping samples at the frame edges.
func gaussianBlur(f *Frame, sigma float64) *Frame {
	k := gaussianKernel(sigma)
	extent := len(k) / 2

	horiz := NewFrame(f.W, f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			var r, g, b float64
			for i, w := range k {
				p := f.At(clampInt(x+i-extent, 0, f.W-1), y)
				r += p.R * w
				g += p.G * w
				b += p.B * w
			}
			horiz.Set(x, y, colorful.Color{R: r, G: g, B: b})
		}
	}

	out := NewFrame(f.W, f.H)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			var r, g, b float64
			for i, w := range k {
				p := horiz.At(x, clampInt(y+i-extent, 0, f.H-1))
				r += p.R * w
				g += p.G * w
				b += p.B * w
			}
			out.Set(x, y, colorful.Color{R: r, G: g, B: b})
		}
	}
	return out
}

func gaussianKernel(sigma float64) []float64 {
	extent := int(math.Ceil(sigma * 3))
	if extent < 1 {
		extent = 1
	}
	k := make([]float64, 2*extent+1)
	sum := 0.0
	for i := range k {
		d := float64(i - extent)
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

func wrap(x, w int) int {
	x %= w
	if x < 0 {
		x += w
	}
	return x
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
