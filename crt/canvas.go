package crt

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Exponent of the radial glow falloff. The vignette uses a gentler curve.
const glowExponent = 1.8

// RenderBackground produces a black frame warmed by a radial phosphor glow,
// brightest at the centre and fading to nothing at the corners. The radius
// is normalized against the maximum corner distance, so the glow scales
// with any canvas size.
func RenderBackground(w, h int, tint colorful.Color, strength float64) *Frame {
	f := NewFrame(w, h)
	if strength <= 0 {
		return f
	}
	cx, cy := float64(w)/2, float64(h)/2
	rmax := math.Hypot(cx, cy)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := math.Hypot(float64(x)-cx, float64(y)-cy) / rmax
			mask := (1 - math.Pow(r, glowExponent)) * strength
			f.Set(x, y, colorful.Color{R: tint.R * mask, G: tint.G * mask, B: tint.B * mask})
		}
	}
	return f.Clamp()
}

// LayoutTextBlock computes the top-left origin of each line when the lines
// are stacked as a vertically centred block. Every line is centred
// horizontally on its own, so lines of different widths stay symmetric.
func LayoutTextBlock(face font.Face, lines []string, w, h, lineSpacing int) []image.Point {
	boxes := make([]fixed.Rectangle26_6, len(lines))
	total := lineSpacing * (len(lines) - 1)
	for i, line := range lines {
		boxes[i], _ = font.BoundString(face, line)
		total += (boxes[i].Max.Y - boxes[i].Min.Y).Ceil()
	}

	origins := make([]image.Point, len(lines))
	y := (h - total) / 2
	for i, b := range boxes {
		width := (b.Max.X - b.Min.X).Ceil()
		origins[i] = image.Point{X: (w - width) / 2, Y: y}
		y += (b.Max.Y - b.Min.Y).Ceil() + lineSpacing
	}
	return origins
}

// CompositeText draws the text block onto the background in a single flat
// colour and returns the combined frame.
func CompositeText(bg *Frame, lines []string, face font.Face, lineSpacing int, col colorful.Color) *Frame {
	r, g, b := col.Clamped().RGB255()
	img := bg.Image()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 0xff}),
		Face: face,
	}

	origins := LayoutTextBlock(face, lines, bg.W, bg.H, lineSpacing)
	for i, line := range lines {
		// The origin is the top-left of the ink box; the drawer wants the
		// baseline dot, so back out the box offset.
		box, _ := font.BoundString(face, line)
		d.Dot = fixed.Point26_6{
			X: fixed.I(origins[i].X) - box.Min.X,
			Y: fixed.I(origins[i].Y) - box.Min.Y,
		}
		d.DrawString(line)
	}
	return FrameFromImage(img)
}
