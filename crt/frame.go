package crt

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// A Frame is a fixed-size grid of RGB pixels with channels in the 0..1 range.
// Pipeline stages produce new Frames rather than mutating their input.
type Frame struct {
	W, H   int
	pixels []colorful.Color
}

// NewFrame creates a black Frame of the given size.
func NewFrame(w, h int) *Frame {
	f := new(Frame)
	f.W = w
	f.H = h
	f.pixels = make([]colorful.Color, w*h)
	return f
}

// At returns the pixel at (x, y).
func (f *Frame) At(x, y int) colorful.Color {
	return f.pixels[y*f.W+x]
}

// Set replaces the pixel at (x, y).
func (f *Frame) Set(x, y int, c colorful.Color) {
	f.pixels[y*f.W+x] = c
}

// Clone makes an independent copy of the Frame.
func (f *Frame) Clone() *Frame {
	out := NewFrame(f.W, f.H)
	copy(out.pixels, f.pixels)
	return out
}

// Clamp forces every channel into the displayable 0..1 range and returns
// the Frame for chaining.
func (f *Frame) Clamp() *Frame {
	for i, p := range f.pixels {
		f.pixels[i] = p.Clamped()
	}
	return f
}

// Image converts the Frame to an 8-bit RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			r, g, b := f.At(x, y).Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// FrameFromImage converts an 8-bit image into a Frame.
func FrameFromImage(img image.Image) *Frame {
	b := img.Bounds()
	f := NewFrame(b.Dx(), b.Dy())
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c, _ := colorful.MakeColor(img.At(b.Min.X+x, b.Min.Y+y))
			f.Set(x, y, c)
		}
	}
	return f
}
