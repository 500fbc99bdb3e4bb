package crt

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

// A Renderer produces the frame sequence for one output size. The random
// source is injected so tests can seed it; no other state crosses frames.
type Renderer struct {
	cfg        Config
	out        OutputConfig
	face       font.Face
	rng        *rand.Rand
	textColour colorful.Color
	tint       colorful.Color
	kick       map[int]bool
}

// NewRenderer creates an instance of a Renderer.
func NewRenderer(cfg Config, out OutputConfig, face font.Face, rng *rand.Rand) *Renderer {
	r := new(Renderer)
	r.cfg = cfg
	r.out = out
	r.face = face
	r.rng = rng
	r.textColour, _ = colorful.Hex(cfg.TextColor)
	r.tint, _ = colorful.Hex(cfg.Background.Tint)
	r.kick = make(map[int]bool)
	for _, i := range cfg.FX.KickFrames {
		r.kick[i] = true
	}
	return r
}

// CalculateFrame renders the fully effected frame at index i. Frames in the
// kick set always get the strong chroma-shift-plus-tearing treatment; every
// other frame tears probabilistically at half strength.
func (r *Renderer) CalculateFrame(i int) *Frame {
	fx := r.cfg.FX
	lineSpacing := int(float64(r.out.FontPx) * 0.45)

	f := RenderBackground(r.out.Width, r.out.Height, r.tint, r.cfg.Background.Strength)
	f = CompositeText(f, r.cfg.TextLines, r.face, lineSpacing, r.textColour)
	f = Bloom(f, fx.BloomRadius, fx.BloomGain)

	if r.kick[i] {
		f = ChromaShift(f, fx.ChromaShiftPx)
		f = Tearing(f, fx.TearShiftPx, fx.KickMinBands, fx.KickMaxBands, r.rng)
	} else if r.rng.Float64() < fx.TearProb {
		f = Tearing(f, fx.TearShiftPx/2, fx.TearMinBands, fx.TearMaxBands, r.rng)
	}

	f = Scanlines(f, fx.ScanlineOpacity)
	f = Vignette(f, fx.VignetteStrength)
	f = Noise(f, fx.NoiseStrength, r.rng)
	f = Flicker(f, fx.FlickerMin, fx.FlickerMax, r.rng)
	f = BarrelDistort(f, fx.CurvatureK)
	return f
}

// RenderSequence renders the whole loop in playback order.
func (r *Renderer) RenderSequence() []*Frame {
	frames := make([]*Frame, 0, r.cfg.Frames)
	for i := 0; i < r.cfg.Frames; i++ {
		frames = append(frames, r.CalculateFrame(i))
	}
	log.WithFields(log.Fields{
		"output": r.out.Name,
		"frames": len(frames),
		"size":   []int{r.out.Width, r.out.Height},
	}).Debug("sequence rendered")
	return frames
}
