package crt

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestRenderBackgroundGlow(t *testing.T) {
	tint, err := colorful.Hex("#008c28")
	require.NoError(t, err)

	f := RenderBackground(64, 48, tint, 0.18)
	assert.Equal(t, 64, f.W)
	assert.Equal(t, 48, f.H)
	assert.True(t, inRange(f))

	centre := f.At(32, 24)
	assert.Greater(t, centre.G, 0.0)
	assert.Greater(t, centre.G, f.At(2, 2).G)
	assert.Greater(t, centre.G, f.At(62, 24).G)

	// The far corner sits at the normalization radius, so the glow dies
	// out completely there.
	assert.Equal(t, colorful.Color{}, f.At(0, 0))
}

func TestRenderBackgroundZeroStrengthIsBlack(t *testing.T) {
	tint, _ := colorful.Hex("#008c28")
	f := RenderBackground(16, 16, tint, 0)
	for _, want := range []colorful.Color{f.At(0, 0), f.At(8, 8), f.At(15, 15)} {
		assert.Equal(t, colorful.Color{}, want)
	}
}

func TestLayoutTextBlockCentres(t *testing.T) {
	face := basicfont.Face7x13
	lines := []string{"abc", "abcdefgh"}
	const w, h, spacing = 200, 100, 6

	origins := LayoutTextBlock(face, lines, w, h, spacing)
	require.Len(t, origins, 2)

	// The shorter line starts further right; both are centred.
	assert.Greater(t, origins[0].X, origins[1].X)
	for i, line := range lines {
		box, _ := font.BoundString(face, line)
		width := (box.Max.X - box.Min.X).Ceil()
		assert.Equal(t, (w-width)/2, origins[i].X)
	}

	// The second line sits one line height plus spacing below the first.
	box0, _ := font.BoundString(face, lines[0])
	assert.Equal(t, origins[0].Y+(box0.Max.Y-box0.Min.Y).Ceil()+spacing, origins[1].Y)
	assert.Greater(t, origins[0].Y, 0)
	assert.Less(t, origins[1].Y, h)
}

func TestCompositeTextDrawsInk(t *testing.T) {
	bg := NewFrame(120, 60)
	col, _ := colorful.Hex("#00ff78")
	out := CompositeText(bg, []string{"HELLO", "WORLD"}, basicfont.Face7x13, 5, col)

	assert.Equal(t, bg.W, out.W)
	assert.Equal(t, bg.H, out.H)

	inked := 0
	for _, p := range out.pixels {
		if p.G > 0.9 {
			inked++
		}
	}
	assert.Greater(t, inked, 20)

	// Corners stay background-black.
	assert.Equal(t, colorful.Color{}, out.At(0, 0))
	assert.Equal(t, colorful.Color{}, out.At(119, 59))
}
