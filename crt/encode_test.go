package crt

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGIFRoundTrip(t *testing.T) {
	frames := []*Frame{
		uniformFrame(32, 24, 0.2),
		uniformFrame(32, 24, 0.4),
		gradientFrame(32, 24),
	}

	var buf bytes.Buffer
	require.NoError(t, EncodeGIF(&buf, frames, 83))

	g, err := gif.DecodeAll(&buf)
	require.NoError(t, err)

	assert.Len(t, g.Image, 3)
	assert.Equal(t, 0, g.LoopCount, "loop flag must mean forever")
	for _, d := range g.Delay {
		assert.Equal(t, 8, d)
	}
	for _, img := range g.Image {
		assert.Equal(t, 32, img.Bounds().Dx())
		assert.Equal(t, 24, img.Bounds().Dy())
	}
}

func TestSaveAnimationWritesGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standby.gif")
	frames := []*Frame{uniformFrame(16, 16, 0.3), uniformFrame(16, 16, 0.6)}

	require.NoError(t, SaveAnimation(path, frames, 12))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, g.Image, 2)
	assert.Equal(t, 0, g.LoopCount)
	assert.Equal(t, 8, g.Delay[0])
}

func TestSaveAnimationWritesAPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "standby.png")
	frames := []*Frame{uniformFrame(16, 16, 0.3), uniformFrame(16, 16, 0.6)}

	require.NoError(t, SaveAnimation(path, frames, 12))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
