package crt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Len(t, cfg.TextLines, 2)
	assert.Equal(t, 48, cfg.Frames)
	assert.Equal(t, 12, cfg.FPS)
	assert.Equal(t, 83, cfg.FrameDelayMS())
	assert.Equal(t, []int{0, 1}, cfg.FX.KickFrames)

	require.Len(t, cfg.Outputs, 2)
	assert.Equal(t, 1200, cfg.Outputs[0].Width)
	assert.Equal(t, 480, cfg.Outputs[0].Height)
	assert.Equal(t, 1920, cfg.Outputs[1].Width)
	assert.Equal(t, 1080, cfg.Outputs[1].Height)
	assert.Greater(t, cfg.Outputs[1].FontPx, cfg.Outputs[0].FontPx)
}

func TestConfigOverlayKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	doc := []byte("fps: 24\nfx:\n  tearProb: 0\n  curvatureK: 0.12\n")
	require.NoError(t, yaml.Unmarshal(doc, &cfg))

	// Overridden values.
	assert.Equal(t, 24, cfg.FPS)
	assert.Equal(t, 0.0, cfg.FX.TearProb)
	assert.Equal(t, 0.12, cfg.FX.CurvatureK)

	// Everything the document does not mention keeps its default.
	assert.Equal(t, 48, cfg.Frames)
	assert.Equal(t, 0.22, cfg.FX.ScanlineOpacity)
	assert.Equal(t, "#00ff78", cfg.TextColor)
	assert.Len(t, cfg.Outputs, 2)
}
