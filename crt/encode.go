package crt

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/setanarut/apng"
)

// EncodeGIF writes the frames as an endlessly looping GIF with a uniform
// per-frame delay. Frames are quantized onto the Plan9 palette with
// Floyd-Steinberg dithering.
func EncodeGIF(w io.Writer, frames []*Frame, delayMS int) error {
	g := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		src := f.Image()
		pal := image.NewPaletted(src.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, src.Bounds(), src, image.Point{})
		g.Image = append(g.Image, pal)
		g.Delay = append(g.Delay, delayMS/10)
	}
	return gif.EncodeAll(w, g)
}

// SaveAnimation writes the sequence to path in playback order, picking the
// container from the file extension: .png or .apng produces a looping APNG,
// anything else a looping GIF.
func SaveAnimation(path string, frames []*Frame, fps int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".apng":
		imgs := make([]image.Image, len(frames))
		for i, f := range frames {
			imgs[i] = f.Image()
		}
		return apng.Save(path, imgs, uint16(fps))
	default:
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		defer out.Close()
		return EncodeGIF(out, frames, 1000/fps)
	}
}
