package util

import (
	"os"

	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Candidate monospace fonts, checked in order: Arch, Debian/Ubuntu, macOS,
// Windows.
var fontPaths = []string{
	"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
	"/Library/Fonts/Menlo.ttf",
	"C:/Windows/Fonts/consola.ttf",
}

// ResolveFont finds a usable monospace face at the given pixel size. When
// no system font can be read, it falls back to a bundled bitmap face rather
// than failing.
func ResolveFont(px float64) font.Face {
	for _, p := range fontPaths {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(b)
		if err != nil {
			log.WithFields(log.Fields{"path": p}).Warn("skipping unparseable font")
			continue
		}
		return truetype.NewFace(f, &truetype.Options{
			Size:    px,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	log.Warn("no system font found, using bitmap fallback")
	return basicfont.Face7x13
}
