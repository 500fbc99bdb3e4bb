package main

import (
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/crtgen/crt"
	"github.com/matt-g-everett/crtgen/util"
)

// An optional config file next to the binary overrides the built-in
// defaults. There are deliberately no flags or environment variables.
const configPath = "crtgen.yaml"

type app struct {
	Config crt.Config
}

func newApp() *app {
	a := new(app)
	a.Config = crt.DefaultConfig()
	return a
}

// readConfig overlays the yaml file on the defaults when it exists.
func (a *app) readConfig(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err = decoder.Decode(&a.Config); err != nil {
		log.WithError(err).WithField("path", path).Fatal("Bad config file")
	}
	log.WithField("path", path).Info("Config loaded")
}

func (a *app) run(rng *rand.Rand) {
	for _, out := range a.Config.Outputs {
		face := util.ResolveFont(float64(out.FontPx))
		r := crt.NewRenderer(a.Config, out, face, rng)
		frames := r.RenderSequence()
		if err := crt.SaveAnimation(out.File, frames, a.Config.FPS); err != nil {
			log.WithError(err).WithField("file", out.File).Fatal("Encode failed")
		}
		log.WithFields(log.Fields{
			"file":   out.File,
			"frames": len(frames),
			"fps":    a.Config.FPS,
		}).Info("Done")
	}
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UTC().UnixNano()))

	a := newApp()
	a.readConfig(configPath)
	a.run(rng)
}
