package crt

// Config carries every parameter of a standby render. It is read-only for
// the duration of a run; the zero value is not useful, start from
// DefaultConfig and overlay a yaml file on top if one exists.
type Config struct {
	TextLines  []string         `yaml:"textLines"`
	TextColor  string           `yaml:"textColor"`
	Frames     int              `yaml:"frames"`
	FPS        int              `yaml:"fps"`
	Background BackgroundConfig `yaml:"background"`
	FX         FXConfig         `yaml:"fx"`
	Outputs    []OutputConfig   `yaml:"outputs"`
}

// BackgroundConfig describes the warmed-phosphor glow behind the text.
type BackgroundConfig struct {
	Tint     string  `yaml:"tint"`
	Strength float64 `yaml:"strength"`
}

// An OutputConfig is one animation file to produce.
type OutputConfig struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FontPx int    `yaml:"fontPx"`
	File   string `yaml:"file"`
}

// FXConfig holds the knobs for every pipeline stage.
type FXConfig struct {
	ScanlineOpacity  float64 `yaml:"scanlineOpacity"`
	BloomRadius      float64 `yaml:"bloomRadius"`
	BloomGain        float64 `yaml:"bloomGain"`
	VignetteStrength float64 `yaml:"vignetteStrength"`
	NoiseStrength    float64 `yaml:"noiseStrength"`
	TearProb         float64 `yaml:"tearProb"`
	TearMinBands     int     `yaml:"tearMinBands"`
	TearMaxBands     int     `yaml:"tearMaxBands"`
	TearShiftPx      int     `yaml:"tearShiftPx"`
	KickFrames       []int   `yaml:"kickFrames"`
	KickMinBands     int     `yaml:"kickMinBands"`
	KickMaxBands     int     `yaml:"kickMaxBands"`
	ChromaShiftPx    int     `yaml:"chromaShiftPx"`
	CurvatureK       float64 `yaml:"curvatureK"`
	FlickerMin       float64 `yaml:"flickerMin"`
	FlickerMax       float64 `yaml:"flickerMax"`
}

// FrameDelayMS is the per-frame display duration implied by the frame rate.
func (c Config) FrameDelayMS() int {
	return 1000 / c.FPS
}

// DefaultConfig returns the built-in standby screen parameters: a 4 second
// loop at 12 FPS in a Twitch banner size and a stream overlay size.
func DefaultConfig() Config {
	return Config{
		TextLines: []string{"Connecting…", "Broadcast will start momentarily"},
		TextColor: "#00ff78",
		Frames:    48,
		FPS:       12,
		Background: BackgroundConfig{
			Tint:     "#008c28",
			Strength: 0.18,
		},
		FX: FXConfig{
			ScanlineOpacity:  0.22,
			BloomRadius:      2.5,
			BloomGain:        0.75,
			VignetteStrength: 0.35,
			NoiseStrength:    0.06,
			TearProb:         0.5,
			TearMinBands:     1,
			TearMaxBands:     3,
			TearShiftPx:      16,
			KickFrames:       []int{0, 1},
			KickMinBands:     2,
			KickMaxBands:     4,
			ChromaShiftPx:    1,
			CurvatureK:       0.08,
			FlickerMin:       0.95,
			FlickerMax:       1.05,
		},
		Outputs: []OutputConfig{
			{Name: "banner", Width: 1200, Height: 480, FontPx: 52, File: "connecting_banner_1200x480.gif"},
			{Name: "overlay", Width: 1920, Height: 1080, FontPx: 84, File: "connecting_overlay_1920x1080.gif"},
		},
	}
}
