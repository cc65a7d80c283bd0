package audio

import (
	"errors"
	"time"

	"github.com/lixenwraith/klondike/config"
)

// Cue is a short feedback sound bound to a table event
type Cue int

const (
	CuePlace   Cue = iota // Card committed to a pile
	CueReject             // Drop reverted
	CueFlip               // Tableau card revealed
	CueDraw               // Stock to waste
	CueRecycle            // Waste back to stock
	CueWin                // All foundations complete
	cueCount
)

var cueNames = [cueCount]string{"place", "reject", "flip", "draw", "recycle", "win"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cue durations
const (
	placeDuration   = 60 * time.Millisecond
	rejectDuration  = 140 * time.Millisecond
	flipDuration    = 80 * time.Millisecond
	drawDuration    = 40 * time.Millisecond
	recycleNote     = 50 * time.Millisecond
	winNote         = 110 * time.Millisecond
	cueAttack       = 4 * time.Millisecond
	cueRelease      = 30 * time.Millisecond
	speakerBufferMs = 100 * time.Millisecond
)

// Sentinel errors
var (
	ErrDisabled = errors.New("audio disabled")
)

// Config holds mixer settings; volumes are 0.0-1.0
type Config struct {
	Enabled      bool
	MasterVolume float64
	CueVolumes   [cueCount]float64
	SampleRate   int
}

// DefaultConfig returns full cue volumes at half master volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1.0
	}
	return cfg
}

// FromConfig maps runtime settings onto the mixer config
// Unknown names in cfg.CueVolumes are ignored
func FromConfig(cfg *config.Config) *Config {
	out := DefaultConfig()
	out.Enabled = cfg.AudioEnabled
	out.MasterVolume = cfg.MasterVolume
	if cfg.SampleRate > 0 {
		out.SampleRate = cfg.SampleRate
	}
	for i, name := range cueNames {
		if v, ok := cfg.CueVolumes[name]; ok {
			out.CueVolumes[i] = v
		}
	}
	return out
}
