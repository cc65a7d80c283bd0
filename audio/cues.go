package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/klondike/event"
)

// Cues plays feedback sounds for table events
// Safe to use without Initialize: playback is then a no-op
type Cues struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool

	// play hands a streamer to the output; replaced in tests
	play func(beep.Streamer)
}

// NewCues creates a cue player; a nil cfg uses DefaultConfig
func NewCues(cfg *Config) *Cues {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := &Cues{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
	c.play = c.mix
	return c
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.cfg.Enabled {
		return ErrDisabled
	}
	if c.initialized {
		return nil
	}

	rate := beep.SampleRate(c.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBufferMs)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences the mixer and releases the speaker
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Play queues cue on the mixer
func (c *Cues) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s := Synthesize(cue, c.cfg)
	if s == nil {
		return
	}
	c.play(s)
}

func (c *Cues) mix(s beep.Streamer) {
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// CueFor maps a table event to its sound
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.EventMoved:
		return CuePlace, true
	case event.EventReverted:
		return CueReject, true
	case event.EventRevealed:
		return CueFlip, true
	case event.EventDrawn:
		return CueDraw, true
	case event.EventRecycled:
		return CueRecycle, true
	case event.EventWon:
		return CueWin, true
	}
	return 0, false
}

// HandleEvent implements event.Handler
func (c *Cues) HandleEvent(ev event.GameEvent) {
	cue, ok := CueFor(ev.Type)
	if !ok {
		return
	}
	c.Play(cue)
}

// EventTypes implements event.Handler
func (c *Cues) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventMoved,
		event.EventReverted,
		event.EventRevealed,
		event.EventDrawn,
		event.EventRecycled,
		event.EventWon,
	}
}
