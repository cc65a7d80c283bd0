// Package input folds terminal mouse events into one pointer sample per tick
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/klondike/vmath"
)

// Sample is the pointer state consumed by every component during one tick
// Pixel is nil until the terminal reports a pointer position
type Sample struct {
	Pixel *vmath.Vec2
	Down  bool
}

// Sampler accumulates mouse events between ticks
// A press released before the next tick is still reported down for one sample
type Sampler struct {
	pixel   vmath.Vec2
	hasPos  bool
	down    bool
	latched bool
}

// NewSampler creates a sampler with no pointer position
func NewSampler() *Sampler {
	return &Sampler{}
}

// Fold consumes ev if it is a mouse event and reports whether it did
func (s *Sampler) Fold(ev tcell.Event) bool {
	mev, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}

	x, y := mev.Position()
	s.Move(x, y)
	s.Button(mev.Buttons()&tcell.Button1 != 0)
	return true
}

// Move records the pointer over terminal cell (x, y); the sample is the cell center
func (s *Sampler) Move(x, y int) {
	s.pixel = vmath.V2(float64(x)+0.5, float64(y)+0.5)
	s.hasPos = true
}

// Button records the primary button state
func (s *Sampler) Button(down bool) {
	if down && !s.down {
		s.latched = true
	}
	s.down = down
}

// Sample returns the state for this tick and clears the press latch
func (s *Sampler) Sample() Sample {
	out := Sample{Down: s.down || s.latched}
	s.latched = false
	if s.hasPos {
		p := s.pixel
		out.Pixel = &p
	}
	return out
}
