package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/klondike/vmath"
)

func TestSampleBeforeAnyEvent(t *testing.T) {
	s := NewSampler()
	got := s.Sample()
	assert.Nil(t, got.Pixel)
	assert.False(t, got.Down)
}

func TestFoldMouseEvents(t *testing.T) {
	s := NewSampler()

	assert.False(t, s.Fold(tcell.NewEventResize(80, 24)))
	require.True(t, s.Fold(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone)))

	got := s.Sample()
	require.NotNil(t, got.Pixel)
	assert.Equal(t, vmath.V2(4.5, 2.5), *got.Pixel)
	assert.True(t, got.Down)

	// Motion while held keeps the button down and tracks the latest cell
	s.Fold(tcell.NewEventMouse(6, 3, tcell.Button1, tcell.ModNone))
	s.Fold(tcell.NewEventMouse(7, 3, tcell.Button1, tcell.ModNone))
	got = s.Sample()
	assert.Equal(t, vmath.V2(7.5, 3.5), *got.Pixel)
	assert.True(t, got.Down)

	s.Fold(tcell.NewEventMouse(7, 3, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, s.Sample().Down)
}

func TestShortClickSpansTwoSamples(t *testing.T) {
	s := NewSampler()

	s.Fold(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	s.Fold(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))

	assert.True(t, s.Sample().Down, "press is latched for one tick")
	assert.False(t, s.Sample().Down)
}

func TestSamplePixelIsCopied(t *testing.T) {
	s := NewSampler()
	s.Move(2, 2)
	first := s.Sample()
	s.Move(9, 9)
	assert.Equal(t, vmath.V2(2.5, 2.5), *first.Pixel)
}
