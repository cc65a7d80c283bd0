package hittest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/klondike/vmath"
)

func rect(ref string, x, y, depth float64) Candidate[string] {
	return Candidate[string]{
		Ref:         ref,
		Transform:   vmath.Translate(x, y),
		HalfExtents: vmath.V2(3, 2),
		Depth:       depth,
	}
}

func TestPickPrefersGreatestDepth(t *testing.T) {
	back := rect("back", 10, 10, 1)
	front := rect("front", 11, 10, 5)
	p := vmath.V2(11, 10)

	got, ok := Pick(p, []Candidate[string]{back, front})
	require.True(t, ok)
	assert.Equal(t, "front", got)

	got, ok = Pick(p, []Candidate[string]{front, back})
	require.True(t, ok)
	assert.Equal(t, "front", got, "iteration order must not matter")
}

func TestPickTieIsStable(t *testing.T) {
	a := rect("a", 10, 10, 2)
	b := rect("b", 10, 10, 2)
	p := vmath.V2(10, 10)

	for i := 0; i < 10; i++ {
		got, _ := Pick(p, []Candidate[string]{a, b})
		assert.Equal(t, "a", got)
	}
}

func TestPickMiss(t *testing.T) {
	_, ok := Pick(vmath.V2(100, 100), []Candidate[string]{rect("a", 0, 0, 1)})
	assert.False(t, ok)

	_, ok = Pick[string](vmath.V2(0, 0), nil)
	assert.False(t, ok)
}

func TestPickHonorsRotationAndScale(t *testing.T) {
	// 6x4 rectangle rotated a quarter turn becomes 4 wide and 6 tall
	rotated := Candidate[string]{
		Ref:         "rotated",
		Transform:   vmath.TRS(vmath.V2(0, 0), math.Pi/2, vmath.V2(1, 1)),
		HalfExtents: vmath.V2(3, 2),
		Depth:       1,
	}
	_, ok := Pick(vmath.V2(0, 2.5), []Candidate[string]{rotated})
	assert.True(t, ok)
	_, ok = Pick(vmath.V2(2.5, 0), []Candidate[string]{rotated})
	assert.False(t, ok, "translation-only test would accept this point")

	scaled := Candidate[string]{
		Ref:         "scaled",
		Transform:   vmath.TRS(vmath.V2(0, 0), 0, vmath.V2(0.5, 0.5)),
		HalfExtents: vmath.V2(3, 2),
	}
	_, ok = Pick(vmath.V2(2, 0), []Candidate[string]{scaled})
	assert.False(t, ok)
	_, ok = Pick(vmath.V2(1.4, 0.9), []Candidate[string]{scaled})
	assert.True(t, ok)
}

func TestPickFilteredExcludes(t *testing.T) {
	under := rect("under", 10, 10, 1)
	dragged := rect("dragged", 10, 10, 9)
	p := vmath.V2(10, 10)

	got, ok := PickFiltered(p, []Candidate[string]{under, dragged}, func(r string) bool { return r != "dragged" })
	require.True(t, ok)
	assert.Equal(t, "under", got)
}

func TestScreenToWorld(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24}
	cam := &Camera{Position: vmath.V2(40, 12), Zoom: vmath.V2(1, 1)}

	px := vmath.V2(40, 12)
	w, ok := ScreenToWorld(&px, cam, vp)
	require.True(t, ok)
	assert.True(t, vmath.V2Near(vmath.V2(40, 12), w, 1e-9))

	// Two pixels per world unit horizontally
	cam.Zoom = vmath.V2(2, 1)
	px = vmath.V2(60, 12)
	w, ok = ScreenToWorld(&px, cam, vp)
	require.True(t, ok)
	assert.True(t, vmath.V2Near(vmath.V2(50, 12), w, 1e-9), "got %v", w)

	back := cam.WorldToScreen(w, vp)
	assert.True(t, vmath.V2Near(px, back, 1e-9))
}

func TestScreenToWorldMissingInputs(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24}
	px := vmath.V2(1, 1)

	_, ok := ScreenToWorld(&px, nil, vp)
	assert.False(t, ok, "no camera")
	_, ok = ScreenToWorld(nil, NewCamera(vmath.V2(0, 0), 1), vp)
	assert.False(t, ok, "no pointer sample")
	_, ok = ScreenToWorld(&px, &Camera{}, vp)
	assert.False(t, ok, "zero zoom is degenerate")
}
