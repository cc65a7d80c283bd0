// Package hittest resolves a world point to the frontmost sprite under it
package hittest

import "github.com/lixenwraith/klondike/vmath"

// Candidate is one displayed sprite offered to Pick
// HalfExtents describe a rectangle centered on the local origin, mapped through Transform
type Candidate[R any] struct {
	Ref         R
	Transform   vmath.Affine
	HalfExtents vmath.Vec2
	Depth       float64
}

// Contains reports whether the world point falls inside the candidate's transformed rectangle
func (c Candidate[R]) Contains(p vmath.Vec2) bool {
	return vmath.TransformedRectContains(c.Transform, c.HalfExtents, p)
}

// Pick returns the greatest-depth candidate containing p
// Equal depths keep the earliest candidate, so identical input always gives the same answer
func Pick[R any](p vmath.Vec2, candidates []Candidate[R]) (R, bool) {
	return PickFiltered(p, candidates, nil)
}

// PickFiltered is Pick restricted to refs accepted by keep; a nil keep accepts all
func PickFiltered[R any](p vmath.Vec2, candidates []Candidate[R], keep func(R) bool) (R, bool) {
	var top R
	found := false
	var maxDepth float64

	for i := range candidates {
		c := &candidates[i]
		if keep != nil && !keep(c.Ref) {
			continue
		}
		if !c.Contains(p) {
			continue
		}
		if !found || c.Depth > maxDepth {
			top = c.Ref
			maxDepth = c.Depth
			found = true
		}
	}
	return top, found
}
