package board

// reveal recomputes the reveal boundary of a tableau column after its top changed
// The new top becomes face-up; every other card keeps its state
func (b *Board) reveal(col int) (Reveal, bool) {
	column := b.tableau[col]
	if len(column) == 0 {
		b.boundary[col] = 0
		return Reveal{}, false
	}

	top := len(column) - 1
	if b.boundary[col] < 0 {
		b.boundary[col] = 0
	}
	if b.boundary[col] <= top {
		return Reveal{}, false
	}

	b.boundary[col] = top
	return Reveal{Pile: Tableau(col), Index: top, Card: column[top]}, true
}
