// Package layout places piles and cards in world space
// Sprites are render artifacts keyed by (pile, index); the board knows nothing about them
package layout

import (
	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/card"
	"github.com/lixenwraith/klondike/hittest"
	"github.com/lixenwraith/klondike/vmath"
)

// AnchorIndex marks the empty-slot sprite of a pile
const AnchorIndex = -1

// Depth bands; a card's depth is DepthCard plus its index in the pile
const (
	DepthAnchor = 0
	DepthCard   = 1
	DepthDrag   = 1000
)

// Ref addresses one sprite
type Ref struct {
	Pile  board.PileID
	Index int
}

// AnchorRef returns the slot sprite ref of a pile
func AnchorRef(p board.PileID) Ref { return Ref{Pile: p, Index: AnchorIndex} }

// IsAnchor reports whether the ref is a pile slot rather than a card
func (r Ref) IsAnchor() bool { return r.Index == AnchorIndex }

// Sprite is one drawable with its hit geometry
type Sprite struct {
	Ref       Ref
	Card      card.Card
	HasCard   bool
	FaceUp    bool
	Transform vmath.Affine
	Depth     float64
}

// Center returns the world position of the sprite's center
func (s Sprite) Center() vmath.Vec2 {
	return s.Transform.Translation()
}

// Layout holds the table geometry in world units
type Layout struct {
	Origin   vmath.Vec2 // top-left corner of the table
	CardSize vmath.Vec2
	Pitch    float64 // horizontal distance between pile centers
	RowGap   float64 // vertical gap between the top row and the tableau
	FanDown  float64 // tableau offset below a face-down card
	FanUp    float64 // tableau offset below a face-up card
}

// Default returns the terminal table: 7x5 cards on a 9 unit pitch
func Default() *Layout {
	return &Layout{
		Origin:   vmath.V2(1, 1),
		CardSize: vmath.V2(7, 5),
		Pitch:    9,
		RowGap:   1,
		FanDown:  1,
		FanUp:    2,
	}
}

// HalfExtents returns half the card size
func (l *Layout) HalfExtents() vmath.Vec2 {
	return vmath.V2Scale(l.CardSize, 0.5)
}

// Size returns the world size of the table when the longest column fans out by rows
func (l *Layout) Size(rows int) vmath.Vec2 {
	w := l.Pitch*float64(board.TableauCount-1) + l.CardSize.X
	h := 2*l.CardSize.Y + l.RowGap + l.FanUp*float64(rows)
	return vmath.V2(w, h)
}

// Anchor returns the center of a pile's slot
// Top row: stock, waste, gap, four foundations; tableau columns below
func (l *Layout) Anchor(p board.PileID) vmath.Vec2 {
	half := l.HalfExtents()
	topY := l.Origin.Y + half.Y
	col := 0
	y := topY

	switch p.Kind {
	case board.KindStock:
		col = 0
	case board.KindWaste:
		col = 1
	case board.KindFoundation:
		col = 3 + p.Index
	case board.KindTableau:
		col = p.Index
		y = topY + l.CardSize.Y + l.RowGap
	}
	return vmath.V2(l.Origin.X+half.X+float64(col)*l.Pitch, y)
}

// Position returns the resting center of the card at index of pile
func (l *Layout) Position(b *board.Board, p board.PileID, index int) vmath.Vec2 {
	anchor := l.Anchor(p)
	if p.Kind != board.KindTableau || index <= 0 {
		return anchor
	}

	offset := 0.0
	for i := 0; i < index; i++ {
		if b.FaceUp(p, i) {
			offset += l.FanUp
		} else {
			offset += l.FanDown
		}
	}
	return vmath.V2(anchor.X, anchor.Y+offset)
}

func (l *Layout) transform(pos vmath.Vec2) vmath.Affine {
	return vmath.Translate(pos.X, pos.Y)
}

// Sprites returns every anchor and card sprite in draw order
func (l *Layout) Sprites(b *board.Board) []Sprite {
	sprites := make([]Sprite, 0, card.DeckSize+13)
	for _, p := range board.AllPiles() {
		sprites = append(sprites, Sprite{
			Ref:       AnchorRef(p),
			Transform: l.transform(l.Anchor(p)),
			Depth:     DepthAnchor,
		})
		for i, c := range b.Cards(p) {
			sprites = append(sprites, Sprite{
				Ref:       Ref{Pile: p, Index: i},
				Card:      c,
				HasCard:   true,
				FaceUp:    b.FaceUp(p, i),
				Transform: l.transform(l.Position(b, p, i)),
				Depth:     float64(DepthCard + i),
			})
		}
	}
	return sprites
}

// Override moves the sprite ref to pos and lifts it above everything else
func Override(sprites []Sprite, ref Ref, pos vmath.Vec2) {
	for i := range sprites {
		if sprites[i].Ref == ref {
			sprites[i].Transform = vmath.Translate(pos.X, pos.Y)
			sprites[i].Depth = DepthDrag
			return
		}
	}
}

// Candidates turns sprites into hit-test candidates
func (l *Layout) Candidates(sprites []Sprite) []hittest.Candidate[Ref] {
	half := l.HalfExtents()
	out := make([]hittest.Candidate[Ref], len(sprites))
	for i, s := range sprites {
		out[i] = hittest.Candidate[Ref]{
			Ref:         s.Ref,
			Transform:   s.Transform,
			HalfExtents: half,
			Depth:       s.Depth,
		}
	}
	return out
}

// PickupCandidates returns the face-up top card of every pile a player can drag from
func (l *Layout) PickupCandidates(b *board.Board) []hittest.Candidate[Ref] {
	half := l.HalfExtents()
	var out []hittest.Candidate[Ref]
	for _, p := range board.AllPiles() {
		if p.Kind == board.KindStock {
			continue
		}
		n := b.Len(p)
		if n == 0 || !b.FaceUp(p, n-1) {
			continue
		}
		out = append(out, hittest.Candidate[Ref]{
			Ref:         Ref{Pile: p, Index: n - 1},
			Transform:   l.transform(l.Position(b, p, n-1)),
			HalfExtents: half,
			Depth:       float64(DepthCard + n - 1),
		})
	}
	return out
}

// DropCandidates returns every sprite on the table
func (l *Layout) DropCandidates(b *board.Board) []hittest.Candidate[Ref] {
	return l.Candidates(l.Sprites(b))
}

// StockCandidate returns the stock slot sprite used for draw clicks
func (l *Layout) StockCandidate() hittest.Candidate[Ref] {
	return hittest.Candidate[Ref]{
		Ref:         AnchorRef(board.Stock),
		Transform:   l.transform(l.Anchor(board.Stock)),
		HalfExtents: l.HalfExtents(),
		Depth:       DepthAnchor,
	}
}

// Table binds a layout to a board position for one tick
type Table struct {
	Layout *Layout
	Board  *board.Board
}

func (t Table) PickupCandidates() []hittest.Candidate[Ref] {
	return t.Layout.PickupCandidates(t.Board)
}

func (t Table) DropCandidates() []hittest.Candidate[Ref] {
	return t.Layout.DropCandidates(t.Board)
}

// Position returns the resting center of a sprite
func (t Table) Position(r Ref) vmath.Vec2 {
	if r.IsAnchor() {
		return t.Layout.Anchor(r.Pile)
	}
	return t.Layout.Position(t.Board, r.Pile, r.Index)
}
