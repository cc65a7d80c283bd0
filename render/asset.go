package render

import (
	"github.com/lixenwraith/klondike/card"
	"github.com/lixenwraith/klondike/layout"
)

// DisplayState is how a sprite shows on the table
type DisplayState uint8

const (
	DisplayEmpty    DisplayState = iota // Pile slot with no card
	DisplayFaceDown                     // Card back
	DisplayFaceUp                       // Card face
)

// AssetKind selects the artwork family
type AssetKind uint8

const (
	AssetEmpty AssetKind = iota
	AssetBack
	AssetFace
)

// Asset identifies the artwork for one sprite; Card is set only for faces
type Asset struct {
	Kind AssetKind
	Card card.Card
}

// AssetKey maps a card and its display state to artwork
// All backs share one asset, as do all empty slots
func AssetKey(c card.Card, s DisplayState) Asset {
	switch s {
	case DisplayFaceUp:
		return Asset{Kind: AssetFace, Card: c}
	case DisplayFaceDown:
		return Asset{Kind: AssetBack}
	default:
		return Asset{Kind: AssetEmpty}
	}
}

// DisplayOf derives the display state of a sprite
func DisplayOf(s layout.Sprite) DisplayState {
	switch {
	case !s.HasCard:
		return DisplayEmpty
	case s.FaceUp:
		return DisplayFaceUp
	default:
		return DisplayFaceDown
	}
}

func (a Asset) String() string {
	switch a.Kind {
	case AssetFace:
		return "face:" + a.Card.String()
	case AssetBack:
		return "back"
	default:
		return "empty"
	}
}
