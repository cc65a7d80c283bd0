package board

import (
	"errors"
	"strconv"

	"github.com/lixenwraith/klondike/card"
)

// Pile counts for Klondike
const (
	TableauCount    = 7
	FoundationCount = 4
	// DealtCount is the number of cards placed on the tableau by a deal (1+2+..+7)
	DealtCount = TableauCount * (TableauCount + 1) / 2
)

// Kind identifies a pile family
type Kind uint8

const (
	KindStock Kind = iota
	KindWaste
	KindTableau
	KindFoundation
)

func (k Kind) String() string {
	switch k {
	case KindStock:
		return "Stock"
	case KindWaste:
		return "Waste"
	case KindTableau:
		return "Tableau"
	case KindFoundation:
		return "Foundation"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// PileID addresses a pile; Index is only meaningful for tableau and foundation
type PileID struct {
	Kind  Kind
	Index int
}

var (
	Stock = PileID{Kind: KindStock}
	Waste = PileID{Kind: KindWaste}
)

// Tableau returns the id of tableau column i
func Tableau(i int) PileID { return PileID{Kind: KindTableau, Index: i} }

// Foundation returns the id of foundation slot i
func Foundation(i int) PileID { return PileID{Kind: KindFoundation, Index: i} }

// Valid reports whether the id addresses an existing pile
func (p PileID) Valid() bool {
	switch p.Kind {
	case KindStock, KindWaste:
		return p.Index == 0
	case KindTableau:
		return p.Index >= 0 && p.Index < TableauCount
	case KindFoundation:
		return p.Index >= 0 && p.Index < FoundationCount
	default:
		return false
	}
}

func (p PileID) String() string {
	switch p.Kind {
	case KindTableau, KindFoundation:
		return p.Kind.String() + "[" + strconv.Itoa(p.Index) + "]"
	default:
		return p.Kind.String()
	}
}

// AllPiles lists every pile in layout order: stock, waste, foundations, tableau
func AllPiles() []PileID {
	ids := make([]PileID, 0, 2+FoundationCount+TableauCount)
	ids = append(ids, Stock, Waste)
	for i := 0; i < FoundationCount; i++ {
		ids = append(ids, Foundation(i))
	}
	for i := 0; i < TableauCount; i++ {
		ids = append(ids, Tableau(i))
	}
	return ids
}

// Sentinel errors
var (
	ErrEmptySource        = errors.New("empty source pile")
	ErrStockNotEmpty      = errors.New("stock not empty")
	ErrInvariantViolation = errors.New("board invariant violation")
)

// Change records one card landing in a pile after a mutation
type Change struct {
	Card   card.Card
	From   PileID
	To     PileID
	Index  int // position within To after the mutation
	FaceUp bool
}

// Reveal records a tableau top card turning face-up
type Reveal struct {
	Pile  PileID
	Index int
	Card  card.Card
}

// Result is the full effect of one board mutation
type Result struct {
	Changes  []Change
	Revealed []Reveal
}
