package card

import "strconv"

// Color is the derived color of a suit
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "Red"
	}
	return "Black"
}

// Suit in deck order: Spade, Heart, Club, Diamond
type Suit uint8

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

// Suits lists every suit in deck order
var Suits = [...]Suit{Spade, Heart, Club, Diamond}

// Color returns Black for spades and clubs, Red for hearts and diamonds
func (s Suit) Color() Color {
	switch s {
	case Heart, Diamond:
		return Red
	default:
		return Black
	}
}

// Symbol returns the unicode suit glyph
func (s Suit) Symbol() string {
	switch s {
	case Spade:
		return "♠"
	case Heart:
		return "♥"
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	default:
		return "?"
	}
}

func (s Suit) String() string {
	switch s {
	case Spade:
		return "Spade"
	case Heart:
		return "Heart"
	case Club:
		return "Club"
	case Diamond:
		return "Diamond"
	default:
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
}

// Rank from Ace (low) to King
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// RankCount is the number of ranks per suit
const RankCount = 13

// Next returns the successor rank; King has none
func (r Rank) Next() (Rank, bool) {
	if r >= King {
		return 0, false
	}
	return r + 1, true
}

// IsNext reports whether r is the immediate successor of other
func (r Rank) IsNext(other Rank) bool {
	next, ok := other.Next()
	return ok && next == r
}

func (r Rank) IsAce() bool  { return r == Ace }
func (r Rank) IsKing() bool { return r == King }

// Label returns the short face label: A, 2..10, J, Q, K
func (r Rank) Label() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r > King {
			return "?"
		}
		return strconv.Itoa(int(r) + 1)
	}
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return r.Label()
	}
}

// Card is an immutable playing card compared by value
type Card struct {
	Rank Rank
	Suit Suit
}

// New creates a card
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Color returns the suit color
func (c Card) Color() Color {
	return c.Suit.Color()
}

// Index returns the position of the card in an unshuffled deck (0..51)
func (c Card) Index() int {
	return int(c.Rank) + int(c.Suit)*RankCount
}

// FromIndex is the inverse of Index
func FromIndex(i int) (Card, bool) {
	if i < 0 || i >= DeckSize {
		return Card{}, false
	}
	return Card{Rank: Rank(i % RankCount), Suit: Suit(i / RankCount)}, true
}

func (c Card) String() string {
	return c.Rank.Label() + c.Suit.Symbol()
}
