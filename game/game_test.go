package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/card"
	"github.com/lixenwraith/klondike/config"
	"github.com/lixenwraith/klondike/event"
	"github.com/lixenwraith/klondike/gesture"
	"github.com/lixenwraith/klondike/input"
	"github.com/lixenwraith/klondike/layout"
	"github.com/lixenwraith/klondike/vmath"
)

type recorder struct {
	events []event.GameEvent
}

func (r *recorder) HandleEvent(ev event.GameEvent) { r.events = append(r.events, ev) }
func (r *recorder) EventTypes() []event.EventType  { return event.All() }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// aceOnStock is the unshuffled deck with A♥ swapped onto the stock top
func aceOnStock() *card.Deck {
	cards := card.NewDeck().Cards()
	cards[13], cards[23] = cards[23], cards[13]
	return card.DeckOf(cards...)
}

func newGame(t *testing.T) (*Game, *recorder) {
	t.Helper()
	g, err := New(config.Default())
	require.NoError(t, err)
	rec := &recorder{}
	g.Register(rec)
	return g, rec
}

// at is a sample over world point p; the default camera maps one cell per unit
func at(g *Game, p vmath.Vec2, down bool) input.Sample {
	px := g.WorldToScreen(p)
	return input.Sample{Pixel: &px, Down: down}
}

func drag(g *Game, from, to vmath.Vec2) []event.GameEvent {
	var out []event.GameEvent
	out = append(out, g.Tick(at(g, from, true))...)
	out = append(out, g.Tick(at(g, to, true))...)
	out = append(out, g.Tick(at(g, to, false))...)
	return out
}

func TestDealEmitsOnFirstTick(t *testing.T) {
	g, rec := newGame(t)
	g.Tick(input.Sample{})
	require.Equal(t, 1, rec.count(event.EventDealt))

	p := rec.events[0].Payload.(*event.DealtPayload)
	assert.Equal(t, g.DealID(), p.DealID)
}

func TestEndToEndDrawThenFoundation(t *testing.T) {
	g, rec := newGame(t)
	require.NoError(t, g.Deal(aceOnStock(), 0))
	l := g.Layout()
	b := g.Board()

	// Click the stock
	stock := l.Anchor(board.Stock)
	g.Tick(at(g, stock, true))
	g.Tick(at(g, stock, false))
	require.Equal(t, 1, rec.count(event.EventDrawn))
	top, ok := b.Top(board.Waste)
	require.True(t, ok)
	require.Equal(t, card.New(card.Ace, card.Heart), top)

	// Drag the Ace onto the first foundation
	evs := drag(g, l.Anchor(board.Waste), l.Anchor(board.Foundation(0)))
	require.Equal(t, 1, rec.count(event.EventMoved))
	top, ok = b.Top(board.Foundation(0))
	require.True(t, ok)
	assert.Equal(t, card.New(card.Ace, card.Heart), top)
	assert.Zero(t, b.Len(board.Waste))
	assert.Equal(t, 2, g.Moves())

	var moved *event.MovedPayload
	for _, ev := range evs {
		if ev.Type == event.EventMoved {
			moved = ev.Payload.(*event.MovedPayload)
		}
	}
	require.NotNil(t, moved)
	assert.Equal(t, board.Foundation(0), moved.Change.To)
	assert.Equal(t, l.Anchor(board.Foundation(0)), moved.Position)
	assert.NoError(t, b.Verify())
}

func TestEndToEndIllegalTableauDragReverts(t *testing.T) {
	g, rec := newGame(t)
	require.NoError(t, g.Deal(card.NewDeck(), 0))
	l := g.Layout()
	b := g.Board()
	before := b.Snapshot()

	// 8♦ onto K♦
	from := l.Position(b, board.Tableau(2), 2)
	to := l.Position(b, board.Tableau(0), 0)
	drag(g, from, to)

	require.Equal(t, 1, rec.count(event.EventReverted))
	assert.Zero(t, rec.count(event.EventMoved))
	assert.Equal(t, before, b.Snapshot())
	assert.Equal(t, gesture.StateIdle, g.GestureState())
}

func TestRevealEventCarriesCard(t *testing.T) {
	g, rec := newGame(t)
	require.NoError(t, g.Deal(card.NewDeck(), 0))
	l := g.Layout()
	b := g.Board()

	// J♦ onto Q♣ uncovers Q♦
	drag(g, l.Position(b, board.Tableau(1), 1), l.Position(b, board.Tableau(4), 4))

	require.Equal(t, 1, rec.count(event.EventRevealed))
	for _, ev := range rec.events {
		if ev.Type == event.EventRevealed {
			r := ev.Payload.(*event.RevealedPayload)
			assert.Equal(t, card.New(card.Queen, card.Diamond), r.Reveal.Card)
			assert.Equal(t, l.Anchor(board.Tableau(1)), r.Position)
		}
	}
}

func TestSpritesFollowDrag(t *testing.T) {
	g, _ := newGame(t)
	require.NoError(t, g.Deal(card.NewDeck(), 0))
	l := g.Layout()
	b := g.Board()

	from := l.Position(b, board.Tableau(0), 0)
	g.Tick(at(g, from, true))
	g.Tick(at(g, vmath.V2Add(from, vmath.V2(4, 6)), true))

	ref := layout.Ref{Pile: board.Tableau(0), Index: 0}
	for _, s := range g.Sprites() {
		if s.Ref == ref {
			assert.Equal(t, vmath.V2Add(from, vmath.V2(4, 6)), s.Center())
			assert.Equal(t, float64(layout.DepthDrag), s.Depth)
		}
	}
}

func TestWonFiresOnce(t *testing.T) {
	g, rec := newGame(t)

	var p board.Piles
	for i, s := range card.Suits {
		for r := card.Ace; r <= card.King; r++ {
			c := card.New(r, s)
			if c == card.New(card.King, card.Spade) {
				p.Waste = append(p.Waste, c)
				continue
			}
			p.Foundation[i] = append(p.Foundation[i], c)
		}
	}
	require.NoError(t, g.Restore(p))
	require.False(t, g.Won())

	l := g.Layout()
	drag(g, l.Anchor(board.Waste), l.Anchor(board.Foundation(0)))
	assert.True(t, g.Won())
	assert.Equal(t, 1, rec.count(event.EventWon))

	g.Tick(input.Sample{})
	assert.Equal(t, 1, rec.count(event.EventWon))
}
