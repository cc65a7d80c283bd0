// Package game runs one Klondike table: it owns the board and drives the
// hit-test, drag gesture and stock cycle once per tick
package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/card"
	"github.com/lixenwraith/klondike/config"
	"github.com/lixenwraith/klondike/event"
	"github.com/lixenwraith/klondike/gesture"
	"github.com/lixenwraith/klondike/hittest"
	"github.com/lixenwraith/klondike/input"
	"github.com/lixenwraith/klondike/layout"
	"github.com/lixenwraith/klondike/stockcycle"
	"github.com/lixenwraith/klondike/vmath"
)

// Game is the single-threaded table state
type Game struct {
	dealID uuid.UUID
	seed   int64
	moves  int
	won    bool

	board    *board.Board
	layout   *layout.Layout
	camera   *hittest.Camera
	viewport hittest.Viewport

	gesture *gesture.Machine
	cycle   stockcycle.Cycle

	queue  *event.EventQueue
	router *event.Router
}

// New creates a game and deals the first hand
// A zero cfg.Seed picks a time based seed
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	queue := event.NewEventQueue()
	g := &Game{
		layout:  layout.Default(),
		gesture: gesture.NewMachine(cfg.DragDeadZone),
		queue:   queue,
		router:  event.NewRouter(queue),
	}
	size := g.layout.Size(board.TableauCount + card.RankCount)
	g.Resize(int(size.X+2*g.layout.Origin.X), int(size.Y+2*g.layout.Origin.Y))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := g.NewDeal(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Register adds an event listener; events are delivered at the end of each tick
func (g *Game) Register(h event.Handler) {
	g.router.Register(h)
}

// NewDeal shuffles a fresh deck with seed and deals it
func (g *Game) NewDeal(seed int64) error {
	deck := card.NewDeck()
	deck.Shuffle(rand.New(rand.NewSource(seed)))
	return g.Deal(deck, seed)
}

// Deal lays out an explicit deck; seed is informational
func (g *Game) Deal(deck *card.Deck, seed int64) error {
	b, err := board.New(deck)
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}

	g.start(b, seed)
	return nil
}

// Restore continues from an explicit position under a new deal id
func (g *Game) Restore(p board.Piles) error {
	b, err := board.FromPiles(p)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	g.start(b, 0)
	return nil
}

func (g *Game) start(b *board.Board, seed int64) {
	g.board = b
	g.dealID = uuid.New()
	g.seed = seed
	g.moves = 0
	g.won = false
	g.gesture.Reset()
	g.cycle.Reset()

	log.Printf("Deal %s seed %d", g.dealID, seed)
	g.queue.Emit(event.EventDealt, &event.DealtPayload{DealID: g.dealID, Seed: seed})
}

// Resize updates the viewport; the camera keeps one world unit per terminal cell
func (g *Game) Resize(width, height int) {
	g.viewport = hittest.Viewport{Width: float64(width), Height: float64(height)}
	g.camera = hittest.NewCamera(vmath.V2(g.viewport.Width/2, g.viewport.Height/2), 1)
}

// Tick consumes one pointer sample and returns the events it dispatched
// Order: hit-test, drag gesture, stock cycle, win check, dispatch
func (g *Game) Tick(s input.Sample) []event.GameEvent {
	point, hasPoint := hittest.ScreenToWorld(s.Pixel, g.camera, g.viewport)
	table := g.table()

	in := gesture.Input{Point: point, HasPoint: hasPoint, Down: s.Down}
	g.handleGesture(g.gesture.Update(in, table, g.board), table)

	overStock := hasPoint && g.layout.StockCandidate().Contains(point)
	out, err := g.cycle.Update(s.Down, overStock, g.board)
	if err != nil {
		panic(fmt.Errorf("stock click: %w", err))
	}
	g.handleCycle(out)

	if !g.won && g.board.Won() {
		g.won = true
		log.Printf("Deal %s won in %d moves", g.dealID, g.moves)
		g.queue.Emit(event.EventWon, &event.WonPayload{DealID: g.dealID, Moves: g.moves})
	}

	return g.router.DispatchAll()
}

func (g *Game) handleGesture(out gesture.Outcome, table layout.Table) {
	switch out.Kind {
	case gesture.OutcomePicked:
		g.queue.Emit(event.EventPicked, &event.PickedPayload{Card: out.Card, From: out.From, Position: out.Position})

	case gesture.OutcomeMoved:
		g.moves++
		log.Printf("Move %v %v -> %v", out.Card, out.From, out.To)
		for _, ch := range out.Result.Changes {
			g.queue.Emit(event.EventMoved, &event.MovedPayload{
				Change:   ch,
				Position: table.Position(layout.Ref{Pile: ch.To, Index: ch.Index}),
			})
		}
		for _, r := range out.Result.Revealed {
			g.queue.Emit(event.EventRevealed, &event.RevealedPayload{
				Reveal:   r,
				Position: table.Position(layout.Ref{Pile: r.Pile, Index: r.Index}),
			})
		}

	case gesture.OutcomeReverted:
		log.Printf("Revert %v to %v: %v", out.Card, out.From, out.Err)
		g.queue.Emit(event.EventReverted, &event.RevertedPayload{
			Card: out.Card,
			From: out.From,
			Home: out.Position,
			Err:  out.Err,
		})
	}
}

func (g *Game) handleCycle(out stockcycle.Outcome) {
	switch out.Kind {
	case stockcycle.Drawn:
		g.moves++
		for _, ch := range out.Result.Changes {
			g.queue.Emit(event.EventDrawn, &event.DrawnPayload{Change: ch})
		}
	case stockcycle.Recycled:
		g.moves++
		log.Printf("Recycle %d cards", len(out.Result.Changes))
		g.queue.Emit(event.EventRecycled, &event.RecycledPayload{Count: len(out.Result.Changes)})
	}
}

func (g *Game) table() layout.Table {
	return layout.Table{Layout: g.layout, Board: g.board}
}

// Sprites returns the draw list with a held card lifted to its drag position
func (g *Game) Sprites() []layout.Sprite {
	sprites := g.layout.Sprites(g.board)
	if d := g.gesture.Drag(); d != nil {
		layout.Override(sprites, d.Origin, d.Position)
	}
	return sprites
}

// WorldToScreen maps a world point to the viewport
func (g *Game) WorldToScreen(p vmath.Vec2) vmath.Vec2 {
	return g.camera.WorldToScreen(p, g.viewport)
}

func (g *Game) Board() *board.Board { return g.board }
func (g *Game) Layout() *layout.Layout { return g.layout }
func (g *Game) DealID() uuid.UUID { return g.dealID }
func (g *Game) Seed() int64 { return g.seed }
func (g *Game) Moves() int { return g.moves }
func (g *Game) Won() bool { return g.won }
func (g *Game) GestureState() gesture.State { return g.gesture.State() }
