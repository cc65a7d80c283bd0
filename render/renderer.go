// Package render draws the table onto a tcell screen and keeps the status line
package render

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/event"
	"github.com/lixenwraith/klondike/layout"
	"github.com/lixenwraith/klondike/vmath"
)

const helpText = "drag cards | click stock to draw | n new deal | q quit"

// Scene is the read side of a game the renderer needs
type Scene interface {
	Sprites() []layout.Sprite
	Layout() *layout.Layout
	WorldToScreen(p vmath.Vec2) vmath.Vec2
	DealID() uuid.UUID
	Moves() int
	Won() bool
}

// Renderer is the tcell sink for sprites and table events
type Renderer struct {
	screen  tcell.Screen
	message string
}

// NewRenderer creates a renderer drawing to screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Message returns the last status message
func (r *Renderer) Message() string {
	return r.message
}

// HandleEvent implements event.Handler
func (r *Renderer) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.DealtPayload:
		r.message = fmt.Sprintf("New deal, seed %d", p.Seed)
	case *event.PickedPayload:
		r.message = fmt.Sprintf("Holding %v", p.Card)
	case *event.MovedPayload:
		r.message = fmt.Sprintf("%v to %s", p.Change.Card, pileName(p.Change.To))
	case *event.RevertedPayload:
		r.message = fmt.Sprintf("%v can't go there", p.Card)
	case *event.DrawnPayload:
		r.message = fmt.Sprintf("Drew %v", p.Change.Card)
	case *event.RecycledPayload:
		r.message = fmt.Sprintf("Recycled %d cards", p.Count)
	case *event.WonPayload:
		r.message = fmt.Sprintf("Solved in %d moves!", p.Moves)
	}
}

// EventTypes implements event.Handler
func (r *Renderer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventDealt,
		event.EventPicked,
		event.EventMoved,
		event.EventReverted,
		event.EventDrawn,
		event.EventRecycled,
		event.EventWon,
	}
}

// Draw paints the whole frame
func (r *Renderer) Draw(scene Scene) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.fill(0, 0, w, h, ' ', StyleTable)

	sprites := scene.Sprites()
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].Depth < sprites[j].Depth })

	half := scene.Layout().HalfExtents()
	for _, s := range sprites {
		c := s.Center()
		lo := scene.WorldToScreen(vmath.V2Sub(c, half))
		hi := scene.WorldToScreen(vmath.V2Add(c, half))
		x0, y0, x1, y1 := cellSpan(lo, hi)
		r.drawSprite(s, x0, y0, x1, y1)
	}

	r.drawStatus(scene, w, h)
	r.screen.Show()
}

// cellSpan returns the half-open cell range whose centers fall inside [lo, hi]
func cellSpan(lo, hi vmath.Vec2) (x0, y0, x1, y1 int) {
	minX, maxX := math.Min(lo.X, hi.X), math.Max(lo.X, hi.X)
	minY, maxY := math.Min(lo.Y, hi.Y), math.Max(lo.Y, hi.Y)
	x0 = int(math.Ceil(minX - 0.5))
	y0 = int(math.Ceil(minY - 0.5))
	x1 = int(math.Floor(maxX-0.5)) + 1
	y1 = int(math.Floor(maxY-0.5)) + 1
	return
}

func (r *Renderer) drawSprite(s layout.Sprite, x0, y0, x1, y1 int) {
	asset := AssetKey(s.Card, DisplayOf(s))
	switch asset.Kind {
	case AssetEmpty:
		r.frame(x0, y0, x1, y1, StyleSlot)
		if s.Ref.Pile == board.Stock {
			r.put((x0+x1)/2, (y0+y1)/2, '↺', StyleSlot)
		}
	case AssetBack:
		r.fill(x0, y0, x1, y1, '░', StyleBack)
		r.frame(x0, y0, x1, y1, StyleBack)
	case AssetFace:
		style := FaceStyle(asset.Card)
		r.fill(x0, y0, x1, y1, ' ', style)
		r.frame(x0, y0, x1, y1, style)
		label := asset.Card.String()
		r.text(x0+1, y0+1, label, style)
		r.text(x1-1-len([]rune(label)), y1-2, label, style)
		r.put((x0+x1)/2, (y0+y1)/2, []rune(asset.Card.Suit.Symbol())[0], style)
	}
}

func (r *Renderer) drawStatus(scene Scene, w, h int) {
	if h < 2 {
		return
	}
	r.fill(0, h-2, w, h, ' ', StyleStatus)

	id := scene.DealID().String()
	line := fmt.Sprintf(" deal %s  moves %d  %s", id[:8], scene.Moves(), r.message)
	style := StyleStatus
	if scene.Won() {
		style = StyleWin
	}
	r.text(0, h-2, line, style)
	r.text(1, h-1, helpText, StyleStatus)
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.put(x, y, ch, style)
		}
	}
}

// frame draws a box border on the outermost cells of the range
func (r *Renderer) frame(x0, y0, x1, y1 int, style tcell.Style) {
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	for x := x0 + 1; x < x1-1; x++ {
		r.put(x, y0, '─', style)
		r.put(x, y1-1, '─', style)
	}
	for y := y0 + 1; y < y1-1; y++ {
		r.put(x0, y, '│', style)
		r.put(x1-1, y, '│', style)
	}
	r.put(x0, y0, '┌', style)
	r.put(x1-1, y0, '┐', style)
	r.put(x0, y1-1, '└', style)
	r.put(x1-1, y1-1, '┘', style)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.put(x+i, y, ch, style)
	}
}

func pileName(p board.PileID) string {
	switch p.Kind {
	case board.KindFoundation:
		return fmt.Sprintf("foundation %d", p.Index+1)
	case board.KindTableau:
		return fmt.Sprintf("column %d", p.Index+1)
	default:
		return p.Kind.String()
	}
}
