// Package gesture turns per-tick pointer samples into card pickups and drops
package gesture

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/card"
	"github.com/lixenwraith/klondike/hittest"
	"github.com/lixenwraith/klondike/layout"
	"github.com/lixenwraith/klondike/rules"
	"github.com/lixenwraith/klondike/vmath"
)

// State of the drag machine
type State uint8

const (
	StateIdle      State = iota // Button up, nothing held
	StateSelecting              // Card lifted, motion still inside the dead zone
	StateDragging               // Card follows the pointer
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSelecting:
		return "Selecting"
	case StateDragging:
		return "Dragging"
	default:
		return "Unknown"
	}
}

// Revert reasons carried in Outcome.Err
var (
	ErrNoTarget = errors.New("no drop target")
	ErrSamePile = errors.New("dropped on origin pile")
)

// Input is one pointer sample already mapped to world space
type Input struct {
	Point    vmath.Vec2
	HasPoint bool
	Down     bool
}

// Scene supplies sprite geometry for the current board position
type Scene interface {
	PickupCandidates() []hittest.Candidate[layout.Ref]
	DropCandidates() []hittest.Candidate[layout.Ref]
	Position(layout.Ref) vmath.Vec2
}

// Board is the part of the board the machine mutates
type Board interface {
	Top(p board.PileID) (card.Card, bool)
	MoveCard(c card.Card, from, to board.PileID) (board.Result, error)
}

// Drag is the state of a held card
type Drag struct {
	Origin   layout.Ref
	Card     card.Card
	Pickup   vmath.Vec2 // pointer at press
	Last     vmath.Vec2 // pointer at the previous tick
	Home     vmath.Vec2 // resting center before pickup
	Position vmath.Vec2 // current visual center
	Travel   float64    // accumulated pointer motion
}

// Kind classifies what a tick did
type Kind uint8

const (
	OutcomeNone Kind = iota
	OutcomePicked
	OutcomeMoved
	OutcomeReverted
)

func (k Kind) String() string {
	switch k {
	case OutcomeNone:
		return "None"
	case OutcomePicked:
		return "Picked"
	case OutcomeMoved:
		return "Moved"
	case OutcomeReverted:
		return "Reverted"
	default:
		return "Unknown"
	}
}

// Outcome reports the effect of one Update
// Position is the card center: Home on pick and revert, the new resting place on move
type Outcome struct {
	Kind     Kind
	Card     card.Card
	From     board.PileID
	To       board.PileID
	Position vmath.Vec2
	Result   board.Result
	Err      error
}

// Machine is the Idle -> Selecting -> Dragging -> Idle drag state machine
type Machine struct {
	state    State
	drag     *Drag
	deadZone float64
	wasDown  bool
}

// NewMachine creates an idle machine; motion beyond deadZone world units starts a drag
func NewMachine(deadZone float64) *Machine {
	if deadZone < 0 {
		deadZone = 0
	}
	return &Machine{deadZone: deadZone}
}

// State returns the current state
func (m *Machine) State() State {
	return m.state
}

// Drag returns the held card, nil when idle
func (m *Machine) Drag() *Drag {
	return m.drag
}

// Reset drops any held card without touching the board
func (m *Machine) Reset() {
	m.state = StateIdle
	m.drag = nil
}

// Update advances the machine by one sample
// Pickup is edge triggered: a button already held when entering Idle picks nothing
func (m *Machine) Update(in Input, scene Scene, b Board) Outcome {
	pressed := in.Down && !m.wasDown
	m.wasDown = in.Down

	switch m.state {
	case StateIdle:
		if pressed && in.HasPoint {
			return m.pickup(in.Point, scene, b)
		}
	case StateSelecting, StateDragging:
		if in.Down {
			if in.HasPoint {
				m.follow(in.Point)
			}
			return Outcome{}
		}
		if in.HasPoint {
			m.follow(in.Point)
		}
		return m.release(scene, b)
	}
	return Outcome{}
}

func (m *Machine) pickup(p vmath.Vec2, scene Scene, b Board) Outcome {
	ref, ok := hittest.Pick(p, scene.PickupCandidates())
	if !ok {
		return Outcome{}
	}
	c, ok := b.Top(ref.Pile)
	if !ok {
		return Outcome{}
	}

	home := scene.Position(ref)
	m.drag = &Drag{
		Origin:   ref,
		Card:     c,
		Pickup:   p,
		Last:     p,
		Home:     home,
		Position: home,
	}
	m.state = StateSelecting

	return Outcome{Kind: OutcomePicked, Card: c, From: ref.Pile, Position: home}
}

// follow applies the pointer delta since the last tick to the held card
func (m *Machine) follow(p vmath.Vec2) {
	d := m.drag
	delta := vmath.V2Sub(p, d.Last)
	d.Position = vmath.V2Add(d.Position, delta)
	d.Travel += vmath.V2Mag(delta)
	d.Last = p

	if m.state == StateSelecting && d.Travel > m.deadZone {
		m.state = StateDragging
	}
}

func (m *Machine) release(scene Scene, b Board) Outcome {
	d := m.drag
	m.Reset()

	revert := func(err error) Outcome {
		return Outcome{Kind: OutcomeReverted, Card: d.Card, From: d.Origin.Pile, Position: d.Home, Err: err}
	}

	target, ok := hittest.PickFiltered(d.Last, scene.DropCandidates(), func(r layout.Ref) bool {
		return r != d.Origin
	})
	if !ok {
		return revert(ErrNoTarget)
	}
	to := target.Pile
	if to == d.Origin.Pile {
		return revert(ErrSamePile)
	}

	top, hasTop := b.Top(to)
	if !rules.CanPlace(to.Kind, d.Card, top, hasTop) {
		return revert(fmt.Errorf("%w: %v onto %v", rules.ErrIllegalMove, d.Card, to))
	}

	res, err := b.MoveCard(d.Card, d.Origin.Pile, to)
	if err != nil {
		panic(fmt.Errorf("commit %v %v -> %v: %w", d.Card, d.Origin.Pile, to, err))
	}

	out := Outcome{Kind: OutcomeMoved, Card: d.Card, From: d.Origin.Pile, To: to, Result: res}
	if len(res.Changes) > 0 {
		out.Position = scene.Position(layout.Ref{Pile: to, Index: res.Changes[0].Index})
	}
	return out
}
