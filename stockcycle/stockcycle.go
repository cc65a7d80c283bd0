// Package stockcycle handles clicks on the stock: draw one, or recycle the waste
package stockcycle

import (
	"errors"

	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/card"
)

// Kind classifies a click
type Kind uint8

const (
	None Kind = iota
	Drawn
	Recycled
)

func (k Kind) String() string {
	switch k {
	case Drawn:
		return "Drawn"
	case Recycled:
		return "Recycled"
	default:
		return "None"
	}
}

// Outcome reports what a completed click did
type Outcome struct {
	Kind   Kind
	Card   card.Card // Drawn only
	Result board.Result
}

// Board is the part of the board a click mutates
type Board interface {
	Len(p board.PileID) int
	DrawStock() (card.Card, board.Result, error)
	Recycle() (board.Result, error)
}

// Cycle arms on a press over the stock and fires on release while still over it
type Cycle struct {
	armed   bool
	wasDown bool
}

// Armed reports a press over the stock waiting for release
func (c *Cycle) Armed() bool {
	return c.armed
}

// Reset disarms without firing
func (c *Cycle) Reset() {
	c.armed = false
}

// Update consumes one sample; overStock is the hit-test of the pointer against the stock slot
func (c *Cycle) Update(down, overStock bool, b Board) (Outcome, error) {
	pressed := down && !c.wasDown
	released := !down && c.wasDown
	c.wasDown = down

	switch {
	case pressed:
		c.armed = overStock
		return Outcome{}, nil
	case down:
		if !overStock {
			c.armed = false
		}
		return Outcome{}, nil
	case released:
		fire := c.armed && overStock
		c.armed = false
		if !fire {
			return Outcome{}, nil
		}
		return c.fire(b)
	}
	return Outcome{}, nil
}

func (c *Cycle) fire(b Board) (Outcome, error) {
	if b.Len(board.Stock) > 0 {
		drawn, res, err := b.DrawStock()
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: Drawn, Card: drawn, Result: res}, nil
	}

	res, err := b.Recycle()
	if errors.Is(err, board.ErrEmptySource) {
		return Outcome{}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Kind: Recycled, Result: res}, nil
}
