package stockcycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/klondike/board"
	"github.com/lixenwraith/klondike/card"
)

func dealt(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(card.NewDeck())
	require.NoError(t, err)
	return b
}

// click runs press and release over the stock
func click(t *testing.T, c *Cycle, b Board) Outcome {
	t.Helper()
	out, err := c.Update(true, true, b)
	require.NoError(t, err)
	require.Equal(t, None, out.Kind, "press alone never fires")
	out, err = c.Update(false, true, b)
	require.NoError(t, err)
	return out
}

func TestClickDraws(t *testing.T) {
	b := dealt(t)
	var c Cycle

	want, _ := b.Top(board.Stock)
	out := click(t, &c, b)
	require.Equal(t, Drawn, out.Kind)
	assert.Equal(t, want, out.Card)

	top, ok := b.Top(board.Waste)
	require.True(t, ok)
	assert.Equal(t, want, top)
	assert.True(t, b.FaceUp(board.Waste, 0))
}

func TestClickRecyclesEmptyStock(t *testing.T) {
	b := dealt(t)
	var c Cycle

	stock := b.Len(board.Stock)
	for i := 0; i < stock; i++ {
		require.Equal(t, Drawn, click(t, &c, b).Kind)
	}
	require.Zero(t, b.Len(board.Stock))

	out := click(t, &c, b)
	assert.Equal(t, Recycled, out.Kind)
	assert.Len(t, out.Result.Changes, stock)
	assert.Equal(t, stock, b.Len(board.Stock))
	assert.Zero(t, b.Len(board.Waste))
}

func TestClickBothEmptyIsNoop(t *testing.T) {
	var p board.Piles
	for i, s := range card.Suits {
		for r := card.Ace; r <= card.King; r++ {
			p.Foundation[i] = append(p.Foundation[i], card.New(r, s))
		}
	}
	b, err := board.FromPiles(p)
	require.NoError(t, err)

	var c Cycle
	out := click(t, &c, b)
	assert.Equal(t, None, out.Kind)
}

func TestLeavingStockDisarms(t *testing.T) {
	b := dealt(t)
	var c Cycle

	_, err := c.Update(true, true, b)
	require.NoError(t, err)
	assert.True(t, c.Armed())

	// Slide off and back before releasing
	_, _ = c.Update(true, false, b)
	assert.False(t, c.Armed())
	_, _ = c.Update(true, true, b)

	out, err := c.Update(false, true, b)
	require.NoError(t, err)
	assert.Equal(t, None, out.Kind)
	assert.Zero(t, b.Len(board.Waste))
}

func TestPressElsewhereReleaseOnStock(t *testing.T) {
	b := dealt(t)
	var c Cycle

	_, _ = c.Update(true, false, b)
	out, err := c.Update(false, true, b)
	require.NoError(t, err)
	assert.Equal(t, None, out.Kind)
}
