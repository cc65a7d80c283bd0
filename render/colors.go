package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/klondike/card"
)

// RGB color definitions
var (
	RgbTable     = tcell.NewRGBColor(0, 96, 48)    // Felt green
	RgbFace      = tcell.NewRGBColor(245, 245, 235) // Off-white card face
	RgbSuitRed   = tcell.NewRGBColor(200, 30, 30)
	RgbSuitBlack = tcell.NewRGBColor(20, 20, 20)
	RgbBack      = tcell.NewRGBColor(40, 60, 160)   // Card back blue
	RgbBackTrim  = tcell.NewRGBColor(150, 170, 230)
	RgbSlot      = tcell.NewRGBColor(60, 140, 90) // Empty slot outline
	RgbStatusBg  = tcell.NewRGBColor(26, 27, 38)
	RgbStatusFg  = tcell.NewRGBColor(200, 200, 200)
	RgbWin       = tcell.NewRGBColor(255, 215, 0)
)

// Styles
var (
	StyleTable  = tcell.StyleDefault.Background(RgbTable)
	StyleBack   = tcell.StyleDefault.Foreground(RgbBackTrim).Background(RgbBack)
	StyleSlot   = tcell.StyleDefault.Foreground(RgbSlot).Background(RgbTable)
	StyleStatus = tcell.StyleDefault.Foreground(RgbStatusFg).Background(RgbStatusBg)
	StyleWin    = tcell.StyleDefault.Foreground(RgbWin).Background(RgbStatusBg).Bold(true)
)

// FaceStyle returns the face style in the suit color of c
func FaceStyle(c card.Card) tcell.Style {
	fg := RgbSuitBlack
	if c.Color() == card.Red {
		fg = RgbSuitRed
	}
	return tcell.StyleDefault.Foreground(fg).Background(RgbFace)
}
