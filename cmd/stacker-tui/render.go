package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stacker/stacker"
)

// cellWidth is the number of terminal columns per grid cell, which keeps cells roughly square.
const cellWidth = 2

var (
	gridStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(34, 34, 34))
	activeStyle = tcell.StyleDefault.Background(tcell.ColorRed)
	frozenStyle = tcell.StyleDefault.Background(tcell.ColorGreen)
	statusStyle = tcell.StyleDefault
)

type canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

func draw(c canvas, snap stacker.Snapshot) {
	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			fillCell(c, stacker.Cell{Col: col, Row: row}, '·', gridStyle)
		}
	}

	for _, cell := range snap.FrozenCells() {
		fillCell(c, cell, ' ', frozenStyle)
	}
	for _, cell := range snap.ActiveCells() {
		fillCell(c, cell, ' ', activeStyle)
	}

	status := fmt.Sprintf("level %d  speed %.2f  [space] place [r] reset [esc] quit", snap.Level, snap.Speed)
	drawText(c, 0, snap.Height, status, statusStyle)
}

func fillCell(c canvas, cell stacker.Cell, r rune, style tcell.Style) {
	if cell.Col < 0 || cell.Row < 0 {
		return
	}
	x := cell.Col * cellWidth
	for i := 0; i < cellWidth; i++ {
		c.SetContent(x+i, cell.Row, r, nil, style)
	}
}

func drawText(c canvas, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		c.SetContent(x+i, y, r, nil, style)
	}
}

var _ canvas = tcell.Screen(nil)
