package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stacker/stacker"
)

var (
	backgroundColor = color.White
	gridColor       = color.RGBA{34, 34, 34, 255}
	activeColor     = color.RGBA{255, 0, 0, 255}
	frozenColor     = color.RGBA{0, 255, 0, 255}
)

func drawGame(screen *ebiten.Image, snap stacker.Snapshot) {
	screen.Fill(backgroundColor)
	drawGrid(screen, snap)

	size := float32(snap.GridSize)
	for _, s := range snap.Frozen {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), size, size, frozenColor, false)
	}
	for _, s := range snap.Active {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), size, size, activeColor, false)
	}
}

func drawGrid(screen *ebiten.Image, snap stacker.Snapshot) {
	size := float32(snap.GridSize)
	w := size * float32(snap.Width)
	h := size * float32(snap.Height)

	for col := 0; col <= snap.Width; col++ {
		x := float32(col) * size
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor, false)
	}
	for row := 0; row <= snap.Height; row++ {
		y := float32(row) * size
		vector.StrokeLine(screen, 0, y, w, y, 1, gridColor, false)
	}
}
