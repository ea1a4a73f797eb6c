package tui

import (
	"fmt"

	"github.com/vovakirdan/seabattle/internal/core"
	"github.com/vovakirdan/seabattle/internal/game"
)

// Board layout: a 3-column row label, then 3 columns per cell, inside a box.
const (
	cellW      = 3
	labelW     = 3
	boardGap   = 6
	boardLeft  = 2
	boardTop   = 2
	statusGap  = 2
	titleLabel = "SEA BATTLE"
)

func boardWidth(size int) int  { return labelW + size*cellW + 2 }
func boardHeight(size int) int { return size + 3 }

// cellLook returns the rune and color drawn for a cell state.
func cellLook(s game.CellState) (rune, core.Color) {
	switch s {
	case game.CellOccupied:
		return '■', core.ColorGreen
	case game.CellHit:
		return 'X', core.ColorBrightRed
	case game.CellMiss:
		return '•', core.ColorGray
	case game.CellContour:
		return '·', core.ColorGray
	default:
		return '~', core.ColorBlue
	}
}

// drawBoard draws a titled board with its top-left corner at (x, y).
// A non-nil cursor is bracketed.
func drawBoard(s *core.Screen, x, y int, title string, v game.BoardView, cursor *game.Coord) {
	s.DrawTextColored(x, y, title, core.ColorBrightWhite)

	box := core.NewRect(x, y+1, boardWidth(v.Size), boardHeight(v.Size))
	s.DrawBox(box, core.ColorGray)

	ix, iy := box.X+1, box.Y+1
	for col := 0; col < v.Size; col++ {
		s.DrawTextColored(ix+labelW+col*cellW, iy, fmt.Sprintf("%2d", col+1), core.ColorGray)
	}

	for row := 0; row < v.Size; row++ {
		ry := iy + 1 + row
		s.DrawTextColored(ix, ry, fmt.Sprintf("%2d", row+1), core.ColorGray)
		for col := 0; col < v.Size; col++ {
			cx := ix + labelW + col*cellW
			r, color := cellLook(v.Visible(game.C(row, col)))
			s.SetColored(cx+1, ry, r, color)
			if cursor != nil && *cursor == game.C(row, col) {
				s.SetColored(cx, ry, '[', core.ColorYellow)
				s.SetColored(cx+2, ry, ']', core.ColorYellow)
			}
		}
	}

	s.DrawTextColored(x, box.Bottom(), fmt.Sprintf("afloat %d/%d", v.Afloat(), v.Vessels), core.ColorCyan)
}

// draw renders the whole session into the screen buffer.
func (m Model) draw() {
	s := m.screen
	s.Clear()

	s.DrawTextCentered(0, titleLabel, core.ColorCyan)

	size := m.config.BoardSize
	drawBoard(s, boardLeft, boardTop, "Your fleet", m.player, nil)

	var cursor *game.Coord
	if m.result == nil && m.err == nil {
		c := m.cursor
		cursor = &c
	}
	drawBoard(s, boardLeft+boardWidth(size)+boardGap, boardTop, "Enemy waters", m.computer, cursor)

	y := boardTop + 1 + boardHeight(size) + statusGap
	text, color := m.status()
	s.DrawTextColored(boardLeft, y, text, color)

	for i, line := range m.events {
		s.DrawTextColored(boardLeft, y+2+i, line, core.ColorDefault)
	}
}
