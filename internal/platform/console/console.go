// Package console is the plain line-oriented front end: boards are printed
// as text tables and the player types "x y" coordinates.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/seabattle/internal/game"
)

const rule = "--------------------"

// Glyphs used when printing a board.
const (
	GlyphEmpty    = "O"
	GlyphOccupied = "■"
	GlyphHit      = "X"
	GlyphMiss     = "."
	GlyphContour  = "."
)

// Console reads coordinates from in and prints boards and events to out.
// It implements both game.InputSource and game.Display.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

var (
	_ game.InputSource = (*Console)(nil)
	_ game.Display     = (*Console)(nil)
)

// Greet prints the banner with the input format.
func (c *Console) Greet() {
	c.println("-------------------")
	c.println("    Welcome to     ")
	c.println("    sea battle     ")
	c.println("-------------------")
	c.println(" input format: x y ")
	c.println(" x - row number    ")
	c.println(" y - column number ")
}

// RequestCoordinate implements game.InputSource. It re-prompts until a line
// holds exactly two non-negative integers; range checks are left to the board.
func (c *Console) RequestCoordinate(ctx context.Context) (game.Coord, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Coord{}, err
		}

		fmt.Fprint(c.out, "Your move: ")
		line, err := c.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return game.Coord{}, fmt.Errorf("read move: %w", err)
		}

		coord, msg := parseMove(line)
		if msg != "" {
			c.println(msg)
			continue
		}
		return coord, nil
	}
}

// parseMove converts a 1-based "x y" line to a coordinate, or returns the
// message to show the player.
func parseMove(line string) (game.Coord, string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Coord{}, " Enter 2 coordinates! "
	}

	x, errX := strconv.ParseUint(fields[0], 10, 16)
	y, errY := strconv.ParseUint(fields[1], 10, 16)
	if errX != nil || errY != nil {
		return game.Coord{}, " Enter numbers! "
	}
	return game.C(int(x)-1, int(y)-1), ""
}

// ShowBoards implements game.Display.
func (c *Console) ShowBoards(player, computer game.BoardView) {
	c.println(rule)
	c.println("Your board:")
	c.println(FormatBoard(player))
	c.println(rule)
	c.println("Computer board:")
	c.println(FormatBoard(computer))
	c.println(rule)
}

// Notify implements game.Display.
func (c *Console) Notify(ev game.Event) {
	switch ev.Kind {
	case game.EventTurnStarted:
		if ev.Side == game.SidePlayer {
			c.println("Your move!")
		} else {
			c.println("Computer's move!")
		}
	case game.EventTargetChosen:
		if ev.Side == game.SideComputer {
			c.println("Computer fires at: " + ev.Target.Label())
		}
	case game.EventMiss:
		c.println("Miss!")
	case game.EventDamaged:
		c.println("Vessel damaged!")
	case game.EventDestroyed:
		c.println("Vessel destroyed!")
	case game.EventOutOfBounds:
		c.println("You are trying to shoot off the board!")
	case game.EventAlreadyTargeted:
		c.println("That cell has already been shot at")
	case game.EventGameWon:
		c.println(rule)
		if ev.Side == game.SidePlayer {
			c.println("You win!")
		} else {
			c.println("The computer wins!")
		}
	}
}

// FormatBoard renders a board snapshot as a text table with 1-based headers.
// Vessels of a hidden board print as empty water.
func FormatBoard(v game.BoardView) string {
	var sb strings.Builder
	sb.WriteString("  |")
	for y := 0; y < v.Size; y++ {
		fmt.Fprintf(&sb, " %d |", y+1)
	}
	for x := 0; x < v.Size; x++ {
		fmt.Fprintf(&sb, "\n%d |", x+1)
		for y := 0; y < v.Size; y++ {
			sb.WriteString(" " + Glyph(v.Visible(game.C(x, y))) + " |")
		}
	}
	return sb.String()
}

// Glyph returns the character printed for a cell state.
func Glyph(s game.CellState) string {
	switch s {
	case game.CellOccupied:
		return GlyphOccupied
	case game.CellHit:
		return GlyphHit
	case game.CellMiss:
		return GlyphMiss
	case game.CellContour:
		return GlyphContour
	default:
		return GlyphEmpty
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// Play greets the player, builds a match wired to this console and runs it.
func (c *Console) Play(ctx context.Context, opts game.Options) (game.Result, error) {
	opts.Input = c
	opts.Display = c

	c.Greet()
	return game.NewMatch(opts).Run(ctx)
}
