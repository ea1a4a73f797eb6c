package game

import (
	"context"
	"io"
)

// scriptedRandom replays fixed values, wrapping around, reduced modulo n.
type scriptedRandom struct {
	values []int
	next   int
	calls  []int // n of every call
}

func (r *scriptedRandom) Intn(n int) int {
	r.calls = append(r.calls, n)
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

// scriptedInput returns coordinates in order, then io.EOF.
type scriptedInput struct {
	coords []Coord
}

func (s *scriptedInput) RequestCoordinate(ctx context.Context) (Coord, error) {
	if err := ctx.Err(); err != nil {
		return Coord{}, err
	}
	if len(s.coords) == 0 {
		return Coord{}, io.EOF
	}
	c := s.coords[0]
	s.coords = s.coords[1:]
	return c, nil
}

// recordingDisplay keeps every notification.
type recordingDisplay struct {
	events []Event
	shows  int
	last   [2]BoardView
}

func (d *recordingDisplay) ShowBoards(player, computer BoardView) {
	d.shows++
	d.last = [2]BoardView{player, computer}
}

func (d *recordingDisplay) Notify(ev Event) {
	d.events = append(d.events, ev)
}

func (d *recordingDisplay) kinds() []EventKind {
	kinds := make([]EventKind, 0, len(d.events))
	for _, ev := range d.events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

// combatBoard places vessels and enters the combat phase.
func combatBoard(size int, vessels ...*Vessel) *Board {
	b := NewBoard(size)
	for _, v := range vessels {
		if err := b.AddVessel(v); err != nil {
			panic(err)
		}
	}
	b.BeginCombatPhase()
	return b
}
