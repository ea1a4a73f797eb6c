package game

// Side identifies a combatant.
type Side uint8

const (
	// SidePlayer is the interactive (human) combatant. It moves first.
	SidePlayer Side = iota
	// SideComputer is the automated combatant.
	SideComputer
)

// String returns the side name used in logs and storage.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideComputer:
		return "computer"
	default:
		return "unknown"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideComputer
	}
	return SidePlayer
}

// EventKind identifies a notification sent to the display.
type EventKind uint8

const (
	EventTurnStarted EventKind = iota
	EventTargetChosen
	EventMiss
	EventDamaged
	EventDestroyed
	EventOutOfBounds
	EventAlreadyTargeted
	EventGameWon
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventTurnStarted:
		return "turn-started"
	case EventTargetChosen:
		return "target-chosen"
	case EventMiss:
		return "miss"
	case EventDamaged:
		return "damaged"
	case EventDestroyed:
		return "destroyed"
	case EventOutOfBounds:
		return "out-of-bounds"
	case EventAlreadyTargeted:
		return "already-targeted"
	case EventGameWon:
		return "game-won"
	default:
		return "unknown"
	}
}

// Event is a notification about something that happened during a turn.
type Event struct {
	Kind   EventKind
	Side   Side  // who acted; the winner for EventGameWon
	Target Coord // valid for target and shot events
	Length int   // vessel length for EventDamaged and EventDestroyed
}

// Display consumes board snapshots and event notifications.
// It never feeds data back into the match.
type Display interface {
	ShowBoards(player, computer BoardView)
	Notify(ev Event)
}

// NopDisplay ignores everything.
type NopDisplay struct{}

// ShowBoards implements Display.
func (NopDisplay) ShowBoards(BoardView, BoardView) {}

// Notify implements Display.
func (NopDisplay) Notify(Event) {}

var _ Display = NopDisplay{}

// shotEvent maps a resolved shot to its notification.
func shotEvent(side Side, s Shot) Event {
	ev := Event{Side: side, Target: s.Target}
	switch s.Outcome {
	case OutcomeDestroyed:
		ev.Kind = EventDestroyed
	case OutcomeDamaged:
		ev.Kind = EventDamaged
	default:
		ev.Kind = EventMiss
	}
	if s.Vessel != nil {
		ev.Length = s.Vessel.Length
	}
	return ev
}
