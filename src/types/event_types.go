package types

type EventKind int

const (
	Disembark EventKind = iota
	Board
	Move
)

func (k EventKind) String() string {
	switch k {
	case Disembark:
		return "Disembark"
	case Board:
		return "Board"
	case Move:
		return "Move"
	}
	return "Unknown"
}

// Event is emitted by the simulation for every boarding, disembarking and move.
// Name and Floor are unset for Move, Dir is unset for the others.
type Event struct {
	Kind  EventKind
	Name  string
	Floor int
	Dir   Direction
}

type EventSink interface {
	Handle(evt Event)
}
