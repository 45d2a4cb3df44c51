// Package sim runs the single-car sweep simulation one tick at a time.
package sim

import (
	"log/slog"

	"sweepsim/src/building"
	"sweepsim/src/elev"
	"sweepsim/src/types"
)

// Result summarises a run. MovesBeforeLastDelivery counts the moves made before the
// tick on which the final passenger alighted.
type Result struct {
	Ticks                   int
	Enqueued                int
	Boarded                 int
	Delivered               int
	Reversals               int
	MovesBeforeLastDelivery int
}

// Sim owns the building and the car for the length of a run.
type Sim struct {
	building *building.Building
	elevator *elev.Elevator
	dir      types.Direction
	sink     types.EventSink
	result   Result
}

// New starts the car travelling Up. A nil sink discards events.
func New(b *building.Building, e *elev.Elevator, sink types.EventSink) *Sim {
	if sink == nil {
		sink = Discard
	}
	return &Sim{
		building: b,
		elevator: e,
		dir:      types.Up,
		sink:     sink,
	}
}

// AddPerson queues person on floor start. It reports false when the person is
// already on their destination floor and needs no ride.
func (s *Sim) AddPerson(start int, person types.Person) (bool, error) {
	enqueued, err := s.building.AddPerson(start, person)
	if err != nil {
		return false, err
	}
	if enqueued {
		s.result.Enqueued++
	} else {
		slog.Debug("Dropping passenger already at destination", "name", person.Name, "floor", start)
	}
	return enqueued, nil
}

// Done reports whether nobody is waiting and the car is empty.
func (s *Sim) Done() bool {
	return s.building.IsEmpty() && s.elevator.IsEmpty()
}

func (s *Sim) Direction() types.Direction {
	return s.dir
}

func (s *Sim) Result() Result {
	return s.result
}

// Run steps until Done and returns the number of ticks taken.
func (s *Sim) Run() int {
	slog.Debug("Simulation starting",
		"floors", s.building.FloorCount,
		"capacity", s.elevator.Capacity,
		"startFloor", s.elevator.Floor,
		"waiting", s.result.Enqueued)

	for s.Step() {
	}

	slog.Info("Simulation finished",
		"ticks", s.result.Ticks,
		"delivered", s.result.Delivered,
		"reversals", s.result.Reversals)
	return s.result.Ticks
}

// Step runs one tick: reverse at a boundary, let passengers off, let passengers on,
// then move. It reports false without touching any state once the run is Done.
func (s *Sim) Step() bool {
	if s.Done() {
		return false
	}

	if !s.canMove(s.dir) {
		s.dir = s.dir.Swap()
		s.result.Reversals++
		slog.Debug("Reversing at boundary", "floor", s.elevator.Floor, "direction", s.dir)
	}

	floorNum := s.elevator.Floor
	floor := &s.building.Floors[floorNum]

	for _, person := range s.elevator.Alight(floorNum) {
		floor.DepositArrived(person)
		s.result.Delivered++
		s.result.MovesBeforeLastDelivery = s.result.Ticks
		s.sink.Handle(types.Event{Kind: types.Disembark, Name: person.Name, Floor: floorNum})
	}

	if s.dir == types.Up || s.dir == types.Down {
		for s.elevator.HasSpace() {
			person, ok := floor.PopFront(s.dir)
			if !ok {
				break
			}
			s.elevator.Board(person)
			s.result.Boarded++
			s.sink.Handle(types.Event{Kind: types.Board, Name: person.Name, Floor: floorNum})
		}
	}

	s.elevator.Advance(s.dir)
	s.result.Ticks++
	s.sink.Handle(types.Event{Kind: types.Move, Floor: floorNum, Dir: s.dir})
	return true
}

func (s *Sim) canMove(dir types.Direction) bool {
	switch dir {
	case types.Up:
		return s.elevator.Floor < s.building.FloorCount-1
	case types.Down:
		return s.elevator.Floor > 0
	}
	return true
}
