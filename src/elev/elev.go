package elev

import (
	"errors"
	"fmt"

	"sweepsim/src/types"
)

var ErrInvalidCapacity = errors.New("elevator capacity must be at least one")

// Elevator is the car. len(Occupants) never exceeds Capacity.
type Elevator struct {
	Floor     int
	Capacity  int
	Occupants []types.Person
}

func New(capacity int) (*Elevator, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	elevator := &Elevator{
		Capacity:  capacity,
		Occupants: make([]types.Person, 0, capacity),
	}
	return elevator, nil
}

// SetFloor places the car on floor without moving it. The caller validates floor.
func (e *Elevator) SetFloor(floor int) {
	e.Floor = floor
}

func (e *Elevator) HasSpace() bool {
	return len(e.Occupants) < e.Capacity
}

func (e *Elevator) IsEmpty() bool {
	return len(e.Occupants) == 0
}

// Advance moves the car one floor in dir. None sends the car back to floor 0.
func (e *Elevator) Advance(dir types.Direction) {
	switch dir {
	case types.Up:
		e.Floor++
	case types.Down:
		e.Floor--
	default:
		e.Floor = 0
	}
}

// Board adds person to the car. It reports false, and leaves the car untouched, when full.
func (e *Elevator) Board(person types.Person) bool {
	if !e.HasSpace() {
		return false
	}
	e.Occupants = append(e.Occupants, person)
	return true
}

// Alight removes every occupant whose destination is floor and returns them.
// Both the remaining occupants and the returned ones keep their boarding order.
func (e *Elevator) Alight(floor int) []types.Person {
	var leaving []types.Person
	staying := e.Occupants[:0]
	for _, person := range e.Occupants {
		if person.Destination == floor {
			leaving = append(leaving, person)
		} else {
			staying = append(staying, person)
		}
	}
	clear(e.Occupants[len(staying):])
	e.Occupants = staying
	return leaving
}
