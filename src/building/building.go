package building

import (
	"errors"
	"fmt"

	"sweepsim/src/types"
)

var (
	ErrInvalidFloorCount = errors.New("building needs at least one floor")
	ErrFloorOutOfRange   = errors.New("floor out of range")
)

// Building is the fixed stack of floors the car serves. Floor indices run 0..FloorCount-1.
type Building struct {
	FloorCount int
	Floors     []Floor
}

func New(floorCount int) (*Building, error) {
	if floorCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFloorCount, floorCount)
	}
	return &Building{
		FloorCount: floorCount,
		Floors:     make([]Floor, floorCount),
	}, nil
}

func (b *Building) ValidFloor(floor int) bool {
	return floor >= 0 && floor < b.FloorCount
}

// IsEmpty reports whether no floor has anyone waiting.
func (b *Building) IsEmpty() bool {
	for i := range b.Floors {
		if b.Floors[i].HasWaiting() {
			return false
		}
	}
	return true
}

// AddPerson files person onto the queue at start matching their travel direction.
// Someone already on their destination floor is dropped and false is returned.
func (b *Building) AddPerson(start int, person types.Person) (bool, error) {
	if !b.ValidFloor(start) {
		return false, fmt.Errorf("%w: start floor %d for %s (floors 0-%d)", ErrFloorOutOfRange, start, person.Name, b.FloorCount-1)
	}
	if !b.ValidFloor(person.Destination) {
		return false, fmt.Errorf("%w: destination %d for %s (floors 0-%d)", ErrFloorOutOfRange, person.Destination, person.Name, b.FloorCount-1)
	}

	switch person.Classify(start) {
	case types.Up:
		b.Floors[start].EnqueueUp(person)
	case types.Down:
		b.Floors[start].EnqueueDown(person)
	default:
		return false, nil
	}
	return true, nil
}

// Delivered counts everyone in the arrived bins.
func (b *Building) Delivered() int {
	count := 0
	for i := range b.Floors {
		count += len(b.Floors[i].Arrived)
	}
	return count
}
