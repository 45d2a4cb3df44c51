package building

import "sweepsim/src/types"

// Floor holds the passengers waiting on one floor and those delivered to it.
type Floor struct {
	Up      []types.Person
	Down    []types.Person
	Arrived []types.Person
}

func (f *Floor) EnqueueUp(person types.Person) {
	f.Up = append(f.Up, person)
}

func (f *Floor) EnqueueDown(person types.Person) {
	f.Down = append(f.Down, person)
}

// DepositArrived puts a delivered passenger in the arrived bin. Nobody consumes the bin.
func (f *Floor) DepositArrived(person types.Person) {
	f.Arrived = append(f.Arrived, person)
}

// HasWaiting reports whether anyone is queued to board. Arrived passengers do not count.
func (f *Floor) HasWaiting() bool {
	return len(f.Up) > 0 || len(f.Down) > 0
}

// Queue returns the waiting queue that boards when the car travels in dir.
func (f *Floor) Queue(dir types.Direction) []types.Person {
	switch dir {
	case types.Up:
		return f.Up
	case types.Down:
		return f.Down
	}
	return nil
}

// PopFront removes and returns the head of the queue matching dir.
func (f *Floor) PopFront(dir types.Direction) (types.Person, bool) {
	var queue *[]types.Person
	switch dir {
	case types.Up:
		queue = &f.Up
	case types.Down:
		queue = &f.Down
	default:
		return types.Person{}, false
	}
	if len(*queue) == 0 {
		return types.Person{}, false
	}
	person := (*queue)[0]
	*queue = (*queue)[1:]
	return person, true
}
