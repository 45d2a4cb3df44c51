package types

import (
	"github.com/google/uuid"
)

type Direction int

const (
	Up   Direction = 1
	Down Direction = -1
	None Direction = 0
)

// Swap reverses Up and Down. None has no opposite and stays None.
func (d Direction) Swap() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case None:
		return "None"
	}
	return "Unknown"
}

// Person is a passenger waiting for, or riding, the car.
type Person struct {
	ID          uuid.UUID
	Name        string
	Destination int
}

func NewPerson(name string, destination int) Person {
	return Person{
		ID:          uuid.New(),
		Name:        name,
		Destination: destination,
	}
}

// Classify returns the direction the person must travel from currentFloor.
func (p Person) Classify(currentFloor int) Direction {
	switch {
	case currentFloor < p.Destination:
		return Up
	case currentFloor > p.Destination:
		return Down
	}
	return None
}
