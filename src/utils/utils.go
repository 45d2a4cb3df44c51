package utils

import (
	"fmt"
	"io"

	"sweepsim/src/building"
	"sweepsim/src/sim"
	"sweepsim/src/types"
)

// QueueKind names the three per-floor bins.
type QueueKind int

const (
	QueueUp QueueKind = iota
	QueueDown
	QueueArrived
)

// ForEachPerson is a helper function that reduces indentation when visiting every
// passenger held by the building's floors.
func ForEachPerson(b *building.Building, action func(floor int, queue QueueKind, person types.Person)) {
	for floor := range b.Floors {
		for _, person := range b.Floors[floor].Up {
			action(floor, QueueUp, person)
		}
		for _, person := range b.Floors[floor].Down {
			action(floor, QueueDown, person)
		}
		for _, person := range b.Floors[floor].Arrived {
			action(floor, QueueArrived, person)
		}
	}
}

// PrintSummary is called once the run has finished.
func PrintSummary(w io.Writer, result sim.Result) {
	fmt.Fprintf(w, "Ticks: %d | Delivered: %d/%d | Boarded: %d | Reversals: %d | Moves before last delivery: %d\n",
		result.Ticks, result.Delivered, result.Enqueued, result.Boarded, result.Reversals, result.MovesBeforeLastDelivery)
}
