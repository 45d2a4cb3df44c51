package utils

import (
	"bytes"
	"reflect"
	"testing"

	"sweepsim/src/building"
	"sweepsim/src/sim"
	"sweepsim/src/types"
)

func TestForEachPerson(t *testing.T) {
	b, _ := building.New(3)
	b.AddPerson(0, types.NewPerson("up", 2))
	b.AddPerson(2, types.NewPerson("down", 1))
	b.Floors[1].DepositArrived(types.NewPerson("done", 1))

	type visit struct {
		floor int
		queue QueueKind
		name  string
	}
	var got []visit
	ForEachPerson(b, func(floor int, queue QueueKind, person types.Person) {
		got = append(got, visit{floor, queue, person.Name})
	})

	want := []visit{
		{0, QueueUp, "up"},
		{1, QueueArrived, "done"},
		{2, QueueDown, "down"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Visited %+v, want %+v", got, want)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, sim.Result{Ticks: 5, Enqueued: 1, Boarded: 1, Delivered: 1, Reversals: 1, MovesBeforeLastDelivery: 4})
	want := "Ticks: 5 | Delivered: 1/1 | Boarded: 1 | Reversals: 1 | Moves before last delivery: 4\n"
	if buf.String() != want {
		t.Errorf("PrintSummary = %q, want %q", buf.String(), want)
	}
}
