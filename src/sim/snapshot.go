package sim

import (
	"fmt"

	"sweepsim/src/building"
	"sweepsim/src/elev"
	"sweepsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Snapshot is a detached copy of the simulation state between ticks.
type Snapshot struct {
	Tick      int
	Direction types.Direction
	Building  building.Building
	Elevator  elev.Elevator
}

// Snapshot deep-copies the building and the car so the caller can inspect or
// mutate them without touching the live run.
func (s *Sim) Snapshot() (Snapshot, error) {
	snap := Snapshot{
		Tick:      s.result.Ticks,
		Direction: s.dir,
	}
	if err := deepcopy.Copy(&snap.Building, s.building); err != nil {
		return Snapshot{}, fmt.Errorf("copy building: %w", err)
	}
	if err := deepcopy.Copy(&snap.Elevator, s.elevator); err != nil {
		return Snapshot{}, fmt.Errorf("copy elevator: %w", err)
	}
	return snap, nil
}
