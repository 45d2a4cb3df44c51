package sim

import (
	"fmt"
	"io"
	"log/slog"

	"sweepsim/src/elev"
	"sweepsim/src/types"
)

type discardSink struct{}

func (discardSink) Handle(types.Event) {}

// Discard drops every event.
var Discard types.EventSink = discardSink{}

// SlogSink writes each event as a debug record.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Handle(evt types.Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	switch evt.Kind {
	case types.Move:
		logger.Debug("Elevator moving", "direction", evt.Dir, "from", evt.Floor)
	default:
		logger.Debug("Passenger "+evt.Kind.String(), "name", evt.Name, "floor", evt.Floor)
	}
}

// ConsoleSink prints one human-readable line per event.
type ConsoleSink struct {
	W io.Writer
}

func (c ConsoleSink) Handle(evt types.Event) {
	fmt.Fprintln(c.W, elev.FormatEvent(evt))
}

// Recorder keeps every event in order.
type Recorder struct {
	Events []types.Event
}

func (r *Recorder) Handle(evt types.Event) {
	r.Events = append(r.Events, evt)
}

// Kinds returns only the events of kind k.
func (r *Recorder) Kinds(k types.EventKind) []types.Event {
	var out []types.Event
	for _, evt := range r.Events {
		if evt.Kind == k {
			out = append(out, evt)
		}
	}
	return out
}

// MultiSink fans every event out to each sink in order.
type MultiSink []types.EventSink

func (m MultiSink) Handle(evt types.Event) {
	for _, sink := range m {
		sink.Handle(evt)
	}
}
