package lzxd

import (
	"github.com/rs/zerolog"
)

// Tracer is an interface which callers can implement in order to receive
// Events. Events provide feedback on the progress of decompression.
type Tracer interface {
	OnEvent(Event)
}

// Event is a collection of fields that provide feedback on the progress
// of the decode operation in progress. Events are provided to Tracers
// registered with a Decoder via WithTracers.
type Event struct {
	Type         EventType
	OutputOffset uint64
	ChunkLen     int
	Block        *BlockEvent
}

// BlockEvent is a sub-struct that is only present for BlockHeaderEvent.
type BlockEvent struct {
	Type BlockType
	Size uint32
}

// type NoOpTracer {{{

// NoOpTracer is an implementation of Tracer that does nothing.
type NoOpTracer struct{}

// OnEvent fulfills Tracer.
func (NoOpTracer) OnEvent(event Event) {}

var _ Tracer = NoOpTracer{}

// }}}

// type TracerFunc {{{

// TracerFunc is an implementation of Tracer that calls a function.
type TracerFunc func(Event)

// OnEvent fulfills Tracer.
func (tr TracerFunc) OnEvent(event Event) {
	tr(event)
}

var _ Tracer = TracerFunc(nil)

// }}}

// type logTracer {{{

// Log returns a Tracer implementation which will log each Event at Trace
// priority.
func Log(logger zerolog.Logger) Tracer {
	return logTracer{logger: logger}
}

type logTracer struct {
	logger zerolog.Logger
}

// OnEvent fulfills Tracer.
func (tr logTracer) OnEvent(event Event) {
	tr.logger.Trace().
		Interface("event", event).
		Msg("OnEvent")
}

var _ Tracer = logTracer{}

// }}}
