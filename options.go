package lzxd

import (
	"github.com/chronos-tachyon/assert"
)

// Option represents a configuration option for New.
type Option func(*options)

type options struct {
	tracers []Tracer
}

// WithTracers specifies the list of Tracer instances which will receive
// Events as decompression proceeds. Completely replaces any previous
// list.
func WithTracers(tracers ...Tracer) Option {
	for _, tr := range tracers {
		assert.NotNil(&tr)
	}
	if len(tracers) == 0 {
		tracers = nil
	} else {
		tmp := make([]Tracer, len(tracers))
		copy(tmp, tracers)
		tracers = tmp
	}
	return func(o *options) { o.tracers = tracers }
}
