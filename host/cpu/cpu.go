// Derived from periph.io/x/periph's host/cpu package, Copyright 2016 The
// Periph Authors, licensed under the Apache License, Version 2.0
// (http://www.apache.org/licenses/LICENSE-2.0); see
// https://github.com/google/periph/blob/master/LICENSE for that
// license's full text. Modifications in this file are this project's
// own and covered by its own LICENSE file.

// Package cpu provides the busy-wait primitive used to time the bus's
// quarter-period delay.
//
// Bit-banging a synchronous serial bus requires sub-microsecond delays that
// time.Sleep() cannot provide reliably; the OS scheduler's wake latency
// dwarfs the delay itself at the speeds this bus targets.
package cpu

import (
	"time"
)

// Nanospin waits for a short amount of time: on Linux through the
// nanosleep syscall, elsewhere by doing a busy loop.
//
// This function should be called with durations of 10µs or less.
func Nanospin(d time.Duration) {
	if isLinux {
		nanospinLinux(d)
	} else {
		nanospinTime(d)
	}
}

func nanospinTime(d time.Duration) {
	// TODO(maruel): That's not optimal; it's actually pretty bad.
	// time.Sleep() sleeps for really too long, calling it repeatedly with
	// minimal value will give the caller a wake rate of 5KHz or so, depending on
	// the host. This makes it useless for bitbanging protocol implementations.
	for start := time.Now(); time.Since(start) < d; {
	}
}
