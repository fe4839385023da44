// Derived from periph.io/x/periph's host/cpu package, Copyright 2016 The
// Periph Authors, licensed under the Apache License, Version 2.0
// (http://www.apache.org/licenses/LICENSE-2.0); see
// https://github.com/google/periph/blob/master/LICENSE for that
// license's full text. Unmodified from upstream.

package cpu

import (
	"syscall"
	"time"
)

const isLinux = true

func nanospinLinux(d time.Duration) {
	// runtime.nanotime() is not exported so it cannot be used to busy loop for
	// very short sleep (10µs or less).
	time := syscall.NsecToTimespec(d.Nanoseconds())
	leftover := syscall.Timespec{}
	for syscall.Nanosleep(&time, &leftover) != nil {
		time = leftover
	}
}
