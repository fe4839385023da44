// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwi

// Platform is the physical-layer adapter a Bus is built on.
//
// Every method is expected to be non-failing and to return promptly;
// Delay, TimeoutStart and TimeoutCheck together express the bus's timing
// budget, so a Platform that blocks unpredictably defeats clock-stretch
// detection. Implementations carry their own context (a pin number, a
// file descriptor, a register base address, ...) as fields or closures;
// unlike the reference C implementation, no bus handle is threaded back
// into these calls, since a method receiver already gives an
// implementation everything stwi_dev_write/stwi_dev_read's bus parameter
// existed to provide.
type Platform interface {
	// WriteSCL drives the clock line: Low actively pulls it to ground,
	// High releases it to the pull-up.
	WriteSCL(Level)
	// WriteSDA drives the data line with the same convention as WriteSCL.
	WriteSDA(Level)
	// ReadSCL samples the clock line's current electrical level.
	ReadSCL() Level
	// ReadSDA samples the data line's current electrical level.
	ReadSDA() Level
	// Delay busy-waits one quarter of the target bit period. This sets
	// the bus frequency: bus Hz = 1 / (4 * Delay's duration).
	Delay()
	// TimeoutStart arms the clock-stretch timeout to its full budget.
	TimeoutStart()
	// TimeoutCheck reports whether the clock-stretch budget has not yet
	// expired. A Platform that does not support stretching returns false
	// unconditionally, which makes any low SCL at a stretch-wait point
	// fail immediately with ErrStretch.
	TimeoutCheck() bool
}

// Bus is a two-wire bus master driven through a Platform.
//
// Bus is logically immutable: it carries no state of its own beyond the
// Platform it was built with, and every operation drives the bus fully
// from entry to return. A Bus is not safe for concurrent use — nothing
// prevents two goroutines from interleaving line transitions on the same
// pins — so callers sharing a Bus across goroutines must serialize access
// themselves (see host/bitbang.Bus for a concrete adapter that does this
// with a mutex around the pins it owns).
type Bus struct {
	Platform Platform
}

// NewBus wraps a Platform in a Bus.
func NewBus(p Platform) *Bus {
	return &Bus{Platform: p}
}
