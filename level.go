// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

// Package stwi is a software (bit-banged) master implementation of a
// two-wire synchronous serial bus: a clock line (SCL) and a data line
// (SDA), both open-drain with pull-ups, 7-bit device addressing, ACK/NACK
// per byte, and clock stretching by the slave.
//
// It targets hosts that lack a hardware peripheral for the bus, or need
// one on arbitrary pins. The driver is strictly layered and stateless: it
// retains nothing between calls, allocates nothing, and never panics. All
// hardware access — driving a pin, sampling a pin, delaying a quarter
// bit-period, and running the clock-stretch timeout — is delegated to a
// Platform supplied by the caller. See package host/bitbang for a
// concrete Platform built on real GPIO pins, and package stwi/stwitest
// for a simulated one suitable for unit tests.
package stwi

// Level is the electrical state of a bus line.
//
// Because the bus is open-drain, High from the master is a release, not a
// drive: the line only reaches High because a pull-up resistor pulls it
// there once every driver (master and slave alike) has let go.
type Level bool

const (
	// Low actively pulls the line to ground.
	Low Level = false
	// High releases the line to the pull-up.
	High Level = true
)

func (l Level) String() string {
	if l == Low {
		return "Low"
	}
	return "High"
}
