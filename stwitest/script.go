// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwitest

import "strings"

// Quarter periods per phase, used to build scripted SDA waveforms that
// line up with stwi's bit/byte/frame primitives. A start or repeated
// start is 4 delays, a stop is 3, and a full byte exchange (8 data bits
// plus one ACK/NACK bit) is 36 -- see bit.go/byte.go/frame.go.
const (
	startTicks = 4
	stopTicks  = 3
	byteTicks  = 9 * 4
)

// ScriptStart returns the slave-side SDA script for one Start or
// repeated-Start: the master drives both lines itself, so the slave
// simply floats.
func ScriptStart() string {
	return strings.Repeat("^", startTicks)
}

// ScriptStop returns the slave-side SDA script for one Stop: like Start,
// the master drives both lines itself.
func ScriptStop() string {
	return strings.Repeat("^", stopTicks)
}

// ScriptAckByte returns the slave-side SDA script to accompany one
// master-transmitted byte (address, register, or write-data): the slave
// floats for the 8 data bits, then, if ack, pulls SDA low for the ACK
// cycle; if !ack, it keeps floating and the master samples its own
// released line as NACK.
func ScriptAckByte(ack bool) string {
	if ack {
		return strings.Repeat("^", 8*4) + "\\___"
	}
	return strings.Repeat("^", byteTicks)
}

// ScriptAckBytes concatenates ScriptAckByte for each element of acks, in
// order.
func ScriptAckBytes(acks ...bool) string {
	var b strings.Builder
	for _, ack := range acks {
		b.WriteString(ScriptAckByte(ack))
	}
	return b.String()
}

// ScriptReadByte returns the slave-side SDA script to drive one byte
// during a master read: the slave holds SDA at each bit's value for its
// whole 4-tick cycle, then floats for the master's ACK/NACK cycle so the
// master's own driven bit is what gets sampled.
func ScriptReadByte(v byte) string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		if v&(1<<uint(7-i)) != 0 {
			b.WriteString("^^^^")
		} else {
			b.WriteString("____")
		}
	}
	b.WriteString("^^^^")
	return b.String()
}

// ScriptReadBytes concatenates ScriptReadByte for each element of vs, in
// order.
func ScriptReadBytes(vs ...byte) string {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(ScriptReadByte(v))
	}
	return b.String()
}
