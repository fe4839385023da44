// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwi

// Start generates a start or repeated-start condition.
//
// Exposed for callers composing their own transactions out of the
// framing and byte primitives instead of using Write/Read; most callers
// want Write or Read instead.
func (b *Bus) Start() error { return start(b.Platform) }

// Stop generates a stop condition.
func (b *Bus) Stop() error { return stop(b.Platform) }

// SendByte transmits one byte MSB-first and returns ErrNACK if the slave
// declines to acknowledge it.
func (b *Bus) SendByte(v byte) error { return sendByte(b.Platform, v) }

// RecvByte receives one byte MSB-first and sends the requested
// acknowledgement bit.
func (b *Bus) RecvByte(ack bool) (byte, error) { return recvByte(b.Platform, ack) }
