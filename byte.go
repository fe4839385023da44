// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwi

// sendByte transmits one byte MSB-first, then samples the slave's
// acknowledgement bit. A Low ACK bit is success; a High ACK bit is
// ErrNACK. If any bit operation returns ErrStretch, it is propagated
// immediately and the ACK is never attempted.
func sendByte(p Platform, b byte) error {
	for i := 0; i < 8; i++ {
		bit := Low
		if b&(1<<uint(7-i)) != 0 {
			bit = High
		}
		if err := sendBit(p, bit); err != nil {
			return err
		}
	}
	ack, err := recvBit(p)
	if err != nil {
		return err
	}
	if ack != Low {
		return ErrNACK
	}
	return nil
}

// recvByte receives one byte MSB-first, then sends an acknowledgement
// bit: Low (ACK) if ack is true, requesting more bytes; High (NACK) if
// ack is false, for the final byte of a transfer.
func recvByte(p Platform, ack bool) (byte, error) {
	var b byte
	for i := 0; i < 8; i++ {
		bit, err := recvBit(p)
		if err != nil {
			return 0, err
		}
		if bit == High {
			b |= 1 << uint(7-i)
		}
	}
	bit := High
	if ack {
		bit = Low
	}
	if err := sendBit(p, bit); err != nil {
		return 0, err
	}
	return b, nil
}
