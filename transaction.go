// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwi

// Write performs a register-addressed write transaction: Start, the 7-bit
// address with the write bit, the register address (per width), the
// payload, then Stop.
//
// addr is the 7-bit device address (0..127); the caller is responsible
// for keeping it in range, as the wire format has no room for more. If
// width is RegNone, reg is ignored and no register bytes are sent, even
// if reg is non-zero. The register address, when sent, goes out
// big-endian (high byte first).
//
// On any sub-operation failure, Result.Stage records the phase that was
// in progress, Result.DataSize records how many payload bytes were
// already sent, and the remaining phases — including Stop — are skipped.
// Bus recovery, if wanted, is the caller's responsibility.
func (b *Bus) Write(addr byte, width RegWidth, reg uint16, payload []byte) Result {
	var res Result

	res.Stage = StageStart
	if err := start(b.Platform); err != nil {
		res.Err = err
		return res
	}

	res.Stage = StageAddr
	if err := sendByte(b.Platform, addr<<1); err != nil {
		res.Err = err
		return res
	}

	res.Stage = StageReg
	if err := writeReg(b.Platform, width, reg); err != nil {
		res.Err = err
		return res
	}

	res.Stage = StageData
	for _, d := range payload {
		if err := sendByte(b.Platform, d); err != nil {
			res.Err = err
			return res
		}
		res.DataSize++
	}

	res.Stage = StageStop
	if err := stop(b.Platform); err != nil {
		res.Err = err
		return res
	}
	return res
}

// Read performs a register-addressed read transaction: Start, the 7-bit
// address with the write bit, the register address (per width), a
// repeated Start, the 7-bit address with the read bit, the payload, then
// Stop.
//
// Every byte but the last is ACKed by the master to request more; the
// last is NACKed. If len(buf) == 0, the full Start/Addr/Reg/repeated-
// Start/Addr/Stop sequence still runs with zero data-phase iterations —
// this is intentional, and usable as an address probe.
//
// Failure semantics mirror Write: Result.Stage and Result.DataSize record
// how far the transaction got, already-received bytes remain valid in
// buf, and remaining phases are skipped.
func (b *Bus) Read(addr byte, width RegWidth, reg uint16, buf []byte) Result {
	var res Result

	res.Stage = StageStart
	if err := start(b.Platform); err != nil {
		res.Err = err
		return res
	}

	res.Stage = StageAddr
	if err := sendByte(b.Platform, addr<<1); err != nil {
		res.Err = err
		return res
	}

	res.Stage = StageReg
	if err := writeReg(b.Platform, width, reg); err != nil {
		res.Err = err
		return res
	}

	res.Stage = StageStart
	if err := start(b.Platform); err != nil {
		res.Err = err
		return res
	}

	res.Stage = StageAddr
	if err := sendByte(b.Platform, addr<<1|1); err != nil {
		res.Err = err
		return res
	}

	res.Stage = StageData
	for i := range buf {
		remaining := len(buf) - i - 1
		v, err := recvByte(b.Platform, remaining > 0)
		if err != nil {
			res.Err = err
			return res
		}
		buf[i] = v
		res.DataSize++
	}

	res.Stage = StageStop
	if err := stop(b.Platform); err != nil {
		res.Err = err
		return res
	}
	return res
}

// writeReg sends the register address bytes for width, big-endian.
func writeReg(p Platform, width RegWidth, reg uint16) error {
	if width == RegWord {
		if err := sendByte(p, byte(reg>>8)); err != nil {
			return err
		}
	}
	if width != RegNone {
		if err := sendByte(p, byte(reg)); err != nil {
			return err
		}
	}
	return nil
}
