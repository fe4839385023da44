// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwi

import "errors"

// ErrStretch indicates the slave held SCL low past the Platform's
// clock-stretch timeout budget, at a point where the master expected the
// line to release. It can mean a hung slave, or a Platform with
// stretching disabled encountering any slave stretch at all.
var ErrStretch = errors.New("stwi: clock stretch timeout")

// ErrNACK indicates the slave did not acknowledge the most recently
// transmitted byte. Only possible at the Addr, Reg, or Data (write
// direction) stages.
var ErrNACK = errors.New("stwi: NACK")

// Stage identifies the phase a transaction had reached when it ended.
type Stage int

const (
	// StageStart is generating the start or repeated-start condition.
	StageStart Stage = iota
	// StageAddr is sending the 7-bit device address plus R/W bit.
	StageAddr
	// StageReg is sending the register address bytes.
	StageReg
	// StageData is sending or receiving the payload.
	StageData
	// StageStop is generating the stop condition.
	StageStop
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "Start"
	case StageAddr:
		return "Addr"
	case StageReg:
		return "Reg"
	case StageData:
		return "Data"
	case StageStop:
		return "Stop"
	default:
		return "Stage(?)"
	}
}

// RegWidth is the width of a device's internal register address.
type RegWidth int

const (
	// RegNone addresses the device directly: no register bytes are sent,
	// even if a non-zero register value is supplied to Write or Read.
	RegNone RegWidth = iota
	// RegByte sends one register address byte.
	RegByte
	// RegWord sends two register address bytes, big-endian on the wire.
	RegWord
)

// Result is the outcome of a Write or Read transaction.
//
// Err is nil on success. Stage is the phase reached when the transaction
// ended: on success this is always StageStop. DataSize is the count of
// payload bytes successfully transferred before the outcome; it never
// exceeds the requested payload length, and equals it exactly when Err is
// nil.
type Result struct {
	Err      error
	Stage    Stage
	DataSize int
}
