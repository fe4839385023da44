// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

// Package reg adds register-oriented helpers on top of a stwi.Bus, for
// devices that expose their state as a flat array of 8, 16, 32 or 64 bit
// registers addressed by a single byte or word, the most common shape
// for simple sensors and peripherals.
package reg

import (
	"encoding/binary"
	"errors"

	"github.com/odolgy/stwi"
)

// Dev is a device on a stwi.Bus that exposes memory-mapped registers.
//
// Width controls how many register address bytes Read and Write put on
// the wire ahead of the data; it has nothing to do with the width of
// the register values themselves, which Order serializes.
type Dev struct {
	Bus   *stwi.Bus
	Addr  byte
	Width stwi.RegWidth
	// Order specifies the binary encoding of multi-byte register values.
	// It is expected to be either binary.BigEndian or binary.LittleEndian.
	// ReadUint16/32/64 and WriteUint16/32/64 return an error if it is nil.
	Order binary.ByteOrder
}

// ErrNoByteOrder is returned by the multi-byte accessors when Order is nil.
var ErrNoByteOrder = errors.New("reg: no byte order configured")

// ReadUint8 reads an 8 bit register.
func (d *Dev) ReadUint8(reg uint16) (uint8, error) {
	var v [1]byte
	res := d.Bus.Read(d.Addr, d.Width, reg, v[:])
	return v[0], res.Err
}

// WriteUint8 writes an 8 bit register.
func (d *Dev) WriteUint8(reg uint16, v uint8) error {
	res := d.Bus.Write(d.Addr, d.Width, reg, []byte{v})
	return res.Err
}

// ReadUint16 reads a 16 bit register.
func (d *Dev) ReadUint16(reg uint16) (uint16, error) {
	if d.Order == nil {
		return 0, ErrNoByteOrder
	}
	var v [2]byte
	res := d.Bus.Read(d.Addr, d.Width, reg, v[:])
	return d.Order.Uint16(v[:]), res.Err
}

// WriteUint16 writes a 16 bit register.
func (d *Dev) WriteUint16(reg uint16, v uint16) error {
	if d.Order == nil {
		return ErrNoByteOrder
	}
	var a [2]byte
	d.Order.PutUint16(a[:], v)
	res := d.Bus.Write(d.Addr, d.Width, reg, a[:])
	return res.Err
}

// ReadUint32 reads a 32 bit register.
func (d *Dev) ReadUint32(reg uint16) (uint32, error) {
	if d.Order == nil {
		return 0, ErrNoByteOrder
	}
	var v [4]byte
	res := d.Bus.Read(d.Addr, d.Width, reg, v[:])
	return d.Order.Uint32(v[:]), res.Err
}

// WriteUint32 writes a 32 bit register.
func (d *Dev) WriteUint32(reg uint16, v uint32) error {
	if d.Order == nil {
		return ErrNoByteOrder
	}
	var a [4]byte
	d.Order.PutUint32(a[:], v)
	res := d.Bus.Write(d.Addr, d.Width, reg, a[:])
	return res.Err
}

// ReadUint64 reads a 64 bit register.
func (d *Dev) ReadUint64(reg uint16) (uint64, error) {
	if d.Order == nil {
		return 0, ErrNoByteOrder
	}
	var v [8]byte
	res := d.Bus.Read(d.Addr, d.Width, reg, v[:])
	return d.Order.Uint64(v[:]), res.Err
}

// WriteUint64 writes a 64 bit register.
func (d *Dev) WriteUint64(reg uint16, v uint64) error {
	if d.Order == nil {
		return ErrNoByteOrder
	}
	var a [8]byte
	d.Order.PutUint64(a[:], v)
	res := d.Bus.Write(d.Addr, d.Width, reg, a[:])
	return res.Err
}
