// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package reg_test

import (
	"encoding/binary"
	"testing"

	"github.com/odolgy/stwi"
	"github.com/odolgy/stwi/reg"
	"github.com/odolgy/stwi/stwitest"
)

func newDev(p *stwitest.Platform) *reg.Dev {
	return &reg.Dev{
		Bus:   stwi.NewBus(p),
		Addr:  0x50,
		Width: stwi.RegByte,
		Order: binary.BigEndian,
	}
}

func TestWriteUint8(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptStart() + stwitest.ScriptAckBytes(true, true, true) + stwitest.ScriptStop()
	if err := newDev(p).WriteUint8(0x00, 0x42); err != nil {
		t.Fatalf("WriteUint8: %v", err)
	}
}

func TestReadUint16(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptStart() +
		stwitest.ScriptAckBytes(true, true) +
		stwitest.ScriptStart() +
		stwitest.ScriptAckByte(true) +
		stwitest.ScriptReadBytes(0x12, 0x34) +
		stwitest.ScriptStop()
	v, err := newDev(p).ReadUint16(0x00)
	if err != nil {
		t.Fatalf("ReadUint16: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("ReadUint16 = 0x%04x, want 0x1234", v)
	}
}

func TestWriteUint64NoByteOrder(t *testing.T) {
	d := &reg.Dev{Bus: stwi.NewBus(stwitest.NewPlatform()), Addr: 0x50, Width: stwi.RegByte}
	if err := d.WriteUint64(0x00, 1); err != reg.ErrNoByteOrder {
		t.Fatalf("WriteUint64 err = %v, want ErrNoByteOrder", err)
	}
}

func TestReadUint64(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptStart() +
		stwitest.ScriptAckBytes(true, true) +
		stwitest.ScriptStart() +
		stwitest.ScriptAckByte(true) +
		stwitest.ScriptReadBytes(0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08) +
		stwitest.ScriptStop()
	v, err := newDev(p).ReadUint64(0x00)
	if err != nil {
		t.Fatalf("ReadUint64: %v", err)
	}
	if v != 0x0102030405060708 {
		t.Errorf("ReadUint64 = 0x%016x, want 0x0102030405060708", v)
	}
}
