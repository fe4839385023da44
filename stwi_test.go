// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwi_test

import (
	"strings"
	"testing"

	"github.com/odolgy/stwi"
	"github.com/odolgy/stwi/stwitest"
)

func TestStart(t *testing.T) {
	p := stwitest.NewPlatform()
	b := stwi.NewBus(p)
	if err := b.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got, want := p.SCL.Waveform(), "^^^\\"; got != want {
		t.Errorf("SCL waveform = %q, want %q", got, want)
	}
	if got, want := p.SDA.Waveform(), "^^\\_"; got != want {
		t.Errorf("SDA waveform = %q, want %q", got, want)
	}
	if p.Ticks != 4 {
		t.Errorf("Ticks = %d, want 4 (no clock stretching expected)", p.Ticks)
	}
}

func TestStop(t *testing.T) {
	p := stwitest.NewPlatform()
	b := stwi.NewBus(p)
	if err := b.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if got, want := p.SCL.Waveform(), "^^^"; got != want {
		t.Errorf("SCL waveform = %q, want %q", got, want)
	}
	if got, want := p.SDA.Waveform(), "\\_/"; got != want {
		t.Errorf("SDA waveform = %q, want %q", got, want)
	}
}

func TestStartStretchThenRelease(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SCL.In = "__" // slave holds SCL low for two quarter periods, then releases
	b := stwi.NewBus(p)
	if err := b.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if p.Ticks <= 4 {
		t.Errorf("Ticks = %d, want more than 4 (stretch should have cost extra quarter periods)", p.Ticks)
	}
}

func TestStartStretchTimeout(t *testing.T) {
	p := stwitest.NewPlatform()
	p.StretchBudget = 4
	p.SCL.In = strings.Repeat("_", 64) // slave never releases SCL
	b := stwi.NewBus(p)
	if err := b.Start(); err != stwi.ErrStretch {
		t.Fatalf("Start err = %v, want ErrStretch", err)
	}
}

func TestSendByteAck(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptAckByte(true)
	b := stwi.NewBus(p)
	if err := b.SendByte(0xA5); err != nil {
		t.Fatalf("SendByte: %v", err)
	}
}

func TestSendByteNack(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptAckByte(false)
	b := stwi.NewBus(p)
	if err := b.SendByte(0xA5); err != stwi.ErrNACK {
		t.Fatalf("SendByte err = %v, want ErrNACK", err)
	}
}

func TestRecvByteAck(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptReadByte(0xA5)
	b := stwi.NewBus(p)
	v, err := b.RecvByte(true)
	if err != nil {
		t.Fatalf("RecvByte: %v", err)
	}
	if v != 0xA5 {
		t.Errorf("RecvByte = 0x%02x, want 0xa5", v)
	}
}

// TestWriteRegWord exercises scenario 5: a register-addressed write to a
// 16-bit register, fully ACKed.
func TestWriteRegWord(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptStart() +
		stwitest.ScriptAckBytes(true, true, true, true, true) +
		stwitest.ScriptStop()
	b := stwi.NewBus(p)

	res := b.Write(0x50, stwi.RegWord, 0x1234, []byte{0xDE, 0xAD})
	if res.Err != nil {
		t.Fatalf("Write: %v (stage %v, sent %d)", res.Err, res.Stage, res.DataSize)
	}
	if res.Stage != stwi.StageStop {
		t.Errorf("Stage = %v, want StageStop", res.Stage)
	}
	if res.DataSize != 2 {
		t.Errorf("DataSize = %d, want 2", res.DataSize)
	}
}

// TestReadRegByte exercises scenario 6: a register-addressed read of a
// byte-wide register, two data bytes, with a repeated start between the
// register phase and the data phase.
func TestReadRegByte(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptStart() +
		stwitest.ScriptAckBytes(true, true) +
		stwitest.ScriptStart() +
		stwitest.ScriptAckByte(true) +
		stwitest.ScriptReadBytes(0x11, 0x22) +
		stwitest.ScriptStop()
	b := stwi.NewBus(p)

	buf := make([]byte, 2)
	res := b.Read(0x68, stwi.RegByte, 0x00, buf)
	if res.Err != nil {
		t.Fatalf("Read: %v (stage %v, received %d)", res.Err, res.Stage, res.DataSize)
	}
	if res.DataSize != 2 {
		t.Errorf("DataSize = %d, want 2", res.DataSize)
	}
	if buf[0] != 0x11 || buf[1] != 0x22 {
		t.Errorf("buf = %#v, want [0x11 0x22]", buf)
	}
}

// TestReadZeroLength exercises the zero-length read edge case: the full
// framing still runs, usable as a bare address probe.
func TestReadZeroLength(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptStart() +
		stwitest.ScriptAckByte(true) + // address, write direction
		stwitest.ScriptStart() +
		stwitest.ScriptAckByte(true) + // address, read direction
		stwitest.ScriptStop()
	b := stwi.NewBus(p)

	res := b.Read(0x68, stwi.RegNone, 0, nil)
	if res.Err != nil {
		t.Fatalf("Read: %v", res.Err)
	}
	if res.Stage != stwi.StageStop {
		t.Errorf("Stage = %v, want StageStop", res.Stage)
	}
	if res.DataSize != 0 {
		t.Errorf("DataSize = %d, want 0", res.DataSize)
	}
}

// TestWriteNackOnAddress exercises scenario 7: the slave never
// acknowledges its address, so the transaction aborts before the
// register phase ever starts.
func TestWriteNackOnAddress(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptStart() + stwitest.ScriptAckByte(false)
	b := stwi.NewBus(p)

	res := b.Write(0x50, stwi.RegByte, 0x00, []byte{0x01})
	if res.Err != stwi.ErrNACK {
		t.Fatalf("Write err = %v, want ErrNACK", res.Err)
	}
	if res.Stage != stwi.StageAddr {
		t.Errorf("Stage = %v, want StageAddr", res.Stage)
	}
	if res.DataSize != 0 {
		t.Errorf("DataSize = %d, want 0", res.DataSize)
	}
}

// TestWriteNackMidPayload exercises scenario 8: the slave stops
// acknowledging partway through the payload.
func TestWriteNackMidPayload(t *testing.T) {
	p := stwitest.NewPlatform()
	p.SDA.In = stwitest.ScriptStart() +
		stwitest.ScriptAckBytes(true, true) + // address, register
		stwitest.ScriptAckByte(true) + // first payload byte
		stwitest.ScriptAckByte(false) // second payload byte: NACK
	b := stwi.NewBus(p)

	res := b.Write(0x50, stwi.RegByte, 0x00, []byte{0x01, 0x02, 0x03})
	if res.Err != stwi.ErrNACK {
		t.Fatalf("Write err = %v, want ErrNACK", res.Err)
	}
	if res.Stage != stwi.StageData {
		t.Errorf("Stage = %v, want StageData", res.Stage)
	}
	if res.DataSize != 1 {
		t.Errorf("DataSize = %d, want 1 (one byte acked before the NACK)", res.DataSize)
	}
}
