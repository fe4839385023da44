// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

// Package stwitest is meant to be used to test stwi.Bus drivers and
// callers against a simulated open-drain bus.
//
// Modify a Platform's Wire fields to script slave behavior and inspect
// the recorded waveform, the same way gpiotest.Pin lets a test fake
// hardware edges.
package stwitest

import (
	"github.com/odolgy/stwi"
)

// Wire simulates one open-drain bus line with a pull-up: the level any
// sampler observes is Low iff the master drives Low or the scripted
// slave drives Low, High otherwise.
type Wire struct {
	out  stwi.Level // level the master last drove
	real stwi.Level // level observed at the most recent tick

	// In is the remaining scripted slave waveform, consumed one
	// character per tick (Sample). Recognized characters: '_' and '\'
	// mean the slave drives Low for that sample; '^', '/', and any
	// character once In is exhausted mean the slave releases (High).
	// This is the same alphabet Samples is recorded in.
	In string

	// Samples accumulates one character per tick: '^' (level held
	// High), '_' (level held Low), '/' (rising edge), '\' (falling
	// edge).
	Samples []byte
}

// NewWire returns a Wire idling at High, as the bus does between
// transactions.
func NewWire() *Wire {
	return &Wire{out: stwi.High, real: stwi.High}
}

// Waveform returns the recorded samples as a string.
func (w *Wire) Waveform() string {
	return string(w.Samples)
}

func (w *Wire) scriptedIn() stwi.Level {
	if len(w.In) == 0 {
		return stwi.High
	}
	c := w.In[0]
	w.In = w.In[1:]
	if c == '_' || c == '\\' {
		return stwi.Low
	}
	return stwi.High
}

// sample advances the wire by one quarter period: it merges the
// master's driven level with the scripted slave level, records the
// resulting transition, and updates the level future reads will see.
func (w *Wire) sample() {
	in := w.scriptedIn()
	newReal := stwi.High
	if w.out == stwi.Low || in == stwi.Low {
		newReal = stwi.Low
	}
	var c byte
	switch {
	case w.real == newReal && newReal == stwi.High:
		c = '^'
	case w.real == newReal && newReal == stwi.Low:
		c = '_'
	case w.real != newReal && newReal == stwi.High:
		c = '/'
	default:
		c = '\\'
	}
	w.Samples = append(w.Samples, c)
	w.real = newReal
}

// Platform implements stwi.Platform over two simulated open-drain Wires,
// with a clock-stretch budget expressed in quarter periods.
//
// Modify SCL, SDA, and StretchBudget to script hardware behavior. Build
// one with NewPlatform, which idles both lines High; the zero value has
// no Wires (StretchBudget == 0 means stretching is unsupported — see
// StretchBudget).
type Platform struct {
	SCL, SDA *Wire

	// StretchBudget is the number of quarter periods TimeoutCheck
	// reports true for after TimeoutStart, mirroring the reference test
	// harness's stretch_timer_max. Zero means the platform does not
	// support clock stretching: TimeoutCheck always reports false, so a
	// slave found holding SCL low immediately yields stwi.ErrStretch.
	StretchBudget int

	remaining int
	// Ticks counts every Delay call, for tests asserting on elapsed
	// quarter periods.
	Ticks int
}

// NewPlatform returns a Platform with both lines idling High and a
// generous default stretch budget.
func NewPlatform() *Platform {
	return &Platform{SCL: NewWire(), SDA: NewWire(), StretchBudget: 16}
}

// WriteSCL implements stwi.Platform.
func (p *Platform) WriteSCL(l stwi.Level) { p.SCL.out = l }

// WriteSDA implements stwi.Platform.
func (p *Platform) WriteSDA(l stwi.Level) { p.SDA.out = l }

// ReadSCL implements stwi.Platform.
func (p *Platform) ReadSCL() stwi.Level { return p.SCL.real }

// ReadSDA implements stwi.Platform.
func (p *Platform) ReadSDA() stwi.Level { return p.SDA.real }

// Delay implements stwi.Platform. It advances both wires by one quarter
// period and counts down the stretch-timeout budget, if armed.
func (p *Platform) Delay() {
	p.SCL.sample()
	p.SDA.sample()
	p.Ticks++
	if p.remaining > 0 {
		p.remaining--
	}
}

// TimeoutStart implements stwi.Platform.
func (p *Platform) TimeoutStart() { p.remaining = p.StretchBudget }

// TimeoutCheck implements stwi.Platform.
func (p *Platform) TimeoutCheck() bool { return p.remaining > 0 }

var _ stwi.Platform = (*Platform)(nil)
