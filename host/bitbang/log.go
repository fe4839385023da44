// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package bitbang

import (
	"log"

	"github.com/odolgy/stwi"
)

// LogPlatform wraps a stwi.Platform and logs every call through it except
// Delay and TimeoutCheck, which pass through silently, the same way
// gpiotest.LogPinIO traces a gpio.PinIO. Useful for debugging a
// transaction that behaves unexpectedly against real hardware.
type LogPlatform struct {
	stwi.Platform
}

// WriteSCL implements stwi.Platform.
func (p *LogPlatform) WriteSCL(l stwi.Level) {
	log.Printf("stwi: WriteSCL(%s)", l)
	p.Platform.WriteSCL(l)
}

// WriteSDA implements stwi.Platform.
func (p *LogPlatform) WriteSDA(l stwi.Level) {
	log.Printf("stwi: WriteSDA(%s)", l)
	p.Platform.WriteSDA(l)
}

// ReadSCL implements stwi.Platform.
func (p *LogPlatform) ReadSCL() stwi.Level {
	l := p.Platform.ReadSCL()
	log.Printf("stwi: ReadSCL() -> %s", l)
	return l
}

// ReadSDA implements stwi.Platform.
func (p *LogPlatform) ReadSDA() stwi.Level {
	l := p.Platform.ReadSDA()
	log.Printf("stwi: ReadSDA() -> %s", l)
	return l
}

// TimeoutStart implements stwi.Platform.
func (p *LogPlatform) TimeoutStart() {
	log.Printf("stwi: TimeoutStart()")
	p.Platform.TimeoutStart()
}

var _ stwi.Platform = (*LogPlatform)(nil)
