// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

// Package bitbang implements stwi.Platform on top of two real GPIO pins,
// for running the bus master against actual hardware.
package bitbang

import (
	"errors"
	"sync"
	"time"

	"periph.io/x/periph/conn/gpio"

	"github.com/odolgy/stwi"
	"github.com/odolgy/stwi/host/cpu"
)

// Platform bit-bangs stwi's four wire-level capabilities over two
// open-drain-capable GPIO pins.
//
// Both pins must support Out(gpio.Low) to actively pull the line down
// and In(gpio.Up, gpio.None) to release it to an external (or the SoC's
// internal) pull-up resistor; this is what "open-drain" means at the
// gpio.PinIO level, since periph's gpio package has no dedicated
// open-drain output mode.
type Platform struct {
	scl, sda gpio.PinIO
	quarter  time.Duration

	budget   time.Duration
	deadline time.Time
}

// NewPlatform configures scl and sda as an idle-high open-drain pair and
// returns a Platform clocking at speedHz, honoring clock stretches for
// up to stretchBudget before giving up.
//
// speedHz is the target bit rate; the quarter-period delay is derived
// from it as 1/(4*speedHz), same convention as
// bitbang.I2C.Speed in the experimental I2C driver this package
// generalizes.
func NewPlatform(scl, sda gpio.PinIO, speedHz int64, stretchBudget time.Duration) (*Platform, error) {
	if speedHz <= 0 {
		return nil, errors.New("bitbang: speedHz must be positive")
	}
	if err := scl.In(gpio.Up, gpio.None); err != nil {
		return nil, err
	}
	if err := sda.In(gpio.Up, gpio.None); err != nil {
		return nil, err
	}
	return &Platform{
		scl:     scl,
		sda:     sda,
		quarter: time.Second / time.Duration(speedHz) / 4,
		budget:  stretchBudget,
	}, nil
}

func (p *Platform) drive(pin gpio.PinIO, l stwi.Level) {
	if l == stwi.Low {
		pin.Out(gpio.Low)
		return
	}
	// Release to the pull-up instead of driving High: a slave (or another
	// master) stretching or arbitrating against us must be able to pull
	// the line down while we think we're "driving" High.
	pin.In(gpio.Up, gpio.None)
}

func level(l gpio.Level) stwi.Level {
	if l == gpio.Low {
		return stwi.Low
	}
	return stwi.High
}

// WriteSCL implements stwi.Platform.
func (p *Platform) WriteSCL(l stwi.Level) { p.drive(p.scl, l) }

// WriteSDA implements stwi.Platform.
func (p *Platform) WriteSDA(l stwi.Level) { p.drive(p.sda, l) }

// ReadSCL implements stwi.Platform.
func (p *Platform) ReadSCL() stwi.Level { return level(p.scl.Read()) }

// ReadSDA implements stwi.Platform.
func (p *Platform) ReadSDA() stwi.Level { return level(p.sda.Read()) }

// Delay implements stwi.Platform.
func (p *Platform) Delay() { cpu.Nanospin(p.quarter) }

// setQuarter is the hook Bus.SetSpeed uses, reached directly or after
// SetSpeed unwraps a *LogPlatform to the stwi.Platform it embeds.
func (p *Platform) setQuarter(d time.Duration) { p.quarter = d }

// TimeoutStart implements stwi.Platform.
func (p *Platform) TimeoutStart() { p.deadline = time.Now().Add(p.budget) }

// TimeoutCheck implements stwi.Platform.
func (p *Platform) TimeoutCheck() bool {
	if p.budget <= 0 {
		return false
	}
	return time.Now().Before(p.deadline)
}

var _ stwi.Platform = (*Platform)(nil)

// Bus wraps a stwi.Bus with a mutex, so one *Bus can be shared by
// multiple goroutines the way a real I²C bus is commonly shared among
// several device drivers. Exclusivity is at the transaction level: each
// Write or Read call runs start-to-stop with the lock held.
//
// platform, if it wraps a *Platform (directly, or through a decorator
// such as LogPlatform), lets SetSpeed retune the clock; a Bus built over
// a platform that doesn't is left at its initial speed.
type Bus struct {
	mu       sync.Mutex
	platform stwi.Platform
	bus      *stwi.Bus
}

// NewBus wraps platform in a mutex-guarded Bus.
func NewBus(platform stwi.Platform) *Bus {
	return &Bus{platform: platform, bus: stwi.NewBus(platform)}
}

// SetSpeed changes the bus clock speed. It takes the lock, so it is
// safe to call between transactions from any goroutine.
func (b *Bus) SetSpeed(speedHz int64) error {
	if speedHz <= 0 {
		return errors.New("bitbang: speedHz must be positive")
	}
	underlying := b.platform
	if log, ok := underlying.(*LogPlatform); ok {
		underlying = log.Platform
	}
	p, ok := underlying.(interface{ setQuarter(time.Duration) })
	if !ok {
		return errors.New("bitbang: underlying Platform does not support SetSpeed")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	p.setQuarter(time.Second / time.Duration(speedHz) / 4)
	return nil
}

// Write performs a register-addressed write transaction under the lock.
func (b *Bus) Write(addr byte, width stwi.RegWidth, reg uint16, payload []byte) stwi.Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bus.Write(addr, width, reg, payload)
}

// Read performs a register-addressed read transaction under the lock.
func (b *Bus) Read(addr byte, width stwi.RegWidth, reg uint16, buf []byte) stwi.Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bus.Read(addr, width, reg, buf)
}
