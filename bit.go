// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwi

// stretchWait waits for the slave to release SCL, honoring clock
// stretching.
//
// If SCL already reads High, it returns immediately. Otherwise it arms
// the Platform's stretch timeout and polls SCL, delaying one quarter
// period between samples, until SCL reads High or the timeout budget is
// exhausted.
func stretchWait(p Platform) error {
	if p.ReadSCL() == Low {
		p.TimeoutStart()
		for p.ReadSCL() == Low {
			if !p.TimeoutCheck() {
				return ErrStretch
			}
			p.Delay()
		}
	}
	return nil
}

// sendBit drives one clock cycle and transmits one bit.
//
// Each cycle is four quarter-period segments long so that the protocol's
// setup/hold windows relative to the SCL edges stay intact.
func sendBit(p Platform, bit Level) error {
	p.WriteSDA(bit)
	p.Delay()
	p.WriteSCL(High)
	p.Delay()
	if err := stretchWait(p); err != nil {
		return err
	}
	p.Delay()
	p.WriteSCL(Low)
	p.Delay()
	return nil
}

// recvBit drives one clock cycle and samples one bit.
func recvBit(p Platform) (Level, error) {
	p.WriteSDA(High)
	p.Delay()
	p.WriteSCL(High)
	p.Delay()
	if err := stretchWait(p); err != nil {
		return Low, err
	}
	p.Delay()
	bit := p.ReadSDA()
	p.WriteSCL(Low)
	p.Delay()
	return bit, nil
}
