// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

package stwi

// start generates a start or repeated-start condition: SDA falls while
// SCL is High. The sequence is idempotent regardless of the lines'
// initial condition, which is what makes it reusable for a repeated
// start without an intervening stop.
func start(p Platform) error {
	p.WriteSDA(High)
	p.Delay()
	p.WriteSCL(High)
	p.Delay()
	if err := stretchWait(p); err != nil {
		return err
	}
	p.WriteSDA(Low)
	p.Delay()
	p.WriteSCL(Low)
	p.Delay()
	return nil
}

// stop generates a stop condition: SDA rises while SCL is High.
func stop(p Platform) error {
	p.WriteSDA(Low)
	p.Delay()
	p.WriteSCL(High)
	p.Delay()
	if err := stretchWait(p); err != nil {
		return err
	}
	p.WriteSDA(High)
	p.Delay()
	return nil
}
