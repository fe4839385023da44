// Copyright 2020 Oleg Dolgy. All rights reserved.
// Use of this source code is governed under the MIT license
// that can be found in the LICENSE file.

// Package stwireg is a process-wide registry of named stwi.Bus openers,
// for programs that want to pick a bus by name at runtime (a flag, a
// config file) instead of wiring one up at compile time.
package stwireg

import (
	"fmt"
	"sync"

	"github.com/odolgy/stwi"
)

// Opener opens a stwi.Bus. Registered openers are expected to be cheap
// to call more than once; a caller unhappy with its first bus is free
// to look it up again.
type Opener func() (*stwi.Bus, error)

var (
	mu     sync.Mutex
	byName = map[string]Opener{}
)

// Register registers a named bus opener.
//
// Registering the same name twice is an error; callers that want to
// replace a registration must Unregister the old one first.
func Register(name string, opener Opener) error {
	if opener == nil {
		return fmt.Errorf("stwireg: nil opener for %q", name)
	}
	if len(name) == 0 {
		return fmt.Errorf("stwireg: empty name")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, ok := byName[name]; ok {
		return fmt.Errorf("stwireg: registering %q twice", name)
	}
	byName[name] = opener
	return nil
}

// Unregister removes a previously registered bus opener.
func Unregister(name string) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := byName[name]; !ok {
		return fmt.Errorf("stwireg: unknown bus %q", name)
	}
	delete(byName, name)
	return nil
}

// All returns a snapshot of every registered bus opener, keyed by name.
func All() map[string]Opener {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Opener, len(byName))
	for k, v := range byName {
		out[k] = v
	}
	return out
}

// Lookup opens the bus registered under name.
func Lookup(name string) (*stwi.Bus, error) {
	mu.Lock()
	opener, ok := byName[name]
	mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("stwireg: no bus %q", name)
	}
	return opener()
}
