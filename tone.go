package main

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio"
)

// rpioTone is the real buzzer line; the tone tick flips it to make
// the square wave.
type rpioTone struct {
	pin rpio.Pin
}

func (rt *rpioTone) openTone(settings configSettings) error {
	// every gpio layer opens the mapping itself, open is idempotent
	if err := rpio.Open(); err != nil {
		return errors.Wrap(err, "open gpio")
	}
	rt.pin = rpio.Pin(settings.GetInt(sBuzzPin))
	rt.pin.Output()
	rt.pin.Low()
	return nil
}

func (rt *rpioTone) toggle() {
	rt.pin.Toggle()
}

func (rt *rpioTone) closeTone() {
	rt.pin.Low()
}

// noTone counts toggles for tests (and serves as the "off" sink).
type noTone struct {
	mu      sync.Mutex
	toggles int
}

func (nt *noTone) openTone(settings configSettings) error {
	return nil
}

func (nt *noTone) toggle() {
	nt.mu.Lock()
	defer nt.mu.Unlock()
	nt.toggles++
}

func (nt *noTone) closeTone() {
}

func (nt *noTone) toggleCount() int {
	nt.mu.Lock()
	defer nt.mu.Unlock()
	return nt.toggles
}
