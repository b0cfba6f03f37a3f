package main

import (
	"sync"

	"github.com/stianeikeland/go-rpio"
)

// noButtons is the test fake: button levels and the switch are set by
// the test directly.
type noButtons struct {
	mu       sync.Mutex
	buttons  map[string]button
	states   map[string]rpio.State
	switchOn bool
}

func (nb *noButtons) getButtons() *map[string]button {
	return &nb.buttons
}

func (nb *noButtons) initButtons(settings configSettings) error {
	nb.switchOn = true
	return nil
}

func (nb *noButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	nb.buttons = make(map[string]button)
	nb.states = make(map[string]rpio.State)

	for k, v := range pins {
		nb.buttons[k] = button{button: v}
		if v.pullup {
			nb.states[k] = rpio.High
		} else {
			nb.states[k] = rpio.Low
		}
	}
	return nil
}

func (nb *noButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()

	ret := make(map[string]rpio.State)
	for k, v := range nb.states {
		ret[k] = v
	}
	return ret, nil
}

func (nb *noButtons) readSwitch(rt runtimeConfig) (bool, error) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	return nb.switchOn, nil
}

func (nb *noButtons) closeButtons() {
}

// test helpers

func (nb *noButtons) press(name string) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	if nb.buttons[name].button.pullup {
		nb.states[name] = rpio.Low
	} else {
		nb.states[name] = rpio.High
	}
}

func (nb *noButtons) release(name string) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	if nb.buttons[name].button.pullup {
		nb.states[name] = rpio.High
	} else {
		nb.states[name] = rpio.Low
	}
}

func (nb *noButtons) setSwitch(on bool) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.switchOn = on
}
