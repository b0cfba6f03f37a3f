package main

import (
	"sync"
	"time"

	// keyboard for sim mode
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio"
)

// keyButtons simulates the buttons and the alarm switch on a
// keyboard. A button's key toggles its state, the switch key flips
// the switch. The switch is read from the clock and foreground
// runners while the watcher writes it, hence the mutex.
type keyButtons struct {
	mu        sync.Mutex
	buttons   map[string]button
	switchKey string
	switchOn  bool
}

func (kb *keyButtons) getButtons() *map[string]button {
	return &kb.buttons
}

func (kb *keyButtons) initButtons(settings configSettings) error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "init termbox")
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.Flush()

	kb.mu.Lock()
	kb.switchKey = settings.GetButtonMap(sSwitch).key
	kb.switchOn = true
	kb.mu.Unlock()
	return nil
}

func (kb *keyButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	kb.buttons = make(map[string]button)
	for k, v := range pins {
		kb.buttons[k] = button{button: v}
	}
	return nil
}

func (kb *keyButtons) checkKeyboard(rt runtimeConfig) (map[string]rpio.State, error) {
	// poll with quick timeout, no key means "no change"
	go func() {
		rt.clock.Sleep(5 * time.Millisecond)
		termbox.Interrupt()
	}()

	var ev termbox.Event
	waitForInterrupt := true
	for waitForInterrupt {
		evTemp := termbox.PollEvent()
		switch evTemp.Type {
		case termbox.EventKey:
			if evTemp.Key == termbox.KeyCtrlC {
				return nil, errors.New("exit termbox loop")
			}
			ev = evTemp
		default:
			// the interrupt fired
			waitForInterrupt = false
		}
	}
	termbox.Flush()

	return kb.applyKey(byte(ev.Ch)), nil
}

// applyKey folds one key into the simulated inputs and reports the
// resulting button levels.
func (kb *keyButtons) applyKey(ch byte) map[string]rpio.State {
	kb.mu.Lock()
	defer kb.mu.Unlock()

	if len(kb.switchKey) > 0 && ch == kb.switchKey[0] {
		kb.switchOn = !kb.switchOn
	}

	// a matching char toggles the button, anything else leaves it
	ret := make(map[string]rpio.State)
	for k, v := range kb.buttons {
		match := len(v.button.key) > 0 && v.button.key[0] == ch
		pressed := v.state.pressed
		if match {
			pressed = !pressed
		}
		// report as pullup levels: Low = pressed
		if pressed {
			ret[k] = rpio.Low
		} else {
			ret[k] = rpio.High
		}
	}
	return ret
}

func (kb *keyButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	return kb.checkKeyboard(rt)
}

func (kb *keyButtons) readSwitch(rt runtimeConfig) (bool, error) {
	kb.mu.Lock()
	defer kb.mu.Unlock()
	return kb.switchOn, nil
}

func (kb *keyButtons) closeButtons() {
	termbox.Close()
}
