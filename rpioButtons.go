package main

import (
	"github.com/pkg/errors"

	"github.com/stianeikeland/go-rpio"
)

// rpioButtons reads the six buttons and the alarm switch from GPIO.
type rpioButtons struct {
	buttons   map[string]button
	switchMap buttonMap
	switchPin rpio.Pin
}

func (rb *rpioButtons) getButtons() *map[string]button {
	return &rb.buttons
}

func (rb *rpioButtons) initButtons(settings configSettings) error {
	if err := rpio.Open(); err != nil {
		return errors.Wrap(err, "open gpio")
	}

	rb.switchMap = settings.GetButtonMap(sSwitch)
	rb.switchPin = rpio.Pin(rb.switchMap.pinNum)
	rb.switchPin.Input()
	if rb.switchMap.pullup {
		rb.switchPin.PullUp()
	} else {
		rb.switchPin.PullDown()
	}
	return nil
}

func (rb *rpioButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	rb.buttons = make(map[string]button)

	for k, v := range pins {
		var btn button
		btn.button = v
		btn.rpin = rpio.Pin(v.pinNum)

		btn.rpin.Input()
		if v.pullup {
			btn.rpin.PullUp() // GND => button press
		} else {
			btn.rpin.PullDown() // +V => button press
		}
		rb.buttons[k] = btn
	}

	return nil
}

func (rb *rpioButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	ret := make(map[string]rpio.State)
	for k, v := range rb.buttons {
		ret[k] = v.rpin.Read()
	}
	return ret, nil
}

func (rb *rpioButtons) readSwitch(rt runtimeConfig) (bool, error) {
	res := rb.switchPin.Read()
	if rb.switchMap.pullup {
		return res == rpio.Low, nil
	}
	return res == rpio.High, nil
}

func (rb *rpioButtons) closeButtons() {
	rpio.Close()
}
