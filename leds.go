package main

import (
	"log"

	"github.com/stianeikeland/go-rpio"
)

// rpioLed drives a GPIO output pin, used for the display backlight
// power line.
type rpioLed struct {
}

func (rl *rpioLed) init() {
	if err := rpio.Open(); err != nil {
		log.Fatalf(err.Error())
	}
}

func (rl *rpioLed) set(pin int, on bool) {
	p := rpio.Pin(pin)
	p.Output()
	if on {
		p.High()
	} else {
		p.Low()
	}
}

func (rl *rpioLed) on(pin int) {
	rl.set(pin, true)
}

func (rl *rpioLed) off(pin int) {
	rl.set(pin, false)
}
