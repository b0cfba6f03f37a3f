package main

import (
	"github.com/stianeikeland/go-rpio"
)

// hardware layers come in real / simulated / fake triples, picked at
// startup from settings

type buttons interface {
	initButtons(settings configSettings) error
	setupButtons(pins map[string]buttonMap, rt runtimeConfig) error
	readButtons(rt runtimeConfig) (map[string]rpio.State, error)
	readSwitch(rt runtimeConfig) (bool, error)
	getButtons() *map[string]button
	closeButtons()
}

type led interface {
	init()
	set(pin int, on bool)
	on(pin int)
	off(pin int)
}

// tone is the buzzer output line. The tone tick toggles it at audio
// rate while the buzzer gate is open.
type tone interface {
	openTone(settings configSettings) error
	toggle()
	closeTone()
}

type display interface {
	OpenDisplay(settings configSettings) error
	Print(e string) error
	SetBlinkRate(r uint8) error
	DisplayOn(on bool)
	CloseDisplay()
}

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
