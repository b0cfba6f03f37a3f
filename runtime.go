package main

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var wg sync.WaitGroup

// features collects build-time capabilities for the startup banner
var features []string

// runner cadences
const (
	dFastTick    = 10 * time.Millisecond
	dClockTick   = time.Second
	dRenderSleep = 50 * time.Millisecond
)

// buttonEvent travels from the button watcher to the foreground loop.
type buttonEvent struct {
	name string
	long bool
}

type commChannels struct {
	quit     chan struct{}
	buttons  chan buttonEvent
	quitOnce *sync.Once
}

func initCommChannels() commChannels {
	return commChannels{
		quit:     make(chan struct{}, 1),
		buttons:  make(chan buttonEvent, 10),
		quitOnce: &sync.Once{},
	}
}

// closeQuit stops every runner; safe to call from more than one
// place.
func (c commChannels) closeQuit() {
	c.quitOnce.Do(func() {
		close(c.quit)
	})
}

// runtimeConfig is everything a runner needs: settings, a clock it can
// fake, the comm channels, the core state and the hardware layers.
type runtimeConfig struct {
	settings configSettings
	clock    clockwork.Clock
	comms    commChannels
	state    *clockState
	buttons  buttons
	tone     tone
	led      led
	display  display
	logger   flogger
}

func coreConfigFromSettings(settings configSettings) coreConfig {
	return coreConfig{
		backlightTicks: settings.GetInt(sBltTicks),
		buzzLongTicks:  settings.GetInt(sBuzzLong),
		buzzShortTicks: settings.GetInt(sBuzzShrt),
		snoozeMinutes:  settings.GetInt(sSnooze),
	}
}

func initRuntime(settings configSettings) runtimeConfig {
	rt := runtimeConfig{
		settings: settings,
		clock:    clockwork.NewRealClock(),
		comms:    initCommChannels(),
		logger:   &ThreadLogger{name: "main"},
	}

	if settings.GetBool(sBtnSim) {
		rt.buttons = &keyButtons{}
	} else {
		rt.buttons = &rpioButtons{}
	}

	switch settings.GetString(sToneMode) {
	case tonePin:
		rt.tone = &rpioTone{}
	case toneAudio:
		rt.tone = newAudioTone()
	default:
		rt.tone = &noTone{}
	}

	if settings.GetBool(sI2CSim) {
		rt.led = &logLed{}
		rt.display = &logDisplay{}
	} else {
		rt.led = &rpioLed{}
		rt.display = &sevenSegDisplay{}
	}
	rt.led.init()

	rt.state = newClockState(coreConfigFromSettings(settings), rt.led, settings.GetInt(sBltPin))
	return rt
}

func initTestRuntime(settings configSettings) runtimeConfig {
	rt := runtimeConfig{
		settings: settings,
		clock:    clockwork.NewFakeClock(),
		comms:    initCommChannels(),
		buttons:  &noButtons{},
		tone:     &noTone{},
		led:      &logLed{},
		display:  &logDisplay{},
		logger:   &ThreadLogger{name: "test"},
	}
	rt.led.init()
	// the fake switch starts in the "alarm on" position
	rt.buttons.initButtons(settings)
	rt.state = newClockState(coreConfigFromSettings(settings), rt.led, settings.GetInt(sBltPin))
	return rt
}
