package main

import (
	"time"
)

func init() {
	// runFastTick, runClockTick, runToneTick
	wg.Add(3)
}

// runFastTick is the highest-rate periodic source. It drives the
// backlight and buzzer countdowns; long-press counting happens in the
// button watcher, which polls at the same cadence.
func runFastTick(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runFastTick")
	}()

	for true {
		select {
		case <-rt.comms.quit:
			return
		default:
		}

		rt.clock.Sleep(dFastTick)
		rt.state.fastTick()
	}
}

// runClockTick advances the clock once per second and evaluates the
// alarm match with the switch state sampled at tick time.
func runClockTick(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runClockTick")
	}()

	for true {
		select {
		case <-rt.comms.quit:
			return
		default:
		}

		rt.clock.Sleep(dClockTick)

		switchOn, err := rt.buttons.readSwitch(rt)
		if err != nil {
			rt.logger.Println(err.Error())
			continue
		}
		rt.state.secondTick(switchOn)
	}
}

// runToneTick toggles the buzzer output at audio rate while the
// buzzer gate is open, making the square wave at the configured tone
// frequency.
func runToneTick(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runToneTick")
	}()

	// a missing, zero or absurd rate falls back to a 1ms half-period
	halfPeriod := time.Millisecond
	if hz := rt.settings.GetInt(sToneHz); hz > 0 {
		if p := time.Second / time.Duration(2*hz); p > 0 {
			halfPeriod = p
		}
	}

	for true {
		select {
		case <-rt.comms.quit:
			return
		default:
		}

		rt.clock.Sleep(halfPeriod)
		if rt.state.toneEnabled() {
			rt.tone.toggle()
		}
	}
}
