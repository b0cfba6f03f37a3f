package main

import (
	"github.com/stianeikeland/go-rpio"
)

// pressState tracks one input across watcher polls. Hold time is
// counted in fast ticks, mirroring the hardware long-press counter.
type pressState struct {
	pressed  bool
	ticks    int
	longSent bool
}

type button struct {
	button buttonMap
	rpin   rpio.Pin
	state  pressState
}

const (
	pressDown = 0
	pressUp   = 1
)

func init() {
	// for runWatchButtons
	wg.Add(1)
}

// longCapable marks the two buttons with long-press handlers; the
// rest deliver their short press on the down edge for snappier feel.
func longCapable(name string) bool {
	return name == sBtnAlm || name == sBtnClk
}

// checkButtons polls every input once and returns the press events
// this poll produced.
func checkButtons(rt runtimeConfig) ([]buttonEvent, error) {
	var events []buttonEvent
	longTicks := rt.settings.GetInt(sLongTcks)

	btns := rt.buttons.getButtons()
	results, err := rt.buttons.readButtons(rt)
	if err != nil {
		return events, err
	}

	for k, v := range *btns {
		res, ok := results[k]
		if !ok {
			continue
		}
		btn := v

		// interpret the high/low state based on the pullup value
		btnState := pressUp
		if btn.button.pullup {
			// GND => pressed
			if res == rpio.Low {
				btnState = pressDown
			}
		} else {
			if res == rpio.High {
				btnState = pressDown
			}
		}

		if btnState == pressDown {
			if btn.state.pressed {
				// still held, count towards a long press
				btn.state.ticks++
				if longCapable(k) && !btn.state.longSent && btn.state.ticks >= longTicks {
					btn.state.longSent = true
					events = append(events, buttonEvent{name: k, long: true})
				}
			} else {
				// just noticed it was pressed
				btn.state = pressState{pressed: true}
				if !longCapable(k) {
					events = append(events, buttonEvent{name: k})
				}
			}
		} else {
			if btn.state.pressed {
				// just noticed the release
				if longCapable(k) && !btn.state.longSent {
					events = append(events, buttonEvent{name: k})
				}
				btn.state = pressState{}
			}
		}
		(*btns)[k] = btn
	}

	return events, nil
}

func startWatchButtons(rt runtimeConfig) {
	rt.logger = &ThreadLogger{name: "Buttons"}
	go runWatchButtons(rt)
}

func runWatchButtons(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runWatchButtons")
	}()

	settings := rt.settings
	comms := rt.comms

	err := rt.buttons.initButtons(settings)
	if err != nil {
		rt.logger.Println(err.Error())
		comms.closeQuit()
		return
	}
	defer rt.buttons.closeButtons()

	pins := make(map[string]buttonMap)
	for _, name := range settings.GetAllButtonNames() {
		pins[name] = settings.GetButtonMap(name)
	}

	err = rt.buttons.setupButtons(pins, rt)
	if err != nil {
		rt.logger.Println(err.Error())
		comms.closeQuit()
		return
	}

	for true {
		select {
		case <-comms.quit:
			return
		default:
		}

		events, err := checkButtons(rt)
		if err != nil {
			// termbox shut down or GPIO went away, we're done
			rt.logger.Println("quit from runWatchButtons")
			comms.closeQuit()
			return
		}

		for _, ev := range events {
			rt.logger.Printf("button event: %s long=%v", ev.name, ev.long)
			comms.buttons <- ev
		}

		rt.clock.Sleep(dFastTick)
	}
}
