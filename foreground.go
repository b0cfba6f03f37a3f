package main

import (
	"dscheirer.com/bedclock/sevenseg"
)

func init() {
	// for runForeground
	wg.Add(1)
}

var buttonIDs = map[string]int{
	sBtnAlm:  btnSetAlarm,
	sBtnClk:  btnSetClock,
	sBtnUp:   btnUp,
	sBtnDown: btnDown,
	sBtnMode: btnMode,
	sBtnSnoz: btnSnooze,
	sBtnStop: btnStopAlarm,
}

// renderFace turns a state snapshot into the display text and blink
// rate. The colon blinks with the seconds; while setting, the field
// being edited blanks on odd seconds; a ringing alarm flashes the
// whole face.
func renderFace(snap stateSnapshot) (string, uint8) {
	text := snap.clock.format(snap.mode)
	if snap.second%2 == 1 {
		// no colon this second, the seven-segment needs it dropped
		// rather than blanked
		text = text[:2] + text[3:]
	}
	text = pmDot(text, snap.clock, snap.mode)

	switch snap.state {
	case stateRinging:
		return text, sevenseg.Blink2Hz

	case stateSetAlarmHour:
		return setFace(snap.alarm, snap.mode, snap.second, true), sevenseg.BlinkOff
	case stateSetAlarmMinute:
		return setFace(snap.alarm, snap.mode, snap.second, false), sevenseg.BlinkOff

	case stateSetClockHour:
		return setFace(snap.clock, snap.mode, snap.second, true), sevenseg.BlinkOff
	case stateSetClockMinute:
		return setFace(snap.clock, snap.mode, snap.second, false), sevenseg.BlinkOff
	}

	return text, sevenseg.BlinkOff
}

func setFace(tv timeValue, mode int, second int, hour bool) string {
	return pmDot(blankField(tv.format(mode), second, hour), tv, mode)
}

func blankField(text string, second int, hour bool) string {
	if second%2 == 0 {
		return text
	}
	if hour {
		return "  " + text[2:]
	}
	return text[:3] + "  "
}

// pmDot marks afternoon times in 12 hour mode, shown as the decimal
// point on the last digit.
func pmDot(text string, tv timeValue, mode int) string {
	if mode == modeH12 && tv.pm() {
		return text + "."
	}
	return text
}

// runForeground is the main loop: it drains button events into the
// state machine, polls the alarm switch and redraws the display.
func runForeground(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		rt.logger.Println("exiting runForeground")
	}()

	comms := rt.comms
	lastBlink := uint8(sevenseg.BlinkOff)

	for true {
		keepReading := true
		for keepReading {
			select {
			case <-comms.quit:
				return
			case ev := <-comms.buttons:
				id, ok := buttonIDs[ev.name]
				if !ok {
					rt.logger.Printf("unhandled button %s", ev.name)
					continue
				}
				if ev.long {
					rt.state.longPress(id)
				} else {
					rt.state.shortPress(id)
				}
			default:
				keepReading = false
			}
		}

		// the physical switch silences a ringing alarm
		switchOn, err := rt.buttons.readSwitch(rt)
		if err == nil && !switchOn {
			rt.state.switchOff()
		}

		snap := rt.state.snapshot()
		text, blink := renderFace(snap)
		if blink != lastBlink {
			rt.display.SetBlinkRate(blink)
			lastBlink = blink
		}
		if err := rt.display.Print(text); err != nil {
			rt.logger.Println(err.Error())
		}

		rt.clock.Sleep(dRenderSleep)
	}
}
