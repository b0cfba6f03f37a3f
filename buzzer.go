package main

// buzzerControl decides when the tone output is allowed to run. It
// counts down in fast ticks and is always manipulated under the
// clockState lock.
//
// Two flavors of beep share the countdown: the long intermittent ring
// cadence while the alarm sounds, and a single short feedback beep for
// any button press.
type buzzerControl struct {
	longTicks  int
	shortTicks int

	armed     bool
	remaining int
	phase     bool // ring cadence: true while in the audible half
	gate      bool // tone tick may toggle the output only while set
}

func newBuzzerControl(longTicks int, shortTicks int) buzzerControl {
	return buzzerControl{longTicks: longTicks, shortTicks: shortTicks}
}

// startRinging arms the ring cadence. If a countdown is already in
// flight it is left alone; a button pressed mid-ring must not stretch
// the current cadence phase.
func (bz *buzzerControl) startRinging() {
	if !bz.armed || bz.remaining <= 0 {
		bz.remaining = bz.longTicks
	}
	bz.armed = true
	bz.phase = true
	bz.gate = true
}

// startFeedback arms a single short beep.
func (bz *buzzerControl) startFeedback() {
	bz.remaining = bz.shortTicks
	bz.armed = true
	bz.gate = true
}

// buttonBeep is the generic any-button feedback path.
func (bz *buzzerControl) buttonBeep(ringing bool) {
	if ringing {
		bz.startRinging()
	} else {
		bz.startFeedback()
	}
}

// fastTick advances the countdown. At expiry the behavior depends on
// whether the alarm is still ringing: the ring cadence flips phase and
// re-arms, a feedback beep just ends.
func (bz *buzzerControl) fastTick(ringing bool) {
	if !bz.armed {
		return
	}
	if bz.remaining > 0 {
		bz.remaining--
		return
	}
	if ringing {
		bz.phase = !bz.phase
		bz.gate = bz.phase
		bz.remaining = bz.longTicks
	} else {
		bz.armed = false
		bz.gate = false
	}
}

// stop silences the buzzer unconditionally.
func (bz *buzzerControl) stop() {
	bz.armed = false
	bz.remaining = 0
	bz.phase = false
	bz.gate = false
}
