package main

import (
	"testing"

	"gotest.tools/assert"
)

func newTestBuzzer() buzzerControl {
	return newBuzzerControl(4, 2)
}

func TestFeedbackBeepEndsOnce(t *testing.T) {
	bz := newTestBuzzer()
	bz.startFeedback()
	assert.Assert(t, bz.gate)

	// counts down, then disables at expiry and stays off
	bz.fastTick(false)
	bz.fastTick(false)
	assert.Assert(t, bz.gate)
	bz.fastTick(false)
	assert.Assert(t, !bz.gate)
	assert.Assert(t, !bz.armed)

	for i := 0; i < 10; i++ {
		bz.fastTick(false)
	}
	assert.Assert(t, !bz.gate)
}

func TestRingCadenceAlternates(t *testing.T) {
	bz := newTestBuzzer()
	bz.startRinging()
	assert.Assert(t, bz.gate)
	assert.Assert(t, bz.phase)

	// drain the first audible half
	for i := 0; i < 5; i++ {
		bz.fastTick(true)
	}
	assert.Assert(t, !bz.gate, "expected silent half")
	assert.Assert(t, bz.armed, "cadence must stay armed")

	// and back again
	for i := 0; i < 5; i++ {
		bz.fastTick(true)
	}
	assert.Assert(t, bz.gate, "expected audible half")
}

func TestStartRingingKeepsRunningCountdown(t *testing.T) {
	bz := newTestBuzzer()
	bz.startRinging()
	bz.fastTick(true)
	bz.fastTick(true)
	remaining := bz.remaining

	// a button pressed mid-ring must not stretch the phase
	bz.startRinging()
	assert.Equal(t, bz.remaining, remaining)
}

func TestRingCadenceStopsWhenNotRinging(t *testing.T) {
	bz := newTestBuzzer()
	bz.startRinging()

	// alarm got silenced without stop() reaching the buzzer; the
	// countdown expiry still shuts the gate
	for i := 0; i < 5; i++ {
		bz.fastTick(false)
	}
	assert.Assert(t, !bz.gate)
	assert.Assert(t, !bz.armed)
}

func TestStop(t *testing.T) {
	bz := newTestBuzzer()
	bz.startRinging()
	bz.stop()
	assert.Assert(t, !bz.gate)
	assert.Assert(t, !bz.armed)
	assert.Equal(t, bz.remaining, 0)

	bz.fastTick(true)
	assert.Assert(t, !bz.gate)
}

func TestButtonBeepRespectsRinging(t *testing.T) {
	bz := newTestBuzzer()

	bz.buttonBeep(false)
	assert.Equal(t, bz.remaining, 2)

	bz.stop()
	bz.buttonBeep(true)
	assert.Equal(t, bz.remaining, 4)
}
