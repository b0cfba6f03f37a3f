package main

import (
	"testing"

	"gotest.tools/assert"
)

func newTestState() (*clockState, *logLed) {
	ll := &logLed{disableLog: true}
	ll.init()
	cfg := coreConfig{
		backlightTicks: 5,
		buzzLongTicks:  4,
		buzzShortTicks: 2,
		snoozeMinutes:  5,
	}
	cs := newClockState(cfg, ll, 18)
	return cs, ll
}

// ring forces the state machine into RINGING through the normal
// alarm-match path.
func ring(t *testing.T, cs *clockState) {
	cs.setAlarm(timeValue{hour: 7, min: 0})
	cs.setClock(timeValue{hour: 7, min: 0})
	cs.secondTick(true)
	assert.Equal(t, cs.snapshot().state, stateRinging)
}

func TestNoOpEventsLeaveStateAlone(t *testing.T) {
	// every (state, button, long) combination without a table row
	// must not move the state machine
	for s := 0; s < stateCount; s++ {
		for b := 0; b < btnCount; b++ {
			for _, long := range []bool{false, true} {
				if _, ok := transitions[transKey{state: s, btn: b, long: long}]; ok {
					continue
				}
				cs, _ := newTestState()
				cs.state = s
				cs.dispatch(b, long)
				assert.Equal(t, cs.snapshot().state, s,
					"state %d btn %d long %v", s, b, long)
			}
		}
	}
}

func TestSetAlarmFlow(t *testing.T) {
	cs, _ := newTestState()

	cs.longPress(btnSetAlarm)
	assert.Equal(t, cs.snapshot().state, stateSetAlarmHour)

	cs.shortPress(btnUp)
	cs.shortPress(btnUp)
	assert.Equal(t, cs.snapshot().alarm, timeValue{hour: 8, min: 0})

	cs.shortPress(btnSetAlarm)
	assert.Equal(t, cs.snapshot().state, stateSetAlarmMinute)

	cs.shortPress(btnUp)
	assert.Equal(t, cs.snapshot().alarm, timeValue{hour: 8, min: 1})

	cs.shortPress(btnSetAlarm)
	assert.Equal(t, cs.snapshot().state, stateIdle)
	assert.Equal(t, cs.snapshot().alarm, timeValue{hour: 8, min: 1})
}

func TestSetClockFlow(t *testing.T) {
	cs, _ := newTestState()
	cs.setClock(timeValue{hour: 12, min: 0})

	cs.longPress(btnSetClock)
	assert.Equal(t, cs.snapshot().state, stateSetClockHour)

	cs.shortPress(btnDown)
	assert.Equal(t, cs.snapshot().clock, timeValue{hour: 11, min: 0})

	cs.shortPress(btnSetClock)
	assert.Equal(t, cs.snapshot().state, stateSetClockMinute)

	cs.shortPress(btnDown)
	assert.Equal(t, cs.snapshot().clock, timeValue{hour: 10, min: 59})

	cs.shortPress(btnSetClock)
	assert.Equal(t, cs.snapshot().state, stateIdle)
}

func TestLongPressOnlyFromIdle(t *testing.T) {
	cs, _ := newTestState()
	ring(t, cs)

	cs.longPress(btnSetAlarm)
	assert.Equal(t, cs.snapshot().state, stateRinging)
	cs.longPress(btnSetClock)
	assert.Equal(t, cs.snapshot().state, stateRinging)
}

func TestModeTogglesEverywhere(t *testing.T) {
	for s := 0; s < stateCount; s++ {
		cs, _ := newTestState()
		cs.state = s
		cs.shortPress(btnMode)
		assert.Equal(t, cs.snapshot().mode, modeH12, "state %d", s)
		assert.Equal(t, cs.snapshot().state, s)
		cs.shortPress(btnMode)
		assert.Equal(t, cs.snapshot().mode, modeH24)
	}
}

func TestAlarmMatchRings(t *testing.T) {
	cs, _ := newTestState()
	cs.setAlarm(timeValue{hour: 7, min: 0})
	cs.setClock(timeValue{hour: 7, min: 0})

	cs.secondTick(true)
	snap := cs.snapshot()
	assert.Equal(t, snap.state, stateRinging)
	assert.Assert(t, cs.toneEnabled())

	// idempotent while already ringing
	cs.secondTick(true)
	assert.Equal(t, cs.snapshot().state, stateRinging)
}

func TestAlarmMatchNeedsSwitch(t *testing.T) {
	cs, _ := newTestState()
	cs.setAlarm(timeValue{hour: 7, min: 0})
	cs.setClock(timeValue{hour: 7, min: 0})

	cs.secondTick(false)
	assert.Equal(t, cs.snapshot().state, stateIdle)
	assert.Assert(t, !cs.toneEnabled())
}

func TestAlarmMatchOnlyWhenIdle(t *testing.T) {
	cs, _ := newTestState()
	cs.setAlarm(timeValue{hour: 7, min: 0})
	cs.setClock(timeValue{hour: 7, min: 0})
	cs.state = stateSetClockHour

	cs.secondTick(true)
	assert.Equal(t, cs.snapshot().state, stateSetClockHour)
}

func TestSecondTickRollsMinute(t *testing.T) {
	cs, _ := newTestState()
	cs.setClock(timeValue{hour: 23, min: 59})

	for i := 0; i < 60; i++ {
		cs.secondTick(false)
	}
	snap := cs.snapshot()
	assert.Equal(t, snap.clock, timeValue{hour: 0, min: 0})
	assert.Equal(t, snap.second, 0)
}

func TestStopAlarm(t *testing.T) {
	cs, _ := newTestState()
	ring(t, cs)

	cs.shortPress(btnStopAlarm)
	snap := cs.snapshot()
	assert.Equal(t, snap.state, stateIdle)
	assert.Assert(t, !cs.snoozed)
	assert.Assert(t, !cs.toneEnabled())
}

func TestSnoozeRoundTrip(t *testing.T) {
	cs, _ := newTestState()
	ring(t, cs)

	cs.shortPress(btnSnooze)
	snap := cs.snapshot()
	assert.Equal(t, snap.state, stateIdle)
	assert.Assert(t, cs.snoozed)
	assert.Equal(t, cs.snooze, timeValue{hour: 7, min: 5})
	assert.Assert(t, !cs.toneEnabled())

	// the configured alarm is untouched
	assert.Equal(t, snap.alarm, timeValue{hour: 7, min: 0})
}

func TestDoubleSnooze(t *testing.T) {
	cs, _ := newTestState()
	ring(t, cs)
	cs.shortPress(btnSnooze)

	// the snoozed wake time arrives
	cs.setClock(timeValue{hour: 7, min: 5})
	cs.secondTick(true)
	assert.Equal(t, cs.snapshot().state, stateRinging)

	cs.shortPress(btnSnooze)
	assert.Assert(t, cs.snoozed)
	assert.Equal(t, cs.snooze, timeValue{hour: 7, min: 10})
}

func TestSnoozeWrapsMidnight(t *testing.T) {
	cs, _ := newTestState()
	cs.setAlarm(timeValue{hour: 23, min: 58})
	cs.setClock(timeValue{hour: 23, min: 58})
	cs.secondTick(true)
	assert.Equal(t, cs.snapshot().state, stateRinging)

	cs.shortPress(btnSnooze)
	assert.Equal(t, cs.snooze, timeValue{hour: 0, min: 3})
}

func TestSwitchOffOverride(t *testing.T) {
	cs, _ := newTestState()
	ring(t, cs)
	cs.shortPress(btnSnooze)

	// ring again at the snoozed wake time
	cs.setClock(timeValue{hour: 7, min: 5})
	cs.secondTick(true)
	assert.Equal(t, cs.snapshot().state, stateRinging)

	cs.switchOff()
	snap := cs.snapshot()
	assert.Equal(t, snap.state, stateIdle)
	assert.Assert(t, !cs.snoozed)
	assert.Assert(t, !cs.toneEnabled())
}

func TestSwitchOffIgnoredWhileIdle(t *testing.T) {
	cs, _ := newTestState()
	cs.state = stateSetAlarmHour
	cs.switchOff()
	assert.Equal(t, cs.snapshot().state, stateSetAlarmHour)
}

func TestGenericPressActivatesBacklight(t *testing.T) {
	cs, ll := newTestState()

	cs.shortPress(btnUp)
	assert.Assert(t, ll.lit(18))

	// expires after the countdown, exactly once
	for i := 0; i < 10; i++ {
		cs.fastTick()
	}
	assert.Assert(t, !ll.lit(18))
	assert.Equal(t, ll.offCount(18), 1)
}

func TestBuzzerStopsDespiteStateRace(t *testing.T) {
	// silencing must always reach the buzzer even if the match path
	// fires again immediately after
	cs, _ := newTestState()
	ring(t, cs)
	cs.shortPress(btnStopAlarm)
	cs.secondTick(true) // same minute, rings again
	cs.switchOff()
	assert.Assert(t, !cs.toneEnabled())
	assert.Equal(t, cs.snapshot().state, stateIdle)
}
