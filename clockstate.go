package main

import (
	"sync"
)

// system states, exactly one holds at any instant
const (
	stateIdle = iota
	stateRinging
	stateSetAlarmHour
	stateSetAlarmMinute
	stateSetClockHour
	stateSetClockMinute
	stateCount
)

// buttons
const (
	btnSetAlarm = iota
	btnSetClock
	btnUp
	btnDown
	btnMode
	btnSnooze
	btnStopAlarm
	btnCount
)

// coreConfig carries the countdown durations (in fast ticks) and the
// snooze offset, resolved once from settings.
type coreConfig struct {
	backlightTicks int
	buzzLongTicks  int
	buzzShortTicks int
	snoozeMinutes  int
}

// clockState owns every piece of shared core state: the system state,
// the three time values, the snooze flag and the two countdown
// controllers. The tick runners, the button watcher and the foreground
// loop all enter through whole-operation methods that take the one
// mutex, so compound updates are never observed half-applied.
type clockState struct {
	mu sync.Mutex

	state   int
	clock   timeValue
	second  int
	alarm   timeValue
	snooze  timeValue
	snoozed bool
	mode    int

	snoozeMinutes int
	buzzer        buzzerControl
	backlight     backlightControl
}

// stateSnapshot is what the foreground loop renders from.
type stateSnapshot struct {
	state  int
	clock  timeValue
	alarm  timeValue
	mode   int
	second int
}

func newClockState(cfg coreConfig, light led, lightPin int) *clockState {
	return &clockState{
		state:         stateIdle,
		alarm:         timeValue{hour: 6, min: 0},
		mode:          modeH24,
		snoozeMinutes: cfg.snoozeMinutes,
		buzzer:        newBuzzerControl(cfg.buzzLongTicks, cfg.buzzShortTicks),
		backlight:     newBacklightControl(cfg.backlightTicks, light, lightPin),
	}
}

// transKey identifies one row of the transition table.
type transKey struct {
	state int
	btn   int
	long  bool
}

type transEntry struct {
	next   int
	effect func(cs *clockState)
}

// transitions is the full state machine. A (state, button) pair with
// no row is a no-op for state; the generic press effects (backlight,
// feedback beep) still apply.
var transitions = map[transKey]transEntry{}

func addTrans(state int, btn int, long bool, next int, effect func(cs *clockState)) {
	transitions[transKey{state: state, btn: btn, long: long}] = transEntry{next: next, effect: effect}
}

func init() {
	// alarm set flow
	addTrans(stateIdle, btnSetAlarm, true, stateSetAlarmHour, nil)
	addTrans(stateSetAlarmHour, btnSetAlarm, false, stateSetAlarmMinute, nil)
	addTrans(stateSetAlarmMinute, btnSetAlarm, false, stateIdle, nil)

	// clock set flow
	addTrans(stateIdle, btnSetClock, true, stateSetClockHour, nil)
	addTrans(stateSetClockHour, btnSetClock, false, stateSetClockMinute, nil)
	addTrans(stateSetClockMinute, btnSetClock, false, stateIdle, nil)

	// value adjustment, wraps via timeValue
	addTrans(stateSetAlarmHour, btnUp, false, stateSetAlarmHour,
		func(cs *clockState) { cs.alarm.addHours(1) })
	addTrans(stateSetAlarmHour, btnDown, false, stateSetAlarmHour,
		func(cs *clockState) { cs.alarm.addHours(-1) })
	addTrans(stateSetAlarmMinute, btnUp, false, stateSetAlarmMinute,
		func(cs *clockState) { cs.alarm.addMinutes(1) })
	addTrans(stateSetAlarmMinute, btnDown, false, stateSetAlarmMinute,
		func(cs *clockState) { cs.alarm.addMinutes(-1) })
	addTrans(stateSetClockHour, btnUp, false, stateSetClockHour,
		func(cs *clockState) { cs.clock.addHours(1) })
	addTrans(stateSetClockHour, btnDown, false, stateSetClockHour,
		func(cs *clockState) { cs.clock.addHours(-1) })
	addTrans(stateSetClockMinute, btnUp, false, stateSetClockMinute,
		func(cs *clockState) { cs.clock.addMinutes(1) })
	addTrans(stateSetClockMinute, btnDown, false, stateSetClockMinute,
		func(cs *clockState) { cs.clock.addMinutes(-1) })

	// mode toggles in every state
	for s := 0; s < stateCount; s++ {
		state := s
		addTrans(state, btnMode, false, state,
			func(cs *clockState) { cs.toggleMode() })
	}

	// silencing a ringing alarm
	addTrans(stateRinging, btnStopAlarm, false, stateIdle,
		func(cs *clockState) { cs.silence() })
	addTrans(stateRinging, btnSnooze, false, stateIdle,
		func(cs *clockState) { cs.snoozePressed() })
}

func (cs *clockState) toggleMode() {
	if cs.mode == modeH12 {
		cs.mode = modeH24
	} else {
		cs.mode = modeH12
	}
}

// silence stops the buzzer and forgets any pending snooze. The buzzer
// stop comes first so a partial observation never leaves it running.
func (cs *clockState) silence() {
	cs.buzzer.stop()
	cs.snoozed = false
}

func (cs *clockState) snoozePressed() {
	cs.buzzer.stop()
	if !cs.snoozed {
		cs.snoozed = true
		cs.snooze.copyFrom(cs.alarm)
	}
	cs.snooze.addMinutes(cs.snoozeMinutes)
}

// dispatch applies the generic any-press effects and then the table.
func (cs *clockState) dispatch(btn int, long bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	// every physical press lights the display and beeps
	cs.backlight.activate()
	cs.buzzer.buttonBeep(cs.state == stateRinging)

	entry, ok := transitions[transKey{state: cs.state, btn: btn, long: long}]
	if !ok {
		return
	}
	if entry.effect != nil {
		entry.effect(cs)
	}
	cs.state = entry.next
}

func (cs *clockState) shortPress(btn int) {
	cs.dispatch(btn, false)
}

func (cs *clockState) longPress(btn int) {
	cs.dispatch(btn, true)
}

// secondTick advances the clock one second and evaluates the alarm
// match. Called once per second by the seconds runner with the switch
// state sampled at tick time.
func (cs *clockState) secondTick(switchOn bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.second++
	if cs.second >= 60 {
		cs.second = 0
		cs.clock.addMinutes(1)
	}

	if !switchOn || cs.state != stateIdle {
		return
	}

	target := cs.alarm
	if cs.snoozed {
		target = cs.snooze
	}
	if target.equals(cs.clock) {
		cs.state = stateRinging
		cs.buzzer.startRinging()
	}
}

// switchOff is the physical "alarm off" path, polled by the
// foreground loop. Only a ringing alarm reacts.
func (cs *clockState) switchOff() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.state != stateRinging {
		return
	}
	cs.silence()
	cs.state = stateIdle
}

// fastTick runs the two countdown controllers.
func (cs *clockState) fastTick() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.backlight.fastTick()
	cs.buzzer.fastTick(cs.state == stateRinging)
}

// toneEnabled tells the tone runner whether to keep toggling the
// output line.
func (cs *clockState) toneEnabled() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.buzzer.gate
}

func (cs *clockState) snapshot() stateSnapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return stateSnapshot{
		state:  cs.state,
		clock:  cs.clock,
		alarm:  cs.alarm,
		mode:   cs.mode,
		second: cs.second,
	}
}

// setClock is used by tests and by the sim startup to seed the time.
func (cs *clockState) setClock(tv timeValue) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.clock = tv
	cs.second = 0
}

func (cs *clockState) setAlarm(tv timeValue) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.alarm = tv
}
