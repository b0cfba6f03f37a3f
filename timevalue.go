package main

import "fmt"

// display modes
const (
	modeH12 = iota
	modeH24
)

// timeValue is a wall time of day at minute resolution. Hours and
// minutes wrap, minute overflow carries into the hour.
type timeValue struct {
	hour int
	min  int
}

func (tv *timeValue) addHours(delta int) {
	tv.hour = mod24(tv.hour + delta)
}

func (tv *timeValue) addMinutes(delta int) {
	total := tv.min + delta
	carry := total / 60
	tv.min = total % 60
	if tv.min < 0 {
		tv.min += 60
		carry--
	}
	tv.hour = mod24(tv.hour + carry)
}

func (tv timeValue) equals(other timeValue) bool {
	return tv.hour == other.hour && tv.min == other.min
}

func (tv *timeValue) copyFrom(other timeValue) {
	tv.hour = other.hour
	tv.min = other.min
}

// format renders "HH:MM" for h24 mode, " H:MM" for h12 mode.
// A leading zero hour shows as a space, matching the display layout.
func (tv timeValue) format(mode int) string {
	hour := tv.hour
	if mode == modeH12 {
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
		return fmt.Sprintf("%2d:%02d", hour, tv.min)
	}
	return fmt.Sprintf("%02d:%02d", hour, tv.min)
}

func (tv timeValue) pm() bool {
	return tv.hour >= 12
}

func mod24(h int) int {
	h = h % 24
	if h < 0 {
		h += 24
	}
	return h
}
