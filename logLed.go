package main

import (
	"fmt"
)

// logLed stands in for the backlight power pin, keeping a write
// audit the tests can count.
type logLed struct {
	pins       map[int]bool
	writes     []string
	disableLog bool
	logger     flogger
}

func (ll *logLed) init() {
	ll.pins = make(map[int]bool)
	ll.writes = nil
	ll.logger = &ThreadLogger{name: "led"}
}

func (ll *logLed) set(pin int, on bool) {
	ll.pins[pin] = on
	entry := fmt.Sprintf("pin %d -> %v", pin, on)
	if !ll.disableLog {
		ll.logger.Println(entry)
	}
	ll.writes = append(ll.writes, entry)
}

func (ll *logLed) on(pin int) {
	ll.set(pin, true)
}

func (ll *logLed) off(pin int) {
	ll.set(pin, false)
}

// test helpers

func (ll *logLed) lit(pin int) bool {
	return ll.pins[pin]
}

func (ll *logLed) offCount(pin int) int {
	n := 0
	want := fmt.Sprintf("pin %d -> false", pin)
	for _, w := range ll.writes {
		if w == want {
			n++
		}
	}
	return n
}

func (ll *logLed) writeCount() int {
	return len(ll.writes)
}
