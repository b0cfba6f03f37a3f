package main

// backlightControl turns the display light off a fixed number of fast
// ticks after the last button press. Re-activation restarts the
// countdown in place, it never stacks.
type backlightControl struct {
	ticks int
	light led
	pin   int

	armed     bool
	remaining int
}

func newBacklightControl(ticks int, light led, pin int) backlightControl {
	return backlightControl{ticks: ticks, light: light, pin: pin}
}

func (bl *backlightControl) activate() {
	bl.light.on(bl.pin)
	bl.armed = true
	bl.remaining = bl.ticks
}

func (bl *backlightControl) fastTick() {
	if !bl.armed {
		return
	}
	if bl.remaining > 0 {
		bl.remaining--
		return
	}
	bl.light.off(bl.pin)
	bl.armed = false
}
