package main

import (
	"log"
	"sync"
)

// logDisplay logs what would be shown, keeping an audit for tests.
type logDisplay struct {
	mu         sync.Mutex
	curDisplay string
	blinkRate  uint8
	displayOn  bool
	audit      []string
}

func (ld *logDisplay) OpenDisplay(settings configSettings) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.curDisplay = ""
	ld.audit = []string{}
	ld.displayOn = true
	return nil
}

func (ld *logDisplay) Print(e string) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	if e != ld.curDisplay {
		log.Println(e)
		ld.audit = append(ld.audit, e)
	}
	ld.curDisplay = e
	return nil
}

func (ld *logDisplay) SetBlinkRate(r uint8) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.blinkRate = r
	return nil
}

func (ld *logDisplay) DisplayOn(on bool) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.displayOn = on
}

func (ld *logDisplay) CloseDisplay() {
}

func (ld *logDisplay) lastPrint() string {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.curDisplay
}

func (ld *logDisplay) getBlinkRate() uint8 {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return ld.blinkRate
}
