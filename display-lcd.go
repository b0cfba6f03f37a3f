package main

import (
	"dscheirer.com/bedclock/sevenseg"
)

// sevenSegDisplay backs the display interface with the HT16K33
// seven-segment backpack.
type sevenSegDisplay struct {
	dev *sevenseg.Sevenseg
}

func (sd *sevenSegDisplay) OpenDisplay(settings configSettings) error {
	dev, err := sevenseg.Open(settings.GetByte(sI2CDev), settings.GetInt(sI2CBus))
	if err != nil {
		return err
	}
	sd.dev = dev
	return nil
}

func (sd *sevenSegDisplay) Print(e string) error {
	return sd.dev.Print(e)
}

func (sd *sevenSegDisplay) SetBlinkRate(r uint8) error {
	return sd.dev.SetBlinkRate(r)
}

func (sd *sevenSegDisplay) DisplayOn(on bool) {
	sd.dev.DisplayOn(on)
}

func (sd *sevenSegDisplay) CloseDisplay() {
	sd.dev.Clear()
	sd.dev.DisplayOn(false)
	sd.dev.Close()
}
