// Package sevenseg drives an HT16K33 four-digit seven-segment
// backpack over i2c. It knows just enough for a clock face: four
// digits, the colon, brightness and blink.
package sevenseg

import (
	"fmt"

	"github.com/davecheney/i2c"
)

const (
	cmdOscOn      = 0x21
	cmdDisplay    = 0x80
	cmdBrightness = 0xE0
)

// blink rates for SetBlinkRate
const (
	BlinkOff    = 0
	Blink2Hz    = 1
	Blink1Hz    = 2
	BlinkHalfHz = 3
)

// display RAM: digits at rows 0,2,6,8; the colon is row 4 bit 1
var digitRow = [4]byte{0, 2, 6, 8}

const colonRow = 4

var segments = map[byte]byte{
	'0': 0x3F, '1': 0x06, '2': 0x5B, '3': 0x4F, '4': 0x66,
	'5': 0x6D, '6': 0x7D, '7': 0x07, '8': 0x7F, '9': 0x6F,
	' ': 0x00, '-': 0x40,
}

type Sevenseg struct {
	bus       *i2c.I2C
	buffer    [11]byte // address byte + 5 rows of 2
	displayOn bool
	blink     uint8
}

func Open(address uint8, bus int) (*Sevenseg, error) {
	dev, err := i2c.New(address, bus)
	if err != nil {
		return nil, err
	}

	this := &Sevenseg{bus: dev, displayOn: true}
	if _, err := dev.Write([]byte{cmdOscOn}); err != nil {
		dev.Close()
		return nil, err
	}
	if err := this.writeDisplayCmd(); err != nil {
		dev.Close()
		return nil, err
	}
	if err := this.SetBrightness(7); err != nil {
		dev.Close()
		return nil, err
	}
	return this, nil
}

func (this *Sevenseg) writeDisplayCmd() error {
	cmd := byte(cmdDisplay) | this.blink<<1
	if this.displayOn {
		cmd |= 1
	}
	_, err := this.bus.Write([]byte{cmd})
	return err
}

func (this *Sevenseg) DisplayOn(on bool) error {
	this.displayOn = on
	return this.writeDisplayCmd()
}

func (this *Sevenseg) SetBlinkRate(rate uint8) error {
	if rate > BlinkHalfHz {
		return fmt.Errorf("bad blink rate: %d", rate)
	}
	this.blink = rate
	return this.writeDisplayCmd()
}

func (this *Sevenseg) SetBrightness(b uint8) error {
	if b > 15 {
		b = 15
	}
	_, err := this.bus.Write([]byte{cmdBrightness | b})
	return err
}

// Print shows up to four digit characters with an optional colon,
// e.g. " 7:05" or "2359". A '.' lights the decimal point on the digit
// before it. Unknown characters render blank.
func (this *Sevenseg) Print(e string) error {
	for i := range this.buffer {
		this.buffer[i] = 0
	}

	digit := 0
	colon := false
	for i := 0; i < len(e); i++ {
		if e[i] == ':' {
			colon = true
			continue
		}
		if e[i] == '.' {
			if digit > 0 {
				this.buffer[1+digitRow[digit-1]] |= 0x80
			}
			continue
		}
		if digit >= len(digitRow) {
			return fmt.Errorf("too many digits: %q", e)
		}
		this.buffer[1+digitRow[digit]] = segments[e[i]]
		digit++
	}
	if colon {
		this.buffer[1+colonRow] = 0x02
	}

	// buffer[0] is the display RAM address
	_, err := this.bus.Write(this.buffer[:])
	return err
}

func (this *Sevenseg) Clear() error {
	return this.Print("    ")
}

func (this *Sevenseg) Close() {
	this.bus.Close()
}
