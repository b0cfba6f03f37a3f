package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"runtime"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// setting names
const (
	sLogFile  = "logFile"
	sDebug    = "debugDump"
	sBltTicks = "backlightTicks"
	sBuzzLong = "buzzerLongTicks"
	sBuzzShrt = "buzzerShortTicks"
	sLongTcks = "longPressTicks"
	sSnooze   = "snoozeMinutes"
	sToneHz   = "toneHz"
	sBtnSim   = "buttonSimulated"
	sToneMode = "toneMode"
	sI2CSim   = "i2cSimulated"
	sI2CBus   = "i2cBus"
	sI2CDev   = "i2cDevice"
	sBltPin   = "backlightPin"
	sBuzzPin  = "buzzerPin"
	sSwitch   = "alarmSwitch"
	sBtnAlm   = "setAlarmButton"
	sBtnClk   = "setClockButton"
	sBtnUp    = "upButton"
	sBtnDown  = "downButton"
	sBtnMode  = "modeButton"
	sBtnSnoz  = "snoozeButton"
	sBtnStop  = "stopButton"
)

// tone modes
const (
	tonePin   = "pin"
	toneAudio = "audio"
	toneOff   = "off"
)

// buttonMap ties a named input to a GPIO pin (hardware) and a key
// (simulated mode).
type buttonMap struct {
	pinNum int
	key    string
	pullup bool
}

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// the fast tick is 10ms, so the tick counts below are:
	// backlight  5s, ring cadence halves 0.5s, feedback beep 50ms,
	// long press 1.5s
	s[sLogFile] = "/var/log/bedclock.log"
	s[sDebug] = false
	s[sBltTicks] = 500
	s[sBuzzLong] = 50
	s[sBuzzShrt] = 5
	s[sLongTcks] = 150
	s[sSnooze] = 5
	s[sToneHz] = 2048
	s[sI2CBus] = 1
	s[sI2CDev] = byte(0x70)
	s[sBltPin] = 18
	s[sBuzzPin] = 13

	s[sSwitch] = buttonMap{pinNum: 23, key: "s", pullup: true}
	s[sBtnAlm] = buttonMap{pinNum: 25, key: "a", pullup: true}
	s[sBtnClk] = buttonMap{pinNum: 24, key: "c", pullup: true}
	s[sBtnUp] = buttonMap{pinNum: 17, key: "u", pullup: true}
	s[sBtnDown] = buttonMap{pinNum: 27, key: "d", pullup: true}
	s[sBtnMode] = buttonMap{pinNum: 22, key: "m", pullup: true}
	s[sBtnSnoz] = buttonMap{pinNum: 5, key: "z", pullup: true}
	s[sBtnStop] = buttonMap{pinNum: 6, key: "x", pullup: true}

	// off the Pi we simulate by default
	sim := runtime.GOARCH != "arm"
	s[sBtnSim] = sim
	s[sI2CSim] = sim
	if sim {
		s[sToneMode] = toneAudio
	} else {
		s[sToneMode] = tonePin
	}

	return configSettings{settings: s}
}

func (s *configSettings) settingsFromJSON(data []byte) error {
	for k, initVal := range s.settings {
		raw, vt, _, err := jsonparser.Get(data, k)
		if err != nil || vt == jsonparser.NotExist {
			continue
		}

		switch initVal.(type) {
		case byte:
			val, err := jsonparser.GetInt(data, k)
			if err != nil {
				return errors.Wrapf(err, "setting %s", k)
			}
			s.settings[k] = byte(val)
		case int:
			val, err := jsonparser.GetInt(data, k)
			if err != nil {
				return errors.Wrapf(err, "setting %s", k)
			}
			s.settings[k] = int(val)
		case bool:
			val, err := jsonparser.GetBoolean(data, k)
			if err != nil {
				return errors.Wrapf(err, "setting %s", k)
			}
			s.settings[k] = val
		case string:
			s.settings[k] = string(raw)
		case buttonMap:
			bm := initVal.(buttonMap)
			if pin, err := jsonparser.GetInt(raw, "pin"); err == nil {
				bm.pinNum = int(pin)
			}
			if key, err := jsonparser.GetString(raw, "key"); err == nil {
				bm.key = key
			}
			if pullup, err := jsonparser.GetBoolean(raw, "pullup"); err == nil {
				bm.pullup = pullup
			}
			s.settings[k] = bm
		default:
			return errors.Errorf("setting %s: unhandled type %T", k, initVal)
		}
	}
	return nil
}

func initSettings(cfgFile string) configSettings {
	s := defaultSettings()

	if cfgFile == "" {
		return s
	}

	data, err := ioutil.ReadFile(cfgFile)
	if err != nil {
		log.Printf("Using default settings (%s)", err.Error())
		return s
	}
	if err := s.settingsFromJSON(data); err != nil {
		log.Fatalf("Bad config %s: %s", cfgFile, err.Error())
	}
	return s
}

func (s *configSettings) GetString(name string) string {
	if v, ok := s.settings[name].(string); ok {
		return v
	}
	log.Printf("Bad setting type for %s", name)
	return ""
}

func (s *configSettings) GetInt(name string) int {
	if v, ok := s.settings[name].(int); ok {
		return v
	}
	log.Printf("Bad setting type for %s", name)
	return 0
}

func (s *configSettings) GetBool(name string) bool {
	if v, ok := s.settings[name].(bool); ok {
		return v
	}
	log.Printf("Bad setting type for %s", name)
	return false
}

func (s *configSettings) GetByte(name string) byte {
	if v, ok := s.settings[name].(byte); ok {
		return v
	}
	log.Printf("Bad setting type for %s", name)
	return 0
}

func (s *configSettings) GetDuration(name string) time.Duration {
	if v, ok := s.settings[name].(time.Duration); ok {
		return v
	}
	log.Printf("Bad setting type for %s", name)
	return 0
}

func (s *configSettings) GetButtonMap(name string) buttonMap {
	if v, ok := s.settings[name].(buttonMap); ok {
		return v
	}
	log.Printf("Bad setting type for %s", name)
	return buttonMap{}
}

// GetAllButtonNames lists the button settings, not the switch.
func (s *configSettings) GetAllButtonNames() []string {
	return []string{sBtnAlm, sBtnClk, sBtnUp, sBtnDown, sBtnMode, sBtnSnoz, sBtnStop}
}

func (s *configSettings) Dump() {
	for k, v := range s.settings {
		log.Println(fmt.Sprintf("  %s: %v", k, v))
	}
}
