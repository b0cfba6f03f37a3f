package main

import (
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"
)

var testSettings configSettings

func TestMain(m *testing.M) {
	testSettings = defaultSettings()
	// log to stderr and keep the countdowns short
	testSettings.settings[sLogFile] = ""
	testSettings.settings[sBltTicks] = 5
	testSettings.settings[sBuzzLong] = 4
	testSettings.settings[sBuzzShrt] = 2
	testSettings.settings[sLongTcks] = 3
	testSettings.settings[sToneHz] = 500
	testSettings.settings[sBtnSim] = false
	testSettings.settings[sI2CSim] = true
	testSettings.settings[sToneMode] = toneOff

	os.Exit(m.Run())
}

func testRuntime() (runtimeConfig, clockwork.FakeClock, commChannels) {
	rt := initTestRuntime(testSettings)
	return rt, rt.clock.(clockwork.FakeClock), rt.comms
}

// testBlockDuration advances the fake clock in runner-sized steps,
// letting the runner under test process each one.
func testBlockDuration(clock clockwork.FakeClock, step time.Duration, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		clock.Advance(step)
		clock.BlockUntil(1)
	}
}

func testQuit(rt runtimeConfig) {
	rt.comms.closeQuit()
}

func btnEventRead(t *testing.T, c chan buttonEvent) buttonEvent {
	select {
	case e := <-c:
		return e
	default:
		assert.Assert(t, false, "Nothing to read from button channel")
	}
	return buttonEvent{}
}

func btnEventNoRead(t *testing.T, c chan buttonEvent) {
	select {
	case e := <-c:
		assert.Assert(t, false, "Got an unexpected button event: %v", e)
	default:
	}
}
