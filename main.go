package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// bedclock -config={config file}
//
// A bedside alarm clock: six buttons, an on/off switch, a buzzer and
// a backlit seven-segment display. Three periodic runners stand in
// for the hardware timers (fast tick, seconds tick, tone tick); the
// foreground loop polls the switch, dispatches button events into the
// state machine and redraws the display.

func main() {
	configFile := flag.String("config", "/etc/default/bedclock/config.conf", "config file path")
	console := flag.Bool("console", false, "log to stderr instead of the log file")
	flag.Parse()

	settings := initSettings(*configFile)

	logger := setupLogging(settings, *console)
	if logger != nil {
		defer logger.Close()
	}

	log.Printf("features: %v", features)
	if settings.GetBool(sDebug) {
		settings.Dump()
	}

	rt := initRuntime(settings)

	if err := rt.tone.openTone(settings); err != nil {
		log.Fatalf("tone init: %s", err.Error())
	}
	defer rt.tone.closeTone()

	if err := rt.display.OpenDisplay(settings); err != nil {
		log.Fatalf("display init: %s", err.Error())
	}
	defer rt.display.CloseDisplay()
	rt.display.DisplayOn(true)

	// hosted runtimes know the time already, seed the clock with it
	now := time.Now()
	rt.state.setClock(timeValue{hour: now.Hour(), min: now.Minute()})

	startWatchButtons(rt)
	go runFastTick(rt)
	go runClockTick(rt)
	go runToneTick(rt)
	go runForeground(rt)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("shutting down")
		rt.comms.closeQuit()
	}()

	wg.Wait()
}
