package main

import (
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ThreadLogger prefixes log lines with the runner that wrote them.
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf("["+tl.name+"] "+format, v...)
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	args := append([]interface{}{"[" + tl.name + "]"}, v...)
	log.Println(args...)
}

// setupLogging points the stdlib logger at a rotating file. An empty
// path (tests, sim mode with -console) leaves it on stderr.
func setupLogging(settings configSettings, console bool) *lumberjack.Logger {
	path := settings.GetString(sLogFile)
	if console || path == "" {
		return nil
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	log.SetOutput(lj)
	return lj
}
