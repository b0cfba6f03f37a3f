// +build !noaudio

package main

import (
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
)

func init() {
	features = append(features, "audio")
}

const sampleRate = 44100

// audioTone renders the buzzer through the sound card in sim mode.
// The stream callback holds the line at the current level; the tone
// tick toggling the level is what makes the square wave, same as the
// hardware pin.
type audioTone struct {
	stream *portaudio.Stream
	level  int32 // 0 or 1, flipped by toggle
}

func newAudioTone() tone {
	return &audioTone{}
}

func (at *audioTone) openTone(settings configSettings) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, 0, at.processAudio)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	at.stream = stream
	return stream.Start()
}

func (at *audioTone) processAudio(out [][]float32) {
	for i := range out[0] {
		out[0][i] = float32(atomic.LoadInt32(&at.level))*0.6 - 0.3
	}
}

func (at *audioTone) toggle() {
	atomic.StoreInt32(&at.level, 1-atomic.LoadInt32(&at.level))
}

func (at *audioTone) closeTone() {
	if at.stream != nil {
		at.stream.Stop()
		at.stream.Close()
	}
	portaudio.Terminate()
}
