// +build noaudio

package main

// no portaudio on this build, fall back to the silent sink
func newAudioTone() tone {
	return &noTone{}
}
