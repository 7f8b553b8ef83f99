package synth

import (
	"context"
	"log"

	"gitlab.com/gomidi/rtmididrv"
)

// ----- MIDI Input ----- //

// MIDI is an optional extra control source: note-ons pick and toggle
// voices, CC1 retunes and CC7 sets volume. It shares the lossy queue
// with every other adapter, so a burst of MIDI can drop messages just
// like a twitchy pot can.

const (
	midiCCFrequency = 1 // mod wheel
	midiCCVolume    = 7 // channel volume
)

// translateMidi turns one raw MIDI message into control messages.
// Notes map onto the voice range modulo the voice count; a note-on
// both selects and toggles, so a keyboard can drive the synth without
// dedicated select buttons. Note-offs are ignored; voices latch.
func translateMidi(data []byte) []Message {
	if len(data) < 3 {
		return nil
	}
	switch data[0] >> 4 {
	case 9: // note on
		if data[2] == 0 {
			return nil
		}
		idx := uint8(int(data[1]) % voiceCount)
		return []Message{SelectVoice(idx), ToggleVoice(idx)}
	case 11: // control change
		normalized := float64(data[2]) / 127
		switch data[1] {
		case midiCCFrequency:
			return []Message{MapFrequency(normalized)}
		case midiCCVolume:
			return []Message{MapVolume(normalized)}
		}
	}
	return nil
}

// RunMidi opens the first MIDI IN port and feeds its events through
// translateMidi into the queue until ctx is cancelled. Missing
// hardware is not an error: the synth just runs without MIDI.
func RunMidi(ctx context.Context, q *Queue) error {
	drv, err := rtmididrv.New()
	if err != nil {
		log.Printf("failed to initialize MIDI driver: %v", err)
		return nil
	}
	defer func() {
		if err := drv.Close(); err != nil {
			log.Printf("failed to close MIDI driver: %v", err)
		}
	}()
	ins, err := drv.Ins()
	if err != nil {
		log.Printf("failed to get MIDI IN: %v", err)
		return nil
	}
	if len(ins) == 0 {
		log.Println("WARN: MIDI IN not found")
		return nil
	}
	in := ins[0]
	if err := in.Open(); err != nil {
		log.Printf("failed to open MIDI IN: %v", err)
		return nil
	}
	defer func() {
		if err := in.Close(); err != nil {
			log.Printf("failed to close MIDI IN: %v", err)
		}
	}()
	log.Println("listening on " + in.String())
	err = in.SetListener(func(data []byte, deltaMicroseconds int64) {
		for _, msg := range translateMidi(data) {
			if !q.TrySend(msg) {
				log.Printf("control queue full, dropped %v", msg)
			}
		}
	})
	if err != nil {
		log.Printf("failed to set MIDI listener: %v", err)
		return nil
	}
	defer func() {
		if err := in.StopListening(); err != nil {
			log.Printf("failed to stop listening: %v", err)
		}
	}()
	<-ctx.Done()
	log.Println("RunMidi() interrupted")
	return ctx.Err()
}
