package synth

import "fmt"

// ----- Control Messages ----- //

type messageKind uint8

const (
	msgSelectVoice messageKind = iota
	msgToggleVoice
	msgSetFrequency
	msgSetVolume
)

// Message is one command crossing from a control task into the engine.
// It is a plain value: adapters build one, the queue copies it, the
// engine consumes it exactly once. Voice indexes are 0-based and get
// validated against the voice count inside the engine; parameter
// messages only apply while a voice is selected.
type Message struct {
	kind  messageKind
	index uint8   // voice index for SelectVoice/ToggleVoice
	value float64 // Hz for SetFrequency, 0..1 for SetVolume
}

// SelectVoice makes voice index the target of parameter messages.
func SelectVoice(index uint8) Message {
	return Message{kind: msgSelectVoice, index: index}
}

// ToggleVoice flips voice index on/off. Volume and frequency survive.
func ToggleVoice(index uint8) Message {
	return Message{kind: msgToggleVoice, index: index}
}

// SetFrequency retunes the selected voice (Hz).
func SetFrequency(hz float64) Message {
	return Message{kind: msgSetFrequency, value: hz}
}

// SetVolume sets the selected voice's level (0.0 to 1.0).
func SetVolume(v float64) Message {
	return Message{kind: msgSetVolume, value: v}
}

func (m Message) String() string {
	switch m.kind {
	case msgSelectVoice:
		return fmt.Sprintf("select %d", m.index)
	case msgToggleVoice:
		return fmt.Sprintf("toggle %d", m.index)
	case msgSetFrequency:
		return fmt.Sprintf("freq %.2f", m.value)
	case msgSetVolume:
		return fmt.Sprintf("vol %.3f", m.value)
	}
	return "unknown"
}
