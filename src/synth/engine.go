package synth

import "fmt"

// ----- Engine ----- //

// Engine mixes a fixed set of voices into one stream and applies
// control messages between buffers. All of its state is owned by the
// render context; control tasks only reach it through the queue, so
// nothing here needs a lock.
type Engine struct {
	voices   [voiceCount]*voice
	selected int // -1 until the first SelectVoice
	queue    *Queue

	// Maintained on every toggle so Tick multiplies instead of
	// dividing per sample.
	activeCount      int
	activeReciprocal float64
}

// EngineStatus is a read-only snapshot for logging and tests. Take it
// only when the render loop is not running.
type EngineStatus struct {
	Selected    int // -1 when no voice is selected
	ActiveCount int
	Active      [voiceCount]bool
}

// NewEngine creates voiceCount voices at the starting frequency, all
// inactive, nothing selected.
func NewEngine(rate float64, queue *Queue) (*Engine, error) {
	if queue == nil {
		return nil, fmt.Errorf("engine needs a message queue")
	}
	e := &Engine{
		selected:         -1,
		queue:            queue,
		activeReciprocal: 1.0,
	}
	for i := range e.voices {
		v, err := newVoice(startingFrequency, rate)
		if err != nil {
			return nil, err
		}
		e.voices[i] = v
	}
	return e, nil
}

// ProcessMessage applies one control message. Control input is
// best-effort: an out-of-range index, or a parameter message while
// nothing is selected, is a silent no-op and must never stop audio.
func (e *Engine) ProcessMessage(m Message) {
	switch m.kind {
	case msgSelectVoice:
		if int(m.index) < voiceCount {
			e.selected = int(m.index)
		}
	case msgToggleVoice:
		if int(m.index) >= voiceCount {
			return
		}
		v := e.voices[m.index]
		wasActive := v.active
		v.setActive(!wasActive)
		if wasActive {
			e.activeCount--
		} else {
			e.activeCount++
		}
		if e.activeCount > 0 {
			e.activeReciprocal = 1.0 / float64(e.activeCount)
		} else {
			// Inert: the mix sum is 0.0 with no active voices.
			e.activeReciprocal = 1.0
		}
	case msgSetFrequency:
		if e.selected >= 0 {
			e.voices[e.selected].setFrequency(m.value)
		}
	case msgSetVolume:
		if e.selected >= 0 {
			e.voices[e.selected].setVolume(m.value)
		}
	}
}

// Tick mixes one sample from every voice. The cached reciprocal
// normalizes by the active count without a per-sample division.
func (e *Engine) Tick() float64 {
	sum := 0.0
	for _, v := range e.voices {
		sum += v.tick()
	}
	return sum * e.activeReciprocal * masterGain
}

// Render drains the control queue, then fills buf with stereo i16 LE
// frames (mono duplicated to both channels). It returns the number of
// bytes written: len(buf) rounded down to a whole frame, or 0 when buf
// cannot hold even one. Trailing odd bytes are left untouched.
//
// Draining happens entirely before the first sample, so control
// changes quantize to buffer boundaries rather than samples.
func (e *Engine) Render(buf []byte) int {
	if len(buf) < bytesPerFrame {
		return 0
	}
	for {
		m, ok := e.queue.TryReceive()
		if !ok {
			break
		}
		e.ProcessMessage(m)
	}
	n := len(buf) - len(buf)%bytesPerFrame
	for i := 0; i < n; i += bytesPerFrame {
		lo, hi := encodeSample(e.Tick())
		buf[i] = lo
		buf[i+1] = hi
		buf[i+2] = lo
		buf[i+3] = hi
	}
	return n
}

// Status ...
func (e *Engine) Status() EngineStatus {
	s := EngineStatus{Selected: e.selected, ActiveCount: e.activeCount}
	for i, v := range e.voices {
		s.Active[i] = v.active
	}
	return s
}
