package synth

import (
	"context"
	"log"
	"math"
	"time"
)

// ----- Potentiometer ----- //

// AnalogSource yields one raw reading of a physical control. The
// calibrated range is potMin..potMax; reading the hardware (ADC,
// multiplexer, whatever) is the collaborator's problem.
type AnalogSource interface {
	Read() uint16
}

// Potentiometer turns noisy raw readings into control messages. Each
// pot owns its own filter state and mapping; the polling task owns the
// hardware and the cadence.
type Potentiometer struct {
	filtered  float64 // EMA state
	lastSent  float64 // last normalized value that produced a message
	threshold float64 // deadband
	mapFn     func(normalized float64) Message
	samples   [adcMultisampleCount]uint16
}

// NewPotentiometer ...
func NewPotentiometer(mapFn func(float64) Message, threshold float64) *Potentiometer {
	return &Potentiometer{
		filtered:  float64(potMin+potMax) / 2,
		threshold: threshold,
		mapFn:     mapFn,
	}
}

// Poll runs the whole input chain once: multisample, average, EMA,
// normalize, deadband, map, enqueue. It reports whether a message was
// produced. The deadband compares against the last *sent* value, not
// the last read one; otherwise a slow drift never adds up to a change
// while pure noise emits a message on every poll.
func (p *Potentiometer) Poll(src AnalogSource, q *Queue) bool {
	for i := range p.samples {
		p.samples[i] = src.Read()
	}
	var sum uint32
	for _, s := range p.samples {
		sum += uint32(s)
	}
	avg := float64(sum) / float64(len(p.samples))

	p.filtered = p.filtered*adcEMAAlpha + avg*(1-adcEMAAlpha)

	normalized := (p.filtered - potMin) / (potMax - potMin)
	if normalized < 0 {
		normalized = 0
	} else if normalized > 1 {
		normalized = 1
	}

	if math.Abs(normalized-p.lastSent) < p.threshold {
		return false
	}
	p.lastSent = normalized
	msg := p.mapFn(normalized)
	if !q.TrySend(msg) {
		log.Printf("control queue full, dropped %v", msg)
	}
	return true
}

// MapFrequency maps a normalized pot position linearly onto the
// configured frequency range.
func MapFrequency(normalized float64) Message {
	return SetFrequency(frequencyMin + normalized*(frequencyMax-frequencyMin))
}

// MapVolume maps a normalized pot position straight to volume.
func MapVolume(normalized float64) Message {
	return SetVolume(normalized)
}

// RunPots polls the frequency and volume pots on one shared cadence
// until ctx is cancelled. Sequential polling is fine: pots change on
// human timescales and a read is microseconds against a 20ms period.
func RunPots(ctx context.Context, q *Queue, freqSrc AnalogSource, volSrc AnalogSource) error {
	freqPot := NewPotentiometer(MapFrequency, potChangeThreshold)
	volPot := NewPotentiometer(MapVolume, potChangeThreshold)
	t := time.NewTicker(adcPollInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("RunPots() interrupted")
			return ctx.Err()
		case <-t.C:
			freqPot.Poll(freqSrc, q)
			volPot.Poll(volSrc, q)
		}
	}
}
