package synth

import (
	"fmt"
	"math"
)

// ----- Oscillator ----- //

// oscillator is a phase-accumulator wavetable generator. The table
// holds one sine cycle and is read-only after construction; the phase
// advances by a frequency-derived increment every tick and wraps with
// a mask, never a modulo.
type oscillator struct {
	table      []float64
	phase      float64 // 0 <= phase < wavetableSize
	increment  float64 // frequency * wavetableSize / sampleRate
	sampleRate float64
}

func newOscillator(frequency float64, rate float64) (*oscillator, error) {
	if frequency <= 0 {
		return nil, fmt.Errorf("oscillator frequency must be positive, got %v", frequency)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %v", rate)
	}
	table := make([]float64, wavetableSize)
	for i := range table {
		table[i] = math.Sin(2 * math.Pi * float64(i) / wavetableSizeF)
	}
	o := &oscillator{table: table, sampleRate: rate}
	o.setFrequency(frequency)
	return o, nil
}

// setFrequency recomputes the phase increment. The phase itself is
// untouched so retuning never glitches. Non-positive values are
// ignored; anything above Nyquist is clamped so the increment can
// never outrun the single-subtract wrap in tick.
func (o *oscillator) setFrequency(hz float64) {
	if hz <= 0 {
		return
	}
	if nyquist := o.sampleRate / 2; hz > nyquist {
		hz = nyquist
	}
	o.increment = hz * wavetableSizeF / o.sampleRate
}

// tick advances the phase and returns the interpolated table value,
// in [-1.0, 1.0]. Linear interpolation between the two neighbouring
// slots keeps aliasing down at high frequency/sample-rate ratios.
func (o *oscillator) tick() float64 {
	o.phase += o.increment
	if o.phase >= wavetableSizeF {
		o.phase -= wavetableSizeF
	}
	i := int(o.phase) & wavetableMask
	j := (i + 1) & wavetableMask
	frac := o.phase - math.Floor(o.phase)
	return o.table[i]*(1-frac) + o.table[j]*frac
}
