package synth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOscillatorOutputStaysInRange(t *testing.T) {
	cases := []struct {
		freq float64
		rate float64
	}{
		{freq: 77, rate: 44100},
		{freq: 220, rate: 44100},
		{freq: 1024, rate: 44100},
		{freq: 30, rate: 8000},
		{freq: 440, rate: 48000},
	}
	for _, c := range cases {
		osc, err := newOscillator(c.freq, c.rate)
		require.NoError(t, err)
		ticks := int(c.rate/c.freq) + 1 // at least one full cycle
		for i := 0; i < ticks; i++ {
			s := osc.tick()
			require.GreaterOrEqual(t, s, -1.0, "freq %v rate %v tick %d", c.freq, c.rate, i)
			require.LessOrEqual(t, s, 1.0, "freq %v rate %v tick %d", c.freq, c.rate, i)
		}
	}
}

func TestOscillatorRejectsInvalidConfig(t *testing.T) {
	_, err := newOscillator(0, 44100)
	require.Error(t, err)
	_, err = newOscillator(-20, 44100)
	require.Error(t, err)
	_, err = newOscillator(440, 0)
	require.Error(t, err)
	_, err = newOscillator(440, -44100)
	require.Error(t, err)
}

func TestOscillatorSetFrequencyKeepsPhase(t *testing.T) {
	osc, err := newOscillator(220, 44100)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		osc.tick()
	}
	phase := osc.phase
	osc.setFrequency(880)
	require.Equal(t, phase, osc.phase)
	require.InDelta(t, 880*wavetableSizeF/44100, osc.increment, 1e-12)
}

func TestOscillatorIgnoresNonPositiveFrequency(t *testing.T) {
	osc, err := newOscillator(220, 44100)
	require.NoError(t, err)
	inc := osc.increment
	osc.setFrequency(0)
	require.Equal(t, inc, osc.increment)
	osc.setFrequency(-5)
	require.Equal(t, inc, osc.increment)
}

func TestOscillatorClampsToNyquist(t *testing.T) {
	osc, err := newOscillator(220, 44100)
	require.NoError(t, err)
	osc.setFrequency(1e6)
	require.InDelta(t, (44100.0/2)*wavetableSizeF/44100, osc.increment, 1e-9)
}

func TestOscillatorIsPeriodic(t *testing.T) {
	// 441 Hz at 44100 Hz repeats every 100 samples exactly.
	osc, err := newOscillator(441, 44100)
	require.NoError(t, err)
	first := make([]float64, 100)
	for i := range first {
		first[i] = osc.tick()
	}
	for i := 0; i < 100; i++ {
		require.InDelta(t, first[i], osc.tick(), 1e-9, "sample %d", i)
	}
}
