package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVoiceInactiveIsSilent(t *testing.T) {
	v, err := newVoice(220, 44100)
	require.NoError(t, err)
	v.setVolume(1.0)
	for i := 0; i < 100; i++ {
		require.Equal(t, 0.0, v.tick())
	}
}

func TestVoiceActiveProducesSignal(t *testing.T) {
	v, err := newVoice(220, 44100)
	require.NoError(t, err)
	v.setActive(true)
	nonZero := 0
	for i := 0; i < 100; i++ {
		if v.tick() != 0 {
			nonZero++
		}
	}
	require.Greater(t, nonZero, 90)
}

func TestVoiceVolumeClamped(t *testing.T) {
	v, err := newVoice(220, 44100)
	require.NoError(t, err)
	v.setVolume(1.5)
	require.Equal(t, 1.0, v.volumeTarget)
	v.setVolume(-0.2)
	require.Equal(t, 0.0, v.volumeTarget)
	// The smoothed value is untouched until tick runs.
	require.Equal(t, defaultVolume, v.volumeCurrent)
}

func TestVoiceVolumeConverges(t *testing.T) {
	v, err := newVoice(220, 44100)
	require.NoError(t, err)
	v.setActive(true)
	v.setVolume(0.2)
	initialErr := math.Abs(v.volumeCurrent - 0.2)
	prevErr := initialErr
	n := 1000
	for i := 0; i < n; i++ {
		v.tick()
		e := math.Abs(v.volumeCurrent - 0.2)
		require.LessOrEqual(t, e, prevErr, "error must shrink monotonically")
		prevErr = e
	}
	// One-pole filter: error after n samples is k^n times the initial error.
	bound := math.Pow(volumeSmoothing, float64(n))*initialErr + 1e-12
	require.LessOrEqual(t, prevErr, bound)
}

func TestVoiceSmoothingFrozenWhileInactive(t *testing.T) {
	v, err := newVoice(220, 44100)
	require.NoError(t, err)
	v.setVolume(0.1)
	for i := 0; i < 50; i++ {
		v.tick()
	}
	require.Equal(t, defaultVolume, v.volumeCurrent)
}

func TestVoicePhaseAdvancesWhileInactive(t *testing.T) {
	v, err := newVoice(220, 44100)
	require.NoError(t, err)
	phase := v.osc.phase
	for i := 0; i < 10; i++ {
		v.tick()
	}
	require.NotEqual(t, phase, v.osc.phase)
}

func TestVoiceToggleKeepsParameters(t *testing.T) {
	v, err := newVoice(220, 44100)
	require.NoError(t, err)
	v.setVolume(0.4)
	v.setFrequency(330)
	inc := v.osc.increment
	v.setActive(true)
	v.setActive(false)
	require.Equal(t, 0.4, v.volumeTarget)
	require.Equal(t, inc, v.osc.increment)
}
