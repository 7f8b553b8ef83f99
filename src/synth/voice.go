package synth

// ----- Voice ----- //

// voice wraps one oscillator with volume control and an on/off state.
// Volume changes land in volumeTarget; volumeCurrent chases it with a
// one-pole filter once per sample, which is what keeps instantaneous
// control steps from clicking. Messages arrive at arbitrary times
// relative to the sample clock, so the smoothing has to live here in
// tick, not at the message boundary.
type voice struct {
	osc           *oscillator
	volumeTarget  float64
	volumeCurrent float64
	active        bool
}

func newVoice(frequency float64, rate float64) (*voice, error) {
	osc, err := newOscillator(frequency, rate)
	if err != nil {
		return nil, err
	}
	return &voice{
		osc:           osc,
		volumeTarget:  defaultVolume,
		volumeCurrent: defaultVolume,
	}, nil
}

func (v *voice) setFrequency(hz float64) {
	v.osc.setFrequency(hz)
}

// setVolume clamps to 0..1 and stores the target. The smoothed value
// only moves inside tick.
func (v *voice) setVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	v.volumeTarget = vol
}

// setActive flips the voice on/off. Frequency and volume survive.
func (v *voice) setActive(active bool) {
	v.active = active
}

// tick returns the next sample, or 0.0 while inactive. The oscillator
// phase advances either way so reactivating a voice resumes exactly
// where the waveform would have been, instead of popping.
func (v *voice) tick() float64 {
	s := v.osc.tick()
	if !v.active {
		return 0.0
	}
	v.volumeCurrent = v.volumeCurrent*volumeSmoothing + v.volumeTarget*(1-volumeSmoothing)
	return s * v.volumeCurrent
}
