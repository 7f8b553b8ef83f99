package synth

// ----- PCM ----- //

// encodeSample converts one normalized sample to i16 little-endian
// bytes. This is the only place floats become PCM, so the clamping and
// truncation policy is consistent everywhere samples leave the engine.
// The clamp is defensive: the mix should already stay in range, but an
// out-of-range value has to saturate here instead of overflowing the
// i16.
func encodeSample(sample float64) (lo, hi byte) {
	if sample > 1.0 {
		sample = 1.0
	} else if sample < -1.0 {
		sample = -1.0
	}
	const max = 32767
	b := int16(sample * max)
	return byte(b), byte(b >> 8)
}
