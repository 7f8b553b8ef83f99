package synth

import "time"

// Build-time configuration. Everything that shaped the sound or the
// control feel lives here so the rest of the package stays free of
// magic numbers.

// ----- Engine ----- //

const (
	voiceCount      = 3
	sampleRate      = 44100
	channelNum      = 2
	bitDepthInBytes = 2
)

// bytesPerFrame is one stereo i16 frame.
const bytesPerFrame = channelNum * bitDepthInBytes

// bufferSizeInBytes should be >= 4096 for oto.
const bufferSizeInBytes = 1024 * bytesPerFrame

// masterGain leaves headroom when all voices run at full volume.
const masterGain = 0.85

// ----- Voice ----- //

const startingFrequency = 77.0
const defaultVolume = 0.9

// volumeSmoothing is the one-pole coefficient chasing the volume target.
// Closer to 1.0 means slower response and less zipper noise.
const volumeSmoothing = 0.99

// ----- Wavetable ----- //

// wavetableSize must stay a power of two so index wrapping is a mask.
const wavetableSize = 1024
const wavetableSizeF = float64(wavetableSize)
const wavetableMask = wavetableSize - 1

// ----- Messaging ----- //

const messageQueueSize = 8

// ----- Control Input ----- //

const adcPollInterval = 20 * time.Millisecond

// adcMultisampleCount raw readings are averaged per poll to cut noise.
const adcMultisampleCount = 9

// adcEMAAlpha smooths the averaged reading. Higher = more smoothing.
const adcEMAAlpha = 0.6

// Calibrated raw bounds of the potentiometers (millivolts).
const potMin = 0
const potMax = 3156

// potChangeThreshold is the deadband: normalized changes below it are
// treated as noise and never enqueued.
const potChangeThreshold = 0.001

// Frequency range the frequency pot sweeps over (Hz).
const frequencyMin = 30.0
const frequencyMax = 1024.0
