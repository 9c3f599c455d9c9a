package synth

import "math"

// attackTime is the fade-in in seconds that keeps note onsets click-free.
const attackTime = 0.005

// source generates PCM samples in the range [-1,1].
type source interface {
	// Sample returns the next sample and whether the source has finished.
	Sample() (float64, bool)
}

// tone is a single enveloped note: a short linear attack followed by an
// exponential release.
type tone struct {
	wave    Waveform
	step    float64 // Phase increment per sample
	phase   float64
	gain    float64
	i       int
	attack  int
	release int
}

func newTone(wave Waveform, freq, gain float64, releaseSamples, sampleRate int) *tone {
	return &tone{
		wave:    wave,
		step:    freq / float64(sampleRate),
		gain:    gain,
		attack:  max(1, int(attackTime*float64(sampleRate))),
		release: max(1, releaseSamples),
	}
}

func (t *tone) Sample() (float64, bool) {
	if t.i >= t.attack+t.release {
		return 0, true
	}

	var env float64
	if t.i < t.attack {
		env = float64(t.i) / float64(t.attack)
	} else {
		// Decays to about -40dB at the end of the release.
		r := float64(t.i-t.attack) / float64(t.release)
		env = math.Exp(-4.6 * r)
	}

	v := t.wave.at(t.phase) * env * t.gain
	t.phase += t.step
	t.phase -= math.Floor(t.phase)
	t.i++
	return v, false
}
