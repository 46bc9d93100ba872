// Package afsk synthesizes the AFSK (audio frequency-shift keying)
// waveform that carries a SAME header and its surrounding framing:
// marks, spaces, attention tones, silences, and the framing variations
// of the different hardware encoder families.
//
// Tone generation is direct digital synthesis: a phase accumulator
// stepped by a per-sample frequency delta, sampled through sin() each
// step. The output is a float32 buffer, so samples are evaluated
// directly with math.Sin at full precision rather than through a
// fixed-point sine lookup table.
package afsk

import "math"

// SampleRate is the codec's fixed sample rate in Hz.
const SampleRate = 24000

// Mark and space frequencies, and baud rate, of the Bell-202-derivative
// modulation SAME/EAS uses.
const (
	MarkFreq  = 2083.3
	SpaceFreq = 1562.5
	Baud      = 520.83
)

// MarkSpaceAmplitudeDB is the mark/space tone amplitude.
const MarkSpaceAmplitudeDB = -3.0

// BitSamples is the number of samples each bit contributes:
// round(24000 / 520.83) = 46, a bit period of about 1.92ms.
var BitSamples = int(math.Round(SampleRate / Baud))

// amplitudeFromDB converts a dBFS volume to a linear amplitude: 10^(v/20).
func amplitudeFromDB(volumeDB float64) float64 {
	return math.Pow(10, volumeDB/20)
}

// samplesForDuration returns round(durationMS/1000 * SampleRate).
func samplesForDuration(durationMS float64) int {
	return int(math.Round(durationMS / 1000 * SampleRate))
}

// phaseGen is a phase accumulator that emits consecutive tone segments
// with continuous phase, so a mark-to-space transition never produces
// an amplitude step. Only a fresh generator resets the phase.
type phaseGen struct {
	phase float64 // radians, kept in [0, 2π)
}

// tone appends `samples` samples of a sine at freq Hz and volumeDB
// amplitude, continuing this generator's phase.
func (g *phaseGen) tone(freq float64, samples int, volumeDB float64) []float32 {
	amp := amplitudeFromDB(volumeDB)
	step := 2 * math.Pi * freq / SampleRate
	out := make([]float32, samples)
	for i := range out {
		out[i] = float32(amp * math.Sin(g.phase))
		g.phase += step
		if g.phase >= 2*math.Pi {
			g.phase -= 2 * math.Pi
		}
	}
	return out
}

// Sine generates a standalone tone of frequency freq Hz, duration
// durationMS milliseconds, at volumeDB dBFS — the building block for
// attention tones and test tones. Each call starts with phase zero; it
// is not meant to be chained with other segments the way bit encoding
// is.
func Sine(freq, durationMS, volumeDB float64) []float32 {
	g := &phaseGen{}
	return g.tone(freq, samplesForDuration(durationMS), volumeDB)
}

// Silence returns durationMS milliseconds of zero samples.
func Silence(durationMS float64) []float32 {
	return make([]float32, samplesForDuration(durationMS))
}

// Mix averages two equal-length buffers sample-by-sample:
// out[i] = 0.5*(t1[i] + t2[i]), the two-tone attention-signal blend.
// Mix panics if the buffers differ in length — both are always produced
// by this package from the same duration, so that should never happen
// for in-package callers.
func Mix(a, b []float32) []float32 {
	if len(a) != len(b) {
		panic("afsk: Mix requires equal-length buffers")
	}
	out := make([]float32, len(a))
	for i := range out {
		out[i] = 0.5 * (a[i] + b[i])
	}
	return out
}
