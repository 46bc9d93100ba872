// Package audio holds the codec's PCM intermediate representation — a
// mono buffer of 32-bit float samples in [-1, +1] at 24kHz — and its
// conversions to and from the 16-bit signed PCM used on disk.
package audio

import "math"

// SampleRate is the fixed sample rate of every buffer, in Hz.
const SampleRate = 24000

// BitDepth is the on-disk PCM sample width in bits.
const BitDepth = 16

// Buffer is a mutable finite sequence of float32 samples. Values are
// nominally in [-1, +1]; conversion to 16-bit PCM clamps anything
// outside that range.
type Buffer []float32

// ToPCM16 converts the buffer to 16-bit signed PCM with a saturating
// clamp: s16 = max(-32768, min(32767, round(sample * 32767))).
func (b Buffer) ToPCM16() []int16 {
	out := make([]int16, len(b))
	for i, s := range b {
		v := math.Round(float64(s) * 32767)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		out[i] = int16(v)
	}
	return out
}

// FromPCM16 converts 16-bit signed PCM samples to a float buffer,
// scaling by 1/32768 so the full negative range maps onto [-1, 1).
func FromPCM16(samples []int16) Buffer {
	out := make(Buffer, len(samples))
	for i, s := range samples {
		out[i] = float32(s) / 32768
	}
	return out
}

// Duration returns the buffer's length in seconds.
func (b Buffer) Duration() float64 {
	return float64(len(b)) / SampleRate
}
