package afsk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMorseIdentEmptyStringProducesNoSamples(t *testing.T) {
	out := MorseIdent("", DefaultMorseWPM)
	assert.Empty(t, out)
}

func TestMorseIdentSingleLetterLength(t *testing.T) {
	// 'E' is a single dot: one time unit of tone, no gaps.
	out := MorseIdent("E", DefaultMorseWPM)
	expected := samplesForDuration(timeUnitMS(1, DefaultMorseWPM))
	assert.Equal(t, expected, len(out))
}

func TestMorseIdentDashIsThreeUnits(t *testing.T) {
	// 'T' is a single dash: three time units of tone.
	out := MorseIdent("T", DefaultMorseWPM)
	expected := samplesForDuration(timeUnitMS(3, DefaultMorseWPM))
	assert.Equal(t, expected, len(out))
}

func TestMorseIdentUnknownCharacterIsOneSilentUnit(t *testing.T) {
	out := MorseIdent("#", DefaultMorseWPM)
	expected := samplesForDuration(timeUnitMS(1, DefaultMorseWPM))
	assert.Equal(t, expected, len(out))
	for _, s := range out {
		assert.Equal(t, float32(0), s)
	}
}

func TestMorseIdentLowercaseMatchesUppercase(t *testing.T) {
	lower := MorseIdent("sos", DefaultMorseWPM)
	upper := MorseIdent("SOS", DefaultMorseWPM)
	assert.Equal(t, upper, lower)
}

func TestMorseIdentNonPositiveWPMFallsBackToDefault(t *testing.T) {
	withZero := MorseIdent("K", 0)
	withDefault := MorseIdent("K", DefaultMorseWPM)
	assert.Equal(t, withDefault, withZero)
}

func TestMorseIdentInterCharacterGap(t *testing.T) {
	// "EE" is dot, 3-unit gap, dot.
	out := MorseIdent("EE", DefaultMorseWPM)
	dot := samplesForDuration(timeUnitMS(1, DefaultMorseWPM))
	gap := samplesForDuration(timeUnitMS(3, DefaultMorseWPM))
	assert.Equal(t, dot+gap+dot, len(out))
}
