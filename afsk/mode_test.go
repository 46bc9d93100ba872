package afsk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModeCaseInsensitive(t *testing.T) {
	m, err := ParseMode("nws")
	require.NoError(t, err)
	assert.Equal(t, ModeNWS, m)
}

func TestParseModeDefaultOnEmpty(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeDefault, m)
}

func TestParseModeUnknownErrors(t *testing.T) {
	_, err := ParseMode("bogus")
	require.Error(t, err)
}

func TestModeStringRoundTrips(t *testing.T) {
	for _, m := range []Mode{ModeDefault, ModeNWS, ModeDigital, ModeSage, ModeTrilithic} {
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}
