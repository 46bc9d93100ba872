package afsk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttentionToneNWSIsNineSecondsSingleTone(t *testing.T) {
	out := AttentionTone(ModeNWS)
	assert.Equal(t, 9*SampleRate, len(out))
}

func TestAttentionToneDefaultIsEightSecondsTwoTone(t *testing.T) {
	out := AttentionTone(ModeDefault)
	assert.Equal(t, 8*SampleRate, len(out))
}

func TestAttentionToneDigitalAndSageUseDefaultShape(t *testing.T) {
	assert.Equal(t, len(AttentionTone(ModeDefault)), len(AttentionTone(ModeDigital)))
	assert.Equal(t, len(AttentionTone(ModeDefault)), len(AttentionTone(ModeSage)))
	assert.Equal(t, len(AttentionTone(ModeDefault)), len(AttentionTone(ModeTrilithic)))
}
