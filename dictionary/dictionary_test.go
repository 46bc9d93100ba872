package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"ORGS": {"CIV": "The Civil Authorities have issued ", "WXR": "The National Weather Service has issued "},
	"ORGS2": {"CIV": "Civil Authorities have issued "},
	"EVENTS": {"ADR": "Administrative Message", "TSW": "Tsunami Warning"},
	"SAME": {"30013": "Cascade, MT", "20173": "Sedgwick, KS"},
	"SUBDIV": {"1": "Northern", "2": "Eastern"}
}`

func TestLoadMergesOverridesOverPrimary(t *testing.T) {
	dict, err := Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "Civil Authorities have issued ", dict.Originators["CIV"])
	assert.Equal(t, "The National Weather Service has issued ", dict.Originators["WXR"])
}

func TestLoadDefaultsMissingSubdivisionZero(t *testing.T) {
	dict, err := Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, defaultSubdivision, dict.Subdivisions["0"])
	assert.Equal(t, "Northern", dict.Subdivisions["1"])
}

func TestLoadPreservesExplicitSubdivisionZero(t *testing.T) {
	const withZero = `{"ORGS":{},"EVENTS":{},"SAME":{},"SUBDIV":{"0":"Statewide"}}`

	dict, err := Load(strings.NewReader(withZero))
	require.NoError(t, err)

	assert.Equal(t, "Statewide", dict.Subdivisions["0"])
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	assert.Error(t, err)
}
