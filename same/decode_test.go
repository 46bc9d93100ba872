package same

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/eascodec/same/dictionary"
	"github.com/eascodec/same/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const sampleJSON = `{
	"ORGS": {
		"CIV": "The Civil Authorities have issued ",
		"WXR": "The National Weather Service has issued "
	},
	"EVENTS": {
		"ADR": "Administrative Message",
		"TSW": "Tsunami Warning",
		"SQW": "Severe Thunderstorm Warning"
	},
	"SAME": {
		"20173": "Sedgwick, KS",
		"06081": "San Mateo, CA",
		"06013": "Contra Costa, CA",
		"06001": "Alameda, CA",
		"06087": "Santa Cruz, CA",
		"06085": "Santa Clara, CA",
		"27133": "Ramsey, MN"
	},
	"SUBDIV": {"0": "All"}
}`

func loadDict(t *testing.T) *dictionary.Dictionary {
	t.Helper()
	dict, err := dictionary.Load(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	return dict
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestDecodeScenario1AdministrativeMessage(t *testing.T) {
	dict := loadDict(t)

	alert, err := Decode(dict, "ZCZC-CIV-ADR-020173+0100-3441707-ERN/LB-", fixedClock(2024))
	require.NoError(t, err)

	assert.Equal(t, "The Civil Authorities have issued ", alert.Organization)
	assert.Equal(t, "Administrative Message", alert.Event)
	assert.Equal(t, "Sedgwick, KS", alert.Locations)
	assert.Equal(t, "ERN/LB", alert.Sender)
	assert.Contains(t, alert.Formatted, "The Civil Authorities have issued a Administrative Message for Sedgwick, KS")
	assert.Contains(t, alert.Formatted, "Message from ERN/LB")
}

func TestDecodeScenario2MultipleLocations(t *testing.T) {
	dict := loadDict(t)

	alert, err := Decode(dict, "ZCZC-WXR-TSW-006081-006013-006001-006087-006085+0100-3401900-WJON/BLU-", fixedClock(2024))
	require.NoError(t, err)

	assert.Equal(t, "Tsunami Warning", alert.Event)
	assert.Equal(t, "San Mateo, CA; Contra Costa, CA; Alameda, CA; Santa Cruz, CA; Santa Clara, CA", alert.Locations)
	assert.Equal(t, "WJON/BLU", alert.Sender)
}

func TestDecodeScenario3MissingZczc(t *testing.T) {
	dict := loadDict(t)

	_, err := Decode(dict, "-WXR-SQW-027133+0100-3441441-ERN/CRTV-", fixedClock(2024))

	var same *errs.Error
	require.True(t, errors.As(err, &same))
	assert.Equal(t, errs.ZczcNotFound, same.Kind)
}

func TestDecodeScenario4ShortOffset(t *testing.T) {
	dict := loadDict(t)

	_, err := Decode(dict, "ZCZC-WXR-SQW-027133+010-3441441-ERN/CRTV-", fixedClock(2024))

	var same *errs.Error
	require.True(t, errors.As(err, &same))
	assert.Equal(t, errs.ExpireTimeInvalid, same.Kind)
}

func TestDecodeScenario5UnknownEvent(t *testing.T) {
	dict := loadDict(t)

	_, err := Decode(dict, "ZCZC-WXR-AAA-027133+0100-3441441-ERN/CRTV-", fixedClock(2024))

	var same *errs.Error
	require.True(t, errors.As(err, &same))
	assert.Equal(t, errs.EventCodeInvalid, same.Kind)
}

func TestDecodeFewerThanFiveSegments(t *testing.T) {
	dict := loadDict(t)

	_, err := Decode(dict, "ZCZC-WXR-SQW-0271330100", fixedClock(2024))

	var same *errs.Error
	require.True(t, errors.As(err, &same))
	assert.Equal(t, errs.InvalidSameHeader, same.Kind)
}

func TestDecodeUnknownOrgBeforeStructuralOffsetError(t *testing.T) {
	// Both the org code and the offset are invalid; the org check must
	// fail before the offset-length check.
	dict := loadDict(t)

	_, err := Decode(dict, "ZCZC-ZZZ-SQW-027133+010-3441441-ERN/CRTV-", fixedClock(2024))

	var same *errs.Error
	require.True(t, errors.As(err, &same))
	assert.Equal(t, errs.OrgCodeInvalid, same.Kind)
}

func TestDecodeLocationsPreserveInputOrder(t *testing.T) {
	dict := loadDict(t)

	alert, err := Decode(dict, "ZCZC-WXR-TSW-006085-006001+0100-3401900-WJON/BLU-", fixedClock(2024))
	require.NoError(t, err)

	assert.Equal(t, "Santa Clara, CA; Alameda, CA", alert.Locations)
}

func TestDecodeInvalidLocationPropagatesFipsError(t *testing.T) {
	dict := loadDict(t)

	_, err := Decode(dict, "ZCZC-WXR-TSW-099999+0100-3401900-WJON/BLU-", fixedClock(2024))

	var same *errs.Error
	require.True(t, errors.As(err, &same))
	assert.Equal(t, errs.FipsInvalid, same.Kind)
}

func TestDecodeJulianDayOutOfRange(t *testing.T) {
	dict := loadDict(t)

	_, err := Decode(dict, "ZCZC-WXR-SQW-027133+0100-3661441-ERN/CRTV-", fixedClock(2023)) // 2023 not leap, max 365

	var same *errs.Error
	require.True(t, errors.As(err, &same))
	assert.Equal(t, errs.DateTimeInvalid, same.Kind)
}

func TestDecodeRoundTripFormattedIsDeterministic(t *testing.T) {
	dict := loadDict(t)

	alert1, err := Decode(dict, "ZCZC-CIV-ADR-020173+0100-3441707-ERN/LB-", fixedClock(2024))
	require.NoError(t, err)

	alert2, err := Decode(dict, "ZCZC-CIV-ADR-020173+0100-3441707-ERN/LB-", fixedClock(2024))
	require.NoError(t, err)

	assert.Equal(t, alert1.Formatted, alert2.Formatted)
}

// TestDecodeFormattedReconstructsFromParts checks, across randomly
// generated valid headers, that joining the structured output back into
// the alert sentence reproduces the returned Formatted field
// byte-for-byte.
func TestDecodeFormattedReconstructsFromParts(t *testing.T) {
	dict := loadDict(t)
	countyCodes := []string{"020173", "006081", "006013", "006001", "006087", "006085", "027133"}
	orgs := []string{"CIV", "WXR"}
	events := []string{"ADR", "TSW", "SQW"}

	rapid.Check(t, func(rt *rapid.T) {
		org := rapid.SampledFrom(orgs).Draw(rt, "org")
		event := rapid.SampledFrom(events).Draw(rt, "event")
		locs := rapid.SliceOfN(rapid.SampledFrom(countyCodes), 1, 5).Draw(rt, "locs")
		day := rapid.IntRange(1, 365).Draw(rt, "day")
		hour := rapid.IntRange(0, 23).Draw(rt, "hour")
		minute := rapid.IntRange(0, 59).Draw(rt, "minute")
		offH := rapid.IntRange(0, 23).Draw(rt, "offH")
		offM := rapid.IntRange(0, 59).Draw(rt, "offM")

		header := fmt.Sprintf("ZCZC-%s-%s-%s+%02d%02d-%03d%02d%02d-ERN/LB-",
			org, event, strings.Join(locs, "-"), offH, offM, day, hour, minute)

		alert, err := Decode(dict, header, fixedClock(2024))
		require.NoError(rt, err)

		rebuilt := fmt.Sprintf("%sa %s for %s; beginning at %s and ending at %s. Message from %s",
			alert.Organization, alert.Event, alert.Locations,
			alert.Timing.Start, alert.Timing.End, alert.Sender)
		assert.Equal(rt, alert.Formatted, rebuilt)
	})
}

func TestParseStructuralOnly(t *testing.T) {
	header, err := Parse("ZCZC-CIV-ADR-020173+0100-3441707-ERN/LB-")
	require.NoError(t, err)

	assert.Equal(t, "CIV", header.Originator)
	assert.Equal(t, "ADR", header.Event)
	assert.Equal(t, []string{"020173"}, header.Locations)
	assert.Equal(t, "0100", header.PurgeOffset)
	assert.Equal(t, "3441707", header.IssueTime)
	assert.Equal(t, "ERN/LB", header.Sender)
}
