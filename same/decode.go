package same

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eascodec/same/dictionary"
	"github.com/eascodec/same/errs"
	"github.com/eascodec/same/fips"
	"github.com/lestrrat-go/strftime"
)

const minSegments = 5

// Timing holds the locale-formatted issue and expiration times of a
// decoded alert.
type Timing struct {
	Start string
	End   string
}

// DecodedAlert is the fully resolved, presentation-ready form of a SAME
// header.
type DecodedAlert struct {
	Organization string
	Event        string
	// Locations is each resolved location's "County, ST" text, joined
	// with "; ", in the header's original order. Unlike fips.Location's
	// own Formatted field, this omits the subdivision qualifier — see
	// the doc comment on joinLocations.
	Locations string
	Timing    Timing
	Sender    string
	Formatted string
}

// timePattern renders a time.Time as "h:MM AM|PM on Month D": 12-hour,
// no seconds. %l and %e are space-padded by strftime (there is no
// unpadded variant in its directive set), so formatTime collapses the
// padding afterward rather than leaving "December  9" with a double
// space.
var timePattern = mustNewStrftime("%l:%M %p on %B %e")

func mustNewStrftime(pattern string) *strftime.Strftime {
	f, err := strftime.New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// Decode parses and semantically resolves a complete SAME header string
// against dict. now supplies the "current year" the decoder stamps onto
// the header's Julian day/time fields — it does not come from the
// header itself. Pass time.Now when no fixed clock is needed; tests
// should inject a fixed time.
//
// Validation fails fast on the first violation, in a fixed order:
// structure, then ZCZC marker, then originator code, then event code,
// then the purge-offset/issue-time segments, then each location code.
//
// The issue/expiration timestamps are constructed as UTC wall-clock
// instants (hour:minute applied directly to a UTC calendar date) but
// then formatted using the process's local time zone conversion, so the
// printed calendar day can differ from the UTC day when the process
// time zone is not UTC. Several fielded decoders share this behavior;
// it is kept for compatibility rather than normalized to pure UTC
// formatting.
func Decode(dict *dictionary.Dictionary, header string, now func() time.Time) (DecodedAlert, error) {
	if header == "" {
		return DecodedAlert{}, errs.New(errs.NoData, "")
	}

	segments := strings.Split(stripTrailingDash(header), "-")
	if len(segments) < minSegments {
		return DecodedAlert{}, errs.New(errs.InvalidSameHeader, header)
	}

	if segments[0] != "ZCZC" {
		return DecodedAlert{}, errs.New(errs.ZczcNotFound, segments[0])
	}

	orgCode, evtCode := segments[1], segments[2]

	org, ok := dict.Originators[strings.ToUpper(orgCode)]
	if !ok {
		return DecodedAlert{}, errs.New(errs.OrgCodeInvalid, orgCode)
	}

	event, ok := dict.Events[strings.ToUpper(evtCode)]
	if !ok {
		return DecodedAlert{}, errs.New(errs.EventCodeInvalid, evtCode)
	}

	plusIdx := -1
	for i := 3; i < len(segments); i++ {
		if strings.Contains(segments[i], "+") {
			plusIdx = i
			break
		}
	}
	if plusIdx == -1 {
		return DecodedAlert{}, errs.New(errs.ExpireTimeInvalid, header)
	}

	finalLocCode, offset, _ := strings.Cut(segments[plusIdx], "+")
	if len(offset) != 4 {
		return DecodedAlert{}, errs.New(errs.ExpireTimeInvalid, offset)
	}

	timeIdx := plusIdx + 1
	if timeIdx >= len(segments) || len(segments[timeIdx]) != 7 {
		detail := ""
		if timeIdx < len(segments) {
			detail = segments[timeIdx]
		}
		return DecodedAlert{}, errs.New(errs.DateTimeInvalid, detail)
	}
	issueTime := segments[timeIdx]

	julianDay, errJ := strconv.Atoi(issueTime[:3])
	hour, errH := strconv.Atoi(issueTime[3:5])
	minute, errM := strconv.Atoi(issueTime[5:7])
	if errJ != nil || errH != nil || errM != nil {
		return DecodedAlert{}, errs.New(errs.DateTimeInvalid, issueTime)
	}

	year := now().Year()
	if !validJulianDay(julianDay, year) {
		return DecodedAlert{}, errs.New(errs.DateTimeInvalid, issueTime)
	}

	locationCodes := append(append([]string{}, segments[3:plusIdx]...), finalLocCode)
	locs := make([]fips.Location, len(locationCodes))
	for i, code := range locationCodes {
		loc, err := fips.Translate(dict, code)
		if err != nil {
			return DecodedAlert{}, err
		}
		locs[i] = loc
	}

	offsetHours, _ := strconv.Atoi(offset[:2])
	offsetMinutes, _ := strconv.Atoi(offset[2:])

	start := julianDayToTime(year, julianDay, hour, minute)
	end := start.Add(time.Duration(offsetHours*60+offsetMinutes) * time.Minute)

	timing := Timing{Start: formatTime(start), End: formatTime(end)}
	locations := joinLocations(locs)
	sender := extractSender(segments, timeIdx)

	formatted := fmt.Sprintf("%sa %s for %s; beginning at %s and ending at %s. Message from %s",
		org, event, locations, timing.Start, timing.End, sender)

	return DecodedAlert{
		Organization: org,
		Event:        event,
		Locations:    locations,
		Timing:       timing,
		Sender:       sender,
		Formatted:    formatted,
	}, nil
}

// joinLocations renders each resolved location as its bare "County, ST"
// text (the dictionary's raw entry), joined with "; " in header order.
// This deliberately omits the subdivision qualifier that fips.Location's
// own Formatted carries: a direct fips.Translate call reports "All
// Cascade, MT", but the decoder's alert text reads just "Cascade, MT".
// Statewide locations (where County and Region are the same dictionary
// value) display the county name alone.
func joinLocations(locs []fips.Location) string {
	parts := make([]string, len(locs))
	for i, loc := range locs {
		if loc.Statewide {
			parts[i] = loc.County
		} else {
			parts[i] = loc.County + ", " + loc.Region
		}
	}
	return strings.Join(parts, "; ")
}

// extractSender reconstructs the trailing sender identifier. The
// segments scanned for the sender start at the issue-time segment
// itself (segments[timeIdx:]) and then drop that leading element before
// rejoining with "-". The dropped piece is always the issue time, so
// the result is every segment after the time joined with "-": "ERN/LB"
// stays "ERN/LB", and a sender split across several dash-delimited
// pieces such as "A-B-C" is kept whole.
func extractSender(segments []string, timeIdx int) string {
	tail := segments[timeIdx:]
	if len(tail) <= 1 {
		return ""
	}
	return strings.Join(tail[1:], "-")
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func validJulianDay(day, year int) bool {
	max := 365
	if isLeapYear(year) {
		max = 366
	}
	return day >= 1 && day <= max
}

// julianDayToTime reconstructs the UTC instant for Julian day `day` of
// `year` at the given hour/minute, by advancing from December 31 of the
// prior year, so month and leap-year boundaries come from the calendar
// rather than a hand-built day table.
func julianDayToTime(year, day, hour, minute int) time.Time {
	base := time.Date(year-1, time.December, 31, hour, minute, 0, 0, time.UTC)
	return base.AddDate(0, 0, day)
}

// formatTime renders t using the process's local time zone, per the
// UTC-wallclock/local-presentation behavior documented on Decode.
func formatTime(t time.Time) string {
	var buf strings.Builder
	_ = timePattern.Format(&buf, t.Local())
	return strings.Join(strings.Fields(buf.String()), " ")
}
