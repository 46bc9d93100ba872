// Package same parses and resolves a complete SAME header string into a
// structured, human-readable alert description.
package same

import (
	"strings"

	"github.com/eascodec/same/errs"
)

// Header is the parsed (not yet semantically resolved) form of a SAME
// header.
type Header struct {
	Originator string
	Event      string
	// Locations holds the 6-digit location codes in the exact order
	// they appeared in the header.
	Locations []string
	// PurgeOffset is the 4-digit HHMM duration string attached to the
	// final location code.
	PurgeOffset string
	// IssueTime is the 7-digit DDDHHMM Julian-day/hour/minute string.
	IssueTime string
	// Sender is the trailing identifier, reconstructed per the
	// sender-extraction quirk documented on extractSender.
	Sender string
}

// stripTrailingDash removes one trailing "-" from a SAME header, as
// produced by encoders that terminate every field including the last.
func stripTrailingDash(s string) string {
	return strings.TrimSuffix(s, "-")
}

// Parse splits a SAME header into its structural fields without
// resolving any code against a dictionary — useful for callers that
// want the raw grammar independent of a dictionary lookup. Decode
// performs the same structural parsing interleaved with dictionary
// validation; Parse performs only the structural checks (segment
// count, ZCZC marker, purge-offset/issue-time shape).
func Parse(header string) (Header, error) {
	if header == "" {
		return Header{}, errs.New(errs.NoData, "")
	}

	segments := strings.Split(stripTrailingDash(header), "-")
	if len(segments) < minSegments {
		return Header{}, errs.New(errs.InvalidSameHeader, header)
	}

	if segments[0] != "ZCZC" {
		return Header{}, errs.New(errs.ZczcNotFound, segments[0])
	}

	plusIdx := -1
	for i := 3; i < len(segments); i++ {
		if strings.Contains(segments[i], "+") {
			plusIdx = i
			break
		}
	}
	if plusIdx == -1 {
		return Header{}, errs.New(errs.ExpireTimeInvalid, header)
	}

	finalLocCode, offset, _ := strings.Cut(segments[plusIdx], "+")
	if len(offset) != 4 {
		return Header{}, errs.New(errs.ExpireTimeInvalid, offset)
	}

	timeIdx := plusIdx + 1
	if timeIdx >= len(segments) || len(segments[timeIdx]) != 7 {
		detail := ""
		if timeIdx < len(segments) {
			detail = segments[timeIdx]
		}
		return Header{}, errs.New(errs.DateTimeInvalid, detail)
	}

	locations := append(append([]string{}, segments[3:plusIdx]...), finalLocCode)

	return Header{
		Originator:  segments[1],
		Event:       segments[2],
		Locations:   locations,
		PurgeOffset: offset,
		IssueTime:   segments[timeIdx],
		Sender:      extractSender(segments, timeIdx),
	}, nil
}
