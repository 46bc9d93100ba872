// Package fips resolves a 6-digit SAME location code into a structured,
// human-readable location record.
package fips

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eascodec/same/dictionary"
	"github.com/eascodec/same/errs"
)

// Location is the resolved form of a 6-digit SAME location code.
type Location struct {
	Subdivision string
	County      string
	// Region is the 2-letter state; for a state-wide marker it is the
	// county field itself (the region name), e.g. "Kansas".
	Region string
	// Statewide reports whether the location code's county portion ends
	// in "000" — a state-wide marker rather than an individual county.
	Statewide bool
	Formatted string
}

var codeShape = regexp.MustCompile(`^[0-9]{6}$`)

const statewideSuffix = "000"

// Translate resolves code (a 6-digit SAME location code: one subdivision
// digit followed by a 5-digit county code) against dict. Validation
// happens in order: empty input, shape, county lookup, subdivision
// lookup — the first violation found is returned.
func Translate(dict *dictionary.Dictionary, code string) (Location, error) {
	if code == "" {
		return Location{}, errs.New(errs.NoData, "")
	}

	if !codeShape.MatchString(code) {
		if len(code) != 6 {
			return Location{}, errs.New(errs.FipsInvalid, code)
		}
		return Location{}, errs.New(errs.InvalidCharacters, code)
	}

	subdivDigit, countyCode := code[:1], code[1:]

	countyEntry, ok := dict.Counties[countyCode]
	if !ok {
		return Location{}, errs.New(errs.FipsInvalid, code)
	}

	subdivision, ok := dict.Subdivisions[subdivDigit]
	if !ok {
		return Location{}, errs.New(errs.SubdivisionInvalid, subdivDigit)
	}

	county, region, _ := strings.Cut(countyEntry, ", ")

	loc := Location{Subdivision: subdivision, County: county, Region: region}
	loc.Statewide = strings.HasSuffix(countyCode, statewideSuffix)

	if loc.Statewide {
		loc.Region = county
		loc.Formatted = fmt.Sprintf("%s of %s", subdivision, county)
	} else {
		loc.Formatted = fmt.Sprintf("%s %s, %s", subdivision, county, region)
	}

	return loc, nil
}
