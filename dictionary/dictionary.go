// Package dictionary loads the read-only code tables the codec resolves
// SAME header fields against: originator codes, event codes, county
// location codes, and subdivision codes. Dictionaries are process-wide
// immutable state; load one at startup and pass it down to every
// translator rather than reaching for a package-level singleton.
package dictionary

import (
	"encoding/json"
	"fmt"
	"io"
)

// Dictionary holds the four lookup tables the codec resolves SAME
// header fields against.
type Dictionary struct {
	// Originators maps a 3-letter code to an organization phrase ending
	// in a trailing space, e.g. "CIV" -> "The Civil Authorities have issued ".
	Originators map[string]string `json:"ORGS"`

	// OriginatorOverrides is the historical "ORGS2" alternative table.
	// When present its entries are merged over Originators at Load time
	// rather than kept as a second table consulted only by
	// codes.Originator.
	OriginatorOverrides map[string]string `json:"ORGS2"`

	// Events maps a 3-letter code to an event phrase, e.g. "TOR" -> "Tornado Warning".
	Events map[string]string `json:"EVENTS"`

	// Counties maps a 5-digit county code to "County, ST".
	Counties map[string]string `json:"SAME"`

	// Subdivisions maps a 1-digit code to a subdivision phrase, e.g.
	// "1" -> "Northern". "0" defaults to "All" when absent.
	Subdivisions map[string]string `json:"SUBDIV"`
}

const defaultSubdivision = "All"

// Load parses the JSON dictionary artifact. The ORGS2 table, when
// present, is merged into the primary originator table so every
// consumer (the header decoder and the originator translator alike)
// resolves through one merged table.
func Load(r io.Reader) (*Dictionary, error) {
	var dict Dictionary
	if err := json.NewDecoder(r).Decode(&dict); err != nil {
		return nil, fmt.Errorf("dictionary: decode: %w", err)
	}

	if dict.Originators == nil {
		dict.Originators = map[string]string{}
	}
	for code, phrase := range dict.OriginatorOverrides {
		dict.Originators[code] = phrase
	}

	if _, ok := dict.Subdivisions["0"]; !ok {
		if dict.Subdivisions == nil {
			dict.Subdivisions = map[string]string{}
		}
		dict.Subdivisions["0"] = defaultSubdivision
	}

	return &dict, nil
}
