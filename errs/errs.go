// Package errs defines the shared error taxonomy used across the codec:
// a closed set of error kinds, each carrying an optional detail string
// (the offending code, the malformed segment, …), plus a localized
// message table loaded from an external JSON artifact.
package errs

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind identifies one of the codec's distinct failure modes. Every
// validation step in the FIPS translator, the code translators, and the
// SAME header decoder reports exactly one Kind.
type Kind uint8

const (
	_ Kind = iota // 0: not used, zero value is never a valid error

	NoData             // input was empty or not a string-shaped value
	InvalidSameHeader  // fewer than 5 dash-delimited segments
	ZczcNotFound       // first segment is not "ZCZC"
	OrgCodeInvalid     // originator code not in dictionary
	EventCodeInvalid   // event code not in dictionary
	FipsInvalid        // location code malformed or county not in dictionary
	DateTimeInvalid    // issue-time segment malformed or Julian day out of range
	ExpireTimeInvalid  // purge-offset segment malformed or missing
	OriginatorInvalid  // originator code wrong length or unknown (translator)
	EventInvalid       // event code wrong length or unknown (translator)
	SubdivisionInvalid // subdivision digit not in dictionary
	InvalidCharacters  // non-digit/non-letter where one was required
	AudioFileNotFound  // narration source file does not exist
)

var kindKeys = map[Kind]string{
	NoData:             "nodata",
	InvalidSameHeader:  "invalidsameheader",
	ZczcNotFound:       "zczcnotfound",
	OrgCodeInvalid:     "orgcodeinvalid",
	EventCodeInvalid:   "eventcodeinvalid",
	FipsInvalid:        "fipsinvalid",
	DateTimeInvalid:    "datetimeinvalid",
	ExpireTimeInvalid:  "expiretimeinvalid",
	OriginatorInvalid:  "originvalid",
	EventInvalid:       "eventinvalid",
	SubdivisionInvalid: "subdivisioninvalid",
	InvalidCharacters:  "invalidcharacters",
	AudioFileNotFound:  "audioFileNotFound",
}

// Key returns the message-table key for the kind ("nodata",
// "fipsinvalid", …).
func (k Kind) Key() string {
	if key, ok := kindKeys[k]; ok {
		return key
	}
	return "unknown"
}

func (k Kind) String() string { return k.Key() }

// Error is the single error type returned by every public decode/
// translate operation. Detail carries the offending code or field where
// applicable ("030013" for an unknown county, the raw header string for
// a grammar failure).
type Error struct {
	Kind    Kind
	Detail  string
	message string // resolved from a Messages table, if any; falls back to a generic rendering
}

func (e *Error) Error() string {
	if e.message != "" {
		return e.message
	}
	if e.Detail == "" {
		return fmt.Sprintf("same: %s", e.Kind)
	}
	return fmt.Sprintf("same: %s: %s", e.Kind, e.Detail)
}

// Is supports errors.Is(err, errs.New(kind, "")) comparisons by Kind only.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New constructs an Error of the given kind with an optional detail.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Messages is a localized mapping from error-kind key to human-readable
// text. Load it once at startup alongside the code dictionaries.
type Messages map[string]string

// LoadMessages parses a JSON message table, keyed by Kind.Key values.
func LoadMessages(r io.Reader) (Messages, error) {
	var msgs Messages
	if err := json.NewDecoder(r).Decode(&msgs); err != nil {
		return nil, fmt.Errorf("errs: decode messages: %w", err)
	}
	return msgs, nil
}

// Localize returns a copy of err with its message text resolved against
// msgs, falling back to the generic rendering when no entry exists for
// the error's Kind. The original err is not mutated.
func Localize(err *Error, msgs Messages) *Error {
	localized := *err
	if text, ok := msgs[err.Kind.Key()]; ok {
		if err.Detail != "" {
			localized.message = fmt.Sprintf("%s: %s", text, err.Detail)
		} else {
			localized.message = text
		}
	}
	return &localized
}
