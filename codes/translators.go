// Package codes implements the originator and event single-code
// translators. Both take a 3-letter code and return the mapped phrase;
// they share one validation shape.
package codes

import (
	"regexp"
	"strings"

	"github.com/eascodec/same/dictionary"
	"github.com/eascodec/same/errs"
)

var threeLetters = regexp.MustCompile(`^[A-Za-z]{3}$`)

// translate3Letter validates code against the 3-letter shape and resolves
// it (uppercased) through table, reporting wrongKind for a wrong length,
// InvalidCharacters for a 3-character code that is not all letters, and
// missingKind when the uppercased code is absent from table.
func translate3Letter(table map[string]string, code string, wrongKind, missingKind errs.Kind) (string, error) {
	if code == "" {
		return "", errs.New(errs.NoData, "")
	}

	if !threeLetters.MatchString(code) {
		if len(code) != 3 {
			return "", errs.New(wrongKind, code)
		}
		return "", errs.New(errs.InvalidCharacters, code)
	}

	upper := strings.ToUpper(code)

	phrase, ok := table[upper]
	if !ok {
		return "", errs.New(missingKind, upper)
	}

	return phrase, nil
}

// Originator resolves a 3-letter originator code to its organization
// phrase, e.g. "CIV" -> "The Civil Authorities have issued ".
func Originator(dict *dictionary.Dictionary, code string) (string, error) {
	return translate3Letter(dict.Originators, code, errs.OriginatorInvalid, errs.OriginatorInvalid)
}

// Event resolves a 3-letter event code to its event phrase, e.g.
// "TOR" -> "Tornado Warning".
func Event(dict *dictionary.Dictionary, code string) (string, error) {
	return translate3Letter(dict.Events, code, errs.EventInvalid, errs.EventInvalid)
}
