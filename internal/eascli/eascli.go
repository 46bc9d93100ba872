// Package eascli holds the startup plumbing shared by the command-line
// tools: logger construction and dictionary loading.
package eascli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/eascodec/same/dictionary"
)

// dictionarySearchPath lists the candidate locations for the code
// dictionary artifact, tried in order when no path is given explicitly.
var dictionarySearchPath = []string{
	"same_codes.json",
	"data/same_codes.json",
	"/usr/local/share/same/same_codes.json",
	"/usr/share/same/same_codes.json",
}

// NewLogger builds the stderr logger the tools report diagnostics
// through.
func NewLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
}

// LoadDictionary opens and parses the code dictionary. An explicit
// non-empty path must exist; an empty path walks the search list and
// fails only when no candidate is found.
func LoadDictionary(path string) (*dictionary.Dictionary, error) {
	candidates := []string{path}
	if path == "" {
		candidates = dictionarySearchPath
	}

	for _, location := range candidates {
		f, err := os.Open(location)
		if err != nil {
			if path != "" {
				return nil, fmt.Errorf("open dictionary %s: %w", location, err)
			}
			continue
		}
		defer f.Close()
		return dictionary.Load(f)
	}
	return nil, fmt.Errorf("no dictionary file found (searched %v)", dictionarySearchPath)
}
