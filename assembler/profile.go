package assembler

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eascodec/same/afsk"
)

// Profile is one named set of encoder defaults from a profiles file —
// typically the factory configuration of a hardware encoder model, so
// an operator can ask for "sage-3644" instead of spelling out the
// framing mode and tone settings each time.
type Profile struct {
	Mode          string  `yaml:"mode"`
	AttentionTone *bool   `yaml:"attention_tone"`
	StationID     string  `yaml:"station_id"`
	MorseWPM      float64 `yaml:"morse_wpm"`
}

// Profiles maps a profile name to its defaults.
type Profiles map[string]Profile

// profileSearchPath lists the candidate locations for the profiles
// file, tried in order: working directory first, then the shared data
// directories.
var profileSearchPath = []string{
	"encoder_profiles.yaml",
	"data/encoder_profiles.yaml",
	"/usr/local/share/same/encoder_profiles.yaml",
	"/usr/share/same/encoder_profiles.yaml",
}

// LoadProfiles parses a YAML profiles document.
func LoadProfiles(r io.Reader) (Profiles, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("assembler: read profiles: %w", err)
	}

	var profiles Profiles
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("assembler: parse profiles: %w", err)
	}
	return profiles, nil
}

// FindProfiles opens the first profiles file found on the search path.
// No file anywhere on the path yields an empty Profiles map, not an
// error — shipping without a profiles file is normal.
func FindProfiles() (Profiles, error) {
	for _, location := range profileSearchPath {
		f, err := os.Open(location)
		if err != nil {
			continue
		}
		defer f.Close()
		return LoadProfiles(f)
	}
	return Profiles{}, nil
}

// Apply overlays the profile's settings onto opts, leaving any field
// the profile does not set untouched, and returns the result.
func (p Profile) Apply(opts Options) (Options, error) {
	if p.Mode != "" {
		mode, err := afsk.ParseMode(p.Mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}
	if p.AttentionTone != nil {
		opts.NoAttentionTone = !*p.AttentionTone
	}
	if p.StationID != "" {
		opts.StationID = p.StationID
	}
	if p.MorseWPM > 0 {
		opts.MorseWPM = p.MorseWPM
	}
	return opts, nil
}
