package afsk

import (
	"strings"
)

// MorseTone is the tone frequency used for the optional station-ID
// ident, in Hz.
const MorseTone = 800

// MorseAmplitudeDB is the ident tone's amplitude.
const MorseAmplitudeDB = -3.0

// DefaultMorseWPM is the ident speed used when Options.StationID enables
// this feature without specifying a rate.
const DefaultMorseWPM = 20

var morseTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'1': ".----", '2': "..---", '3': "...--", '4': "....-", '5': ".....",
	'6': "-....", '7': "--...", '8': "---..", '9': "----.", '0': "-----",
	'/': "-..-.", '-': "-....-",
}

// timeUnitMS is the duration of `units` Morse time units at the given
// speed: one unit is 1200/wpm milliseconds.
func timeUnitMS(units int, wpm float64) float64 {
	return float64(units) * 1200.0 / wpm
}

// MorseIdent generates a supplemental Morse-code station identifier —
// not part of any SAME/EAS wire format, only an operator-configured
// trailer for station-ID compliance. It is never emitted unless
// assembler.Options.StationID enables it.
//
// Unrecognized characters (including spaces) render as a single silent
// time unit. Characters are separated by a 3-unit gap; symbols within
// a character by a 1-unit gap.
func MorseIdent(text string, wpm float64) []float32 {
	if wpm <= 0 {
		wpm = DefaultMorseWPM
	}

	var out []float32
	runes := []rune(strings.ToUpper(text))
	for i, r := range runes {
		enc, ok := morseTable[r]
		if !ok {
			out = append(out, Silence(timeUnitMS(1, wpm))...)
		} else {
			for j, sym := range enc {
				units := 1
				if sym == '-' {
					units = 3
				}
				out = append(out, Sine(MorseTone, timeUnitMS(units, wpm), MorseAmplitudeDB)...)
				if j != len(enc)-1 {
					out = append(out, Silence(timeUnitMS(1, wpm))...)
				}
			}
		}
		if i != len(runes)-1 {
			out = append(out, Silence(timeUnitMS(3, wpm))...)
		}
	}
	return out
}
