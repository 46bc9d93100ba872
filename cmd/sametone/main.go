// sametone is a quick test-tone generator: it writes a single sine
// tone or an attention tone to a WAV file so a receiver or sound chain
// can be checked without assembling a full alert. It does not generate
// mark/space bit patterns.
//
// Usage:
//
//	sametone -f 1050 -d 3000 -o test.wav
//	sametone --attention -m NWS -o attn.wav
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/eascodec/same/afsk"
	"github.com/eascodec/same/audio"
	"github.com/eascodec/same/internal/eascli"
)

func main() {
	var freq = pflag.Float64P("frequency", "f", afsk.MarkFreq, "Tone frequency in Hz.")

	var durationMS = pflag.Float64P("duration", "d", 1000, "Tone duration in milliseconds.")

	var volumeDB = pflag.Float64P("volume", "v", afsk.MarkSpaceAmplitudeDB, "Tone amplitude in dBFS (0 is full scale).")

	var attention = pflag.Bool("attention", false, "Generate the attention tone for the selected mode instead of a single sine.")

	var modeName = pflag.StringP("mode", "m", "DEFAULT", "Hardware mode for --attention: DEFAULT, NWS, DIGITAL, SAGE or TRILITHIC.")

	var outputFile = pflag.StringP("output", "o", "tone.wav", "Output WAV file.")

	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate test tones for checking an EAS sound chain\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	logger := eascli.NewLogger()

	var samples audio.Buffer
	if *attention {
		mode, err := afsk.ParseMode(*modeName)
		if err != nil {
			logger.Fatal("invalid mode", "err", err)
		}
		samples = afsk.AttentionTone(mode)
	} else {
		samples = afsk.Sine(*freq, *durationMS, *volumeDB)
	}

	if err := audio.WriteWAVFile(*outputFile, samples); err != nil {
		logger.Fatal("write failed", "err", err)
	}

	logger.Info("tone written", "file", *outputFile, "seconds", fmt.Sprintf("%.2f", samples.Duration()))
}
