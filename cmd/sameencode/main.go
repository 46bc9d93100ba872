// sameencode synthesizes a complete EAS alert waveform from a SAME
// header string and writes it to a WAV or MP3 file.
//
// Usage:
//
//	sameencode [OPTIONS] ZCZC_MESSAGE
//	sameencode -o tornado.wav "ZCZC-WXR-TOR-020173+0100-3441707-WABC/FM-"
//	sameencode -m NWS -a narration.mp3 -o alert.mp3 "ZCZC-..."
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/eascodec/same/afsk"
	"github.com/eascodec/same/assembler"
	"github.com/eascodec/same/internal/eascli"
)

func main() {
	var modeName = pflag.StringP("mode", "m", "DEFAULT", "Hardware framing mode: DEFAULT, NWS, DIGITAL, SAGE or TRILITHIC.")

	var noTone = pflag.Bool("no-attention-tone", false, "Omit the attention tone.")

	var audioPath = pflag.StringP("audio", "a", "", "Narration audio file to splice in after the attention tone.")

	var outputFile = pflag.StringP("output", "o", assembler.DefaultOutputFile, "Output file; a .mp3 extension selects MP3 encoding.")

	var stationID = pflag.String("station-id", "", "Callsign to append as a Morse-code identifier.")

	var profileName = pflag.StringP("profile", "p", "", "Encoder profile name from the profiles file.")

	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Synthesize an EAS alert waveform from a SAME header\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] ZCZC_MESSAGE\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if len(pflag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Exactly one argument required (ZCZC_MESSAGE) - got %v\n", pflag.Args())
		os.Exit(1)
	}

	logger := eascli.NewLogger()

	opts := assembler.Options{
		NoAttentionTone: *noTone,
		AudioPath:       *audioPath,
		OutputFile:      *outputFile,
		StationID:       *stationID,
		Logger:          logger,
	}

	if *profileName != "" {
		profiles, err := assembler.FindProfiles()
		if err != nil {
			logger.Fatal("could not load encoder profiles", "err", err)
		}
		profile, ok := profiles[*profileName]
		if !ok {
			logger.Fatal("unknown encoder profile", "profile", *profileName)
		}
		opts, err = profile.Apply(opts)
		if err != nil {
			logger.Fatal("invalid encoder profile", "profile", *profileName, "err", err)
		}
	}

	mode, err := afsk.ParseMode(*modeName)
	if err != nil {
		logger.Fatal("invalid mode", "err", err)
	}
	if pflag.CommandLine.Changed("mode") || *profileName == "" {
		opts.Mode = mode
	}

	samples, err := assembler.Assemble(pflag.Arg(0), opts)
	if err != nil {
		logger.Fatal("assembly failed", "err", err)
	}

	logger.Info("alert written",
		"file", opts.OutputFile,
		"mode", opts.Mode,
		"seconds", fmt.Sprintf("%.2f", samples.Duration()))
}
