// samedecode resolves a SAME header string into a human-readable alert
// description.
//
// Usage:
//
//	samedecode [OPTIONS] HEADER
//	samedecode "ZCZC-CIV-ADR-020173+0100-3441707-ERN/LB-"
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/eascodec/same/internal/eascli"
	"github.com/eascodec/same/same"
)

func main() {
	var dictPath = pflag.StringP("dictionary", "d", "", "Path to the SAME code dictionary JSON file.")

	var asJSON = pflag.BoolP("json", "j", false, "Emit the full decoded structure as JSON instead of the formatted text.")

	var help = pflag.Bool("help", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Decode a SAME/EAS header into a readable alert description\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] HEADER\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if len(pflag.Args()) != 1 {
		fmt.Fprintf(os.Stderr, "Exactly one argument required (HEADER) - got %v\n", pflag.Args())
		os.Exit(1)
	}

	logger := eascli.NewLogger()

	dict, err := eascli.LoadDictionary(*dictPath)
	if err != nil {
		logger.Fatal("could not load dictionary", "err", err)
	}

	alert, err := same.Decode(dict, pflag.Arg(0), time.Now)
	if err != nil {
		logger.Fatal("decode failed", "err", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(alert); err != nil {
			logger.Fatal("encode output", "err", err)
		}
		return
	}

	fmt.Println(alert.Formatted)
}
