// Package assembler is the top-level alert builder: it turns a ZCZC
// header string plus options into the complete alert waveform and
// writes it to disk as WAV or MP3.
package assembler

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/eascodec/same/afsk"
	"github.com/eascodec/same/audio"
	"github.com/eascodec/same/errs"
	"github.com/eascodec/same/transcode"
)

// DefaultOutputFile is used when Options.OutputFile is empty.
const DefaultOutputFile = "output.wav"

// Options configures one Assemble call.
type Options struct {
	// Mode selects the hardware-profile framing variant.
	Mode afsk.Mode

	// NoAttentionTone suppresses the attention tone. The zero value
	// keeps the tone on, matching the documented default.
	NoAttentionTone bool

	// AudioPath, when non-blank, names a narration file to transcode
	// and splice into the alert after the attention tone.
	AudioPath string

	// OutputFile is the destination path. An ".mp3" extension selects
	// MP3 encoding through the external transcoder; anything else gets
	// WAV. Empty means DefaultOutputFile.
	OutputFile string

	// StationID, when non-blank, appends a Morse-code station
	// identifier after the end-of-message sequence.
	StationID string

	// MorseWPM sets the station-ID speed; zero means
	// afsk.DefaultMorseWPM.
	MorseWPM float64

	// Transcoder converts narration input and encodes MP3 output. Nil
	// uses a zero transcode.Transcoder (ffmpeg from PATH).
	Transcoder *transcode.Transcoder

	// Logger receives non-fatal diagnostics (a narration transcode
	// failure, an MP3 export failure). Nil discards them.
	Logger *log.Logger
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o *Options) transcoder() *transcode.Transcoder {
	if o.Transcoder != nil {
		return o.Transcoder
	}
	return &transcode.Transcoder{}
}

func (o *Options) outputFile() string {
	if o.OutputFile == "" {
		return DefaultOutputFile
	}
	return o.OutputFile
}

// Assemble builds the complete alert waveform for zczcMessage and
// writes it to opts.OutputFile. The returned buffer is the float sample
// stream that was written.
//
// A narration file that does not exist is fatal. A narration file that
// exists but fails to transcode is not: the failure is logged and the
// alert proceeds without a narration segment. An MP3 export failure is
// likewise logged and not returned; Assemble does not remove anything
// the transcoder may have left at the output path.
func Assemble(zczcMessage string, opts Options) (audio.Buffer, error) {
	logger := opts.logger()

	var narration audio.Buffer
	if strings.TrimSpace(opts.AudioPath) != "" {
		var err error
		narration, err = opts.transcoder().Import(opts.AudioPath)
		if err != nil {
			var same *errs.Error
			if errors.As(err, &same) && same.Kind == errs.AudioFileNotFound {
				return nil, err
			}
			logger.Warn("narration transcode failed, continuing without narration",
				"path", opts.AudioPath, "err", err)
			narration = nil
		}
	}

	samples := audio.Buffer(afsk.Synthesize(zczcMessage, opts.Mode, !opts.NoAttentionTone, narration))

	if strings.TrimSpace(opts.StationID) != "" {
		samples = append(samples, afsk.MorseIdent(opts.StationID, opts.MorseWPM)...)
		samples = append(samples, afsk.Silence(1000)...)
	}

	out := opts.outputFile()
	if strings.EqualFold(filepath.Ext(out), ".mp3") {
		if err := opts.transcoder().ExportMP3(samples, out); err != nil {
			logger.Warn("mp3 export failed", "path", out, "err", err)
		}
	} else {
		if err := audio.WriteWAVFile(out, samples); err != nil {
			return nil, err
		}
	}

	return samples, nil
}
