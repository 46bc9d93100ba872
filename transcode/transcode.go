// Package transcode shells out to an external audio transcoder (ffmpeg
// or a compatible tool) for the two jobs the codec cannot do natively:
// downmixing arbitrary narration files to 24kHz mono 16-bit PCM, and
// encoding finished alerts as MP3.
package transcode

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/eascodec/same/audio"
	"github.com/eascodec/same/errs"
)

// DefaultBinary is the transcoder executable resolved through PATH when
// a Transcoder does not name one explicitly.
const DefaultBinary = "ffmpeg"

// MP3Bitrate is the CBR bitrate used for MP3 export, in kbit/s.
const MP3Bitrate = 128

// Transcoder invokes an external audio converter. The zero value uses
// DefaultBinary.
type Transcoder struct {
	// Binary is the executable to invoke; empty means DefaultBinary.
	Binary string
}

func (t *Transcoder) binary() string {
	if t == nil || t.Binary == "" {
		return DefaultBinary
	}
	return t.Binary
}

// importArgs builds the argument list that converts any input file the
// transcoder understands into 24kHz mono s16le PCM WAV at dst. -y
// overwrites dst, which always exists because it is created with
// os.CreateTemp first.
func importArgs(src, dst string) []string {
	return []string{
		"-y",
		"-i", src,
		"-ar", strconv.Itoa(audio.SampleRate),
		"-ac", "1",
		"-acodec", "pcm_s16le",
		dst,
	}
}

// exportArgs builds the argument list that encodes a WAV file as
// MPEG-1 Layer III, CBR 128kbps.
func exportArgs(src, dst string) []string {
	return []string{
		"-y",
		"-i", src,
		"-codec:a", "libmp3lame",
		"-b:a", fmt.Sprintf("%dk", MP3Bitrate),
		dst,
	}
}

// Import converts the narration file at path to the codec's native PCM
// format and returns its samples. The conversion goes through a unique
// temporary WAV file which is removed on every exit path.
//
// A missing source file is reported as an AudioFileNotFound error;
// everything past that point (a transcoder failure, an unreadable
// result) is an ordinary error the caller may treat as non-fatal.
func (t *Transcoder) Import(path string) (audio.Buffer, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errs.New(errs.AudioFileNotFound, path)
	}

	tmp, err := os.CreateTemp("", "same-narration-*.wav")
	if err != nil {
		return nil, fmt.Errorf("transcode: create temp: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	cmd := exec.Command(t.binary(), importArgs(path, tmpPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("transcode: %s failed: %w: %s", t.binary(), err, out)
	}

	return audio.ReadWAVFile(tmpPath)
}

// ExportMP3 encodes samples as an MP3 file at dst, going through a
// unique temporary WAV which is removed whether or not the transcoder
// succeeds.
func (t *Transcoder) ExportMP3(samples audio.Buffer, dst string) error {
	tmp, err := os.CreateTemp("", "same-export-*.wav")
	if err != nil {
		return fmt.Errorf("transcode: create temp: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := audio.WriteWAVFile(tmpPath, samples); err != nil {
		return err
	}

	cmd := exec.Command(t.binary(), exportArgs(tmpPath, dst)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("transcode: %s failed: %w: %s", t.binary(), err, out)
	}
	return nil
}
