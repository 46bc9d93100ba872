package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// wavHeader is the canonical 44-byte RIFF/WAVE header for a PCM file,
// written and read as one little-endian block.
type wavHeader struct {
	Riff          [4]byte // "RIFF"
	RiffSize      uint32  // file size - 8
	Wave          [4]byte // "WAVE"
	Fmt           [4]byte // "fmt "
	FmtSize       uint32  // 16 for PCM
	AudioFormat   uint16  // 1 = PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitDepth/8
	BlockAlign    uint16 // NumChannels * BitDepth/8
	BitsPerSample uint16
	Data          [4]byte // "data"
	DataSize      uint32
}

// WriteWAV encodes the buffer as a RIFF/WAVE file: PCM s16le, 24kHz,
// mono.
func WriteWAV(w io.Writer, samples Buffer) error {
	pcm := samples.ToPCM16()
	dataSize := uint32(len(pcm) * 2)

	header := wavHeader{
		Riff:          [4]byte{'R', 'I', 'F', 'F'},
		RiffSize:      36 + dataSize,
		Wave:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    SampleRate,
		ByteRate:      SampleRate * 2,
		BlockAlign:    2,
		BitsPerSample: BitDepth,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("audio: write wav header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, pcm); err != nil {
		return fmt.Errorf("audio: write wav data: %w", err)
	}
	return nil
}

// WriteWAVFile writes the buffer to path as a WAV file, creating or
// truncating it.
func WriteWAVFile(path string, samples Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: create %s: %w", path, err)
	}
	if err := WriteWAV(f, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadWAV decodes a PCM s16le mono WAV stream produced by WriteWAV or
// by the external transcoder (which is always asked for exactly that
// format). It accepts only the plain 44-byte header layout; anything
// else — extra chunks, float samples, multiple channels — is an error,
// since the only WAV files this codec reads are ones it requested.
func ReadWAV(r io.Reader) (Buffer, error) {
	var header wavHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("audio: read wav header: %w", err)
	}

	if string(header.Riff[:]) != "RIFF" || string(header.Wave[:]) != "WAVE" {
		return nil, fmt.Errorf("audio: not a RIFF/WAVE file")
	}
	if string(header.Fmt[:]) != "fmt " || string(header.Data[:]) != "data" {
		return nil, fmt.Errorf("audio: unsupported wav chunk layout")
	}
	if header.AudioFormat != 1 || header.BitsPerSample != 16 {
		return nil, fmt.Errorf("audio: need 16-bit PCM, got format %d at %d bits",
			header.AudioFormat, header.BitsPerSample)
	}
	if header.NumChannels != 1 {
		return nil, fmt.Errorf("audio: need mono, got %d channels", header.NumChannels)
	}
	if header.SampleRate != SampleRate {
		return nil, fmt.Errorf("audio: need %dHz, got %dHz", SampleRate, header.SampleRate)
	}

	pcm := make([]int16, header.DataSize/2)
	if err := binary.Read(r, binary.LittleEndian, &pcm); err != nil {
		return nil, fmt.Errorf("audio: read wav data: %w", err)
	}
	return FromPCM16(pcm), nil
}

// ReadWAVFile reads path as a WAV file per ReadWAV's constraints.
func ReadWAVFile(path string) (Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadWAV(f)
}
