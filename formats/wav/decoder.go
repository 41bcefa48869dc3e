package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/hyperwhisper/wavscribe/audio"
)

// headerSize is the canonical RIFF/WAVE header: the RIFF chunk descriptor,
// a 16-byte PCM fmt chunk, and the data chunk header.
const headerSize = 44

// Decoder reads canonical 44-byte-header PCM WAV files into mono clips.
//
// The zero value is lenient: only the "RIFF" and "WAVE" tags are checked,
// so close-enough WAV variants with non-canonical fmt/data tags still
// decode as long as the field layout matches. Setting Strict additionally
// requires the "fmt " and "data" tags, a 16-byte fmt chunk, and the
// integer-PCM format code.
type Decoder struct {
	Strict bool
}

// DecodeFile opens the WAV file at path, decodes it fully, and closes it.
// The file handle is released on every path, including failures.
func (d Decoder) DecodeFile(path string) (*audio.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return d.Decode(f)
}

// Decode reads one complete WAV image from r. Each call is independent and
// stateless, so a single Decoder may be used from multiple goroutines.
func (d Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	header := make([]byte, headerSize)

	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedHeader, err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	if d.Strict {
		if err := checkCanonicalLayout(header); err != nil {
			return nil, err
		}
	}

	channels := int(binary.LittleEndian.Uint16(header[22:24]))
	sampleRate := binary.LittleEndian.Uint32(header[24:28])
	bitsPerSample := int(binary.LittleEndian.Uint16(header[34:36]))
	dataSize := binary.LittleEndian.Uint32(header[40:44])

	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannelLayout, channels)
	}

	var samples []float32

	switch bitsPerSample {
	case 16:
		sampleCount := int(dataSize) / 2
		var err error
		samples, err = readSamples16(r, sampleCount)
		if err != nil {
			return nil, err
		}
	case 32:
		sampleCount := int(dataSize) / 4
		var err error
		samples, err = readSamples32(r, sampleCount)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitsPerSample)
	}

	if channels == 2 {
		var err error
		samples, err = audio.DownmixToMono(samples, 2)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return &audio.Clip{SampleRate: sampleRate, Samples: samples}, nil
}

// checkCanonicalLayout enforces the fixed fmt/data chunk layout that the
// lenient default merely assumes.
func checkCanonicalLayout(header []byte) error {
	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) {
		return fmt.Errorf("%w: missing fmt chunk", ErrUnsupportedWavLayout)
	}
	if fmtSize := binary.LittleEndian.Uint32(header[16:20]); fmtSize != 16 {
		return fmt.Errorf("%w: fmt chunk size %d", ErrUnsupportedWavLayout, fmtSize)
	}
	if format := binary.LittleEndian.Uint16(header[20:22]); format != 1 {
		return fmt.Errorf("%w: audio format %d", ErrUnsupportedWavLayout, format)
	}
	if !bytes.HasPrefix(header[36:40], []byte("data")) {
		return fmt.Errorf("%w: missing data chunk", ErrUnsupportedWavLayout)
	}
	return nil
}

// readSamples16 reads count signed 16-bit little-endian integers and
// normalizes them by 1/32768.
func readSamples16(r io.Reader, count int) ([]float32, error) {
	raw := make([]byte, count*2)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedPayload, err)
	}

	samples := make([]float32, count)
	for i := range count {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		samples[i] = float32(v) / 32768.0
	}
	return samples, nil
}

// readSamples32 reads count signed 32-bit little-endian integers and
// normalizes them by 1/2147483648.
func readSamples32(r io.Reader, count int) ([]float32, error) {
	raw := make([]byte, count*4)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncatedPayload, err)
	}

	samples := make([]float32, count)
	for i := range count {
		v := int32(binary.LittleEndian.Uint32(raw[4*i : 4*i+4]))
		samples[i] = float32(v) / 2147483648.0
	}
	return samples, nil
}
