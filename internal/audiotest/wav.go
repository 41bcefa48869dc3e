// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"math"
)

// WAVSpec describes a synthetic WAV byte image for tests. The zero value
// of each field means "canonical": tests override only the field they want
// to corrupt.
type WAVSpec struct {
	RIFFTag       string // default "RIFF"
	WAVETag       string // default "WAVE"
	FmtTag        string // default "fmt "
	DataTag       string // default "data"
	FmtSize       uint32 // default 16
	AudioFormat   uint16 // default 1 (integer PCM)
	Channels      uint16 // default 1
	SampleRate    uint32 // default 16000
	BitsPerSample uint16 // default 16, or 32 when Samples32 is set

	// Samples16 and Samples32 are mutually exclusive interleaved payloads.
	Samples16 []int16
	Samples32 []int32

	// DeclaredDataSize overrides the data chunk size field without
	// changing the actual payload. Nil means the real payload size.
	DeclaredDataSize *uint32

	// TruncatePayload drops that many bytes from the end of the payload
	// while the header still declares the full size.
	TruncatePayload int
}

// Bytes renders the spec as a complete WAV file image.
func (s WAVSpec) Bytes() []byte {
	riffTag := defaultTag(s.RIFFTag, "RIFF")
	waveTag := defaultTag(s.WAVETag, "WAVE")
	fmtTag := defaultTag(s.FmtTag, "fmt ")
	dataTag := defaultTag(s.DataTag, "data")

	fmtSize := s.FmtSize
	if fmtSize == 0 {
		fmtSize = 16
	}
	audioFormat := s.AudioFormat
	if audioFormat == 0 {
		audioFormat = 1
	}
	channels := s.Channels
	if channels == 0 {
		channels = 1
	}
	sampleRate := s.SampleRate
	if sampleRate == 0 {
		sampleRate = 16000
	}
	bits := s.BitsPerSample
	if bits == 0 {
		bits = 16
		if s.Samples32 != nil {
			bits = 32
		}
	}

	var payload []byte
	switch {
	case s.Samples32 != nil:
		payload = make([]byte, len(s.Samples32)*4)
		for i, v := range s.Samples32 {
			binary.LittleEndian.PutUint32(payload[4*i:], uint32(v))
		}
	default:
		payload = make([]byte, len(s.Samples16)*2)
		for i, v := range s.Samples16 {
			binary.LittleEndian.PutUint16(payload[2*i:], uint16(v))
		}
	}

	dataSize := uint32(len(payload))
	if s.DeclaredDataSize != nil {
		dataSize = *s.DeclaredDataSize
	}
	if s.TruncatePayload > 0 && s.TruncatePayload <= len(payload) {
		payload = payload[:len(payload)-s.TruncatePayload]
	}

	byteRate := sampleRate * uint32(channels) * uint32(bits/8)
	blockAlign := channels * (bits / 8)

	buf := make([]byte, 44+len(payload))
	copy(buf[0:4], riffTag)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(payload)))
	copy(buf[8:12], waveTag)
	copy(buf[12:16], fmtTag)
	binary.LittleEndian.PutUint32(buf[16:20], fmtSize)
	binary.LittleEndian.PutUint16(buf[20:22], audioFormat)
	binary.LittleEndian.PutUint16(buf[22:24], channels)
	binary.LittleEndian.PutUint32(buf[24:28], sampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], byteRate)
	binary.LittleEndian.PutUint16(buf[32:34], blockAlign)
	binary.LittleEndian.PutUint16(buf[34:36], bits)
	copy(buf[36:40], dataTag)
	binary.LittleEndian.PutUint32(buf[40:44], dataSize)
	copy(buf[44:], payload)

	return buf
}

// Uint32 is a helper for WAVSpec.DeclaredDataSize literals.
func Uint32(v uint32) *uint32 { return &v }

func defaultTag(tag, fallback string) string {
	if tag == "" {
		return fallback
	}
	return tag
}

// Sine16 generates n samples of a sine wave at the given frequency as
// 16-bit PCM at roughly half amplitude.
func Sine16(sampleRate, n int, frequency float64) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = int16(16000 * math.Sin(2*math.Pi*frequency*t))
	}
	return samples
}
