// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes canonical PCM WAV files.
//
// The decoder targets the fixed 44-byte header layout produced by the vast
// majority of PCM WAV writers: a RIFF chunk descriptor, a 16-byte fmt
// chunk, and a data chunk. Extensible chunk lists, compressed formats, and
// streaming decode are out of scope.
//
// # Decoding WAV Files
//
// A whole file is decoded in one call:
//
//	decoder := wav.Decoder{}
//	clip, err := decoder.DecodeFile("audio.wav")
//	if err != nil {
//	    // Handle error
//	}
//	// clip.Samples is mono float32 in [-1.0, 1.0], clip.SampleRate in Hz
//
// Supported inputs:
//   - PCM 16-bit or 32-bit integer samples
//   - Mono or stereo (stereo is downmixed to mono by averaging)
//   - Any sample rate
//
// By default only the "RIFF" and "WAVE" tags are validated, matching the
// permissive acceptance policy of common WAV readers. Set Decoder.Strict
// to also require the canonical fmt/data layout.
//
// # Writing WAV Files
//
// WritePCM16 writes interleaved int16 samples with a canonical header:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WritePCM16(file, 8000, 1, samples)
//
// WriteFloat32 does the same for normalized float32 samples, clamping and
// quantizing to 16-bit PCM.
//
// # Error Handling
//
// The package defines sentinel errors that callers can branch on with
// errors.Is:
//   - ErrNotWavFile: RIFF or WAVE tag mismatch
//   - ErrTruncatedHeader: fewer than 44 header bytes available
//   - ErrTruncatedPayload: data chunk shorter than its declared size
//   - ErrUnsupportedBitDepth: bit depth other than 16 or 32
//   - ErrUnsupportedChannelLayout: channel count other than 1 or 2
//   - ErrUnsupportedWavLayout: non-canonical layout (strict mode only)
//
// Failures are terminal for the call: no partial clip is ever returned,
// and the file handle is closed on every path.
package wav
