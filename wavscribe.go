package wavscribe

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hyperwhisper/wavscribe/audio"
	"github.com/hyperwhisper/wavscribe/engine"
	"github.com/hyperwhisper/wavscribe/formats/wav"
)

// ErrUnknownFormat is returned when no decoder is registered for a file's
// extension.
var ErrUnknownFormat = errors.New("unknown audio format")

// defaultRegistry holds the decoders consulted by DecodeFile. WAV is the
// only built-in format.
var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	return r
}

// formatForPath derives the registry key from a file path ("audio.WAV"
// yields "wav").
func formatForPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// DecodeFile decodes the audio file at path into a normalized mono clip,
// picking the decoder by file extension. It fails with ErrUnknownFormat
// when the extension has no registered decoder.
func DecodeFile(path string) (*audio.Clip, error) {
	format := formatForPath(path)

	dec, ok := defaultRegistry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	clip, err := dec.DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return clip, nil
}

// TranscribeFile decodes the audio file at path and runs it through the
// runtime's loaded model, returning the transcript text. Decode and
// inference failures are reported as distinct, branchable errors; the
// transcript is never silently empty on failure.
func TranscribeFile(ctx context.Context, rt *engine.Runtime, path string, opts ...engine.Option) (string, error) {
	clip, err := DecodeFile(path)
	if err != nil {
		return "", err
	}

	text, err := rt.Transcribe(ctx, clip, opts...)
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", path, err)
	}

	return text, nil
}
