package wavscribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperwhisper/wavscribe/engine"
	"github.com/hyperwhisper/wavscribe/formats/wav"
	"github.com/hyperwhisper/wavscribe/internal/audiotest"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecodeFile(t *testing.T) {
	t.Parallel()

	data := audiotest.WAVSpec{
		SampleRate: 16000,
		Samples16:  []int16{16384, -16384},
	}.Bytes()
	path := writeFixture(t, "speech.wav", data)

	clip, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}

	if clip.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", clip.SampleRate)
	}
	if clip.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", clip.Frames())
	}
}

func TestDecodeFile_UppercaseExtension(t *testing.T) {
	t.Parallel()

	data := audiotest.WAVSpec{Samples16: []int16{100}}.Bytes()
	path := writeFixture(t, "SPEECH.WAV", data)

	if _, err := DecodeFile(path); err != nil {
		t.Errorf("DecodeFile() error = %v, want nil for uppercase extension", err)
	}
}

func TestDecodeFile_UnknownFormat(t *testing.T) {
	t.Parallel()

	tests := []string{"speech.mp3", "speech.ogg", "speech"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writeFixture(t, name, []byte("irrelevant"))

			_, err := DecodeFile(path)
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("DecodeFile(%q) error = %v, want ErrUnknownFormat", name, err)
			}
		})
	}
}

func TestDecodeFile_DecodeErrorPropagates(t *testing.T) {
	t.Parallel()

	data := audiotest.WAVSpec{RIFFTag: "RIFX", Samples16: []int16{1}}.Bytes()
	path := writeFixture(t, "bad.wav", data)

	_, err := DecodeFile(path)
	if !errors.Is(err, wav.ErrNotWavFile) {
		t.Errorf("DecodeFile() error = %v, want wrapped wav.ErrNotWavFile", err)
	}
}

func TestTranscribeFile_ModelNotLoaded(t *testing.T) {
	t.Parallel()

	data := audiotest.WAVSpec{Samples16: []int16{100, 200}}.Bytes()
	path := writeFixture(t, "speech.wav", data)

	_, err := TranscribeFile(context.Background(), engine.New(), path)
	if !errors.Is(err, engine.ErrModelNotLoaded) {
		t.Errorf("TranscribeFile() error = %v, want wrapped engine.ErrModelNotLoaded", err)
	}
}

func TestTranscribeFile_DecodeFailureSkipsInference(t *testing.T) {
	t.Parallel()

	path := writeFixture(t, "speech.flac", []byte("irrelevant"))

	_, err := TranscribeFile(context.Background(), engine.New(), path)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("TranscribeFile() error = %v, want ErrUnknownFormat", err)
	}
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"speech.wav", "wav"},
		{"SPEECH.WAV", "wav"},
		{"/tmp/a/b/tone.Wav", "wav"},
		{"noextension", ""},
		{"archive.tar.gz", "gz"},
	}

	for _, tt := range tests {
		if got := formatForPath(tt.path); got != tt.want {
			t.Errorf("formatForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
