package wav

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotWavFile", ErrNotWavFile, "not a WAV file"},
		{"ErrTruncatedHeader", ErrTruncatedHeader, "truncated WAV header"},
		{"ErrTruncatedPayload", ErrTruncatedPayload, "truncated WAV payload"},
		{"ErrUnsupportedBitDepth", ErrUnsupportedBitDepth, "unsupported bit depth"},
		{"ErrUnsupportedChannelLayout", ErrUnsupportedChannelLayout, "unsupported channel layout"},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout, "unsupported WAV layout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotWavFile", ErrNotWavFile},
		{"ErrTruncatedHeader", ErrTruncatedHeader},
		{"ErrTruncatedPayload", ErrTruncatedPayload},
		{"ErrUnsupportedBitDepth", ErrUnsupportedBitDepth},
		{"ErrUnsupportedChannelLayout", ErrUnsupportedChannelLayout},
		{"ErrUnsupportedWavLayout", ErrUnsupportedWavLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("%w: extra context", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false, want true", tt.name)
			}

			other := errors.New("some other error")
			if errors.Is(other, tt.err) {
				t.Errorf("errors.Is(otherErr, %s) = true, want false", tt.name)
			}
		})
	}
}

func TestErrors_Uniqueness(t *testing.T) {
	t.Parallel()

	// Ensure all error variables are distinct
	allErrors := []error{
		ErrNotWavFile,
		ErrTruncatedHeader,
		ErrTruncatedPayload,
		ErrUnsupportedBitDepth,
		ErrUnsupportedChannelLayout,
		ErrUnsupportedWavLayout,
	}

	for i := range allErrors {
		for j := range allErrors {
			if i != j && errors.Is(allErrors[i], allErrors[j]) {
				t.Errorf("errors[%d] and errors[%d] compare equal", i, j)
			}
		}
	}
}
