package wav

import "errors"

var (
	ErrNotWavFile               = errors.New("not a WAV file")
	ErrTruncatedHeader          = errors.New("truncated WAV header")
	ErrTruncatedPayload         = errors.New("truncated WAV payload")
	ErrUnsupportedBitDepth      = errors.New("unsupported bit depth")
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")
	ErrUnsupportedWavLayout     = errors.New("unsupported WAV layout")
)
