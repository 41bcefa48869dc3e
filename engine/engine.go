package engine

import (
	"fmt"

	whisperlib "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// inferenceContext is the slice of whisperlib.Context the runtime needs.
// Narrowing the surface keeps inference faking simple in tests.
type inferenceContext interface {
	SetLanguage(lang string) error
	SetTranslate(v bool)
	Process(samples []float32, encBegin whisperlib.EncoderBeginCallback, newSeg whisperlib.SegmentCallback, progress whisperlib.ProgressCallback) error
	NextSegment() (whisperlib.Segment, error)
}

// inferenceModel owns a loaded model and mints per-call inference contexts.
type inferenceModel interface {
	NewContext() (inferenceContext, error)
	Close() error
}

// bindingModel adapts whisperlib.Model to inferenceModel.
type bindingModel struct {
	m whisperlib.Model
}

func (b *bindingModel) NewContext() (inferenceContext, error) {
	ctx, err := b.m.NewContext()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return ctx, nil
}

func (b *bindingModel) Close() error {
	return b.m.Close()
}

// newModel loads a whisper model from disk. Tests substitute a fake.
var newModel = func(path string) (inferenceModel, error) {
	m, err := whisperlib.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &bindingModel{m: m}, nil
}
