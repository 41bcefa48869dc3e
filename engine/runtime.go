package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	whisperlib "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	"github.com/hyperwhisper/wavscribe/audio"
)

const defaultLanguage = "auto"

// Option is a functional option for a single Transcribe call.
type Option func(*transcribeOptions)

type transcribeOptions struct {
	language  string
	translate bool
}

// WithLanguage sets the spoken-language hint (e.g. "en", "de"). An empty
// value or "auto" lets the model detect the language. Defaults to "auto".
func WithLanguage(lang string) Option {
	return func(o *transcribeOptions) {
		o.language = lang
	}
}

// WithTranslate requests translation of the transcript into English.
func WithTranslate(translate bool) Option {
	return func(o *transcribeOptions) {
		o.translate = translate
	}
}

// Runtime owns at most one loaded whisper model at a time. Load replaces
// any previously loaded model, freeing it first. All methods are safe for
// concurrent use; inference calls are serialized on the model handle.
type Runtime struct {
	mu        sync.Mutex
	model     inferenceModel
	modelPath string
}

// New returns a Runtime with no model loaded.
func New() *Runtime {
	return &Runtime{}
}

// Load reads a whisper model from path. A model loaded by a previous call
// is released before the new one is loaded; if loading fails the runtime
// is left with no model.
func (r *Runtime) Load(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.model != nil {
		if err := r.model.Close(); err != nil {
			slog.Warn("failed to release previous model", "path", r.modelPath, "error", err)
		}
		r.model = nil
		r.modelPath = ""
	}

	slog.Info("loading model", "path", path)

	m, err := newModel(path)
	if err != nil {
		return fmt.Errorf("load model %q: %w", path, err)
	}

	r.model = m
	r.modelPath = path
	return nil
}

// Unload releases the loaded model, if any. Calling Unload on an empty
// runtime is a no-op.
func (r *Runtime) Unload() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.model == nil {
		return
	}

	slog.Info("unloading model", "path", r.modelPath)
	if err := r.model.Close(); err != nil {
		slog.Warn("failed to release model", "path", r.modelPath, "error", err)
	}
	r.model = nil
	r.modelPath = ""
}

// IsLoaded reports whether a model is currently loaded.
func (r *Runtime) IsLoaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.model != nil
}

// ModelPath returns the path of the loaded model, or "" when none is loaded.
func (r *Runtime) ModelPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.modelPath
}

// Transcribe runs inference on a decoded clip and returns the transcript
// with segments joined by single spaces. Each call creates a fresh
// inference context; contexts are not thread-safe, so calls are serialized
// for the lifetime of the inference.
func (r *Runtime) Transcribe(ctx context.Context, clip *audio.Clip, opts ...Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w", err)
	}

	o := transcribeOptions{language: defaultLanguage}
	for _, opt := range opts {
		opt(&o)
	}
	if o.language == "" {
		o.language = defaultLanguage
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.model == nil {
		return "", ErrModelNotLoaded
	}

	if clip.SampleRate != uint32(whisperlib.SampleRate) {
		slog.Warn("clip sample rate differs from model sample rate",
			"clip", clip.SampleRate, "model", whisperlib.SampleRate)
	}

	wctx, err := r.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("create inference context: %w", err)
	}

	if err := wctx.SetLanguage(o.language); err != nil {
		slog.Warn("failed to set language, using model default", "language", o.language, "error", err)
	}
	wctx.SetTranslate(o.translate)

	slog.Info("transcribing", "samples", clip.Frames(), "rate", clip.SampleRate,
		"language", o.language, "translate", o.translate)

	if err := wctx.Process(clip.Samples, nil, nil, nil); err != nil {
		return "", fmt.Errorf("process audio: %w", err)
	}

	var parts []string
	for {
		segment, err := wctx.NextSegment()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read segment: %w", err)
		}
		text := strings.TrimSpace(segment.Text)
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}
