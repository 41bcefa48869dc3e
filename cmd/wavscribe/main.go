// Command wavscribe transcribes PCM WAV files with a local whisper model.
//
// Usage:
//
//	wavscribe -model models/ggml-base.bin speech.wav [more.wav ...]
//	wavscribe -config wavscribe.yaml speech.wav
//
// Flags override values from the optional YAML config file. Transcripts
// are printed to stdout, one line per input file; diagnostics go to
// stderr via slog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperwhisper/wavscribe/engine"
	"github.com/hyperwhisper/wavscribe/formats/wav"
	"github.com/hyperwhisper/wavscribe/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	modelPath := flag.String("model", "", "path to the whisper ggml model file")
	language := flag.String("language", "", `spoken language hint, e.g. "en" ("auto" detects)`)
	translate := flag.Bool("translate", false, "translate the transcript into English")
	strict := flag.Bool("strict", false, "require the canonical WAV fmt/data layout")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	cfg := &config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wavscribe: %v\n", err)
			return 1
		}
		cfg = loaded
	}

	// Flags win over config file values.
	if *modelPath != "" {
		cfg.Model.Path = *modelPath
	}
	if *language != "" {
		cfg.Model.Language = *language
	}
	if *translate {
		cfg.Model.Translate = true
	}
	if *strict {
		cfg.Decode.Strict = true
	}
	if *logLevel != "" {
		cfg.LogLevel = config.LogLevel(*logLevel)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel.Level(),
	}))
	slog.SetDefault(logger)

	if cfg.Model.Path == "" {
		fmt.Fprintln(os.Stderr, "wavscribe: no model given; use -model or a config file")
		return 1
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "wavscribe: no input files")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt := engine.New()
	if err := rt.Load(cfg.Model.Path); err != nil {
		slog.Error("failed to load model", "path", cfg.Model.Path, "err", err)
		return 1
	}
	defer rt.Unload()

	decoder := wav.Decoder{Strict: cfg.Decode.Strict}

	opts := []engine.Option{
		engine.WithLanguage(cfg.Model.Language),
		engine.WithTranslate(cfg.Model.Translate),
	}

	for _, path := range files {
		clip, err := decoder.DecodeFile(path)
		if err != nil {
			slog.Error("failed to decode", "file", path, "err", err)
			return 1
		}
		slog.Info("decoded", "file", path, "samples", clip.Frames(),
			"rate", clip.SampleRate, "duration", clip.Duration())

		text, err := rt.Transcribe(ctx, clip, opts...)
		if err != nil {
			slog.Error("failed to transcribe", "file", path, "err", err)
			return 1
		}

		fmt.Println(text)
	}

	return 0
}
