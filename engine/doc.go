// SPDX-License-Identifier: EPL-2.0

// Package engine wraps the whisper.cpp Go bindings behind a Runtime that
// owns at most one loaded model at a time.
//
// The whisper.cpp static library (libwhisper.a) and headers (whisper.h)
// must be available at link time via LIBRARY_PATH and C_INCLUDE_PATH
// environment variables.
//
// # Usage
//
//	rt := engine.New()
//	if err := rt.Load("models/ggml-base.bin"); err != nil {
//	    // Handle error
//	}
//	defer rt.Unload()
//
//	text, err := rt.Transcribe(ctx, clip,
//	    engine.WithLanguage("en"),
//	    engine.WithTranslate(false),
//	)
//
// Load replaces any previously loaded model, so a single Runtime can be
// handed around as the process-wide model owner without callers tracking
// load state themselves; IsLoaded answers that question when needed.
// Transcribing without a loaded model fails with ErrModelNotLoaded rather
// than an empty transcript, so callers can distinguish "nothing was said"
// from "nothing was loaded".
package engine
