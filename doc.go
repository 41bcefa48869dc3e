// SPDX-License-Identifier: EPL-2.0

// Package wavscribe turns PCM WAV recordings into text.
//
// It combines two pieces: a WAV file decoder that produces normalized mono
// float32 clips (formats/wav), and a speech-recognition runtime backed by
// whisper.cpp (engine). The root package wires them together so the common
// case is a single call.
//
// # Quick Start
//
//	rt := engine.New()
//	if err := rt.Load("models/ggml-base.bin"); err != nil {
//	    log.Fatal(err)
//	}
//	defer rt.Unload()
//
//	text, err := wavscribe.TranscribeFile(ctx, rt, "speech.wav",
//	    engine.WithLanguage("en"),
//	)
//
// # Decoding Only
//
// The decoder is usable on its own and has no dependency on the engine:
//
//	clip, err := wavscribe.DecodeFile("speech.wav")
//	// clip.Samples is mono float32 in [-1.0, 1.0]
//
// Decoders are looked up by file extension through an audio.Registry; WAV
// is the only built-in format. See the formats/wav package for the exact
// acceptance policy and error taxonomy.
package wavscribe
