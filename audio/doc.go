// SPDX-License-Identifier: EPL-2.0

// Package audio defines the core types shared by the wavscribe decoders.
//
// A decoded recording is represented by a Clip: a sample rate plus a flat
// slice of normalized mono float32 samples in [-1.0, 1.0]. Decoders for
// individual file formats implement the FileDecoder interface and can be
// looked up by format key through a Registry.
//
// # Downmixing
//
// DownmixToMono converts interleaved multi-channel samples to mono by
// averaging each frame:
//
//	mono, err := audio.DownmixToMono(samples, 2)
//
// Mono input passes through without copying. Stereo and quad layouts use
// unrolled fast paths; any other channel count takes the generic path.
package audio
