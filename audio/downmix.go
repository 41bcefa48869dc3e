package audio

// DownmixToMono collapses interleaved multi-channel samples into a single
// channel by averaging each frame. Mono input is returned unchanged (same
// backing slice, no copy). A trailing partial frame is dropped.
func DownmixToMono(samples []float32, channels int) ([]float32, error) {
	if channels < 1 {
		return nil, ErrInvalidChannelCount
	}
	if channels == 1 {
		return samples, nil
	}

	frames := len(samples) / channels
	mono := make([]float32, frames)

	invChannels := float32(1.0) / float32(channels)

	// Unrolled loop for common cases
	switch channels {
	case 2: // Stereo (most common)
		for f := range frames {
			idx := f << 1 // f * 2
			mono[f] = (samples[idx] + samples[idx+1]) * 0.5
		}
	case 4: // Quad
		for f := range frames {
			idx := f << 2 // f * 4
			sum := samples[idx] + samples[idx+1] + samples[idx+2] + samples[idx+3]
			mono[f] = sum * 0.25
		}
	default: // Generic path
		for f := range frames {
			sum := float32(0)
			baseIdx := f * channels
			for c := range channels {
				sum += samples[baseIdx+c]
			}
			mono[f] = sum * invChannels
		}
	}

	return mono, nil
}
