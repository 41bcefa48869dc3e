// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"sync"
	"time"
)

// Clip is a fully decoded, single-channel PCM recording. Samples are
// normalized float32 values in [-1.0, 1.0].
type Clip struct {
	SampleRate uint32
	Samples    []float32
}

// Frames returns the number of samples in the clip.
func (c *Clip) Frames() int { return len(c.Samples) }

// Duration returns the playback length of the clip, or 0 when the
// sample rate is unset.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / float64(c.SampleRate) * float64(time.Second))
}

// FileDecoder converts an audio file on disk into a mono Clip.
type FileDecoder interface {
	DecodeFile(path string) (*Clip, error)
}

// Registry for file decoders by format key (file extension without the
// dot, e.g. "wav").
type Registry struct {
	codecs map[string]FileDecoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]FileDecoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d FileDecoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (FileDecoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
