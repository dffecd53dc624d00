package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// SampleRate of every synthesized buffer
const SampleRate = 44100

// Engine synthesizes page turn feedback on demand. It is a lazily
// initialized handle meant to be created once and passed explicitly to
// whoever triggers playback: nothing is allocated until the first use, and
// a suspended engine is resumed before each use. Audio is a non-essential
// enhancement, so Trigger swallows every synthesis error.
type Engine struct {
	mu        sync.Mutex
	rng       *rand.Rand
	suspended bool
}

func NewEngine() *Engine {
	return &Engine{}
}

// Suspend pauses the engine until the next use
func (e *Engine) Suspend() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.suspended = true
}

// PageTurn synthesizes the three layered page turn sound and returns the
// mixed mono samples in [-1, 1]
func (e *Engine) PageTurn() ([]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.suspended = false

	return mixdown(SampleRate,
		layer{samples: swoosh(e.rng, SampleRate), start: 0, gain: swooshGain},
		layer{samples: crinkle(e.rng, SampleRate), start: crinkleOffset, gain: crinkleGain},
		layer{samples: snap(e.rng, SampleRate), start: snapOffset, gain: snapGain},
	), nil
}

// PageTurnWAV synthesizes a page turn and encodes it as a 16-bit mono WAV
func (e *Engine) PageTurnWAV() ([]byte, error) {
	samples, err := e.PageTurn()
	if err != nil {
		return nil, err
	}

	data := make([]int, len(samples))
	for i, sample := range samples {
		data[i] = int(sample * 32767)
	}

	out := &seekableBuffer{}
	encoder := wav.NewEncoder(out, SampleRate, 16, 1, 1)
	buffer := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := encoder.Write(buffer); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Trigger synthesizes page turn feedback for a beginning flip, swallowing
// any error: a failed sound must never interrupt the reading flow
func (e *Engine) Trigger() {
	defer func() {
		// Synthesis must not take the caller down under any circumstance
		_ = recover()
	}()
	_, _ = e.PageTurn()
}

// seekableBuffer adapts an in-memory buffer to the io.WriteSeeker the WAV
// encoder needs to backpatch chunk sizes
type seekableBuffer struct {
	data []byte
	pos  int
}

func (b *seekableBuffer) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.data) {
		b.data = append(b.data, make([]byte, need-len(b.data))...)
	}
	copy(b.data[b.pos:], p)
	b.pos += len(p)
	return len(p), nil
}

func (b *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(b.pos) + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("unknown whence %d", whence)
	}
	if pos < 0 {
		return 0, errors.New("negative seek position")
	}
	b.pos = int(pos)
	return pos, nil
}

func (b *seekableBuffer) Bytes() []byte {
	return bytes.Clone(b.data)
}
