package audio

import (
	"math"
	"math/rand"
)

// The page turn sound is built out of three layers of filtered noise mixed
// additively: a swoosh of air, a paper crinkle and a final snap when the
// page settles. No audio asset files are involved.
const (
	swooshDuration  = 0.350
	crinkleDuration = 0.250
	snapDuration    = 0.080

	crinkleOffset = 0.020
	snapOffset    = 0.220

	swooshGain  = 0.6
	crinkleGain = 0.35
	snapGain    = 0.8
)

// biquad is a two-pole two-zero IIR filter section
type biquad struct {
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func (f *biquad) lowPass(sampleRate, freq, q float64) {
	omega := 2 * math.Pi * freq / sampleRate
	alpha := math.Sin(omega) / (2 * q)
	cos := math.Cos(omega)
	a0 := 1 + alpha

	f.b0 = (1 - cos) / 2 / a0
	f.b1 = (1 - cos) / a0
	f.b2 = (1 - cos) / 2 / a0
	f.a1 = -2 * cos / a0
	f.a2 = (1 - alpha) / a0
}

func (f *biquad) highPass(sampleRate, freq, q float64) {
	omega := 2 * math.Pi * freq / sampleRate
	alpha := math.Sin(omega) / (2 * q)
	cos := math.Cos(omega)
	a0 := 1 + alpha

	f.b0 = (1 + cos) / 2 / a0
	f.b1 = -(1 + cos) / a0
	f.b2 = (1 + cos) / 2 / a0
	f.a1 = -2 * cos / a0
	f.a2 = (1 - alpha) / a0
}

func (f *biquad) bandPass(sampleRate, freq, q float64) {
	omega := 2 * math.Pi * freq / sampleRate
	alpha := math.Sin(omega) / (2 * q)
	cos := math.Cos(omega)
	a0 := 1 + alpha

	f.b0 = alpha / a0
	f.b1 = 0
	f.b2 = -alpha / a0
	f.a1 = -2 * cos / a0
	f.a2 = (1 - alpha) / a0
}

func (f *biquad) process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}

// swoosh is band-passed noise whose center frequency sweeps up and back
// down across the duration, with a fast attack and a slow decay
func swoosh(rng *rand.Rand, sampleRate int) []float64 {
	samples := int(swooshDuration * float64(sampleRate))
	out := make([]float64, samples)

	var filter biquad
	attack := int(0.010 * float64(sampleRate))
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		center := 400 + 800*math.Sin(math.Pi*t)
		filter.bandPass(float64(sampleRate), center, 1.2)

		envelope := math.Exp(-3 * t)
		if i < attack {
			envelope *= float64(i) / float64(attack)
		}
		out[i] = filter.process(noise(rng)) * envelope
	}
	return out
}

// crinkle is high-passed noise with randomly gated bursts layered over a
// decaying envelope, the paper texture of the turn
func crinkle(rng *rand.Rand, sampleRate int) []float64 {
	samples := int(crinkleDuration * float64(sampleRate))
	out := make([]float64, samples)

	var filter biquad
	filter.highPass(float64(sampleRate), 1800, 0.9)

	burst := int(0.004 * float64(sampleRate))
	gate := 1.0
	for i := 0; i < samples; i++ {
		if i%burst == 0 {
			gate = 0.2
			if rng.Float64() < 0.4 {
				gate = 1.0
			}
		}
		t := float64(i) / float64(samples)
		envelope := math.Exp(-4 * t)
		out[i] = filter.process(noise(rng)) * envelope * gate
	}
	return out
}

// snap is low-passed noise with a very fast exponential decay, the page
// settling against the stack
func snap(rng *rand.Rand, sampleRate int) []float64 {
	samples := int(snapDuration * float64(sampleRate))
	out := make([]float64, samples)

	var filter biquad
	filter.lowPass(float64(sampleRate), 900, 0.8)

	decay := 0.010 * float64(sampleRate)
	for i := 0; i < samples; i++ {
		envelope := math.Exp(-float64(i) / decay)
		out[i] = filter.process(noise(rng)) * envelope
	}
	return out
}

func noise(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

// mixdown layers the three sounds into a single buffer at their respective
// start offsets, clamping the sum into [-1, 1]
func mixdown(sampleRate int, layers ...layer) []float64 {
	length := 0
	for _, l := range layers {
		if end := l.offset(sampleRate) + len(l.samples); end > length {
			length = end
		}
	}

	out := make([]float64, length)
	for _, l := range layers {
		start := l.offset(sampleRate)
		for i, sample := range l.samples {
			out[start+i] += sample * l.gain
		}
	}
	for i, sample := range out {
		out[i] = math.Max(-1, math.Min(1, sample))
	}
	return out
}

type layer struct {
	samples []float64
	start   float64
	gain    float64
}

func (l layer) offset(sampleRate int) int {
	return int(l.start * float64(sampleRate))
}
