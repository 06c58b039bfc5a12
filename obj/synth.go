package obj

import (
	"math"
)

// SampleRate is the PCM rate every cue is rendered at and the rate the
// audio context must be opened with.
const SampleRate = 48000

// sweepTone renders a sine sweep from fromHz to toHz over dur seconds
// as 16-bit little-endian stereo PCM. A short linear fade at both ends
// keeps the cue click-free.
func sweepTone(fromHz, toHz, dur float64) []byte {
	n := int(dur * SampleRate)
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)

	fade := int(0.005 * SampleRate)
	if fade*2 > n {
		fade = n / 2
	}

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		if n == 1 {
			t = 0
		}
		freq := fromHz + (toHz-fromHz)*t
		phase += 2 * math.Pi * freq / SampleRate

		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if i >= n-fade {
			env = float64(n-1-i) / float64(fade)
		}

		v := int16(math.Sin(phase) * env * 0.6 * math.MaxInt16)
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}
	return out
}
