package audio

// Resample converts mono samples from one rate to another with linear
// interpolation. Equal rates return the input unchanged.
func Resample(samples []float32, fromRate, toRate int) []float32 {
	if fromRate == toRate || fromRate <= 0 || toRate <= 0 || len(samples) == 0 {
		return samples
	}

	outLen := int(int64(len(samples)) * int64(toRate) / int64(fromRate))
	out := make([]float32, outLen)
	ratio := float64(fromRate) / float64(toRate)
	last := len(samples) - 1

	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		if idx >= last {
			out[i] = samples[last]
			continue
		}
		frac := float32(pos - float64(idx))
		out[i] = samples[idx] + (samples[idx+1]-samples[idx])*frac
	}
	return out
}

// Framer slices a continuous sample stream into frames of a fixed size.
type Framer struct {
	size    int
	pending []float32
}

func NewFramer(size int) *Framer {
	if size <= 0 {
		size = FrameSize
	}
	return &Framer{size: size, pending: make([]float32, 0, size)}
}

// Push appends samples and returns every frame completed by them. The
// remainder is kept for the next call.
func (f *Framer) Push(samples []float32) [][]float32 {
	f.pending = append(f.pending, samples...)

	var frames [][]float32
	for len(f.pending) >= f.size {
		frame := make([]float32, f.size)
		copy(frame, f.pending[:f.size])
		frames = append(frames, frame)
		f.pending = f.pending[f.size:]
	}
	// Compact so the backing array does not grow without bound.
	f.pending = append(make([]float32, 0, f.size), f.pending...)
	return frames
}

func (f *Framer) Pending() int {
	return len(f.pending)
}

func (f *Framer) Reset() {
	f.pending = f.pending[:0]
}
