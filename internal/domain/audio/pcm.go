// Package audio holds the framing and timing rules of the live voice relay:
// sample-format conversion, resampling, fixed-size framing and gapless
// playback scheduling. It does no I/O.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// InputSampleRate is the rate the live model expects microphone audio at.
	InputSampleRate = 16000
	// OutputSampleRate is the rate of audio produced by the live model.
	OutputSampleRate = 24000
	// FrameSize is the number of samples per uplink frame.
	FrameSize = 4096
)

var ErrOddPCMLength = errors.New("pcm16 payload has odd length")

// Blob is a base64 wrapped chunk of audio ready for the wire.
type Blob struct {
	Data     string `json:"data"`
	MIMEType string `json:"mimeType"`
}

func PCMMIMEType(sampleRate int) string {
	return fmt.Sprintf("audio/pcm;rate=%d", sampleRate)
}

// EncodePCM16 converts [-1, 1] float samples to little-endian signed 16-bit
// PCM. Out-of-range samples are clamped.
func EncodePCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := float64(s) * 32768
		v = math.Max(math.MinInt16, math.Min(math.MaxInt16, v))
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}

func DecodePCM16(data []byte) ([]float32, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddPCMLength
	}
	out := make([]float32, len(data)/2)
	for i := range out {
		out[i] = float32(int16(binary.LittleEndian.Uint16(data[i*2:]))) / 32768
	}
	return out, nil
}

// DecodeFloat32LE reads little-endian IEEE-754 float samples, the format
// browsers capture microphone audio in. Trailing partial samples are dropped.
func DecodeFloat32LE(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}

func EncodeFloat32LE(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(s))
	}
	return out
}

// NewPCMBlob encodes samples as PCM16 and wraps them in base64.
func NewPCMBlob(samples []float32, sampleRate int) Blob {
	return Blob{
		Data:     base64.StdEncoding.EncodeToString(EncodePCM16(samples)),
		MIMEType: PCMMIMEType(sampleRate),
	}
}

// PCM16Duration is the playback length of a mono PCM16 payload.
func PCM16Duration(byteLen, sampleRate int) time.Duration {
	if sampleRate <= 0 {
		return 0
	}
	samples := byteLen / 2
	return time.Duration(samples) * time.Second / time.Duration(sampleRate)
}
