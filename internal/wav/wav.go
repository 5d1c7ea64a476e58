// Package wav encodes PCM sample buffers as RIFF/WAVE byte streams.
package wav

import (
	"encoding/binary"
	"math"
)

// WAV format constants.
const (
	// HeaderSize is the size of a canonical PCM WAV header in bytes.
	HeaderSize = 44

	// FormatPCM is the audio format code for uncompressed PCM.
	FormatPCM = 1

	// MimeType is the MIME type of encoded files.
	MimeType = "audio/wav"
)

// Format describes the layout of the PCM data.
type Format struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

// Mono16 returns a mono 16-bit format at the given sample rate.
func Mono16(sampleRate int) Format {
	return Format{SampleRate: sampleRate, Channels: 1, BitsPerSample: 16}
}

// ByteRate returns SampleRate * Channels * BitsPerSample / 8.
func (f Format) ByteRate() int {
	return f.SampleRate * f.Channels * f.BitsPerSample / 8
}

// BlockAlign returns Channels * BitsPerSample / 8.
func (f Format) BlockAlign() int {
	return f.Channels * f.BitsPerSample / 8
}

// Header builds the 44-byte header for dataSize bytes of PCM data.
func Header(f Format, dataSize int) []byte {
	h := make([]byte, HeaderSize)

	// RIFF chunk
	copy(h[0:4], "RIFF")
	binary.LittleEndian.PutUint32(h[4:8], uint32(36+dataSize))
	copy(h[8:12], "WAVE")

	// fmt subchunk
	copy(h[12:16], "fmt ")
	binary.LittleEndian.PutUint32(h[16:20], 16)
	binary.LittleEndian.PutUint16(h[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(h[22:24], uint16(f.Channels))
	binary.LittleEndian.PutUint32(h[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(h[28:32], uint32(f.ByteRate()))
	binary.LittleEndian.PutUint16(h[32:34], uint16(f.BlockAlign()))
	binary.LittleEndian.PutUint16(h[34:36], uint16(f.BitsPerSample))

	// data subchunk
	copy(h[36:40], "data")
	binary.LittleEndian.PutUint32(h[40:44], uint32(dataSize))

	return h
}

// Encode wraps raw PCM data in a WAV header.
func Encode(f Format, pcm []byte) []byte {
	out := make([]byte, 0, HeaderSize+len(pcm))
	out = append(out, Header(f, len(pcm))...)
	return append(out, pcm...)
}

// EncodeInt16 encodes signed 16-bit samples as a WAV file.
func EncodeInt16(sampleRate, channels int, samples []int16) []byte {
	pcm := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}
	return Encode(Format{SampleRate: sampleRate, Channels: channels, BitsPerSample: 16}, pcm)
}

// Sine generates n mono samples of a sine wave at freq Hz.
// amplitude is a fraction of full scale in [0, 1].
func Sine(sampleRate, n int, freq, amplitude float64) []int16 {
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		v := math.Sin(2*math.Pi*freq*t) * amplitude
		samples[i] = int16(v * math.MaxInt16)
	}
	return samples
}
