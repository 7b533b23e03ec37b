package assets

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/automoto/actionrpg/config"
)

const (
	wavChannels      = 1
	wavBitsPerSample = 16
	wavHeaderSize    = 44
)

// SynthesizeWAV renders tone as a mono 16-bit PCM WAV file. The pitch
// slides from StartHz to EndHz and the volume falls linearly to silence.
// Noise comes from a fixed seed so every render of a tone is identical.
func SynthesizeWAV(tone config.Tone, sampleRate int) []byte {
	samples := int(tone.Seconds * float64(sampleRate))
	if samples < 0 {
		samples = 0
	}
	dataSize := samples * wavChannels * wavBitsPerSample / 8

	var buf bytes.Buffer
	buf.Grow(wavHeaderSize + dataSize)
	writeWAVHeader(&buf, sampleRate, dataSize)

	noise := rand.New(rand.NewPCG(uint64(tone.StartHz), uint64(tone.EndHz)))
	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(samples)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		square := 1.0
		if phase >= 0.5 {
			square = -1
		}
		v := square*(1-tone.Noise) + (noise.Float64()*2-1)*tone.Noise
		v *= tone.Volume * (1 - t)

		sample := int16(max(-1, min(1, v)) * math.MaxInt16)
		_ = binary.Write(&buf, binary.LittleEndian, sample)
	}
	return buf.Bytes()
}

func writeWAVHeader(buf *bytes.Buffer, sampleRate, dataSize int) {
	blockAlign := wavChannels * wavBitsPerSample / 8
	le := binary.LittleEndian

	buf.WriteString("RIFF")
	_ = binary.Write(buf, le, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, le, uint32(16))
	_ = binary.Write(buf, le, uint16(1)) // PCM
	_ = binary.Write(buf, le, uint16(wavChannels))
	_ = binary.Write(buf, le, uint32(sampleRate))
	_ = binary.Write(buf, le, uint32(sampleRate*blockAlign))
	_ = binary.Write(buf, le, uint16(blockAlign))
	_ = binary.Write(buf, le, uint16(wavBitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, le, uint32(dataSize))
}
