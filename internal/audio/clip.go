// Package audio loads short sound effects and plays them through PortAudio.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mjibson/go-dsp/wav"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// DefaultSampleRate is used when decoding through ffmpeg.
const DefaultSampleRate = 44100

// Clip is a mono sound in float32 samples in [-1, 1].
type Clip struct {
	Samples    []float32
	SampleRate int
}

// Duration in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Load decodes the file at path. WAV files are read directly; any other
// format goes through ffmpeg.
func Load(path string) (Clip, error) {
	if strings.EqualFold(filepath.Ext(path), ".wav") {
		f, err := os.Open(path)
		if err != nil {
			return Clip{}, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		c, err := DecodeWAV(f)
		if err != nil {
			return Clip{}, fmt.Errorf("decode %s: %w", path, err)
		}
		return c, nil
	}
	return decodeFFmpeg(path, DefaultSampleRate)
}

// DecodeWAV reads a PCM WAV stream and mixes it down to mono.
func DecodeWAV(r io.Reader) (Clip, error) {
	w, err := wav.New(r)
	if err != nil {
		return Clip{}, err
	}
	if w.NumChannels == 0 {
		return Clip{}, errors.New("wav header has no channels")
	}
	samples, err := w.ReadFloats(w.Samples)
	if err != nil && !errors.Is(err, io.EOF) {
		return Clip{}, err
	}
	return Clip{
		Samples:    downmix(samples, int(w.NumChannels)),
		SampleRate: int(w.SampleRate),
	}, nil
}

func decodeFFmpeg(path string, rate int) (Clip, error) {
	if _, err := os.Stat(path); err != nil {
		return Clip{}, err
	}
	var out, stderr bytes.Buffer
	err := ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{"f": "f32le", "ac": 1, "ar": rate}).
		WithOutput(&out).
		WithErrorOutput(&stderr).
		Run()
	if err != nil {
		return Clip{}, fmt.Errorf("ffmpeg decode %s: %w: %s", path, err, lastLine(stderr.String()))
	}
	return Clip{Samples: decodePCM(out.Bytes()), SampleRate: rate}, nil
}

// decodePCM converts little-endian float32 PCM. A trailing partial sample
// is dropped.
func decodePCM(raw []byte) []float32 {
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out
}

func downmix(samples []float32, channels int) []float32 {
	if channels <= 1 {
		return samples
	}
	out := make([]float32, len(samples)/channels)
	for i := range out {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		out[i] = sum / float32(channels)
	}
	return out
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
