package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var silence = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{}
	}
	return len(samples), true
})

func TestProbeWav(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.wav")
	f, err := os.Create(file)
	require.NoError(t, err)

	format := beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(44100*3/2, silence), format))
	require.NoError(t, f.Close())

	length, err := Probe(file)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, length)
}

func TestProbeErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Probe(filepath.Join(dir, "missing.ogg"))
	assert.Error(t, err)

	file := filepath.Join(dir, "song.flac")
	require.NoError(t, os.WriteFile(file, []byte("fLaC"), 0o644))
	_, err = Probe(file)
	assert.Error(t, err)
}
