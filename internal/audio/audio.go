package audio

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

func decode(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(path.Ext(f.Name())) {
	case ".ogg":
		return vorbis.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}
	return nil, beep.Format{}, errors.Errorf("unsupported audio file %v", f.Name())
}

// Probe returns the playing time of an audio file.
func Probe(file string) (time.Duration, error) {
	f, err := os.Open(file)
	if nil != err {
		return 0, errors.Wrap(err, "unable to open audio")
	}
	streamer, format, err := decode(f)
	if nil != err {
		f.Close()
		return 0, errors.Wrapf(err, "unable to decode %v", file)
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}
