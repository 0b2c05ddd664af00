package export

import (
	"bytes"
	"testing"

	"git.lost.host/meutraa/drumchart/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var chart = &game.NoteChart{Notes: []game.Note{
	{Kind: game.Don, Time: -0.5},
	{Kind: game.BigKat, Time: 0},
	{Kind: game.Roll, Time: 0.5, Duration: 1},
	{Kind: game.Don, Time: 0.5},
}}

func TestEvents(t *testing.T) {
	evs := events(chart)
	require.Len(t, evs, 8)
	assert.Equal(t, event{tick: 0, on: true, key: DonKey, vel: 96}, evs[0])
	assert.Equal(t, event{tick: 96, key: DonKey}, evs[1])
	assert.Equal(t, event{tick: 960, on: true, key: KatKey, vel: 127}, evs[2])
	assert.Equal(t, event{tick: 1056, key: KatKey}, evs[3])
	assert.Equal(t, uint32(1920), evs[4].tick)
	assert.Equal(t, uint8(RollKey), evs[4].key)
	assert.Equal(t, event{tick: 1920, on: true, key: DonKey, vel: 96}, evs[5])
	assert.Equal(t, event{tick: 2016, key: DonKey}, evs[6])
	assert.Equal(t, event{tick: 3840, key: RollKey}, evs[7])
}

func TestWriteMIDI(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMIDI(&buf, "Oni", chart))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)
	assert.Equal(t, smf.MetricTicks(TicksPerQuarter), s.TimeFormat)

	var tick uint32
	starts := []uint32{}
	for _, ev := range s.Tracks[0] {
		tick += ev.Delta
		var ch, key, vel uint8
		if midi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
			assert.Equal(t, uint8(drumChannel), ch)
			starts = append(starts, tick)
		}
	}
	assert.Equal(t, []uint32{0, 960, 1920, 1920}, starts)
}
