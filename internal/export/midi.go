package export

import (
	"io"
	"math"
	"sort"

	"git.lost.host/meutraa/drumchart/internal/game"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 960
	Tempo           = 120.0
	ticksPerSecond  = TicksPerQuarter * Tempo / 60

	drumChannel = 9

	// General MIDI percussion
	DonKey  = 38 // Acoustic snare
	KatKey  = 37 // Side stick
	RollKey = 42 // Closed hi-hat

	hitLength = 0.05 // Seconds a single hit sounds
)

type event struct {
	tick uint32
	on   bool
	key  uint8
	vel  uint8
}

func key(k game.NoteKind) uint8 {
	switch {
	case k.IsRoll():
		return RollKey
	case k.IsKat():
		return KatKey
	}
	return DonKey
}

func velocity(k game.NoteKind) uint8 {
	if k.IsBig() || k == game.CoopDon || k == game.CoopKat {
		return 127
	}
	return 96
}

func events(chart *game.NoteChart) []event {
	start := 0.0
	if len(chart.Notes) > 0 && chart.Notes[0].Time < 0 {
		start = chart.Notes[0].Time
	}
	tick := func(t float64) uint32 {
		return uint32(math.Round((t - start) * ticksPerSecond))
	}

	evs := make([]event, 0, 2*len(chart.Notes))
	for _, n := range chart.Notes {
		length := n.Duration
		if length <= 0 {
			length = hitLength
		}
		k := key(n.Kind)
		evs = append(evs,
			event{tick: tick(n.Time), on: true, key: k, vel: velocity(n.Kind)},
			event{tick: tick(n.Time + length), key: k},
		)
	}
	// Note offs go first so a repeated key is released before it is struck
	sort.SliceStable(evs, func(i, j int) bool {
		if evs[i].tick != evs[j].tick {
			return evs[i].tick < evs[j].tick
		}
		return !evs[i].on && evs[j].on
	})
	return evs
}

// WriteMIDI writes one course as a single track drum part at a fixed tempo,
// shifted so nothing starts before tick 0.
func WriteMIDI(w io.Writer, name string, chart *game.NoteChart) error {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(name))
	tr.Add(0, smf.MetaTempo(Tempo))

	last := uint32(0)
	for _, ev := range events(chart) {
		delta := ev.tick - last
		last = ev.tick
		if ev.on {
			tr.Add(delta, midi.NoteOn(drumChannel, ev.key, ev.vel))
		} else {
			tr.Add(delta, midi.NoteOff(drumChannel, ev.key))
		}
	}
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := s.Add(tr); nil != err {
		return errors.Wrap(err, "unable to add track")
	}
	if _, err := s.WriteTo(w); nil != err {
		return errors.Wrap(err, "unable to write midi")
	}
	return nil
}
