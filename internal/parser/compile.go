package parser

import (
	"sort"

	"git.lost.host/meutraa/drumchart/internal/game"
)

// Scroll speed 1.0 at this tempo crosses the field in one measure
const referenceBPM = 120.0

type rawNote struct {
	Code   code
	Time   float64
	Scroll float64
	Gogo   bool
	Line   int
}

// course is the timing state of one #START/#END block.
type course struct {
	startLine int
	player    string

	bpm       float64
	signature float64 // 1.0 is 4/4
	scroll    float64 // As written, before tempo scaling
	speed     float64

	time              float64
	measureStart      float64
	secondsPerMeasure float64
	secondsPerNote    float64
	notesInMeasure    int

	barline bool
	gogo    bool

	raw      []rawNote
	barlines []float64
	lyrics   []game.Lyric
}

func newCourse(start *item, meta metadata) (*course, error) {
	c := &course{
		startLine: start.Line,
		player:    start.Player,
		signature: 1,
		barline:   true,
	}
	var err error
	if c.bpm, err = meta.float("BPM", 120); nil != err {
		return nil, err
	}
	if c.bpm <= 0 {
		return nil, meta.invalid("BPM", "must be positive")
	}
	offset, err := meta.float("OFFSET", 0)
	if nil != err {
		return nil, err
	}
	if c.scroll, err = meta.float("HEADSCROLL", 1); nil != err {
		return nil, err
	}
	c.time = 0 - offset // Not -offset, which gives -0
	c.measureStart = c.time
	return c, nil
}

func (c *course) retime() {
	c.secondsPerMeasure = 60 * c.signature * 4 / c.bpm
	c.secondsPerNote = 0
	if c.notesInMeasure > 0 {
		c.secondsPerNote = c.secondsPerMeasure / float64(c.notesInMeasure)
	}
	c.speed = c.scroll * c.bpm / referenceBPM
}

// compileCourse consumes items up to and including #END. The #START item has
// already been taken from s.
func compileCourse(s *stream, start *item, meta metadata) (*course, error) {
	c, err := newCourse(start, meta)
	if nil != err {
		return nil, err
	}
	c.barlines = append(c.barlines, c.time)
	c.notesInMeasure = s.measureLength()
	c.retime()

	for {
		it, ok := s.next()
		if !ok {
			line := s.lastLine()
			if line < start.Line {
				line = start.Line
			}
			return nil, newError(ExpectedEndCommand, line+1, "")
		}
		switch it.Kind {
		case itemEnd:
			c.finish()
			return c, nil
		case itemStart:
			return nil, newError(ExpectedEndCommand, it.Line, "#START before the previous #END")
		case itemMetadata:
			meta.set(it)
		case itemCommand:
			c.apply(it)
		case itemRow:
			c.row(it)
			if it.MeasureEnd {
				c.endMeasure(s)
			}
		}
	}
}

func (c *course) apply(it *item) {
	switch it.Command {
	case cmdBPMChange:
		c.bpm = it.Number
		c.retime()
	case cmdMeasure:
		c.signature = float64(it.Num) / float64(it.Denom)
		c.retime()
	case cmdDelay:
		c.time += it.Number
	case cmdScroll:
		c.scroll = it.Number
		c.retime()
	case cmdGogoStart:
		c.gogo = true
	case cmdGogoEnd:
		c.gogo = false
	case cmdBarlineOff:
		c.barline = false
	case cmdBarlineOn:
		c.barline = true
	case cmdLyric:
		c.lyrics = append(c.lyrics, game.Lyric{Time: c.time, Text: it.Text})
	}
}

func (c *course) row(it *item) {
	for i, cd := range it.Codes {
		if cd == codeRest {
			continue
		}
		c.raw = append(c.raw, rawNote{
			Code:   cd,
			Time:   c.time + c.secondsPerNote*float64(i),
			Scroll: c.speed,
			Gogo:   c.gogo,
			Line:   it.Line,
		})
	}
	c.time += c.secondsPerNote * float64(len(it.Codes))
}

func (c *course) endMeasure(s *stream) {
	if c.notesInMeasure == 0 {
		c.time = c.measureStart + c.secondsPerMeasure
	}
	c.measureStart = c.time
	if c.barline {
		c.barlines = append(c.barlines, c.time)
	}
	c.notesInMeasure = s.measureLength()
	c.retime()
}

// finish keeps barlines ascending when a negative #DELAY moved time back.
func (c *course) finish() {
	sort.Float64s(c.barlines)
}

// chart resolves rolls and balloons into the final note chart.
func (c *course) chart(meta metadata) (*game.NoteChart, error) {
	notes, err := pairRolls(c.raw)
	if nil != err {
		return nil, err
	}
	balloons, err := assignBalloons(notes, c.raw, meta)
	if nil != err {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Time < notes[j].Time
	})
	return &game.NoteChart{
		Notes:    notes,
		Barlines: c.barlines,
		Balloons: balloons,
		Lyrics:   c.lyrics,
	}, nil
}
