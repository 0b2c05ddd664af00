package parser

import (
	"strconv"
	"strings"

	"git.lost.host/meutraa/drumchart/internal/game"
)

// Note characters
// 0 = Rest
// 1 = Don
// 2 = Kat
// 3 = Big don
// 4 = Big kat
// 5 = Roll head
// 6 = Big roll head
// 7 = Balloon head
// 8 = Roll/balloon tail
// 9 = Special roll head, also ends a previous special roll
// A = Coop don
// B = Coop kat

type DefaultParser struct{}

func (p *DefaultParser) Parse(text string) (*game.Song, error) {
	items, err := parseLines(preprocess(text))
	if nil != err {
		return nil, err
	}

	song := &game.Song{}
	meta := metadata{}
	s := newStream(items)
	for {
		it, ok := s.next()
		if !ok {
			break
		}
		switch it.Kind {
		case itemMetadata:
			meta.set(it)
		case itemStart:
			level, difficulty, err := p.parseCourse(s, it, meta)
			if nil != err {
				return nil, err
			}
			if nil != song.Difficulties[level] {
				e := newError(MultipleTracksSameDifficulty, it.Line, "")
				e.Level = level
				return nil, e
			}
			song.Difficulties[level] = difficulty
		case itemEnd:
			return nil, newError(SyntaxError, it.Line, "#END without #START")
		default:
			return nil, newError(SyntaxError, it.Line, "outside of a course")
		}
	}

	eof := strings.Count(text, "\n") + 1
	if err := p.parseSong(song, meta, eof); nil != err {
		return nil, err
	}
	return song, nil
}

func (p *DefaultParser) parseCourse(s *stream, start *item, meta metadata) (game.Level, *game.Difficulty, error) {
	c, err := compileCourse(s, start, meta)
	if nil != err {
		return 0, nil, err
	}

	level := game.Oni
	if e, ok := meta["COURSE"]; ok && e.Value != "" {
		if level, err = game.ParseLevel(e.Value); nil != err {
			return 0, nil, meta.invalid("COURSE", err.Error())
		}
	}

	// Charts without a LEVEL value are unrated
	var stars uint64
	if e, ok := meta["LEVEL"]; ok && e.Value != "" {
		if stars, err = strconv.ParseUint(e.Value, 10, 8); nil != err {
			return 0, nil, meta.invalid("LEVEL", strconv.Quote(e.Value)+" is not a star rating")
		}
	}

	chart, err := c.chart(meta)
	if nil != err {
		return 0, nil, err
	}
	return level, &game.Difficulty{Stars: uint8(stars), Chart: *chart}, nil
}

func (p *DefaultParser) parseSong(song *game.Song, meta metadata, eof int) error {
	required := func(key string) (string, error) {
		e, ok := meta[key]
		if !ok {
			perr := newError(MissingMetadataForSong, eof, "")
			perr.Key = key
			return "", perr
		}
		return e.Value, nil
	}

	var err error
	if song.Title, err = required("TITLE"); nil != err {
		return err
	}
	if song.Wave, err = required("WAVE"); nil != err {
		return err
	}
	song.Subtitle = meta["SUBTITLE"].Value
	if song.BPM, err = meta.float("BPM", 120); nil != err {
		return err
	}
	if song.BPM <= 0 {
		return meta.invalid("BPM", "must be positive")
	}
	if song.Offset, err = meta.float("OFFSET", 0); nil != err {
		return err
	}
	if song.DemoStart, err = meta.float("DEMOSTART", 0); nil != err {
		return err
	}
	return nil
}
