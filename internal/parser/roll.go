package parser

import "git.lost.host/meutraa/drumchart/internal/game"

const (
	// Every balloon gets this when BALLOON is present but empty
	defaultBalloonHits = 5
	// Balloons past the end of a non-empty BALLOON list get this
	paddingBalloonHits = 10
)

func kindOf(c code) (game.NoteKind, bool) {
	switch c {
	case codeDon:
		return game.Don, true
	case codeKat:
		return game.Kat, true
	case codeBigDon:
		return game.BigDon, true
	case codeBigKat:
		return game.BigKat, true
	case codeCoopDon:
		return game.CoopDon, true
	case codeCoopKat:
		return game.CoopKat, true
	case codeRoll:
		return game.Roll, true
	case codeBigRoll:
		return game.BigRoll, true
	case codeBalloon:
		return game.BalloonRoll, true
	case codeSpecial:
		return game.SpecialRoll, true
	case codeRest, codeRollEnd:
	}
	return 0, false
}

// rollEnd finds the terminator of the roll at i. A roll end is consumed, a
// following special roll ends a special roll without being consumed.
func rollEnd(raw []rawNote, consumed []bool, i int) (int, bool) {
	for j := i + 1; j < len(raw); j++ {
		if consumed[j] {
			continue
		}
		switch raw[j].Code {
		case codeRollEnd:
			consumed[j] = true
			return j, true
		case codeSpecial:
			if raw[i].Code == codeSpecial {
				return j, true
			}
		}
	}
	return 0, false
}

// pairRolls converts raw notes to notes, in the same order, giving every roll
// its duration. Roll ends do not survive.
func pairRolls(raw []rawNote) ([]game.Note, error) {
	consumed := make([]bool, len(raw))
	notes := make([]game.Note, 0, len(raw))
	for i, r := range raw {
		if r.Code == codeRollEnd {
			if consumed[i] {
				continue
			}
			return nil, newError(RollEndWithoutRoll, r.Line, "")
		}
		kind, ok := kindOf(r.Code)
		if !ok {
			continue
		}
		n := game.Note{Kind: kind, Time: r.Time, Scroll: r.Scroll, Gogo: r.Gogo}
		if kind.IsRoll() {
			end, ok := rollEnd(raw, consumed, i)
			if !ok {
				return nil, newError(RollNotEnded, r.Line, "%v", kind)
			}
			n.Duration = raw[end].Time - r.Time
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// balloonTargets sizes the declared hit counts to the number of balloons.
func balloonTargets(declared []uint32, count int) []uint32 {
	targets := make([]uint32, count)
	for i := range targets {
		switch {
		case len(declared) == 0:
			targets[i] = defaultBalloonHits
		case i < len(declared):
			targets[i] = declared[i]
		default:
			targets[i] = paddingBalloonHits
		}
	}
	return targets
}

// assignBalloons sets the hit target of every balloon and special roll in
// chart order and returns the targets used.
func assignBalloons(notes []game.Note, raw []rawNote, meta metadata) ([]uint32, error) {
	count, line := 0, 0
	for _, r := range raw {
		if r.Code == codeBalloon || r.Code == codeSpecial {
			if count == 0 {
				line = r.Line
			}
			count++
		}
	}

	declared, present, err := meta.balloons()
	if nil != err {
		return nil, err
	}
	if !present && count > 0 {
		e := newError(MissingMetadataForCourse, line, "chart has balloons")
		e.Key = "BALLOON"
		return nil, e
	}

	targets := balloonTargets(declared, count)
	b := 0
	for i := range notes {
		if notes[i].Kind.IsBalloon() {
			notes[i].HitTarget = targets[b]
			b++
		}
	}
	return targets, nil
}
