package game

import (
	"fmt"
	"strings"
)

// NoteKind is the closed set of playable note types.
type NoteKind uint8

const (
	Don NoteKind = iota
	Kat
	BigDon
	BigKat
	CoopDon
	CoopKat
	Roll
	BigRoll
	BalloonRoll
	SpecialRoll
)

var noteKindNames = [...]string{
	Don:         "don",
	Kat:         "kat",
	BigDon:      "big-don",
	BigKat:      "big-kat",
	CoopDon:     "coop-don",
	CoopKat:     "coop-kat",
	Roll:        "roll",
	BigRoll:     "big-roll",
	BalloonRoll: "balloon",
	SpecialRoll: "special-roll",
}

func (k NoteKind) String() string {
	if int(k) < len(noteKindNames) {
		return noteKindNames[k]
	}
	return fmt.Sprintf("NoteKind(%d)", uint8(k))
}

func (k NoteKind) MarshalText() ([]byte, error) {
	if int(k) >= len(noteKindNames) {
		return nil, fmt.Errorf("unknown note kind %d", uint8(k))
	}
	return []byte(noteKindNames[k]), nil
}

func (k *NoteKind) UnmarshalText(text []byte) error {
	for i, name := range noteKindNames {
		if strings.EqualFold(name, string(text)) {
			*k = NoteKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown note kind %q", text)
}

// IsRoll reports whether the note is held for a duration instead of hit once.
func (k NoteKind) IsRoll() bool {
	return k == Roll || k == BigRoll || k == BalloonRoll || k == SpecialRoll
}

// IsBalloon reports whether the note needs a hit target to clear.
func (k NoteKind) IsBalloon() bool {
	return k == BalloonRoll || k == SpecialRoll
}

func (k NoteKind) IsDon() bool {
	return k == Don || k == BigDon || k == CoopDon
}

func (k NoteKind) IsKat() bool {
	return k == Kat || k == BigKat || k == CoopKat
}

func (k NoteKind) IsBig() bool {
	return k == BigDon || k == BigKat || k == BigRoll
}

type Note struct {
	Kind   NoteKind `json:"kind"`
	Time   float64  `json:"time"`   // Seconds from the start of the audio
	Scroll float64  `json:"scroll"` // 1.0 is one measure per reference duration at 120 BPM
	Gogo   bool     `json:"gogo,omitempty"`

	// Only set for rolls
	Duration  float64 `json:"duration,omitempty"`
	HitTarget uint32  `json:"hit_target,omitempty"` // Balloon and special rolls only
}

// End is the time the note stops being playable.
func (n *Note) End() float64 {
	return n.Time + n.Duration
}
