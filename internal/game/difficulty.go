package game

import (
	"fmt"
	"strconv"
	"strings"
)

type Level uint8

const (
	Easy Level = iota
	Normal
	Hard
	Oni
	Edit

	LevelCount = 5
)

var levelNames = [LevelCount]string{"Easy", "Normal", "Hard", "Oni", "Edit"}

// LevelMap also holds the aliases a COURSE value may use.
var LevelMap = map[string]Level{
	"easy":   Easy,
	"normal": Normal,
	"hard":   Hard,
	"oni":    Oni,
	"edit":   Edit,
	"ura":    Edit,
}

func (l Level) String() string {
	if l < LevelCount {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// ParseLevel accepts a level name (any case) or its index.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if l, ok := LevelMap[strings.ToLower(s)]; ok {
		return l, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if nil != err || n >= LevelCount {
		return 0, fmt.Errorf("unknown course %q", s)
	}
	return Level(n), nil
}

func (l Level) MarshalText() ([]byte, error) {
	if l >= LevelCount {
		return nil, fmt.Errorf("unknown level %d", uint8(l))
	}
	return []byte(levelNames[l]), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if nil != err {
		return err
	}
	*l = parsed
	return nil
}

type Difficulty struct {
	Stars uint8     `json:"stars"`
	Chart NoteChart `json:"chart"`
}
