package parser

import (
	"errors"
	"fmt"

	"git.lost.host/meutraa/drumchart/internal/game"
)

type ErrorKind uint8

const (
	SyntaxError ErrorKind = iota
	CourseCommandError
	InvalidMetadata
	MultipleTracksSameDifficulty
	ExpectedEndCommand
	MissingMetadataForCourse
	MissingMetadataForSong
	RollNotEnded
	RollEndWithoutRoll
)

var errorKindNames = [...]string{
	SyntaxError:                  "SyntaxError",
	CourseCommandError:           "CourseCommandError",
	InvalidMetadata:              "InvalidMetadata",
	MultipleTracksSameDifficulty: "MultipleTracksSameDifficulty",
	ExpectedEndCommand:           "ExpectedEndCommand",
	MissingMetadataForCourse:     "MissingMetadataForCourse",
	MissingMetadataForSong:       "MissingMetadataForSong",
	RollNotEnded:                 "RollNotEnded",
	RollEndWithoutRoll:           "RollEndWithoutRoll",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is the only error the parser returns. Line is 1-based.
type Error struct {
	Kind   ErrorKind
	Line   int
	Key    string     // Metadata key for the metadata kinds
	Level  game.Level // For MultipleTracksSameDifficulty
	Detail string
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case SyntaxError:
		msg = "syntax error"
	case CourseCommandError:
		msg = "invalid course command"
	case InvalidMetadata:
		msg = fmt.Sprintf("invalid value for %s", e.Key)
	case MultipleTracksSameDifficulty:
		msg = fmt.Sprintf("more than one chart for difficulty %v", e.Level)
	case ExpectedEndCommand:
		msg = "expected #END"
	case MissingMetadataForCourse:
		msg = fmt.Sprintf("course is missing %s", e.Key)
	case MissingMetadataForSong:
		msg = fmt.Sprintf("song is missing %s", e.Key)
	case RollNotEnded:
		msg = "roll is never ended"
	case RollEndWithoutRoll:
		msg = "roll end without a roll"
	default:
		msg = e.Kind.String()
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return fmt.Sprintf("line %d: %s", e.Line, msg)
}

// IsKind reports whether err is a parser error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Kind == kind
}

func newError(kind ErrorKind, line int, detail string, args ...interface{}) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Kind: kind, Line: line, Detail: detail}
}
