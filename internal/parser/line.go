package parser

import (
	"math"
	"strconv"
	"strings"
)

type itemKind uint8

const (
	itemMetadata itemKind = iota
	itemStart
	itemEnd
	itemCommand
	itemRow
)

// code is a raw note token. Rests and roll ends never leave the parser.
type code uint8

const (
	codeRest code = iota
	codeDon
	codeKat
	codeBigDon
	codeBigKat
	codeRoll
	codeBigRoll
	codeBalloon
	codeRollEnd
	codeSpecial
	codeCoopDon
	codeCoopKat
)

var noteCodes = map[byte]code{
	'0': codeRest,
	'1': codeDon,
	'2': codeKat,
	'3': codeBigDon,
	'4': codeBigKat,
	'5': codeRoll,
	'6': codeBigRoll,
	'7': codeBalloon,
	'8': codeRollEnd,
	'9': codeSpecial,
	'A': codeCoopDon,
	'B': codeCoopKat,
}

type command uint8

const (
	cmdLyric command = iota
	cmdBPMChange
	cmdMeasure
	cmdDelay
	cmdScroll
	cmdGogoStart
	cmdGogoEnd
	cmdBarlineOff
	cmdBarlineOn
)

var commands = map[string]command{
	"LYRIC":      cmdLyric,
	"BPMCHANGE":  cmdBPMChange,
	"MEASURE":    cmdMeasure,
	"DELAY":      cmdDelay,
	"SCROLL":     cmdScroll,
	"GOGOSTART":  cmdGogoStart,
	"GOGOEND":    cmdGogoEnd,
	"BARLINEOFF": cmdBarlineOff,
	"BARLINEON":  cmdBarlineOn,
}

type item struct {
	Kind itemKind
	Line int

	// itemMetadata
	Key, Value string

	// itemStart, empty for single player
	Player string

	// itemCommand
	Command    command
	Number     float64 // BPMCHANGE, DELAY and SCROLL
	Num, Denom uint8   // MEASURE
	Text       string  // LYRIC

	// itemRow
	Codes      []code
	MeasureEnd bool
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// name returns the length of the UPPER (UPPER|DIGIT)* prefix of s.
func name(s string) int {
	if s == "" || !isUpper(s[0]) {
		return 0
	}
	i := 1
	for i < len(s) && (isUpper(s[i]) || isDigit(s[i])) {
		i++
	}
	return i
}

func parseLine(l line) (item, error) {
	t := l.Text
	if t[0] == '#' {
		return parseHashLine(l)
	}
	if n := name(t); n > 0 && n < len(t) && t[n] == ':' {
		return item{
			Kind:  itemMetadata,
			Line:  l.Number,
			Key:   t[:n],
			Value: strings.TrimSpace(t[n+1:]),
		}, nil
	}
	return parseRow(l)
}

func parseHashLine(l line) (item, error) {
	t := l.Text[1:]
	n := name(t)
	if n == 0 {
		return item{}, newError(SyntaxError, l.Number, "%q", l.Text)
	}
	cmd, arg := t[:n], ""
	if n < len(t) {
		if t[n] != ' ' && t[n] != '\t' {
			return item{}, newError(SyntaxError, l.Number, "%q", l.Text)
		}
		arg = strings.TrimSpace(t[n:])
	}

	switch cmd {
	case "START":
		if arg != "" && arg != "P1" && arg != "P2" {
			return item{}, newError(SyntaxError, l.Number, "unknown player %q", arg)
		}
		return item{Kind: itemStart, Line: l.Number, Player: arg}, nil
	case "END":
		if arg != "" {
			return item{}, newError(SyntaxError, l.Number, "#END takes no argument")
		}
		return item{Kind: itemEnd, Line: l.Number}, nil
	}

	c, ok := commands[cmd]
	if !ok {
		return item{}, newError(CourseCommandError, l.Number, "unknown command #%s", cmd)
	}
	it := item{Kind: itemCommand, Line: l.Number, Command: c}
	switch c {
	case cmdGogoStart, cmdGogoEnd, cmdBarlineOff, cmdBarlineOn:
		if arg != "" {
			return item{}, newError(CourseCommandError, l.Number, "#%s takes no argument", cmd)
		}
	case cmdLyric:
		it.Text = arg
	case cmdMeasure:
		num, denom, err := parseSignature(arg)
		if nil != err {
			return item{}, newError(CourseCommandError, l.Number, "#MEASURE %q: %v", arg, err)
		}
		it.Num, it.Denom = num, denom
	case cmdBPMChange, cmdDelay, cmdScroll:
		f, err := strconv.ParseFloat(arg, 64)
		if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
			return item{}, newError(CourseCommandError, l.Number, "#%s %q is not a finite number", cmd, arg)
		}
		if c == cmdBPMChange && f <= 0 {
			return item{}, newError(CourseCommandError, l.Number, "#BPMCHANGE must be positive")
		}
		it.Number = f
	}
	return it, nil
}

func parseSignature(s string) (uint8, uint8, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, strconv.ErrSyntax
	}
	num, err := strconv.ParseUint(parts[0], 10, 8)
	if nil != err {
		return 0, 0, err
	}
	denom, err := strconv.ParseUint(parts[1], 10, 8)
	if nil != err {
		return 0, 0, err
	}
	if denom == 0 {
		return 0, 0, strconv.ErrRange
	}
	return uint8(num), uint8(denom), nil
}

func parseRow(l line) (item, error) {
	t := l.Text
	it := item{Kind: itemRow, Line: l.Number}
	if strings.HasSuffix(t, ",") {
		it.MeasureEnd = true
		t = t[:len(t)-1]
	}
	it.Codes = make([]code, len(t))
	for i := 0; i < len(t); i++ {
		c, ok := noteCodes[t[i]]
		if !ok {
			return item{}, newError(SyntaxError, l.Number, "%q", l.Text)
		}
		it.Codes[i] = c
	}
	return it, nil
}

// parseLines classifies every preprocessed line, stopping at the first error.
func parseLines(lines []line) ([]item, error) {
	items := make([]item, 0, len(lines))
	for _, l := range lines {
		it, err := parseLine(l)
		if nil != err {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
