package parser

import (
	"math"
	"strconv"
	"strings"
)

type entry struct {
	Value string
	Line  int
}

// metadata holds every pair seen so far. Later pairs replace earlier ones.
type metadata map[string]entry

func (m metadata) set(it *item) {
	m[it.Key] = entry{Value: it.Value, Line: it.Line}
}

func (m metadata) invalid(key string, detail string) *Error {
	e := newError(InvalidMetadata, m[key].Line, "%s", detail)
	e.Key = key
	return e
}

// float falls back to def when the key is absent or blank. Only finite
// values are accepted.
func (m metadata) float(key string, def float64) (float64, error) {
	e, ok := m[key]
	if !ok || e.Value == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(e.Value, 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, m.invalid(key, strconv.Quote(e.Value)+" is not a number")
	}
	return f, nil
}

// balloons parses the comma separated BALLOON list. Blank entries are skipped.
func (m metadata) balloons() ([]uint32, bool, error) {
	e, ok := m["BALLOON"]
	if !ok {
		return nil, false, nil
	}
	counts := []uint32{}
	for _, s := range strings.Split(e.Value, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.ParseUint(s, 10, 32)
		if nil != err {
			return nil, true, m.invalid("BALLOON", strconv.Quote(s)+" is not a hit count")
		}
		counts = append(counts, uint32(n))
	}
	return counts, true, nil
}
