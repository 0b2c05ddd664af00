package source

import (
	"io/ioutil"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/japanese"
)

// Decode returns chart text as UTF-8. Anything that is not valid UTF-8 is
// taken to be Shift-JIS, which most older charts are saved as.
func Decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	s, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if nil != err {
		return "", errors.Wrap(err, "chart is neither UTF-8 nor Shift-JIS")
	}
	return string(s), nil
}

func Load(file string) (string, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return "", errors.Wrapf(err, "unable to read %v", file)
	}
	text, err := Decode(data)
	if nil != err {
		return "", errors.Wrap(err, file)
	}
	return text, nil
}
