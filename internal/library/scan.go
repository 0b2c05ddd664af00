package library

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/drumchart/internal/parser"
	"git.lost.host/meutraa/drumchart/internal/source"
	"github.com/pkg/errors"
	"github.com/remeh/sizedwaitgroup"
)

const ChartExtension = ".tja"

type Failure struct {
	Path string
	Err  error
}

// Compile loads and compiles one chart file.
func Compile(file string, psr parser.Parser) (*Entry, error) {
	text, err := source.Load(file)
	if nil != err {
		return nil, err
	}
	song, err := psr.Parse(text)
	if nil != err {
		return nil, err
	}
	return &Entry{Sum: Hash(text), Path: file, Title: song.Title, Song: song}, nil
}

// Scan compiles every chart under dir, at most jobs at a time. Charts that
// fail are logged and returned as failures, in walk order.
func Scan(dir string, jobs int, psr parser.Parser) ([]*Entry, []Failure, error) {
	files := []string{}
	if err := filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if !info.IsDir() && strings.EqualFold(path.Ext(info.Name()), ChartExtension) {
			files = append(files, p)
		}
		return nil
	}); nil != err {
		return nil, nil, errors.Wrap(err, "unable to walk song directory")
	}

	if jobs < 1 {
		jobs = 1
	}
	entries := make([]*Entry, len(files))
	errs := make([]error, len(files))

	wg := sizedwaitgroup.New(jobs)
	for i, file := range files {
		wg.Add()
		go func(i int, file string) {
			defer wg.Done()
			// Each job owns index i, Wait publishes the results
			entries[i], errs[i] = Compile(file, psr)
		}(i, file)
	}
	wg.Wait()

	compiled := make([]*Entry, 0, len(files))
	failures := []Failure{}
	for i, file := range files {
		if nil != errs[i] {
			log.Printf("skipping %v: %v\n", file, errs[i])
			failures = append(failures, Failure{Path: file, Err: errs[i]})
			continue
		}
		compiled = append(compiled, entries[i])
	}
	return compiled, failures, nil
}
