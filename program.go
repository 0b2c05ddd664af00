package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"git.lost.host/meutraa/drumchart/internal/audio"
	"git.lost.host/meutraa/drumchart/internal/config"
	"git.lost.host/meutraa/drumchart/internal/export"
	"git.lost.host/meutraa/drumchart/internal/game"
	"git.lost.host/meutraa/drumchart/internal/library"
	"git.lost.host/meutraa/drumchart/internal/parser"
	"git.lost.host/meutraa/drumchart/internal/render"
	"git.lost.host/meutraa/drumchart/internal/server"
	"git.lost.host/meutraa/drumchart/internal/source"
	"git.lost.host/meutraa/drumchart/internal/theme"
	"github.com/eiannone/keyboard"
	"golang.org/x/term"
)

type Program struct {
	Parser   parser.Parser
	Renderer render.Renderer

	out         io.Writer
	interactive bool
}

func (p *Program) Init(out *os.File) {
	// Ensure our Default implementations are used as interfaces
	p.interactive = term.IsTerminal(int(out.Fd()))
	p.Parser = &parser.DefaultParser{}
	p.Renderer = &render.DefaultRenderer{
		Theme: &theme.DefaultTheme{Color: *config.Color && p.interactive},
	}
	p.out = out
}

func (p *Program) load(file string) (*game.Song, error) {
	text, err := source.Load(file)
	if nil != err {
		return nil, err
	}
	song, err := p.Parser.Parse(text)
	if nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	return song, nil
}

// chartEnd is the latest moment any course needs audio for.
func chartEnd(song *game.Song) float64 {
	end := 0.0
	for _, level := range song.Charts() {
		chart := &song.Difficulties[level].Chart
		for i := range chart.Notes {
			if e := chart.Notes[i].End(); e > end {
				end = e
			}
		}
		if n := len(chart.Barlines); n > 0 && chart.Barlines[n-1] > end {
			end = chart.Barlines[n-1]
		}
	}
	return end
}

func (p *Program) Compile(file string, checkAudio bool) error {
	song, err := p.load(file)
	if nil != err {
		return err
	}

	var length time.Duration
	if checkAudio {
		audioFile := filepath.Join(filepath.Dir(file), song.Wave)
		log.Printf("Opening %v (%v)\n", audioFile, file)
		length, err = audio.Probe(audioFile)
		if nil != err {
			log.Println("unable to check audio:", err)
		} else if end := chartEnd(song); end > length.Seconds() {
			log.Printf("chart ends at %.3fs, after the audio (%.3fs)\n", end, length.Seconds())
		}
	}

	p.Renderer.RenderSong(song, length)
	return p.Renderer.Flush(p.out)
}

// pickLevel asks for a course on the terminal when there is a choice.
func (p *Program) pickLevel(song *game.Song) (game.Level, error) {
	levels := song.Charts()
	switch {
	case len(levels) == 0:
		return 0, errors.New("song has no courses")
	case len(levels) == 1:
		return levels[0], nil
	case !p.interactive:
		return 0, errors.New("song has several courses, choose one with --course")
	}

	for i, level := range levels {
		d := song.Difficulties[level]
		fmt.Fprintf(p.out, "%2v) %2v★  %5v  %v\n", i, d.Stars, len(d.Chart.Notes), level)
	}
	keys, err := keyboard.GetKeys(8)
	if nil != err {
		return 0, fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	key := <-keys
	if nil != key.Err {
		return 0, key.Err
	}
	index, err := strconv.ParseInt(string(key.Rune), 10, 64)
	if nil != err || index < 0 || index > int64(len(levels)-1) {
		return 0, fmt.Errorf("no course %q", key.Rune)
	}
	return levels[index], nil
}

func (p *Program) level(song *game.Song, course string) (game.Level, error) {
	if course == "" {
		return p.pickLevel(song)
	}
	level, err := game.ParseLevel(course)
	if nil != err {
		return 0, err
	}
	if nil == song.Difficulty(level) {
		return 0, fmt.Errorf("song has no %v course", level)
	}
	return level, nil
}

func (p *Program) Show(file, course string) error {
	song, err := p.load(file)
	if nil != err {
		return err
	}
	level, err := p.level(song, course)
	if nil != err {
		return err
	}
	p.Renderer.RenderChart(level, song.Difficulty(level))
	return p.Renderer.Flush(p.out)
}

func (p *Program) Scan(dir string, jobs int) error {
	l := &library.DefaultLibrary{}
	if err := l.Init(*config.Database); nil != err {
		return err
	}
	defer l.Deinit()

	entries, failures, err := library.Scan(dir, jobs, p.Parser)
	if nil != err {
		return err
	}
	for _, e := range entries {
		if err := l.Save(e); nil != err {
			return err
		}
	}
	fmt.Fprintf(p.out, "%v charts added, %v skipped\n", len(entries), len(failures))
	return nil
}

func (p *Program) Serve(addr string) error {
	l := &library.DefaultLibrary{}
	if err := l.Init(*config.Database); nil != err {
		return err
	}
	defer l.Deinit()

	s := server.Server{Parser: p.Parser, Library: l}
	return s.ListenAndServe(addr)
}

func (p *Program) Export(file, course, out string) error {
	song, err := p.load(file)
	if nil != err {
		return err
	}
	level, err := p.level(song, course)
	if nil != err {
		return err
	}

	f, err := os.Create(out)
	if nil != err {
		return fmt.Errorf("unable to create %v: %w", out, err)
	}
	name := fmt.Sprintf("%v (%v)", song.Title, level)
	if err := export.WriteMIDI(f, name, &song.Difficulty(level).Chart); nil != err {
		f.Close()
		return err
	}
	return f.Close()
}
