package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"git.lost.host/meutraa/drumchart/internal/game"
	"git.lost.host/meutraa/drumchart/internal/theme"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

type DefaultRenderer struct {
	Theme  theme.Theme
	buffer strings.Builder
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func formatLength(d time.Duration) string {
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

func (r *DefaultRenderer) RenderSong(song *game.Song, audioLength time.Duration) {
	r.buffer.WriteString(song.Title)
	if song.Subtitle != "" {
		r.buffer.WriteString("  ")
		r.buffer.WriteString(song.Subtitle)
	}
	r.buffer.WriteString("\n")
	fmt.Fprintf(&r.buffer, "  Audio:  %v", song.Wave)
	if audioLength > 0 {
		fmt.Fprintf(&r.buffer, " (%v)", formatLength(audioLength))
	}
	r.buffer.WriteString("\n")
	fmt.Fprintf(&r.buffer, "    BPM:  %v\n", song.BPM)
	fmt.Fprintf(&r.buffer, " Offset:  %.3fs\n", song.Offset)
	fmt.Fprintf(&r.buffer, "   Demo:  %.3fs\n", song.DemoStart)

	for _, level := range song.Charts() {
		d := song.Difficulties[level]
		counts := d.Chart.Counts()
		rolls := counts[game.Roll] + counts[game.BigRoll]
		balloons := counts[game.BalloonRoll] + counts[game.SpecialRoll]
		hits := len(d.Chart.Notes) - rolls - balloons
		fmt.Fprintf(&r.buffer, "%7v:  %2v★  %6v notes  %4v rolls  %4v balloons  %v\n",
			level,
			d.Stars,
			humanize.Comma(int64(hits)),
			humanize.Comma(int64(rolls)),
			humanize.Comma(int64(balloons)),
			formatLength(seconds(d.Chart.Length())),
		)
	}
}

func (r *DefaultRenderer) RenderChart(level game.Level, d *game.Difficulty) {
	fmt.Fprintf(&r.buffer, "%v %v★\n", level, d.Stars)
	notes, barlines := d.Chart.Notes, d.Chart.Barlines
	measure := 0
	for i := 0; i < len(notes) || measure < len(barlines); {
		if measure < len(barlines) && (i >= len(notes) || barlines[measure] <= notes[i].Time) {
			fmt.Fprintf(&r.buffer, "%9.3f  %v %v\n", barlines[measure], r.Theme.RenderBarline(), measure+1)
			measure++
			continue
		}
		n := &notes[i]
		fmt.Fprintf(&r.buffer, "%9.3f  %v %-12v x%.2f", n.Time, r.Theme.RenderNote(n.Kind), n.Kind, n.Scroll)
		if n.Kind.IsRoll() {
			fmt.Fprintf(&r.buffer, "  %.3fs", n.Duration)
		}
		if n.Kind.IsBalloon() {
			fmt.Fprintf(&r.buffer, "  %v hits", n.HitTarget)
		}
		if n.Gogo {
			r.buffer.WriteString("  gogo")
		}
		r.buffer.WriteString("\n")
		i++
	}
}

func (r *DefaultRenderer) Flush(w io.Writer) error {
	_, err := io.WriteString(w, r.buffer.String())
	r.buffer.Reset()
	return err
}
