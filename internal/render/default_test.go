package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/drumchart/internal/game"
	"git.lost.host/meutraa/drumchart/internal/parser"
	"git.lost.host/meutraa/drumchart/internal/testdata"
	"git.lost.host/meutraa/drumchart/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSong(t *testing.T) {
	p := parser.DefaultParser{}
	song, err := p.Parse(testdata.Full)
	require.NoError(t, err)

	r := DefaultRenderer{Theme: &theme.DefaultTheme{}}
	r.RenderSong(song, 95*time.Second)
	var out bytes.Buffer
	require.NoError(t, r.Flush(&out))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "Drum Test  --Test Artist", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  Audio:  drum test.ogg ("), lines[1])
	assert.Contains(t, lines[1], "35")
	assert.Contains(t, out.String(), "   Hard:   6★       7 notes     2 rolls     1 balloons")
	assert.Contains(t, out.String(), "   Edit:  10★       1 notes     0 rolls     2 balloons")

	// Flush empties the buffer
	out.Reset()
	require.NoError(t, r.Flush(&out))
	assert.Empty(t, out.String())
}

func TestRenderChart(t *testing.T) {
	d := &game.Difficulty{Stars: 3, Chart: game.NoteChart{
		Notes: []game.Note{
			{Kind: game.Don, Time: 0, Scroll: 1},
			{Kind: game.BalloonRoll, Time: 1, Scroll: 1, Duration: 0.5, HitTarget: 5, Gogo: true},
		},
		Barlines: []float64{0, 2},
	}}
	r := DefaultRenderer{Theme: &theme.DefaultTheme{}}
	r.RenderChart(game.Oni, d)
	var out bytes.Buffer
	require.NoError(t, r.Flush(&out))

	assert.Equal(t, "Oni 3★\n"+
		"    0.000  │ 1\n"+
		"    0.000  ● don          x1.00\n"+
		"    1.000  ◍ balloon      x1.00  0.500s  5 hits  gogo\n"+
		"    2.000  │ 2\n", out.String())
}
