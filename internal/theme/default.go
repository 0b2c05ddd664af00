package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/drumchart/internal/game"
)

type DefaultTheme struct {
	Color bool // ANSI true color escapes
}

func (t *DefaultTheme) RenderNote(kind game.NoteKind) string {
	sym, ok := syms[kind]
	if !ok {
		sym = "?"
	}
	return t.paint(getNoteColor(kind), sym)
}

func (t *DefaultTheme) RenderBarline() string {
	return t.paint(barColor, barSym)
}

func (t *DefaultTheme) paint(c color.RGBA, s string) string {
	if !t.Color {
		return s
	}
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

const (
	barSym = "│"
)

var (
	barColor = color.RGBA{106, 106, 106, 255}
	syms     = map[game.NoteKind]string{
		game.Don:         "●",
		game.Kat:         "●",
		game.BigDon:      "⬤",
		game.BigKat:      "⬤",
		game.CoopDon:     "◉",
		game.CoopKat:     "◉",
		game.Roll:        "━",
		game.BigRoll:     "▬",
		game.BalloonRoll: "◍",
		game.SpecialRoll: "✱",
	}
	noteColors = map[game.NoteKind]color.RGBA{
		game.Don:         {236, 30, 0, 255},  // red
		game.BigDon:      {236, 30, 0, 255},  // red
		game.Kat:         {0, 118, 236, 255}, // blue
		game.BigKat:      {0, 118, 236, 255}, // blue
		game.CoopDon:     {236, 0, 106, 255}, // pink
		game.CoopKat:     {106, 0, 236, 255}, // purple
		game.Roll:        {236, 195, 0, 255}, // yellow
		game.BigRoll:     {236, 195, 0, 255}, // yellow
		game.BalloonRoll: {236, 128, 0, 255}, // orange
		game.SpecialRoll: {0, 236, 128, 255}, // green
	}
)

func getNoteColor(k game.NoteKind) color.RGBA {
	col, ok := noteColors[k]
	if !ok {
		return color.RGBA{255, 255, 255, 255}
	}
	return col
}
