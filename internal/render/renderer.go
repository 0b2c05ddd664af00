package render

import (
	"io"
	"time"

	"git.lost.host/meutraa/drumchart/internal/game"
)

type Renderer interface {
	// RenderSong writes the song header and one line per course.
	// audioLength is left out when zero.
	RenderSong(song *game.Song, audioLength time.Duration)

	// RenderChart writes every barline and note of a course in time order
	RenderChart(level game.Level, difficulty *game.Difficulty)

	Flush(w io.Writer) error
}
