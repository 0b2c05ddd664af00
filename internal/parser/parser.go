package parser

import "git.lost.host/meutraa/drumchart/internal/game"

type Parser interface {
	// Parse compiles a whole chart file held in memory.
	Parse(text string) (*game.Song, error)
}
