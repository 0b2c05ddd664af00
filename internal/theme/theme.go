package theme

import "git.lost.host/meutraa/drumchart/internal/game"

type Theme interface {
	RenderNote(kind game.NoteKind) string
	RenderBarline() string
}
