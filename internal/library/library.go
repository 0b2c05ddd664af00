package library

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"git.lost.host/meutraa/drumchart/internal/game"
)

var ErrNotFound = errors.New("song not found")

type Library interface {
	Init(file string) error
	Deinit()

	// Save stores a compiled song, replacing any entry with the same sum
	Save(entry *Entry) error

	// Load returns ErrNotFound when nothing has the sum
	Load(sum string) (*Entry, error)

	// List returns every entry without its song
	List() ([]Entry, error)
}

type Entry struct {
	Sum   string     `json:"sum"`
	Path  string     `json:"path"`
	Title string     `json:"title"`
	Song  *game.Song `json:"song,omitempty"`
}

// Hash identifies a chart by its text, so moved files keep their entry.
func Hash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
