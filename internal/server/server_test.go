package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"git.lost.host/meutraa/drumchart/internal/game"
	"git.lost.host/meutraa/drumchart/internal/library"
	"git.lost.host/meutraa/drumchart/internal/parser"
	"git.lost.host/meutraa/drumchart/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*Server, *library.DefaultLibrary) {
	l := &library.DefaultLibrary{}
	require.NoError(t, l.Init(filepath.Join(t.TempDir(), "songs.db")))
	t.Cleanup(l.Deinit)
	return &Server{Parser: &parser.DefaultParser{}, Library: l}, l
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCompile(t *testing.T) {
	s, _ := newServer(t)
	rec := do(s.Handler(), "POST", "/compile", testdata.Minimal)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var song game.Song
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&song))
	assert.Equal(t, "T", song.Title)
	require.NotNil(t, song.Difficulties[game.Oni])
	assert.Equal(t, game.Don, song.Difficulties[game.Oni].Chart.Notes[0].Kind)
}

func TestCompileError(t *testing.T) {
	s, _ := newServer(t)
	rec := do(s.Handler(), "POST", "/compile", "TITLE:a\nWAVE:b\n#START\n1,\n")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body compileError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ExpectedEndCommand", body.Kind)
	assert.Equal(t, 5, body.Line)
	assert.Equal(t, "line 5: expected #END", body.Error)
}

func TestSongs(t *testing.T) {
	s, l := newServer(t)
	entry, err := library.Compile(writeChart(t), s.Parser)
	require.NoError(t, err)
	require.NoError(t, l.Save(entry))

	rec := do(s.Handler(), "GET", "/songs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []library.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Drum Test", entries[0].Title)
	assert.Nil(t, entries[0].Song)

	rec = do(s.Handler(), "GET", "/songs/"+entry.Sum, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var loaded library.Entry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&loaded))
	assert.Equal(t, entry, &loaded)

	rec = do(s.Handler(), "GET", "/songs/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSongsWithoutLibrary(t *testing.T) {
	s := &Server{Parser: &parser.DefaultParser{}}
	assert.Equal(t, http.StatusNotFound, do(s.Handler(), "GET", "/songs", "").Code)
	assert.Equal(t, http.StatusNotFound, do(s.Handler(), "GET", "/songs/x", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(s.Handler(), "GET", "/compile", "").Code)
}
