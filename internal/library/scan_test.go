package library

import (
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/drumchart/internal/parser"
	"git.lost.host/meutraa/drumchart/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, file, text string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, []byte(text), 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a", "full.tja"), testdata.Full)
	write(t, filepath.Join(dir, "b", "minimal.TJA"), testdata.Minimal)
	write(t, filepath.Join(dir, "b", "broken.tja"), "TITLE:x\nWAVE:y\n#START\n5,\n#END\n")
	write(t, filepath.Join(dir, "b", "notes.txt"), "not a chart")

	entries, failures, err := Scan(dir, 2, &parser.DefaultParser{})
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Drum Test", entries[0].Title)
	assert.Equal(t, Hash(testdata.Full), entries[0].Sum)
	assert.Equal(t, "T", entries[1].Title)

	require.Len(t, failures, 1)
	assert.Equal(t, filepath.Join(dir, "b", "broken.tja"), failures[0].Path)
	assert.True(t, parser.IsKind(failures[0].Err, parser.RollNotEnded))
}

func TestScanMissingDirectory(t *testing.T) {
	_, _, err := Scan(filepath.Join(t.TempDir(), "missing"), 1, &parser.DefaultParser{})
	assert.Error(t, err)
}
