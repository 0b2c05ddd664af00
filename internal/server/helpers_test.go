package server

import (
	"os"
	"path/filepath"
	"testing"

	"git.lost.host/meutraa/drumchart/internal/testdata"
	"github.com/stretchr/testify/require"
)

func writeChart(t *testing.T) string {
	file := filepath.Join(t.TempDir(), "full.tja")
	require.NoError(t, os.WriteFile(file, []byte(testdata.Full), 0o644))
	return file
}
