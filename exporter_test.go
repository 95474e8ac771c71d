package walknet

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "data")
	artifacts := []Artifact{
		{Name: "a.json", Payload: map[string]int{"a": 1}},
		{Name: "b.json", Payload: []string{}},
	}
	files, err := NewExporter(dir, nil).Export(artifacts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}, files)

	data, err := os.ReadFile(filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", string(data))

	info, err := os.Stat(filepath.Join(dir, "b.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := []string{}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{"a.json", "b.json"}, names, "no temporary files should be left")
}

func TestExportOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	_, err := NewExporter(dir, nil).Export([]Artifact{{Name: "a.json", Payload: []int{1, 2}}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []int{1, 2}, decoded)
}

func TestExportEncodeFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "a.json")
	require.NoError(t, os.WriteFile(oldPath, []byte("old"), 0644))

	artifacts := []Artifact{
		{Name: "a.json", Payload: []int{1}},
		{Name: "b.json", Payload: map[string]float64{"length": math.Inf(1)}},
	}
	_, err := NewExporter(dir, nil).Export(artifacts)
	require.Error(t, err)

	data, err := os.ReadFile(oldPath)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "previous output should be untouched")
	_, err = os.Stat(filepath.Join(dir, "b.json"))
	assert.True(t, os.IsNotExist(err))

	nested := filepath.Join(t.TempDir(), "never")
	_, err = NewExporter(nested, nil).Export(artifacts)
	require.Error(t, err)
	_, err = os.Stat(nested)
	assert.True(t, os.IsNotExist(err), "directory should not be created when encoding fails")
}

func TestExportWriteFailure(t *testing.T) {
	notDir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(notDir, []byte{}, 0644))

	_, err := NewExporter(notDir, nil).Export([]Artifact{{Name: "a.json", Payload: []int{}}})
	assert.True(t, errors.Is(err, ErrWriteFailure), "expected ErrWriteFailure, got %v", err)

	_, err = NewExporter(filepath.Join(notDir, "sub"), nil).Export([]Artifact{{Name: "a.json", Payload: []int{}}})
	assert.True(t, errors.Is(err, ErrWriteFailure), "expected ErrWriteFailure, got %v", err)
}
