package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/finance-tracker/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqliteStore, err := OpenSQLite(filepath.Join(dir, "db", "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		"file":   NewFileStore(filepath.Join(dir, "nested", "finance-data.json")),
		"sqlite": sqliteStore,
		"memory": NewMemoryStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load()
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Save([]byte(`{"salary": 45000}`)))
			data, err := s.Load()
			require.NoError(t, err)
			assert.JSONEq(t, `{"salary": 45000}`, string(data))

			require.NoError(t, s.Save([]byte(`{"salary": 50000}`)))
			data, err = s.Load()
			require.NoError(t, err)
			assert.JSONEq(t, `{"salary": 50000}`, string(data))
		})
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	s := NewMemoryStore()
	input := []byte("abc")
	require.NoError(t, s.Save(input))
	input[0] = 'x'

	data, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))

	data[0] = 'y'
	again, _ := s.Load()
	assert.Equal(t, "abc", string(again))
}

func TestFileStoreEmptyFileIsNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := NewFileStore(path).Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreLeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "state.json"))
	require.NoError(t, s.Save([]byte("{}")))
	require.NoError(t, s.Save([]byte(`{"a": 1}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Save([]byte(`{"salary": 1}`)))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	data, err := second.Load()
	require.NoError(t, err)
	assert.JSONEq(t, `{"salary": 1}`, string(data))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		want    interface{}
		wantErr bool
	}{
		{"default is file", Config{Path: filepath.Join(dir, "a.json")}, &FileStore{}, false},
		{"file", Config{Backend: constants.StorageBackendFile, Path: filepath.Join(dir, "b.json")}, &FileStore{}, false},
		{"sqlite", Config{Backend: constants.StorageBackendSQLite, Path: filepath.Join(dir, "c.db")}, &SQLiteStore{}, false},
		{"sqlite without path", Config{Backend: constants.StorageBackendSQLite}, nil, true},
		{"memory", Config{Backend: constants.StorageBackendMemory}, &MemoryStore{}, false},
		{"unknown", Config{Backend: "redis"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer func() { _ = s.Close() }()
			assert.IsType(t, tt.want, s)
		})
	}

	s, err := Open(Config{})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultStoragePath, s.(*FileStore).Path())
}
