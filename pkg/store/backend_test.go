package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	sq, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "eod.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	return map[string]Backend{
		"diskv":  NewDiskv(t.TempDir()),
		"sqlite": sq,
		"memory": NewMemory(),
	}
}

func TestBackendsReadWriteErase(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.Read(ctx, EntriesKey)
			require.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, b.Write(ctx, EntriesKey, []byte(`[{"id":"a"}]`)))
			got, err := b.Read(ctx, EntriesKey)
			require.NoError(t, err)
			require.Equal(t, `[{"id":"a"}]`, string(got))

			require.NoError(t, b.Write(ctx, EntriesKey, []byte(`[]`)))
			got, err = b.Read(ctx, EntriesKey)
			require.NoError(t, err)
			require.Equal(t, `[]`, string(got))

			require.NoError(t, b.Erase(ctx, EntriesKey))
			_, err = b.Read(ctx, EntriesKey)
			require.ErrorIs(t, err, ErrNotFound)

			// Erasing a missing key is not an error.
			require.NoError(t, b.Erase(ctx, EntriesKey))
		})
	}
}

func TestBackendsKeepKeysApart(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.Write(ctx, EntriesKey, []byte(`[]`)))
			require.NoError(t, b.Write(ctx, ThemeKey, []byte(`dark`)))

			theme, err := b.Read(ctx, ThemeKey)
			require.NoError(t, err)
			require.Equal(t, "dark", string(theme))

			entries, err := b.Read(ctx, EntriesKey)
			require.NoError(t, err)
			require.Equal(t, "[]", string(entries))
		})
	}
}

func TestDiskvSeesWritesFromAnotherHandle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	first := NewDiskv(dir)
	second := NewDiskv(dir)

	require.NoError(t, first.Write(ctx, ThemeKey, []byte("light")))
	_, err := second.Read(ctx, ThemeKey)
	require.NoError(t, err)

	require.NoError(t, first.Write(ctx, ThemeKey, []byte("dark")))
	got, err := second.Read(ctx, ThemeKey)
	require.NoError(t, err)
	require.Equal(t, "dark", string(got))
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "eod.db")

	first, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, first.Write(ctx, ThemeKey, []byte("dark")))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(ctx, dsn)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Read(ctx, ThemeKey)
	require.NoError(t, err)
	require.Equal(t, "dark", string(got))
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	b, err := Open(ctx, StaticConfig{Path: dir, Kind: BackendDiskv})
	require.NoError(t, err)
	require.IsType(t, &DiskvBackend{}, b)

	b, err = Open(ctx, StaticConfig{Path: dir, Kind: BackendSQLite})
	require.NoError(t, err)
	require.IsType(t, &SQLiteBackend{}, b)
	require.NoError(t, b.Close())
	require.FileExists(t, filepath.Join(dir, sqliteFile))

	b, err = Open(ctx, StaticConfig{Kind: BackendMemory})
	require.NoError(t, err)
	require.IsType(t, &MemoryBackend{}, b)

	_, err = Open(ctx, StaticConfig{Kind: "postgres"})
	require.Error(t, err)
}
