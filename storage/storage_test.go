//go:build !js

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T) map[string]Area {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	areas := map[string]Area{}
	for _, typ := range Types {
		area, err := Open(ctx, typ, filepath.Join(dir, "tally."+typ))
		require.NoError(t, err, typ)
		t.Cleanup(func() { area.Close() })
		areas[typ] = area
	}
	return areas
}

func TestAreaContract(t *testing.T) {
	ctx := context.Background()

	for typ, area := range openAll(t) {
		t.Run(typ, func(t *testing.T) {
			_, ok, err := area.GetItem(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, area.SetItem(ctx, "k", `{"a":1}`))
			v, ok, err := area.GetItem(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"a":1}`, v)

			require.NoError(t, area.SetItem(ctx, "k", "replaced"))
			v, _, err = area.GetItem(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "replaced", v)

			require.NoError(t, area.SetItem(ctx, "empty", ""))
			v, ok, err = area.GetItem(ctx, "empty")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "", v)
		})
	}
}

func TestFileBackedAreasSurviveReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, typ := range []string{TypeSQLite, TypeBolt, TypeJSON} {
		t.Run(typ, func(t *testing.T) {
			path := filepath.Join(dir, "reopen."+typ)

			first, err := Open(ctx, typ, path)
			require.NoError(t, err)
			require.NoError(t, first.SetItem(ctx, "electionData_v1", "persisted"))
			require.NoError(t, first.Close())

			second, err := Open(ctx, typ, path)
			require.NoError(t, err)
			defer second.Close()

			v, ok, err := second.GetItem(ctx, "electionData_v1")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "persisted", v)

			fb, ok := second.(FileBacked)
			require.True(t, ok)
			assert.Equal(t, path, fb.Path())
		})
	}
}

func TestTwoHandlesShareOneFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, typ := range []string{TypeSQLite, TypeBolt, TypeJSON} {
		t.Run(typ, func(t *testing.T) {
			path := filepath.Join(dir, "shared."+typ)
			a, err := Open(ctx, typ, path)
			require.NoError(t, err)
			defer a.Close()
			b, err := Open(ctx, typ, path)
			require.NoError(t, err)
			defer b.Close()

			require.NoError(t, a.SetItem(ctx, "key", "from-a"))
			v, ok, err := b.GetItem(ctx, "key")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "from-a", v)
		})
	}
}

func TestJSONFileReplacesUnreadableFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	area, err := OpenJSON(path)
	require.NoError(t, err)

	_, _, err = area.GetItem(ctx, "k")
	assert.Error(t, err)

	require.NoError(t, area.SetItem(ctx, "k", "v"))
	v, ok, err := area.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestOpenUnknownType(t *testing.T) {
	_, err := Open(context.Background(), "postgres", "x")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestSQLiteOpensTheNamedFile(t *testing.T) {
	ctx := context.Background()
	parent := filepath.Join(t.TempDir(), "data", "2025")
	path := filepath.Join(parent, "vote#1?x.db")

	area, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, area.SetItem(ctx, "electionData_v1", "persisted"))
	assert.Equal(t, path, area.Path())
	require.NoError(t, area.Close())

	_, err = os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(parent, "vote"))
	assert.True(t, os.IsNotExist(err))

	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()
	v, ok, err := reopened.GetItem(ctx, "electionData_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t,
		"file:///srv/vote%231%3F.db?_pragma=busy_timeout(5000)",
		sqliteDSN("/srv/vote#1?.db"))
}
