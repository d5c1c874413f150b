package index_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"lgit/internal/digest"
	"lgit/internal/repo/store/index"
)

func newContext(t *testing.T) *index.Context {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/work/.lgit", 0o755))
	return index.NewContext("/work/.lgit/index", fsys)
}

func entry(path, working, staged, committed string) index.Entry {
	return index.Entry{
		Path:          path,
		MTime:         "20180917150603",
		WorkingHash:   working,
		StagedHash:    staged,
		CommittedHash: committed,
	}
}

const (
	hashA = "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"
	hashB = "7c211433f02071597741e6ff5a8ea34789abbf43"
)

func TestRoundTrip(t *testing.T) {
	ctx := newContext(t)
	entries := index.Entries{
		"a.txt":     entry("a.txt", hashA, hashA, digest.Sentinel),
		"dir/b.txt": entry("dir/b.txt", hashB, hashA, hashB),
	}

	require.NoError(t, ctx.Save(entries))

	loaded, err := ctx.Load()
	require.NoError(t, err)
	require.Equal(t, entries, loaded)
}

func TestEncodedLineIsWireExact(t *testing.T) {
	ctx := newContext(t)
	entries := index.Entries{}
	entries.Upsert(entry("a.txt", hashA, hashA, digest.Sentinel))
	require.NoError(t, ctx.Save(entries))

	data, err := afero.ReadFile(ctx.FS, ctx.Path)
	require.NoError(t, err)
	want := "20180917150603 " + hashA + " " + hashA + " " + digest.Sentinel + " a.txt\n"
	require.Equal(t, want, string(data))
}

func TestSentinelWorkingHashRoundTrips(t *testing.T) {
	ctx := newContext(t)
	entries := index.Entries{}
	entries.Upsert(entry("a.txt", digest.Sentinel, hashA, hashA))
	require.NoError(t, ctx.Save(entries))

	loaded, err := ctx.Load()
	require.NoError(t, err)
	require.Equal(t, digest.Sentinel, loaded["a.txt"].WorkingHash)
	require.Equal(t, hashA, loaded["a.txt"].StagedHash)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	ctx := newContext(t)

	entries, err := ctx.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLoadEmptyFile(t *testing.T) {
	ctx := newContext(t)
	require.NoError(t, afero.WriteFile(ctx.FS, ctx.Path, nil, 0o644))

	entries, err := ctx.Load()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLoadMalformedLineAborts(t *testing.T) {
	bad := []string{
		"short line",
		"20180917150603 " + hashA + " " + hashA, // truncated
		"2018091715060X " + hashA + " " + hashA + " " + hashA + " a.txt",                  // non-digit mtime
		"20180917150603 " + hashA + "_" + hashA + " " + hashA + " a.txt",                  // bad separator
		"20180917150603 " + strings.ToUpper(hashA) + " " + hashA + " " + hashA + " a.txt", // uppercase hex
		"20180917150603 " + hashA + " " + digest.Sentinel + " " + hashA + " a.txt",        // blank staged hash
	}
	for _, line := range bad {
		ctx := newContext(t)
		require.NoError(t, afero.WriteFile(ctx.FS, ctx.Path, []byte(line+"\n"), 0o644))

		_, err := ctx.Load()
		require.Error(t, err, "line %q should not parse", line)
		require.Contains(t, err.Error(), "index line 1")
	}
}

func TestPathWithSpacesSurvives(t *testing.T) {
	ctx := newContext(t)
	entries := index.Entries{}
	entries.Upsert(entry("dir with space/a b.txt", hashA, hashA, hashB))
	require.NoError(t, ctx.Save(entries))

	loaded, err := ctx.Load()
	require.NoError(t, err)
	require.Contains(t, loaded, "dir with space/a b.txt")
}

func TestUpsertReplaces(t *testing.T) {
	entries := index.Entries{}
	entries.Upsert(entry("a.txt", hashA, hashA, digest.Sentinel))
	entries.Upsert(entry("a.txt", hashB, hashB, hashA))

	require.Len(t, entries, 1)
	require.Equal(t, hashB, entries["a.txt"].StagedHash)
	require.Equal(t, hashA, entries["a.txt"].CommittedHash)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	entries := index.Entries{}
	entries.Upsert(entry("a.txt", hashA, hashA, digest.Sentinel))

	entries.Remove("missing.txt")
	require.Len(t, entries, 1)

	entries.Remove("a.txt")
	require.Empty(t, entries)
}

func TestSaveRewritesWholeFile(t *testing.T) {
	ctx := newContext(t)
	entries := index.Entries{
		"a.txt": entry("a.txt", hashA, hashA, digest.Sentinel),
		"b.txt": entry("b.txt", hashB, hashB, digest.Sentinel),
	}
	require.NoError(t, ctx.Save(entries))

	entries.Remove("b.txt")
	require.NoError(t, ctx.Save(entries))

	loaded, err := ctx.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Contains(t, loaded, "a.txt")
}
