package commit_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"lgit/internal/repo/store/commit"
	"lgit/internal/repo/store/index"
)

func newContext(t *testing.T) *commit.Context {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/work/.lgit/commits", 0o755))
	require.NoError(t, fsys.MkdirAll("/work/.lgit/snapshots", 0o755))
	return commit.NewContext("/work/.lgit/commits", "/work/.lgit/snapshots", fsys)
}

func TestKeyFormats(t *testing.T) {
	at := time.Date(2018, 9, 17, 15, 6, 3, 186051000, time.UTC)

	require.Equal(t, "20180917150603.186051", commit.Key(at))
	require.Equal(t, "20180917150603", commit.Stamp(at))
}

func TestKeysDistinctWithinOneSecond(t *testing.T) {
	base := time.Date(2018, 9, 17, 15, 6, 3, 0, time.UTC)
	a := commit.Key(base.Add(100 * time.Microsecond))
	b := commit.Key(base.Add(200 * time.Microsecond))

	require.NotEqual(t, a, b)
	require.True(t, a < b, "lexicographic order must follow chronological order")
}

func TestKeyTime(t *testing.T) {
	at, err := commit.KeyTime("20180917150603.186051")
	require.NoError(t, err)
	require.True(t, at.Equal(time.Date(2018, 9, 17, 15, 6, 3, 0, time.UTC)))

	_, err = commit.KeyTime("bogus")
	require.Error(t, err)
}

func TestWriteRecordFormat(t *testing.T) {
	ctx := newContext(t)
	rec := commit.Record{
		Key:     "20180917150603.186051",
		Author:  "alice",
		Stamp:   "20180917150603",
		Message: "first",
	}
	require.NoError(t, ctx.Write(rec))

	data, err := afero.ReadFile(ctx.FS, ctx.CommitsDir+"/"+rec.Key)
	require.NoError(t, err)
	require.Equal(t, "alice\n20180917150603\n\nfirst\n", string(data))
}

func TestReadRoundTrip(t *testing.T) {
	ctx := newContext(t)
	rec := commit.Record{
		Key:     "20180917150603.186051",
		Author:  "alice",
		Stamp:   "20180917150603",
		Message: "first line\n\nsecond paragraph",
	}
	require.NoError(t, ctx.Write(rec))

	got, err := ctx.Read(rec.Key)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestWriteSnapshot(t *testing.T) {
	ctx := newContext(t)
	entries := index.Entries{
		"b.txt": {Path: "b.txt", StagedHash: "7c211433f02071597741e6ff5a8ea34789abbf43"},
		"a.txt": {Path: "a.txt", StagedHash: "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
	}
	require.NoError(t, ctx.WriteSnapshot("20180917150603.186051", entries))

	data, err := afero.ReadFile(ctx.FS, ctx.SnapshotsDir+"/20180917150603.186051")
	require.NoError(t, err)
	want := "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d a.txt\n" +
		"7c211433f02071597741e6ff5a8ea34789abbf43 b.txt\n"
	require.Equal(t, want, string(data))
}

func TestListNewestFirst(t *testing.T) {
	ctx := newContext(t)
	older := commit.Record{Key: "20180917150603.186051", Author: "alice", Stamp: "20180917150603", Message: "first"}
	newer := commit.Record{Key: "20180917150604.000001", Author: "alice", Stamp: "20180917150604", Message: "second"}
	require.NoError(t, ctx.Write(older))
	require.NoError(t, ctx.Write(newer))

	records, err := ctx.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "second", records[0].Message)
	require.Equal(t, "first", records[1].Message)
}

func TestEmpty(t *testing.T) {
	ctx := newContext(t)

	empty, err := ctx.Empty()
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, ctx.Write(commit.Record{Key: "20180917150603.186051", Author: "a", Stamp: "20180917150603", Message: "m"}))

	empty, err = ctx.Empty()
	require.NoError(t, err)
	require.False(t, empty)
}
