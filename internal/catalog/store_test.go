// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/commandbrain/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Create(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func testEntries() []types.Entry {
	return []types.Entry{
		{Name: "grep", Category: "Text-Processing",
			Description: "Search text using patterns",
			Tags:        "search, text, pattern", RelatedCommands: "awk, sed"},
		{Name: "nmap", Category: "Network-Scanning",
			Description: "Network exploration and port scanning tool",
			Tags:        "port scan, network"},
		{Name: "tar", Category: "File-Operations",
			Description: "Archive files", Tags: "archive"},
	}
}

func TestOpenMissingDatabase(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cb setup")
}

func TestCreateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	st, err := Create(path)
	require.NoError(t, err)
	_, err = st.Seed(context.Background(), testEntries())
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Re-creating must keep the existing rows.
	st, err = Create(path)
	require.NoError(t, err)
	defer st.Close()

	stats, err := st.CountStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Entries)
}

func TestInsertDuplicate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	e := types.Entry{Name: "grep", Category: "Text-Processing", Description: "Search text"}
	require.NoError(t, st.Insert(ctx, e))

	err := st.Insert(ctx, e)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExists)
}

func TestInsertRequiresIdentityFields(t *testing.T) {
	st := newTestStore(t)
	err := st.Insert(context.Background(), types.Entry{Name: "grep"})
	require.Error(t, err)
}

func TestSeedSkipsExisting(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	n, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Second run inserts nothing and changes nothing.
	n, err = st.Seed(ctx, testEntries())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	stats, err := st.CountStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Entries)
}

func TestGetByName(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)

	e, err := st.GetByName(ctx, "nmap")
	require.NoError(t, err)
	assert.Equal(t, "Network-Scanning", e.Category)
	assert.NotZero(t, e.ID)

	_, err = st.GetByName(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFields(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)

	err = st.UpdateFields(ctx, "tar", map[types.Column]string{
		types.ColNotes: "Use -z for gzip",
		types.ColTags:  "archive, compress",
	})
	require.NoError(t, err)

	e, err := st.GetByName(ctx, "tar")
	require.NoError(t, err)
	assert.Equal(t, "Use -z for gzip", e.Notes)
	assert.Equal(t, "archive, compress", e.Tags)
}

func TestUpdateFieldsRejectsIdentityColumns(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)

	err = st.UpdateFields(ctx, "tar", map[types.Column]string{types.ColName: "tarball"})
	require.Error(t, err)

	err = st.UpdateFields(ctx, "nope", map[types.Column]string{types.ColNotes: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppendTagsIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)

	changed, err := st.AppendTags(ctx, "tar", "compress, ARCHIVE, backup")
	require.NoError(t, err)
	assert.True(t, changed)

	e, err := st.GetByName(ctx, "tar")
	require.NoError(t, err)
	// "ARCHIVE" duplicates the existing tag case-insensitively.
	assert.Equal(t, "archive, compress, backup", e.Tags)

	changed, err = st.AppendTags(ctx, "tar", "compress, backup")
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = st.AppendTags(ctx, "nope", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQueryByColumn(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)

	tests := []struct {
		name   string
		col    types.Column
		substr string
		want   []string
	}{
		{"name substring", types.ColName, "map", []string{"nmap"}},
		{"case-insensitive", types.ColName, "GREP", []string{"grep"}},
		{"category", types.ColCategory, "scanning", []string{"nmap"}},
		{"tags", types.ColTags, "archive", []string{"tar"}},
		{"no match", types.ColName, "zzzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := st.QueryByColumn(ctx, tt.col, tt.substr)
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.Name)
			}
			if tt.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

func TestQueryAnyColumn(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)

	// "search" appears in grep's description and tags; one row comes back.
	got, err := st.QueryAnyColumn(ctx,
		[]types.Column{types.ColDescription, types.ColTags}, "search")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grep", got[0].Name)

	_, err = st.QueryAnyColumn(ctx, nil, "x")
	require.Error(t, err)
}

func TestListNamesAndCategories(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)

	names, err := st.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"grep", "nmap", "tar"}, names)

	cats, err := st.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 3)
	for _, c := range cats {
		assert.Equal(t, 1, c.Count)
	}
}

func TestAllAndFileRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	_, err := st.Seed(ctx, testEntries())
	require.NoError(t, err)

	entries, err := st.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, WriteFile(path, entries))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, entries[0].Name, loaded[0].Name)
	assert.Equal(t, entries[0].Description, loaded[0].Description)
}

func TestReadFileValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	entries := []types.Entry{{Name: "only-a-name"}}
	require.NoError(t, WriteFile(path, entries))

	_, err := ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
