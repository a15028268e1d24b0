package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/confplan/internal/catalog"
	"github.com/alexanderramin/confplan/internal/repository"
	"github.com/alexanderramin/confplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const keynoteYAML = `conference_schedule:
  - date: 18 October 2024 (Friday)
    feature: Day Two
    sessions:
      - time: "09:00"
        end_time: "10:00"
        title: Opening
        involved_participants:
          speaker: Host
`

func newStoreCatalogService(t *testing.T) (CatalogService, *recordingObserver) {
	t.Helper()
	database := testutil.NewTestDB(t)
	rec := &recordingObserver{}
	svc := NewCatalogService(
		repository.NewSQLiteCatalogRepo(database),
		repository.NewSQLiteCatalogMetaRepo(database),
		testutil.NewTestUoW(database),
		rec,
	)
	return svc, rec
}

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCatalogService_LoadBuiltIn(t *testing.T) {
	rec := &recordingObserver{}
	svc := NewCatalogService(nil, nil, nil, rec)

	cat, err := svc.Load(context.Background(), Source{})
	require.NoError(t, err)
	assert.Equal(t, 11, cat.SessionCount())

	ev := rec.last()
	assert.Equal(t, "catalog-load", ev.Name)
	assert.Equal(t, "built-in", ev.Fields["source"])
	assert.Equal(t, 11, ev.Fields["sessions"])
}

func TestCatalogService_LoadFile(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil)
	path := writeCatalog(t, "day2.yaml", keynoteYAML)

	cat, err := svc.Load(context.Background(), Source{Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"Day Two"}, cat.Features())
}

func TestCatalogService_LoadMalformedFile(t *testing.T) {
	rec := &recordingObserver{}
	svc := NewCatalogService(nil, nil, nil, rec)
	path := writeCatalog(t, "bad.json", `{"conference_schedule":[{"date":"d","feature":"f","sessions":[
		{"time":"9.00","end_time":"10:00","title":"Dotted","involved_participants":{}}]}]}`)

	_, err := svc.Load(context.Background(), Source{Path: path})
	var mte *catalog.MalformedTimeError
	require.True(t, errors.As(err, &mte))
	assert.Equal(t, "Dotted", mte.Title)
	assert.False(t, rec.last().Success)
}

func TestCatalogService_StoreWithoutStore(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.Load(ctx, Source{UseStore: true})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = svc.Import(ctx, "")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	_, err = svc.StoreInfo(ctx)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestCatalogService_LoadEmptyStore(t *testing.T) {
	svc, _ := newStoreCatalogService(t)

	_, err := svc.Load(context.Background(), Source{UseStore: true})
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestCatalogService_ImportThenLoadFromStore(t *testing.T) {
	svc, rec := newStoreCatalogService(t)
	ctx := context.Background()

	res, err := svc.Import(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Sections)
	assert.Equal(t, 11, res.Sessions)
	assert.False(t, res.Unchanged)
	assert.Len(t, res.Checksum, 64)

	cat, err := svc.Load(ctx, Source{UseStore: true, Path: "ignored.yaml"})
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleSchedule(), cat.ListSections())

	info, err := svc.StoreInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.Checksum, info.Checksum)
	assert.Equal(t, 11, info.Sessions)

	assert.Equal(t, []string{"catalog-import", "catalog-load"}, rec.names())
}

func TestCatalogService_ReimportUnchangedIsNoop(t *testing.T) {
	svc, _ := newStoreCatalogService(t)
	ctx := context.Background()

	first, err := svc.Import(ctx, "")
	require.NoError(t, err)
	second, err := svc.Import(ctx, "")
	require.NoError(t, err)

	assert.True(t, second.Unchanged)
	assert.Equal(t, first.Checksum, second.Checksum)
}

func TestCatalogService_ImportReplacesPrevious(t *testing.T) {
	svc, _ := newStoreCatalogService(t)
	ctx := context.Background()

	_, err := svc.Import(ctx, "")
	require.NoError(t, err)
	path := writeCatalog(t, "day2.yaml", keynoteYAML)
	res, err := svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Sessions)

	cat, err := svc.Load(ctx, Source{UseStore: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Day Two"}, cat.Features())

	info, err := svc.StoreInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, path, info.Source)
}

func TestCatalogService_InvalidImportLeavesStoreUntouched(t *testing.T) {
	svc, _ := newStoreCatalogService(t)
	ctx := context.Background()

	_, err := svc.Import(ctx, "")
	require.NoError(t, err)

	bad := writeCatalog(t, "bad.yaml", `conference_schedule:
  - date: d
    feature: f
    sessions:
      - {time: "10:00", end_time: "09:00", title: Backwards}
`)
	_, err = svc.Import(ctx, bad)
	var ire *catalog.InvertedRangeError
	require.True(t, errors.As(err, &ire))

	cat, err := svc.Load(ctx, Source{UseStore: true})
	require.NoError(t, err)
	assert.Equal(t, 11, cat.SessionCount())
}

func TestCatalogService_ImportRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	good := NewCatalogService(
		repository.NewSQLiteCatalogRepo(database),
		repository.NewSQLiteCatalogMetaRepo(database),
		testutil.NewTestUoW(database),
	)
	_, err := good.Import(ctx, writeCatalog(t, "day2.yaml", keynoteYAML))
	require.NoError(t, err)

	boom := errors.New("write failed")
	failing := NewCatalogService(
		repository.NewSQLiteCatalogRepo(database),
		repository.NewSQLiteCatalogMetaRepo(database),
		&testutil.FailingExecUoW{DB: database, FailOn: 10, Err: boom},
	)
	_, err = failing.Import(ctx, "")
	require.ErrorIs(t, err, boom)

	cat, err := good.Load(ctx, Source{UseStore: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Day Two"}, cat.Features())

	info, err := good.StoreInfo(ctx)
	require.NoError(t, err)
	assert.Contains(t, info.Source, "day2.yaml")
}
