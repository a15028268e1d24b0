package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/confplan/internal/catalog"
	"github.com/alexanderramin/confplan/internal/db"
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/repository"
)

// ErrStoreUnavailable is returned when a store operation is requested but no
// catalog store was opened.
var ErrStoreUnavailable = errors.New("catalog store not configured")

type catalogService struct {
	catalogs repository.CatalogRepo
	meta     repository.CatalogMetaRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewCatalogService builds the catalog service. The repos and uow may all be
// nil when no store is configured; file and built-in sources still work.
func NewCatalogService(
	catalogs repository.CatalogRepo,
	meta repository.CatalogMetaRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		catalogs: catalogs,
		meta:     meta,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) hasStore() bool {
	return s.catalogs != nil && s.meta != nil && s.uow != nil
}

func (s *catalogService) Load(ctx context.Context, src Source) (cat *catalog.Catalog, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": sourceLabel(src)}
	defer func() { observe(ctx, s.observer, "catalog-load", startedAt, fields, err) }()

	if src.UseStore {
		cat, err = s.loadFromStore(ctx)
	} else {
		cat, err = catalog.Load(src.Path)
	}
	if err != nil {
		return nil, err
	}
	fields["sections"] = cat.Len()
	fields["sessions"] = cat.SessionCount()
	return cat, nil
}

func (s *catalogService) loadFromStore(ctx context.Context) (*catalog.Catalog, error) {
	if !s.hasStore() {
		return nil, ErrStoreUnavailable
	}
	var sections []domain.ScheduleSection
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		sections, err = repository.NewSQLiteCatalogRepo(tx).LoadAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reading catalog store: %w", err)
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("catalog store is empty, run `confplan catalog import`: %w", catalog.ErrEmptyCatalog)
	}
	return catalog.New(sections), nil
}

func (s *catalogService) Import(ctx context.Context, source string) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": source}
	defer func() { observe(ctx, s.observer, "catalog-import", startedAt, fields, err) }()

	if !s.hasStore() {
		return nil, ErrStoreUnavailable
	}

	var file *catalog.ScheduleFile
	file, err = catalog.ReadSource(source)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	var sections []domain.ScheduleSection
	sections, err = catalog.ConvertScheduleFile(file)
	if err != nil {
		return nil, err
	}

	var sum string
	sum, err = checksum(sections)
	if err != nil {
		return nil, err
	}

	result = &ImportResult{Source: source, Checksum: sum, Sections: len(sections)}
	for _, sec := range sections {
		result.Sessions += len(sec.Sessions)
	}
	fields["sections"] = result.Sections
	fields["sessions"] = result.Sessions

	current, metaErr := s.meta.Get(ctx)
	if metaErr == nil && current.Checksum == sum {
		result.Unchanged = true
		fields["unchanged"] = true
		return result, nil
	}
	if metaErr != nil && !errors.Is(metaErr, repository.ErrNotFound) {
		err = metaErr
		return nil, err
	}

	// Replace sections and meta atomically
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteCatalogRepo(tx).ReplaceAll(ctx, sections); err != nil {
			return err
		}
		return repository.NewSQLiteCatalogMetaRepo(tx).Upsert(ctx, &repository.CatalogMeta{
			Source:   source,
			Checksum: sum,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("importing catalog: %w", err)
	}
	return result, nil
}

func (s *catalogService) StoreInfo(ctx context.Context) (*repository.CatalogMeta, error) {
	if !s.hasStore() {
		return nil, ErrStoreUnavailable
	}
	return s.meta.Get(ctx)
}

// checksum fingerprints the canonical JSON form of sections so re-importing
// an unchanged catalog is a no-op.
func checksum(sections []domain.ScheduleSection) (string, error) {
	data, err := catalog.FileFromSections(sections).Encode(catalog.FormatJSON)
	if err != nil {
		return "", fmt.Errorf("encoding catalog: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func sourceLabel(src Source) string {
	switch {
	case src.UseStore:
		return "store"
	case src.Path == "":
		return "built-in"
	default:
		return src.Path
	}
}
