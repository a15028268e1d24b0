package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/confplan/internal/domain"
)

// CatalogMeta describes the catalog currently held by the store.
type CatalogMeta struct {
	Source     string
	Checksum   string
	ImportedAt time.Time
	Sections   int
	Sessions   int
}

type CatalogRepo interface {
	// ReplaceAll drops the stored catalog and writes sections in order.
	ReplaceAll(ctx context.Context, sections []domain.ScheduleSection) error
	// LoadAll returns the stored sections in their original order.
	LoadAll(ctx context.Context) ([]domain.ScheduleSection, error)
	Clear(ctx context.Context) error
}

type CatalogMetaRepo interface {
	Get(ctx context.Context) (*CatalogMeta, error)
	Upsert(ctx context.Context, m *CatalogMeta) error
}
