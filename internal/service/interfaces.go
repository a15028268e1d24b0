package service

import (
	"context"

	"github.com/alexanderramin/confplan/internal/catalog"
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/itinerary"
	"github.com/alexanderramin/confplan/internal/repository"
	"github.com/alexanderramin/confplan/internal/scheduler"
)

// Source says where a catalog comes from. With UseStore set the SQLite store
// is read and Path is ignored; otherwise Path is a file, a glob, or empty for
// the built-in schedule.
type Source struct {
	Path     string
	UseStore bool
}

// ImportResult holds the outcome of a catalog import.
type ImportResult struct {
	Source    string
	Checksum  string
	Sections  int
	Sessions  int
	Unchanged bool
}

type CatalogService interface {
	Load(ctx context.Context, src Source) (*catalog.Catalog, error)
	Import(ctx context.Context, source string) (*ImportResult, error)
	StoreInfo(ctx context.Context) (*repository.CatalogMeta, error)
}

type PlannerService interface {
	// Add resolves ref against the catalog and appends it to the itinerary.
	Add(ctx context.Context, ref SessionRef) (itinerary.Entry, error)
	AddSession(ctx context.Context, section domain.ScheduleSection, s domain.Session) itinerary.Entry
	Remove(ctx context.Context, title string) int
	RemoveByID(ctx context.Context, id string) bool
	Entries() []itinerary.Entry
	Contains(title string) bool
	Count(title string) int
	Occupants(slot domain.Clock) []domain.Session
	HasConflict(slot domain.Clock) bool
	Timeline() []scheduler.Row
	Conflicts() []scheduler.ConflictSpan
	Catalog() *catalog.Catalog
}
