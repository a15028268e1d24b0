package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/confplan/internal/catalog"
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/itinerary"
	"github.com/alexanderramin/confplan/internal/scheduler"
)

type plannerService struct {
	catalog  *catalog.Catalog
	engine   *itinerary.Engine
	observer UseCaseObserver
}

func NewPlannerService(
	cat *catalog.Catalog,
	engine *itinerary.Engine,
	observers ...UseCaseObserver,
) PlannerService {
	if engine == nil {
		engine = itinerary.New()
	}
	return &plannerService{
		catalog:  cat,
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *plannerService) Catalog() *catalog.Catalog { return s.catalog }

func (s *plannerService) Add(ctx context.Context, ref SessionRef) (entry itinerary.Entry, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"ref": ref.String()}
	defer func() { observe(ctx, s.observer, "itinerary-add", startedAt, fields, err) }()

	var match catalog.Match
	match, err = s.resolve(ref)
	if err != nil {
		return itinerary.Entry{}, err
	}

	entry = s.engine.AddFromSection(match.Section, match.Session)
	fields["entry_id"] = entry.ID
	fields["itinerary_len"] = s.engine.Len()
	return entry, nil
}

// resolve finds exactly one catalog session for ref. A ref whose feature is
// unknown is retried as a bare title, since titles may contain "/".
func (s *plannerService) resolve(ref SessionRef) (catalog.Match, error) {
	if s.catalog == nil {
		return catalog.Match{}, fmt.Errorf("%s: %w", ref, ErrSessionNotFound)
	}
	if ref.Feature != "" && !slices.Contains(s.catalog.Features(), ref.Feature) {
		ref = SessionRef{Title: ref.String()}
	}

	matches := s.catalog.Find(ref.Feature, ref.Title)
	switch len(matches) {
	case 0:
		return catalog.Match{}, fmt.Errorf("%s: %w", ref, ErrSessionNotFound)
	case 1:
		return matches[0], nil
	default:
		features := make([]string, len(matches))
		for i, m := range matches {
			features[i] = m.Section.Feature
		}
		return catalog.Match{}, fmt.Errorf("%s matches %d sessions (features %v); use \"Feature/Title\": %w",
			ref, len(matches), features, ErrAmbiguousRef)
	}
}

func (s *plannerService) AddSession(ctx context.Context, section domain.ScheduleSection, session domain.Session) itinerary.Entry {
	startedAt := time.Now().UTC()
	entry := s.engine.AddFromSection(section, session)
	observe(ctx, s.observer, "itinerary-add", startedAt, map[string]any{
		"ref":           SessionRef{Feature: section.Feature, Title: session.Title}.String(),
		"entry_id":      entry.ID,
		"itinerary_len": s.engine.Len(),
	}, nil)
	return entry
}

func (s *plannerService) Remove(ctx context.Context, title string) int {
	startedAt := time.Now().UTC()
	n := s.engine.Remove(title)
	observe(ctx, s.observer, "itinerary-remove", startedAt, map[string]any{
		"title":         title,
		"removed":       n,
		"itinerary_len": s.engine.Len(),
	}, nil)
	return n
}

func (s *plannerService) RemoveByID(ctx context.Context, id string) bool {
	startedAt := time.Now().UTC()
	ok := s.engine.RemoveByID(id)
	observe(ctx, s.observer, "itinerary-remove", startedAt, map[string]any{
		"entry_id":      id,
		"removed":       ok,
		"itinerary_len": s.engine.Len(),
	}, nil)
	return ok
}

func (s *plannerService) Entries() []itinerary.Entry { return s.engine.Entries() }

func (s *plannerService) Contains(title string) bool { return s.engine.Contains(title) }

func (s *plannerService) Count(title string) int { return s.engine.Count(title) }

func (s *plannerService) Occupants(slot domain.Clock) []domain.Session {
	return s.engine.Occupants(slot)
}

func (s *plannerService) HasConflict(slot domain.Clock) bool { return s.engine.HasConflict(slot) }

func (s *plannerService) Timeline() []scheduler.Row { return s.engine.Timeline() }

func (s *plannerService) Conflicts() []scheduler.ConflictSpan { return s.engine.Conflicts() }
