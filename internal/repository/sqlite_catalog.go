package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/confplan/internal/db"
	"github.com/alexanderramin/confplan/internal/domain"
)

// SQLiteCatalogRepo implements CatalogRepo using a SQLite database.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

func (r *SQLiteCatalogRepo) Clear(ctx context.Context) error {
	// Sessions and roles go with their section via ON DELETE CASCADE.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_sections`); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}
	return nil
}

// ReplaceAll is not atomic on its own; run it inside a UnitOfWork.
func (r *SQLiteCatalogRepo) ReplaceAll(ctx context.Context, sections []domain.ScheduleSection) error {
	if err := r.Clear(ctx); err != nil {
		return err
	}
	for i, sec := range sections {
		if err := r.insertSection(ctx, i, sec); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) insertSection(ctx context.Context, pos int, sec domain.ScheduleSection) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO schedule_sections (position, date, feature) VALUES (?, ?, ?)`,
		pos, sec.Date, sec.Feature,
	)
	if err != nil {
		return fmt.Errorf("inserting section %q: %w", sec.Feature, err)
	}
	sectionID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading section id: %w", err)
	}

	for j, s := range sec.Sessions {
		if err := r.insertSession(ctx, sectionID, j, s); err != nil {
			return fmt.Errorf("section %q: %w", sec.Feature, err)
		}
	}
	return nil
}

func (r *SQLiteCatalogRepo) insertSession(ctx context.Context, sectionID int64, pos int, s domain.Session) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO schedule_sessions (section_id, position, start_min, end_min, title, description, kind)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sectionID, pos, int(s.Start), int(s.End), s.Title, s.Description, kindOf(s.Involvement),
	)
	if err != nil {
		return fmt.Errorf("inserting session %q: %w", s.Title, err)
	}
	sessionID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading session id: %w", err)
	}

	for _, role := range domain.RolesOf(s.Involvement) {
		for k, v := range role.Values {
			if _, err := r.db.ExecContext(ctx,
				`INSERT INTO session_roles (session_id, role, position, value) VALUES (?, ?, ?, ?)`,
				sessionID, role.Name, k, v,
			); err != nil {
				return fmt.Errorf("inserting %s for %q: %w", role.Name, s.Title, err)
			}
		}
	}
	return nil
}

type sessionRow struct {
	id        int64
	sectionID int64
	session   domain.Session
	kind      string
}

// LoadAll reads sections, sessions and roles with one flat query each and
// assembles them in memory. Queries are never nested: the store runs on a
// single connection.
func (r *SQLiteCatalogRepo) LoadAll(ctx context.Context) ([]domain.ScheduleSection, error) {
	sections, sectionIdx, err := r.loadSections(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := r.loadSessions(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := r.loadRoles(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range sessions {
		idx, ok := sectionIdx[row.sectionID]
		if !ok {
			return nil, fmt.Errorf("session %d: section %d: %w", row.id, row.sectionID, ErrNotFound)
		}
		s := row.session
		s.Involvement = involvementFromRoles(row.kind, roles[row.id])
		sections[idx].Sessions = append(sections[idx].Sessions, s)
	}
	return sections, nil
}

func (r *SQLiteCatalogRepo) loadSections(ctx context.Context) ([]domain.ScheduleSection, map[int64]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, feature FROM schedule_sections ORDER BY position, id`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.ScheduleSection
	index := make(map[int64]int)
	for rows.Next() {
		var id int64
		var sec domain.ScheduleSection
		if err := rows.Scan(&id, &sec.Date, &sec.Feature); err != nil {
			return nil, nil, fmt.Errorf("scanning section: %w", err)
		}
		sec.Sessions = []domain.Session{}
		index[id] = len(sections)
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating sections: %w", err)
	}
	return sections, index, nil
}

func (r *SQLiteCatalogRepo) loadSessions(ctx context.Context) ([]sessionRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, section_id, start_min, end_min, title, description, kind
		FROM schedule_sessions ORDER BY section_id, position, id`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var out []sessionRow
	for rows.Next() {
		var row sessionRow
		var start, end int
		if err := rows.Scan(&row.id, &row.sectionID, &start, &end,
			&row.session.Title, &row.session.Description, &row.kind); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		row.session.Start = domain.Clock(start)
		row.session.End = domain.Clock(end)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return out, nil
}

func (r *SQLiteCatalogRepo) loadRoles(ctx context.Context) (map[int64]map[string][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, role, value FROM session_roles ORDER BY session_id, role, position`)
	if err != nil {
		return nil, fmt.Errorf("querying roles: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]map[string][]string)
	for rows.Next() {
		var sessionID int64
		var role, value string
		if err := rows.Scan(&sessionID, &role, &value); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		if out[sessionID] == nil {
			out[sessionID] = make(map[string][]string)
		}
		out[sessionID][role] = append(out[sessionID][role], value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating roles: %w", err)
	}
	return out, nil
}

// SQLiteCatalogMetaRepo implements CatalogMetaRepo using a SQLite database.
type SQLiteCatalogMetaRepo struct {
	db db.DBTX
}

// NewSQLiteCatalogMetaRepo creates a new SQLiteCatalogMetaRepo.
func NewSQLiteCatalogMetaRepo(conn db.DBTX) *SQLiteCatalogMetaRepo {
	return &SQLiteCatalogMetaRepo{db: conn}
}

func (r *SQLiteCatalogMetaRepo) Get(ctx context.Context) (*CatalogMeta, error) {
	var m CatalogMeta
	var importedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT source, checksum, imported_at FROM catalog_meta WHERE id = 1`,
	).Scan(&m.Source, &m.Checksum, &importedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("catalog meta: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning catalog meta: %w", err)
	}
	m.ImportedAt = parseStoredTime(importedAt)

	if err := r.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM schedule_sections), (SELECT COUNT(*) FROM schedule_sessions)`,
	).Scan(&m.Sections, &m.Sessions); err != nil {
		return nil, fmt.Errorf("counting catalog rows: %w", err)
	}
	return &m, nil
}

// Upsert records source and checksum. ImportedAt is set to now when zero.
func (r *SQLiteCatalogMetaRepo) Upsert(ctx context.Context, m *CatalogMeta) error {
	importedAt := nowUTC()
	if !m.ImportedAt.IsZero() {
		importedAt = m.ImportedAt.UTC().Format(time.RFC3339)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO catalog_meta (id, source, checksum, imported_at) VALUES (1, ?, ?, ?)`,
		m.Source, m.Checksum, importedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting catalog meta: %w", err)
	}
	return nil
}
