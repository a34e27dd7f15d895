package sqlstore

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/eventcal/scheduler/internal/domain"
)

type Repo struct {
	db     *sql.DB
	driver string
}

func New(db *sql.DB, driver string) *Repo { return &Repo{db: db, driver: driver} }

// rebind rewrites ? placeholders to $N for the Postgres driver. SQL constants
// are written once in ? style and shared across both drivers.
func (r *Repo) rebind(query string) string {
	if r.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

func (r *Repo) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, r.rebind(insertEventSQL),
		e.ID, e.Title, e.Description, e.StartDate, e.EndDate, e.StartTime, e.EndTime,
		e.CreatorName, e.CreatorEmail, e.Location,
		formatTS(e.CreatedAt), formatTS(e.UpdatedAt),
	)
	return err
}

func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, r.rebind(getEventSQL), id)

	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound("Event not found")
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *Repo) Update(ctx context.Context, e *domain.Event) error {
	res, err := r.db.ExecContext(ctx, r.rebind(updateEventSQL),
		e.Title, e.Description, e.StartDate, e.EndDate, e.StartTime, e.EndTime,
		e.CreatorName, e.CreatorEmail, e.Location, formatTS(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("Event not found")
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.rebind(deleteEventSQL), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("Event not found")
	}
	return nil
}

func (r *Repo) List(ctx context.Context) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *Repo) ListRange(ctx context.Context, startDate, endDate string) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, r.rebind(listRangeSQL), startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows)
}

// ---- row mapping ----

type scannable interface {
	Scan(dest ...any) error
}

func scanEvent(row scannable) (*domain.Event, error) {
	var e domain.Event
	var description, location sql.NullString
	var createdAt, updatedAt string
	err := row.Scan(
		&e.ID, &e.Title, &description, &e.StartDate, &e.EndDate, &e.StartTime, &e.EndTime,
		&e.CreatorName, &e.CreatorEmail, &location, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Description = description.String
	e.Location = location.String
	e.CreatedAt = parseTS(createdAt)
	e.UpdatedAt = parseTS(updatedAt)
	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func formatTS(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTS tolerates rows seeded outside the service, where the storage-layer
// CURRENT_TIMESTAMP default ("2006-01-02 15:04:05") applies instead of the
// RFC3339 text the service writes.
func parseTS(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
