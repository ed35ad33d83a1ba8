package readstore

import (
	"context"

	"interview-availability/internal/infra/db"

	"github.com/jackc/pgx/v5/pgtype"
)

// Queries holds the read-side SQL. Methods take the DBTX so callers decide
// between the pool and an open transaction.
type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

type DayTemplateRow struct {
	ID          int64
	ResourceID  string
	DayOfWeek   string
	IsAvailable bool
}

type TemplateWindowRow struct {
	DayTemplateID int64
	StartTime     pgtype.Time
	EndTime       pgtype.Time
}

type BookingRow struct {
	ResourceID string
	StartTime  pgtype.Timestamptz
}

type GetDayTemplateParams struct {
	ResourceID string
	DayOfWeek  string
}

type ListBookingsInRangeParams struct {
	ResourceID string
	RangeStart pgtype.Timestamptz
	RangeEnd   pgtype.Timestamptz
}

const resourceExists = `
SELECT EXISTS (SELECT 1 FROM resources WHERE id = $1)
`

func (q *Queries) ResourceExists(ctx context.Context, dbtx db.DBTX, id string) (bool, error) {
	row := dbtx.QueryRow(ctx, resourceExists, id)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const getDayTemplate = `
SELECT id, resource_id, day_of_week, is_available
FROM day_templates
WHERE resource_id = $1 AND day_of_week = $2
`

func (q *Queries) GetDayTemplate(ctx context.Context, dbtx db.DBTX, arg GetDayTemplateParams) (DayTemplateRow, error) {
	row := dbtx.QueryRow(ctx, getDayTemplate, arg.ResourceID, arg.DayOfWeek)
	var i DayTemplateRow
	err := row.Scan(&i.ID, &i.ResourceID, &i.DayOfWeek, &i.IsAvailable)
	return i, err
}

const listDayTemplatesByResource = `
SELECT id, resource_id, day_of_week, is_available
FROM day_templates
WHERE resource_id = $1
ORDER BY id
`

func (q *Queries) ListDayTemplatesByResource(ctx context.Context, dbtx db.DBTX, resourceID string) ([]DayTemplateRow, error) {
	rows, err := dbtx.Query(ctx, listDayTemplatesByResource, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DayTemplateRow
	for rows.Next() {
		var i DayTemplateRow
		if err := rows.Scan(&i.ID, &i.ResourceID, &i.DayOfWeek, &i.IsAvailable); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listTemplateWindows = `
SELECT day_template_id, start_time, end_time
FROM template_windows
WHERE day_template_id = ANY($1::bigint[])
ORDER BY day_template_id, position, start_time
`

func (q *Queries) ListTemplateWindows(ctx context.Context, dbtx db.DBTX, dayTemplateIDs []int64) ([]TemplateWindowRow, error) {
	rows, err := dbtx.Query(ctx, listTemplateWindows, dayTemplateIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TemplateWindowRow
	for rows.Next() {
		var i TemplateWindowRow
		if err := rows.Scan(&i.DayTemplateID, &i.StartTime, &i.EndTime); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listBookingsInRange = `
SELECT resource_id, start_time
FROM bookings
WHERE resource_id = $1
  AND status <> 'canceled'
  AND start_time >= $2
  AND start_time <= $3
ORDER BY start_time
`

func (q *Queries) ListBookingsInRange(ctx context.Context, dbtx db.DBTX, arg ListBookingsInRangeParams) ([]BookingRow, error) {
	rows, err := dbtx.Query(ctx, listBookingsInRange, arg.ResourceID, arg.RangeStart, arg.RangeEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingRow
	for rows.Next() {
		var i BookingRow
		if err := rows.Scan(&i.ResourceID, &i.StartTime); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
