//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"interview-availability/internal/domain/availability"
	"interview-availability/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateResource(t *testing.T, db DBLike, id, name string) string {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING", id, name)
	require.NoError(t, err)

	return id
}

// CreateTemplate stores tmpl for resourceID, replacing any template for the same day.
func CreateTemplate(t *testing.T, db DBLike, resourceID string, tmpl *availability.DayTemplate) int64 {
	t.Helper()

	ctx := context.Background()
	var templateID int64
	err := db.QueryRow(ctx, `
		INSERT INTO day_templates (resource_id, day_of_week, is_available)
		VALUES ($1, $2, $3)
		ON CONFLICT (resource_id, day_of_week) DO UPDATE SET is_available = EXCLUDED.is_available
		RETURNING id`,
		resourceID, tmpl.Day.String(), tmpl.IsAvailable).Scan(&templateID)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "DELETE FROM template_windows WHERE day_template_id = $1", templateID)
	require.NoError(t, err)

	for i, w := range tmpl.Windows {
		_, err = db.Exec(ctx, `
			INSERT INTO template_windows (day_template_id, start_time, end_time, position)
			VALUES ($1, $2, $3, $4)`,
			templateID, pgconv.TimeOfDayToPgtype(w.Start.SinceMidnight()), pgconv.TimeOfDayToPgtype(w.End.SinceMidnight()), i)
		require.NoError(t, err)
	}

	return templateID
}

func CreateBooking(t *testing.T, db DBLike, b availability.Booking) {
	t.Helper()
	createBooking(t, db, b, "confirmed")
}

func CreateCanceledBooking(t *testing.T, db DBLike, b availability.Booking) {
	t.Helper()
	createBooking(t, db, b, "canceled")
}

func createBooking(t *testing.T, db DBLike, b availability.Booking, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (resource_id, start_time, status) VALUES ($1, $2, $3)",
		b.ResourceID, b.Start, status)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
