package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidTimeValue = errors.New("invalid time value in pgtype.Time")

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// TimeOfDayFromPgtype returns the offset since midnight held by a SQL time column.
func TimeOfDayFromPgtype(pt pgtype.Time) (time.Duration, error) {
	if !pt.Valid {
		return 0, ErrInvalidTimeValue
	}
	return time.Duration(pt.Microseconds) * time.Microsecond, nil
}

func TimeOfDayToPgtype(d time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: d.Microseconds(), Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
