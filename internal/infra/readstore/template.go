package readstore

import (
	"context"
	"time"

	"interview-availability/internal/domain/availability"
	"interview-availability/internal/infra"
	"interview-availability/internal/infra/db"
	"interview-availability/internal/pkg/errs"
	"interview-availability/internal/pkg/pgconv"
)

type TemplateReadQueries interface {
	ResourceExists(ctx context.Context, db db.DBTX, id string) (bool, error)
	GetDayTemplate(ctx context.Context, db db.DBTX, arg GetDayTemplateParams) (DayTemplateRow, error)
	ListDayTemplatesByResource(ctx context.Context, db db.DBTX, resourceID string) ([]DayTemplateRow, error)
	ListTemplateWindows(ctx context.Context, db db.DBTX, dayTemplateIDs []int64) ([]TemplateWindowRow, error)
}

type TemplateReadStore struct {
	queries TemplateReadQueries
	db      db.DBTX
}

func NewTemplateReadStore(queries TemplateReadQueries, db db.DBTX) *TemplateReadStore {
	return &TemplateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TemplateReadStore) FindDayTemplate(ctx context.Context, resourceID string, day time.Weekday) (*availability.DayTemplate, error) {
	if err := r.ensureResource(ctx, resourceID); err != nil {
		return nil, err
	}

	row, err := r.queries.GetDayTemplate(ctx, r.db, GetDayTemplateParams{
		ResourceID: resourceID,
		DayOfWeek:  day.String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find day template", err)
	}

	templates, err := r.attachWindows(ctx, []DayTemplateRow{row})
	if err != nil {
		return nil, err
	}
	return templates[0], nil
}

func (r *TemplateReadStore) FindWeekTemplates(ctx context.Context, resourceID string) ([]*availability.DayTemplate, error) {
	if err := r.ensureResource(ctx, resourceID); err != nil {
		return nil, err
	}

	rows, err := r.queries.ListDayTemplatesByResource(ctx, r.db, resourceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list day templates", err)
	}
	if len(rows) == 0 {
		return []*availability.DayTemplate{}, nil
	}

	return r.attachWindows(ctx, rows)
}

func (r *TemplateReadStore) ensureResource(ctx context.Context, resourceID string) error {
	exists, err := r.queries.ResourceExists(ctx, r.db, resourceID)
	if err != nil {
		return infra.WrapRepoErr("failed to check resource", err)
	}
	if !exists {
		return errs.Mark(infra.WrapRepoErr("resource not found: "+resourceID, nil, infra.KindNotFound), errs.ErrResourceNotFound)
	}
	return nil
}

func (r *TemplateReadStore) attachWindows(ctx context.Context, rows []DayTemplateRow) ([]*availability.DayTemplate, error) {
	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	windowRows, err := r.queries.ListTemplateWindows(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list template windows", err)
	}

	windows := make(map[int64][]availability.WallClockWindow, len(rows))
	for _, wr := range windowRows {
		w, err := toWallClockWindow(wr)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid template window", err, infra.KindCorruptData)
		}
		windows[wr.DayTemplateID] = append(windows[wr.DayTemplateID], w)
	}

	result := make([]*availability.DayTemplate, 0, len(rows))
	for _, row := range rows {
		day, err := availability.ParseWeekday(row.DayOfWeek)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid day template", err, infra.KindCorruptData)
		}
		ws := windows[row.ID]
		if ws == nil {
			ws = []availability.WallClockWindow{}
		}
		result = append(result, &availability.DayTemplate{
			Day:         day,
			IsAvailable: row.IsAvailable,
			Windows:     ws,
		})
	}

	return result, nil
}

func toWallClockWindow(row TemplateWindowRow) (availability.WallClockWindow, error) {
	startOffset, err := pgconv.TimeOfDayFromPgtype(row.StartTime)
	if err != nil {
		return availability.WallClockWindow{}, err
	}
	endOffset, err := pgconv.TimeOfDayFromPgtype(row.EndTime)
	if err != nil {
		return availability.WallClockWindow{}, err
	}

	start, err := availability.TimeOfDayFromDuration(startOffset)
	if err != nil {
		return availability.WallClockWindow{}, err
	}
	end, err := availability.TimeOfDayFromDuration(endOffset)
	if err != nil {
		return availability.WallClockWindow{}, err
	}

	return availability.NewWallClockWindow(start, end)
}
