//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"interview-availability/internal/domain/availability"
	"interview-availability/internal/infra"
	"interview-availability/internal/infra/db"
	"interview-availability/internal/pkg/errs"
	"interview-availability/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTemplateReadQueries struct {
	mock.Mock
}

func (m *MockTemplateReadQueries) ResourceExists(ctx context.Context, db db.DBTX, id string) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockTemplateReadQueries) GetDayTemplate(ctx context.Context, db db.DBTX, arg GetDayTemplateParams) (DayTemplateRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(DayTemplateRow), args.Error(1)
}

func (m *MockTemplateReadQueries) ListDayTemplatesByResource(ctx context.Context, db db.DBTX, resourceID string) ([]DayTemplateRow, error) {
	args := m.Called(ctx, db, resourceID)
	rows, _ := args.Get(0).([]DayTemplateRow)
	return rows, args.Error(1)
}

func (m *MockTemplateReadQueries) ListTemplateWindows(ctx context.Context, db db.DBTX, dayTemplateIDs []int64) ([]TemplateWindowRow, error) {
	args := m.Called(ctx, db, dayTemplateIDs)
	rows, _ := args.Get(0).([]TemplateWindowRow)
	return rows, args.Error(1)
}

const testResourceID = "evaluator-1"

func windowRow(templateID int64, start, end string) TemplateWindowRow {
	return TemplateWindowRow{
		DayTemplateID: templateID,
		StartTime:     clock(start),
		EndTime:       clock(end),
	}
}

func clock(s string) pgtype.Time {
	tod, err := availability.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return pgconv.TimeOfDayToPgtype(tod.SinceMidnight())
}

func tod(s string) availability.TimeOfDay {
	t, err := availability.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFindDayTemplate(t *testing.T) {
	tuesdayRow := DayTemplateRow{ID: 7, ResourceID: testResourceID, DayOfWeek: "Tuesday", IsAvailable: true}
	params := GetDayTemplateParams{ResourceID: testResourceID, DayOfWeek: "Tuesday"}

	tests := []struct {
		name        string
		exists      bool
		existsErr   error
		row         DayTemplateRow
		rowErr      error
		windows     []TemplateWindowRow
		windowsErr  error
		want        *availability.DayTemplate
		wantErrKind infra.RepositoryErrorKind
		wantMissing bool
	}{
		{
			name:    "success - windows attached in order",
			exists:  true,
			row:     tuesdayRow,
			windows: []TemplateWindowRow{windowRow(7, "09:00", "12:00"), windowRow(7, "13:00", "17:30")},
			want: &availability.DayTemplate{
				Day:         time.Tuesday,
				IsAvailable: true,
				Windows: []availability.WallClockWindow{
					{Start: tod("09:00"), End: tod("12:00")},
					{Start: tod("13:00"), End: tod("17:30")},
				},
			},
		},
		{
			name:   "success - day without windows",
			exists: true,
			row:    DayTemplateRow{ID: 7, ResourceID: testResourceID, DayOfWeek: "Tuesday", IsAvailable: false},
			want: &availability.DayTemplate{
				Day:     time.Tuesday,
				Windows: []availability.WallClockWindow{},
			},
		},
		{
			name:    "success - window ending at midnight",
			exists:  true,
			row:     tuesdayRow,
			windows: []TemplateWindowRow{windowRow(7, "18:00", "24:00")},
			want: &availability.DayTemplate{
				Day:         time.Tuesday,
				IsAvailable: true,
				Windows: []availability.WallClockWindow{
					{Start: tod("18:00"), End: availability.EndOfDay},
				},
			},
		},
		{
			name:   "no template stored for the day",
			exists: true,
			rowErr: pgx.ErrNoRows,
			want:   nil,
		},
		{
			name:        "unknown resource",
			exists:      false,
			wantErrKind: infra.KindNotFound,
			wantMissing: true,
		},
		{
			name:        "resource lookup fails",
			existsErr:   assert.AnError,
			wantErrKind: infra.KindDBFailure,
		},
		{
			name:        "template query fails",
			exists:      true,
			rowErr:      assert.AnError,
			wantErrKind: infra.KindDBFailure,
		},
		{
			name:        "window query fails",
			exists:      true,
			row:         tuesdayRow,
			windowsErr:  assert.AnError,
			wantErrKind: infra.KindDBFailure,
		},
		{
			name:        "stored window ends before it starts",
			exists:      true,
			row:         tuesdayRow,
			windows:     []TemplateWindowRow{windowRow(7, "12:00", "09:00")},
			wantErrKind: infra.KindCorruptData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockTemplateReadQueries)
			mockQueries.On("ResourceExists", mock.Anything, mock.Anything, testResourceID).Return(tt.exists, tt.existsErr)
			if tt.exists && tt.existsErr == nil {
				mockQueries.On("GetDayTemplate", mock.Anything, mock.Anything, params).Return(tt.row, tt.rowErr)
				if tt.rowErr == nil {
					mockQueries.On("ListTemplateWindows", mock.Anything, mock.Anything, []int64{7}).Return(tt.windows, tt.windowsErr)
				}
			}

			readStore := NewTemplateReadStore(mockQueries, nil)

			got, err := readStore.FindDayTemplate(context.Background(), testResourceID, time.Tuesday)

			if tt.wantErrKind != "" {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantErrKind), err.Error())
				assert.Equal(t, tt.wantMissing, errs.Is(err, errs.ErrResourceNotFound))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindWeekTemplates(t *testing.T) {
	t.Run("success - groups windows by day", func(t *testing.T) {
		mockQueries := new(MockTemplateReadQueries)
		mockQueries.On("ResourceExists", mock.Anything, mock.Anything, testResourceID).Return(true, nil)
		mockQueries.On("ListDayTemplatesByResource", mock.Anything, mock.Anything, testResourceID).Return([]DayTemplateRow{
			{ID: 1, ResourceID: testResourceID, DayOfWeek: "Monday", IsAvailable: true},
			{ID: 2, ResourceID: testResourceID, DayOfWeek: "Saturday", IsAvailable: false},
		}, nil)
		mockQueries.On("ListTemplateWindows", mock.Anything, mock.Anything, []int64{1, 2}).Return([]TemplateWindowRow{
			windowRow(1, "08:00", "10:00"),
			windowRow(1, "14:00", "16:00"),
		}, nil)

		got, err := NewTemplateReadStore(mockQueries, nil).FindWeekTemplates(context.Background(), testResourceID)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, time.Monday, got[0].Day)
		assert.Len(t, got[0].Windows, 2)
		assert.Equal(t, time.Saturday, got[1].Day)
		assert.False(t, got[1].IsAvailable)
		assert.Empty(t, got[1].Windows)

		mockQueries.AssertExpectations(t)
	})

	t.Run("no templates stored", func(t *testing.T) {
		mockQueries := new(MockTemplateReadQueries)
		mockQueries.On("ResourceExists", mock.Anything, mock.Anything, testResourceID).Return(true, nil)
		mockQueries.On("ListDayTemplatesByResource", mock.Anything, mock.Anything, testResourceID).Return(nil, nil)

		got, err := NewTemplateReadStore(mockQueries, nil).FindWeekTemplates(context.Background(), testResourceID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		mockQueries.AssertExpectations(t)
	})

	t.Run("unknown day name is corrupt data", func(t *testing.T) {
		mockQueries := new(MockTemplateReadQueries)
		mockQueries.On("ResourceExists", mock.Anything, mock.Anything, testResourceID).Return(true, nil)
		mockQueries.On("ListDayTemplatesByResource", mock.Anything, mock.Anything, testResourceID).Return([]DayTemplateRow{
			{ID: 1, ResourceID: testResourceID, DayOfWeek: "Funday", IsAvailable: true},
		}, nil)
		mockQueries.On("ListTemplateWindows", mock.Anything, mock.Anything, []int64{1}).Return(nil, nil)

		_, err := NewTemplateReadStore(mockQueries, nil).FindWeekTemplates(context.Background(), testResourceID)
		assert.True(t, infra.IsKind(err, infra.KindCorruptData))
	})

	t.Run("unknown resource", func(t *testing.T) {
		mockQueries := new(MockTemplateReadQueries)
		mockQueries.On("ResourceExists", mock.Anything, mock.Anything, testResourceID).Return(false, nil)

		_, err := NewTemplateReadStore(mockQueries, nil).FindWeekTemplates(context.Background(), testResourceID)
		assert.True(t, errs.Is(err, errs.ErrResourceNotFound))
		mockQueries.AssertNotCalled(t, "ListDayTemplatesByResource", mock.Anything, mock.Anything, mock.Anything)
	})
}
