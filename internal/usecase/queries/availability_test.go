//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-availability/internal/domain/availability"
	"interview-availability/internal/pkg/errs"
	"interview-availability/internal/usecase/queries"
	"interview-availability/tests/common/builder"
	queriesmock "interview-availability/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	resourceID = "evaluator-1"
	// 10:00 local on Tuesday 2025-03-04 in Asia/Makassar (UTC+8)
	selectedDate = "2025-03-04T02:00:00Z"
)

var (
	errStoreDown = errors.New("connection refused")
	tuesday      = availability.CivilDate{Year: 2025, Month: time.March, Day: 4}
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	templates *queriesmock.MockTemplateReadStore
	bookings  *queriesmock.MockBookingReadStore
	loc       *time.Location
	queries   queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	loc, err := time.LoadLocation("Asia/Makassar")
	s.Require().NoError(err)
	s.loc = loc
	s.newMocks()
}

// each subtest gets fresh expectations; the controller finishes via t.Cleanup
func (s *AvailabilityQueriesTestSuite) SetupSubTest() {
	s.newMocks()
}

func (s *AvailabilityQueriesTestSuite) newMocks() {
	s.mockCtrl = gomock.NewController(s.T())
	s.templates = queriesmock.NewMockTemplateReadStore(s.mockCtrl)
	s.bookings = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.templates, s.bookings, queries.Settings{
		Location:     s.loc,
		SlotDuration: 30 * time.Minute,
	}, nil)
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) local(hour, minute int) time.Time {
	return time.Date(2025, 3, 4, hour, minute, 0, 0, s.loc).UTC()
}

func (s *AvailabilityQueriesTestSuite) slot(h1, m1, h2, m2 int) availability.Interval {
	return availability.NewInterval(s.local(h1, m1), s.local(h2, m2))
}

func (s *AvailabilityQueriesTestSuite) expectTemplate(tmpl *availability.DayTemplate) {
	s.templates.EXPECT().FindDayTemplate(gomock.Any(), resourceID, time.Tuesday).Return(tmpl, nil).Times(1)
}

func (s *AvailabilityQueriesTestSuite) expectBookings(bookings []availability.Booking) {
	s.bookings.EXPECT().
		FindBookingsInRange(gomock.Any(), resourceID, s.local(0, 0), time.Date(2025, 3, 4, 23, 59, 59, int(999*time.Millisecond), s.loc).UTC()).
		Return(bookings, nil).Times(1)
}

// ================================================================================
// Scenarios
// ================================================================================

func (s *AvailabilityQueriesTestSuite) TestComputeAvailability() {
	template := builder.NewTemplateBuilder().WithDay(time.Tuesday).WithWindows([2]string{"09:00", "12:00"})

	testCases := []struct {
		name     string
		template *availability.DayTemplate
		bookings []string
		want     []availability.Interval
	}{
		{
			name:     "no bookings returns the whole window",
			template: template.BuildDomain(),
			want:     []availability.Interval{s.slot(9, 0, 12, 0)},
		},
		{
			name:     "booking in the middle splits the window",
			template: template.BuildDomain(),
			bookings: []string{"10:00"},
			want:     []availability.Interval{s.slot(9, 0, 10, 0), s.slot(10, 30, 12, 0)},
		},
		{
			name:     "booking at window start leaves no empty piece",
			template: template.BuildDomain(),
			bookings: []string{"09:00"},
			want:     []availability.Interval{s.slot(9, 30, 12, 0)},
		},
		{
			name:     "day marked unavailable is an empty success",
			template: builder.NewTemplateBuilder().Unavailable().BuildDomain(),
			want:     []availability.Interval{},
		},
		{
			name:     "no template stored for the day is an empty success",
			template: nil,
			want:     []availability.Interval{},
		},
		{
			name:     "template without windows is an empty success",
			template: builder.NewTemplateBuilder().WithWindows().BuildDomain(),
			want:     []availability.Interval{},
		},
		{
			name:     "adjacent windows are merged",
			template: builder.NewTemplateBuilder().WithWindows([2]string{"09:00", "10:00"}, [2]string{"10:00", "11:00"}).BuildDomain(),
			want:     []availability.Interval{s.slot(9, 0, 11, 0)},
		},
		{
			name:     "bookings outside windows are ignored",
			template: template.BuildDomain(),
			bookings: []string{"08:30", "12:00", "15:00"},
			want:     []availability.Interval{s.slot(9, 0, 12, 0)},
		},
		{
			name:     "back to back bookings",
			template: template.BuildDomain(),
			bookings: []string{"11:00", "11:30", "09:30"},
			want:     []availability.Interval{s.slot(9, 0, 9, 30), s.slot(10, 0, 11, 0)},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectTemplate(tc.template)
			bookings := builder.NewBookingBuilder(resourceID, tuesday, s.loc)
			for _, b := range tc.bookings {
				bookings.At(b)
			}
			s.expectBookings(bookings.Build())

			got, err := s.queries.ComputeAvailability(context.Background(), resourceID, selectedDate)
			s.Require().NoError(err)

			if diff := cmp.Diff(tc.want, got.FreeIntervals, cmpopts.EquateEmpty()); diff != "" {
				s.T().Errorf("FreeIntervals mismatch (-want +got):\n%s", diff)
			}
			s.Equal(resourceID, got.ResourceID)
			s.Equal(time.Tuesday, got.Day)
			s.Equal("Asia/Makassar", got.Meta.TimeZone)
			s.Equal(30, got.Meta.SlotMinutes)
			s.Equal("2025-03-04T00:00:00+08:00", got.LocalDate.Format(time.RFC3339))
		})
	}
}

func (s *AvailabilityQueriesTestSuite) TestComputeAvailability_Errors() {
	s.Run("unknown resource", func() {
		notFound := errs.Mark(errs.New("resource evaluator-1 not found"), errs.ErrResourceNotFound)
		s.templates.EXPECT().FindDayTemplate(gomock.Any(), resourceID, time.Tuesday).Return(nil, notFound).Times(1)
		s.bookings.EXPECT().FindBookingsInRange(gomock.Any(), resourceID, gomock.Any(), gomock.Any()).Return(nil, context.Canceled).AnyTimes()

		got, err := s.queries.ComputeAvailability(context.Background(), resourceID, selectedDate)
		s.Nil(got)
		s.True(errs.Is(err, errs.ErrResourceNotFound))
		s.False(errs.Is(err, errs.ErrDependencyFailure))
	})

	s.Run("empty resource id", func() {
		_, err := s.queries.ComputeAvailability(context.Background(), "  ", selectedDate)
		s.True(errs.Is(err, errs.ErrResourceNotFound))
	})

	s.Run("malformed date is rejected before any lookup", func() {
		for _, raw := range []string{"", "tomorrow", "2025-13-01"} {
			_, err := s.queries.ComputeAvailability(context.Background(), resourceID, raw)
			s.True(errs.Is(err, errs.ErrInvalidDate), raw)
			s.True(errs.Is(err, availability.ErrMalformedDate), raw)
		}
	})

	s.Run("template store failure", func() {
		s.templates.EXPECT().FindDayTemplate(gomock.Any(), resourceID, time.Tuesday).Return(nil, errStoreDown).Times(1)
		s.bookings.EXPECT().FindBookingsInRange(gomock.Any(), resourceID, gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := s.queries.ComputeAvailability(context.Background(), resourceID, selectedDate)
		s.True(errs.Is(err, errs.ErrDependencyFailure))
		s.True(errs.Is(err, errStoreDown))
	})

	s.Run("booking store failure", func() {
		s.templates.EXPECT().FindDayTemplate(gomock.Any(), resourceID, time.Tuesday).
			Return(builder.NewTemplateBuilder().BuildDomain(), nil).AnyTimes()
		s.bookings.EXPECT().FindBookingsInRange(gomock.Any(), resourceID, gomock.Any(), gomock.Any()).Return(nil, errStoreDown).Times(1)

		got, err := s.queries.ComputeAvailability(context.Background(), resourceID, selectedDate)
		s.Nil(got)
		s.True(errs.Is(err, errs.ErrDependencyFailure))
		s.True(errs.Is(err, errStoreDown))
	})

	s.Run("booking failure cancels an in-flight template read", func() {
		s.templates.EXPECT().FindDayTemplate(gomock.Any(), resourceID, time.Tuesday).
			DoAndReturn(func(ctx context.Context, _ string, _ time.Weekday) (*availability.DayTemplate, error) {
				<-ctx.Done()
				return nil, errs.Wrap(ctx.Err(), "query day template")
			}).Times(1)
		s.bookings.EXPECT().FindBookingsInRange(gomock.Any(), resourceID, gomock.Any(), gomock.Any()).Return(nil, errStoreDown).Times(1)

		got, err := s.queries.ComputeAvailability(context.Background(), resourceID, selectedDate)
		s.Nil(got)
		s.True(errs.Is(err, errs.ErrDependencyFailure))
		s.True(errs.Is(err, errStoreDown))
		s.Contains(err.Error(), "failed to fetch bookings")
	})

	s.Run("caller cancellation is reported as is", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s.templates.EXPECT().FindDayTemplate(gomock.Any(), resourceID, time.Tuesday).Return(nil, context.Canceled).Times(1)
		s.bookings.EXPECT().FindBookingsInRange(gomock.Any(), resourceID, gomock.Any(), gomock.Any()).Return(nil, context.Canceled).Times(1)

		_, err := s.queries.ComputeAvailability(ctx, resourceID, selectedDate)
		s.True(errs.Is(err, context.Canceled))
		s.Contains(err.Error(), "failed to resolve day template")
	})
}

// ================================================================================
// Properties
// ================================================================================

func (s *AvailabilityQueriesTestSuite) TestComputeAvailability_Invariants() {
	tmpl := builder.NewTemplateBuilder().WithWindows(
		[2]string{"08:00", "10:15"},
		[2]string{"10:00", "12:00"},
		[2]string{"13:00", "17:45"},
		[2]string{"19:00", "19:20"},
	).BuildDomain()
	bookings := builder.NewBookingBuilder(resourceID, tuesday, s.loc).
		At("07:45").At("09:10").At("10:00").At("10:20").At("13:00").At("16:59").At("19:00").
		Build()

	s.templates.EXPECT().FindDayTemplate(gomock.Any(), resourceID, time.Tuesday).Return(tmpl, nil).Times(2)
	s.bookings.EXPECT().FindBookingsInRange(gomock.Any(), resourceID, gomock.Any(), gomock.Any()).Return(bookings, nil).Times(2)

	first, err := s.queries.ComputeAvailability(context.Background(), resourceID, selectedDate)
	s.Require().NoError(err)
	second, err := s.queries.ComputeAvailability(context.Background(), resourceID, selectedDate)
	s.Require().NoError(err)

	s.Run("deterministic", func() {
		s.Equal(first, second)
	})

	s.Run("no overlap and ascending", func() {
		for i := 1; i < len(first.FreeIntervals); i++ {
			s.False(first.FreeIntervals[i-1].End.After(first.FreeIntervals[i].Start))
		}
	})

	s.Run("subset of projected windows", func() {
		windows := projectAll(tmpl, s.loc)
		for _, free := range first.FreeIntervals {
			s.Empty(availability.Subtract(free, windows), "free interval %v escapes template", free)
		}
	})

	s.Run("busy exclusion", func() {
		for _, b := range bookings {
			busy := b.Interval(30 * time.Minute)
			for _, free := range first.FreeIntervals {
				s.False(free.Overlaps(busy), "free %v overlaps booking %v", free, busy)
			}
		}
	})
}

func projectAll(tmpl *availability.DayTemplate, loc *time.Location) []availability.Interval {
	out := make([]availability.Interval, 0, len(tmpl.Windows))
	for _, w := range tmpl.Windows {
		out = append(out, availability.ProjectWindow(w, tuesday, loc))
	}
	return availability.Merge(out)
}

func TestNewAvailabilityQueries_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	templates := queriesmock.NewMockTemplateReadStore(ctrl)
	bookings := queriesmock.NewMockBookingReadStore(ctrl)

	templates.EXPECT().FindDayTemplate(gomock.Any(), resourceID, gomock.Any()).Return(nil, nil)
	bookings.EXPECT().FindBookingsInRange(gomock.Any(), resourceID, gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := queries.NewAvailabilityQueries(templates, bookings, queries.Settings{}, nil).
		ComputeAvailability(context.Background(), resourceID, selectedDate)
	require.NoError(t, err)
	assert.Equal(t, "UTC", got.Meta.TimeZone)
	assert.Equal(t, 30, got.Meta.SlotMinutes)
	assert.NotNil(t, got.FreeIntervals)
}
