package response

import (
	"interview-availability/internal/usecase/queries"
)

type WindowResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayScheduleResponse struct {
	Day         string           `json:"day"`
	IsAvailable bool             `json:"is_available"`
	Windows     []WindowResponse `json:"windows"`
}

type WeeklyScheduleResponse struct {
	ResourceID string                `json:"resource_id"`
	TimeZone   string                `json:"tz"`
	Days       []DayScheduleResponse `json:"days"`
}

func FromWeeklySchedule(s *queries.WeeklySchedule) *WeeklyScheduleResponse {
	days := make([]DayScheduleResponse, len(s.Days))
	for i, d := range s.Days {
		windows := make([]WindowResponse, len(d.Windows))
		for j, w := range d.Windows {
			windows[j] = WindowResponse{Start: w.Start.String(), End: w.End.String()}
		}
		days[i] = DayScheduleResponse{
			Day:         d.Day.String(),
			IsAvailable: d.IsAvailable,
			Windows:     windows,
		}
	}
	return &WeeklyScheduleResponse{
		ResourceID: s.ResourceID,
		TimeZone:   s.TimeZone,
		Days:       days,
	}
}
