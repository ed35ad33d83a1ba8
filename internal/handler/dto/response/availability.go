package response

import (
	"time"

	"interview-availability/internal/usecase/queries"
)

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DayAvailabilityResponse struct {
	Day   string         `json:"day"`
	Slots []SlotResponse `json:"slots"`
}

type AvailabilityMetaResponse struct {
	TimeZone     string `json:"tz"`
	ForDateLocal string `json:"for_date_local"`
	SlotMinutes  int    `json:"slot_minutes"`
}

type AvailabilityResponse struct {
	ResourceID string                    `json:"resource_id"`
	Available  []DayAvailabilityResponse `json:"available"`
	Meta       AvailabilityMetaResponse  `json:"meta"`
}

func FromAvailabilityResult(r *queries.AvailabilityResult) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(r.FreeIntervals))
	for _, iv := range r.FreeIntervals {
		slots = append(slots, SlotResponse{
			Start: iv.Start.UTC().Format(time.RFC3339),
			End:   iv.End.UTC().Format(time.RFC3339),
		})
	}

	return &AvailabilityResponse{
		ResourceID: r.ResourceID,
		Available: []DayAvailabilityResponse{
			{Day: r.Day.String(), Slots: slots},
		},
		Meta: AvailabilityMetaResponse{
			TimeZone:     r.Meta.TimeZone,
			ForDateLocal: r.LocalDate.Format(time.RFC3339),
			SlotMinutes:  r.Meta.SlotMinutes,
		},
	}
}
