package request

type AvailabilityQuery struct {
	ResourceID   string `form:"resource_id" binding:"required"`
	SelectedDate string `form:"selected_date" binding:"required"`
}

// ResourceAvailabilityQuery is the path form; the resource id comes from the URL.
type ResourceAvailabilityQuery struct {
	SelectedDate string `form:"selected_date" binding:"required"`
}
