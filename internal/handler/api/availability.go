package api

import (
	"net/http"

	reqdto "interview-availability/internal/handler/dto/request"
	resdto "interview-availability/internal/handler/dto/response"
	"interview-availability/internal/handler/httperr"
	"interview-availability/internal/pkg/errs"
	"interview-availability/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Get availability
// @Description Free intervals of a resource on the local day containing selected_date
// @Tags availability
// @Produce json
// @Param resource_id query string true "Resource ID"
// @Param selected_date query string true "ISO-8601 instant or date"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithDetail(c, http.StatusBadRequest, httperr.KindInvalidRequest, err, "resource_id and selected_date are required", err.Error())
		return
	}
	h.respond(c, req.ResourceID, req.SelectedDate)
}

// @Summary Get resource availability
// @Description Path form of GET /api/availability
// @Tags availability
// @Produce json
// @Param id path string true "Resource ID"
// @Param selected_date query string true "ISO-8601 instant or date"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/resources/{id}/availability [get]
func (h *AvailabilityHandler) GetResourceAvailability(c *gin.Context) {
	var req reqdto.ResourceAvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithDetail(c, http.StatusBadRequest, httperr.KindInvalidRequest, err, "selected_date is required", err.Error())
		return
	}
	h.respond(c, c.Param("id"), req.SelectedDate)
}

func (h *AvailabilityHandler) respond(c *gin.Context, resourceID, selectedDate string) {
	result, err := h.q.ComputeAvailability(c.Request.Context(), resourceID, selectedDate)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityResult(result))
}

type ScheduleHandler struct {
	q queries.ScheduleQueries
}

func NewScheduleHandler(q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{q: q}
}

// @Summary Get weekly schedule
// @Description Weekly template of a resource, Monday first
// @Tags availability
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.WeeklyScheduleResponse
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/resources/{id}/schedule [get]
func (h *ScheduleHandler) GetWeeklySchedule(c *gin.Context) {
	schedule, err := h.q.WeeklySchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklySchedule(schedule))
}

func abortWithQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrResourceNotFound):
		httperr.AbortWithKind(c, http.StatusNotFound, httperr.KindResourceNotFound, err, "Resource not found")
	case errs.Is(err, errs.ErrInvalidDate):
		httperr.AbortWithKind(c, http.StatusBadRequest, httperr.KindInvalidDate, err, "selected_date is not a valid ISO-8601 date")
	case errs.Is(err, errs.ErrDependencyFailure):
		httperr.AbortWithKind(c, http.StatusServiceUnavailable, httperr.KindDependencyFailure, err, "Availability data is temporarily unavailable")
	default:
		httperr.AbortWithKind(c, http.StatusInternalServerError, httperr.KindInternal, err, "Internal server error")
	}
}
