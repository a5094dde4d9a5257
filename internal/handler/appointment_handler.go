package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"showroomos/internal/domain"
	"showroomos/internal/port"
	"showroomos/internal/service"
)

// AppointmentHandler handles appointment booking endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Create handles POST /api/v1/appointments
// @Summary Book an appointment
// @Description Book a showroom visit; the customer receives a confirmation email when one is on file
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body CreateAppointmentRequest true "Appointment details"
// @Success 201 {object} Response{data=domain.Appointment} "Appointment booked"
// @Failure 400 {object} ErrorResponseBody "Validation error or past date"
// @Failure 404 {object} ErrorResponseBody "Customer not found"
// @Security BearerAuth
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	tenantID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreateAppointmentInput
	if !bindJSON(c, &input) {
		return
	}

	appt, err := h.appointmentService.Create(c.Request.Context(), tenantID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, appt)
}

// List handles GET /api/v1/appointments
// @Summary List appointments
// @Description List appointments, optionally filtered by status and calendar day
// @Tags appointments
// @Produce json
// @Param status query string false "Filter by status (scheduled, completed, cancelled)"
// @Param day query string false "Filter by day (YYYY-MM-DD)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Appointment,meta=PagMeta} "List of appointments"
// @Security BearerAuth
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	filter := port.AppointmentFilter{
		Status: domain.AppointmentStatus(c.Query("status")),
	}
	if dayStr := c.Query("day"); dayStr != "" {
		day, err := time.Parse("2006-01-02", dayStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "day must be formatted YYYY-MM-DD")
			return
		}
		filter.Day = &day
	}

	appts, total, err := h.appointmentService.List(c.Request.Context(), tenantID, filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, appts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/appointments/:id
// @Summary Get appointment by ID
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Success 200 {object} Response{data=domain.Appointment} "Appointment details"
// @Failure 404 {object} ErrorResponseBody "Appointment not found"
// @Security BearerAuth
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "appointment ID")
	if !ok {
		return
	}

	appt, err := h.appointmentService.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, appt)
}

// Update handles PUT /api/v1/appointments/:id
// @Summary Update an appointment
// @Description Reschedule, reassign, or change the status of an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Success 200 {object} Response{data=domain.Appointment} "Appointment updated"
// @Failure 404 {object} ErrorResponseBody "Appointment not found"
// @Security BearerAuth
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "appointment ID")
	if !ok {
		return
	}

	var input service.UpdateAppointmentInput
	if !bindJSON(c, &input) {
		return
	}

	appt, err := h.appointmentService.Update(c.Request.Context(), tenantID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, appt)
}

// Delete handles DELETE /api/v1/appointments/:id
// @Summary Delete an appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Appointment deleted"
// @Failure 404 {object} ErrorResponseBody "Appointment not found"
// @Security BearerAuth
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	tenantID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "appointment ID")
	if !ok {
		return
	}

	if err := h.appointmentService.Delete(c.Request.Context(), tenantID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "appointment deleted"})
}
