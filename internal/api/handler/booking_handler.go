package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/saberviver/mentorship-api/internal/api/metrics"
	"github.com/saberviver/mentorship-api/internal/core/ports"
)

// BookingHandler serves the booking flow and the dashboard list.
type BookingHandler struct {
	bookingService ports.BookingService
}

func NewBookingHandler(bookingService ports.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type createBookingRequest struct {
	MentorID string `json:"mentor_id" validate:"required"`
	ClassID  string `json:"class_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Notes    string `json:"notes"`
}

// Create handles POST /v1/bookings. Date and time slot completeness is the
// booking service's concern so that rejection leaves no state behind.
//
// @Summary      Book a lesson
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	sessionID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	start := time.Now()
	booking, err := h.bookingService.Create(c.Request().Context(), ports.CreateBookingInput{
		SessionID: sessionID,
		MentorID:  req.MentorID,
		ClassID:   req.ClassID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Notes:     req.Notes,
	})
	if err != nil {
		metrics.BookingProcessingDuration.WithLabelValues("rejected").Observe(time.Since(start).Seconds())
		return err
	}

	metrics.BookingProcessingDuration.WithLabelValues("created").Observe(time.Since(start).Seconds())
	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// List handles GET /v1/bookings — the dashboard data for the session.
//
// @Summary      List the session's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Booking
// @Failure      401  {object}  map[string]string
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	sessionID, user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.List(c.Request().Context(), sessionID, user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Cancel handles POST /v1/bookings/:id/cancel. Cancelling an already
// canceled booking returns the booking unchanged.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	sessionID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	booking, err := h.bookingService.Cancel(c.Request().Context(), sessionID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.BookingsCanceledTotal.Inc()
	return c.JSON(http.StatusOK, booking)
}
