package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-shareit/internal/application"
	bookingDomain "github.com/shareit-platform/service-shareit/internal/domain/booking"
	"github.com/shareit-platform/service-shareit/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, sharer gin.HandlerFunc) {
	bookings := r.Group("/bookings")
	bookings.Use(sharer)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookerBookings)
		bookings.GET("/owner", h.ListOwnerBookings)
		bookings.GET("/:bookingId", h.GetBooking)
		bookings.PATCH("/:bookingId", h.ApproveBooking)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ApproveBooking handles PATCH /bookings/:bookingId?approved=bool.
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	raw, present := c.GetQuery("approved")
	if !present {
		response.BadRequest(c, "approved parameter is required")
		return
	}
	approved, err := strconv.ParseBool(raw)
	if err != nil {
		response.BadRequest(c, "approved must be true or false")
		return
	}

	result, err := h.service.ApproveBooking(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListBookerBookings handles GET /bookings?state=.
func (h *BookingHandler) ListBookerBookings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	view, err := bookingDomain.ParseState(c.Query("state"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetBookerBookings(c.Request.Context(), userID, view)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOwnerBookings handles GET /bookings/owner?state=.
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	view, err := bookingDomain.ParseState(c.Query("state"))
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.service.GetOwnerBookings(c.Request.Context(), userID, view)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
