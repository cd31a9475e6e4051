package booking

import (
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListMyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.GuestID = c.GetInt64("user_id")

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidDateRange, ErrInvalidGuestCount:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case ErrGuestCountExceeded:
			response.Error(c, http.StatusUnprocessableEntity, "GUEST_COUNT_EXCEEDED", err.Error())
		case ErrRoomNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case ErrRoomUnavailable:
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}

	if b.GuestID != c.GetInt64("user_id") && c.GetString("role") != "admin" {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.service.ListForGuest(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	existing, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}
	if existing.GuestID != c.GetInt64("user_id") && c.GetString("role") != "admin" {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", "Booking cannot be cancelled from its current status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
