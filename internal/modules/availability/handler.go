package availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelbooking/internal/domain"
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
	rg.GET("/rooms/:id/availability", h.CheckAvailability)
}

// CheckAvailability answers GET /rooms/:id/availability?check_in=YYYY-MM-DD&check_out=YYYY-MM-DD.
func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	checkIn, err1 := time.Parse("2006-01-02", c.Query("check_in"))
	checkOut, err2 := time.Parse("2006-01-02", c.Query("check_out"))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out must be YYYY-MM-DD dates")
		return
	}

	rng, err := domain.NewDateRange(checkIn, checkOut)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check-out must be after check-in")
		return
	}

	available, err := h.service.IsAvailable(c.Request.Context(), roomID, rng, nil)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to check availability")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"room_id":   roomID,
		"check_in":  rng.CheckIn.Format("2006-01-02"),
		"check_out": rng.CheckOut.Format("2006-01-02"),
		"available": available,
	})
}
