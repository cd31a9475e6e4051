package rooms

import (
	"net/http"
	"strconv"

	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:id", h.GetRoom)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/rooms", h.CreateRoom)
	rg.PATCH("/rooms/:id", h.UpdateRoom)
	rg.DELETE("/rooms/:id", h.DeactivateRoom)
}

func (h *Handler) ListRooms(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	items, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": items, "total": total})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid room payload", errs)
		return
	}

	room, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case ErrDuplicateRoomNumber:
			response.Error(c, http.StatusConflict, "DUPLICATE_ROOM_NUMBER", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create room")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	room, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update room")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeactivateRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	room, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deactivate room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}
