package payment

import (
	"net/http"
	"strconv"

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
	rg.POST("/payments", h.CreatePayment)
	rg.GET("/payments/:id", h.GetPayment)
}

// RegisterAdminRoutes mounts the lifecycle endpoint; status transitions are
// an operator action, not a guest one.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/:id/status", h.TransitionStatus)
}

func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidAmount, ErrInvalidCurrency, ErrInvalidMethod:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case ErrBookingNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrAmountMismatch:
			response.Error(c, http.StatusUnprocessableEntity, "AMOUNT_MISMATCH", err.Error())
		case ErrDuplicatePayment:
			response.Error(c, http.StatusConflict, "DUPLICATE_PAYMENT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create payment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}

func (h *Handler) GetPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) TransitionStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid payment ID")
		return
	}

	var req TransitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.TransitionStatus(c.Request.Context(), id, domain.PaymentStatus(req.Status), req.RefundReason)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Payment not found")
		case ErrInvalidStatusTransition:
			response.Error(c, http.StatusConflict, "INVALID_STATUS_TRANSITION", err.Error())
		case ErrMissingRefundReason:
			response.Error(c, http.StatusBadRequest, "MISSING_REFUND_REASON", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": p})
}
