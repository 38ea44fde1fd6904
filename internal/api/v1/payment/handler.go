package payment

import (
	"errors"
	"net/http"

	"microtask-backend/internal/models"
	"microtask-backend/internal/services"
	"microtask-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	payments *services.PaymentService
}

func NewHandler(payments *services.PaymentService) *Handler {
	return &Handler{payments: payments}
}

// CreateIntent opens a gateway payment intent and returns the client secret.
// Non-positive prices are rejected before the gateway is called.
func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	secret, err := h.payments.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Price must be greater than zero"))
			return
		}
		zap.L().Error("payment intent creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Payment gateway error"))
		return
	}
	c.JSON(http.StatusOK, CreateIntentResponse{ClientSecret: secret})
}

// RecordPayment appends a ledger row and credits the user's balance by the
// purchased coins.
func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	payment := &models.Payment{
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Price:         req.Price,
		Coins:         req.Coins,
	}

	if err := h.payments.RecordPayment(payment); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// PaymentHistory returns a user's ledger, newest first.
func (h *Handler) PaymentHistory(c *gin.Context) {
	payments, err := h.payments.FindPaymentsByEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, payments)
}
