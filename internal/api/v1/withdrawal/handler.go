package withdrawal

import (
	"errors"
	"net/http"
	"strconv"

	"microtask-backend/internal/models"
	"microtask-backend/internal/services"
	"microtask-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	withdrawals *services.WithdrawalService
}

func NewHandler(withdrawals *services.WithdrawalService) *Handler {
	return &Handler{withdrawals: withdrawals}
}

// CreateRequest files a pending withdraw request; the balance is debited
// later, on admin approval.
func (h *Handler) CreateRequest(c *gin.Context) {
	var req CreateWithdrawRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	withdrawal := &models.WithdrawRequest{
		WorkerEmail:      req.WorkerEmail,
		WorkerName:       req.WorkerName,
		WithdrawalCoin:   req.WithdrawalCoin,
		WithdrawalAmount: req.WithdrawalAmount,
		PaymentSystem:    req.PaymentSystem,
		AccountNumber:    req.AccountNumber,
	}

	if err := h.withdrawals.CreateRequest(withdrawal); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Worker not found"))
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Requested coins exceed current balance"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, withdrawal)
}

func (h *Handler) ListPending(c *gin.Context) {
	requests, err := h.withdrawals.FindPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, requests)
}

// Approve settles a pending request and debits the worker's balance.
func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid withdrawal id"))
		return
	}

	request, err := h.withdrawals.Approve(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWithdrawalNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Withdraw request not found"))
		case errors.Is(err, services.ErrWithdrawalDecided):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "Withdraw request has already been approved"))
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Worker balance is below the requested amount"))
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Worker not found"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, request)
}
