package submission

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
	submissions *services.SubmissionService
}

func NewHandler(submissions *services.SubmissionService) *Handler {
	return &Handler{submissions: submissions}
}

// CreateSubmission files a worker's claim against a task and consumes one of
// its open slots.
func (h *Handler) CreateSubmission(c *gin.Context) {
	var req CreateSubmissionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	sub := &models.Submission{
		TaskID:      req.TaskID,
		WorkerEmail: req.WorkerEmail,
		WorkerName:  req.WorkerName,
		Detail:      req.Detail,
	}

	if err := h.submissions.CreateSubmission(sub); err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Task not found"))
		case errors.Is(err, services.ErrNoWorkerSlots):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Task has no remaining worker slots"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *Handler) ListPending(c *gin.Context) {
	subs, err := h.submissions.FindPendingByBuyer(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Approve credits the worker by the submission's payable amount. A
// submission that has already been decided returns a conflict.
func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid submission id"))
		return
	}

	sub, err := h.submissions.Approve(uint(id))
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Reject returns the consumed slot to the submission's task.
func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid submission id"))
		return
	}

	sub, err := h.submissions.Reject(uint(id))
	if err != nil {
		h.writeDecisionError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *Handler) writeDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSubmissionNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Submission not found"))
	case errors.Is(err, services.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "Submission has already been decided"))
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Worker not found"))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
	}
}

func (h *Handler) WorkerStats(c *gin.Context) {
	stats, err := h.submissions.GetWorkerStats(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListApproved(c *gin.Context) {
	subs, err := h.submissions.FindApprovedByWorker(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, subs)
}
