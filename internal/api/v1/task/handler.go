package task

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
	tasks *services.TaskService
}

func NewHandler(tasks *services.TaskService) *Handler {
	return &Handler{tasks: tasks}
}

// CreateTask posts a new task, debiting the buyer by
// required_workers x payable_amount. Insufficient balance is a 400.
func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	task := &models.Task{
		BuyerEmail:      req.BuyerEmail,
		Title:           req.Title,
		Detail:          req.Detail,
		SubmissionInfo:  req.SubmissionInfo,
		ImageURL:        req.ImageURL,
		RequiredWorkers: req.RequiredWorkers,
		PayableAmount:   req.PayableAmount,
		CompletionDate:  req.CompletionDate,
	}

	if err := h.tasks.CreateTask(task); err != nil {
		switch {
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Insufficient balance"))
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Buyer not found"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListMyTasks(c *gin.Context) {
	tasks, err := h.tasks.FindTasksByBuyer(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListAllTasks returns only tasks that still have open worker slots.
func (h *Handler) ListAllTasks(c *gin.Context) {
	tasks, err := h.tasks.FindOpenTasks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid task id"))
		return
	}

	task, err := h.tasks.FindTaskByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Task not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid task id"))
		return
	}

	if err := h.tasks.DeleteTask(uint(id)); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Task not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Task deleted", nil))
}
