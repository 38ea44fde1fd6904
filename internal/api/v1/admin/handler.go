package admin

import (
	"net/http"

	"microtask-backend/internal/services"
	"microtask-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	admin *services.AdminService
}

func NewHandler(admin *services.AdminService) *Handler {
	return &Handler{admin: admin}
}

// Stats returns platform-wide aggregates, recomputed per call.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.admin.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, stats)
}
