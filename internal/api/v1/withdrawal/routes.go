package withdrawal

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/withdrawals", h.CreateRequest)
	router.GET("/withdraw-requests", h.ListPending)
	router.PATCH("/approve-withdrawal/:id", h.Approve)
}
