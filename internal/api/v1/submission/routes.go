package submission

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/submissions", h.CreateSubmission)
	router.GET("/pending-submissions/:email", h.ListPending)
	router.PATCH("/approve-submission/:id", h.Approve)
	router.PATCH("/reject-submission/:id", h.Reject)
	router.GET("/worker-stats/:email", h.WorkerStats)
	router.GET("/worker-approved-tasks/:email", h.ListApproved)
}
