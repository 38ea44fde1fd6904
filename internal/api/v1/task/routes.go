package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/add-task", h.CreateTask)
	router.GET("/my-tasks/:email", h.ListMyTasks)
	router.GET("/all-tasks", h.ListAllTasks)
	router.GET("/task/:id", h.GetTask)
	router.DELETE("/task/:id", h.DeleteTask)
}
