package user

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/users", h.UpsertUser)
	router.GET("/users", h.ListUsers)
	router.GET("/users/:email", h.GetUser)
	router.DELETE("/users/:id", h.DeleteUser)
	router.PATCH("/users/role/:id", h.UpdateRole)
}
