package payment

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	router.POST("/create-payment-intent", h.CreateIntent)
	router.POST("/payments", h.RecordPayment)
	router.GET("/payment-history/:email", h.PaymentHistory)
}
