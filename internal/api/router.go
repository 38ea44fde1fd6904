package api

import (
	"net/http"

	"microtask-backend/config"
	adminRoutes "microtask-backend/internal/api/v1/admin"
	paymentRoutes "microtask-backend/internal/api/v1/payment"
	submissionRoutes "microtask-backend/internal/api/v1/submission"
	taskRoutes "microtask-backend/internal/api/v1/task"
	userRoutes "microtask-backend/internal/api/v1/user"
	withdrawalRoutes "microtask-backend/internal/api/v1/withdrawal"
	"microtask-backend/internal/gateway"
	"microtask-backend/internal/middleware"
	"microtask-backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter builds the HTTP surface. The database handle and payment gateway
// are passed in so the router owns no process-wide state.
func NewRouter(cfg *config.Config, db *gorm.DB, gw gateway.Driver) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Micro-task server is running")
	})

	root := router.Group("/")
	userRoutes.RegisterRoutes(root, userRoutes.NewHandler(services.NewUserService(db)))
	taskRoutes.RegisterRoutes(root, taskRoutes.NewHandler(services.NewTaskService(db)))
	submissionRoutes.RegisterRoutes(root, submissionRoutes.NewHandler(services.NewSubmissionService(db)))
	paymentRoutes.RegisterRoutes(root, paymentRoutes.NewHandler(services.NewPaymentService(db, gw)))
	withdrawalRoutes.RegisterRoutes(root, withdrawalRoutes.NewHandler(services.NewWithdrawalService(db)))
	adminRoutes.RegisterRoutes(root, adminRoutes.NewHandler(services.NewAdminService(db)))

	return router
}
