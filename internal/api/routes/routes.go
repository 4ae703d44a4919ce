package routes

import (
	"illyrian-api/internal/api/handlers"
	"illyrian-api/internal/api/middleware"
	"illyrian-api/internal/config"
	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(cfg)
	auditService := services.NewAuditService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(cfg)
	membershipHandler := handlers.NewMembershipHandler()
	membershipTypeHandler := handlers.NewMembershipTypeHandler()
	paymentHandler := handlers.NewPaymentHandler()
	exerciseHandler := handlers.NewExerciseHandler()
	scheduleHandler := handlers.NewScheduleHandler()
	logsHandler := handlers.NewLogsHandler(auditService)

	// Middleware. ErrorHandler sits outside the audit middleware so the
	// audit record captures a panic before the recovery turns it into a 500.
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")
	api.Use(middleware.AuditMiddleware(auditService))
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Illyrian API is running",
			})
		})

		// Auth routes (public)
		auth := api.Group("/auth")
		auth.Use(middleware.OptionalAuthMiddleware(cfg))
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/register-role", authHandler.RegisterRole)
			auth.GET("/status", authHandler.GetAuthStatus)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/auth/logout", authHandler.Logout)
			protected.GET("/auth/username", authHandler.GetUsername)

			// User management routes
			users := protected.Group("/users", middleware.RequireRole("Admin", "Administrator"))
			{
				users.GET("", userHandler.GetUsers)
				users.GET("/roles", userHandler.GetRoles)
				users.GET("/:id", userHandler.GetUser)
				users.POST("", userHandler.CreateUser)
				users.PUT("/:id", userHandler.UpdateUser)
				users.DELETE("/:id", userHandler.DeleteUser)
				users.POST("/:id/reset-password", userHandler.ResetPassword)
			}

			// Membership routes
			memberships := protected.Group("/memberships")
			{
				memberships.GET("", membershipHandler.GetMemberships)
				memberships.GET("/:id", membershipHandler.GetMembership)
				memberships.POST("", membershipHandler.CreateMembership)
				memberships.PUT("/:id", membershipHandler.UpdateMembership)
				memberships.DELETE("/:id", membershipHandler.DeleteMembership)
			}

			// Membership type routes
			membershipTypes := protected.Group("/membership-types")
			{
				membershipTypes.GET("", membershipTypeHandler.GetMembershipTypes)
				membershipTypes.GET("/:id", membershipTypeHandler.GetMembershipType)
				membershipTypes.POST("", membershipTypeHandler.CreateMembershipType)
				membershipTypes.PUT("/:id", membershipTypeHandler.UpdateMembershipType)
				membershipTypes.DELETE("/:id", membershipTypeHandler.DeleteMembershipType)
			}

			// Payment routes
			payments := protected.Group("/payments")
			{
				payments.GET("", paymentHandler.GetPayments)
				payments.GET("/:id", paymentHandler.GetPayment)
				payments.POST("", paymentHandler.CreatePayment)
				payments.DELETE("/:id", paymentHandler.DeletePayment)
			}

			// Exercise routes
			exercises := protected.Group("/exercises")
			{
				exercises.GET("", exerciseHandler.GetExercises)
				exercises.GET("/:id", exerciseHandler.GetExercise)
				exercises.POST("", exerciseHandler.CreateExercise)
				exercises.PUT("/:id", exerciseHandler.UpdateExercise)
				exercises.DELETE("/:id", exerciseHandler.DeleteExercise)
			}

			// Schedule routes
			schedules := protected.Group("/schedules")
			{
				schedules.GET("", scheduleHandler.GetSchedules)
				schedules.GET("/:id", scheduleHandler.GetSchedule)
				schedules.POST("", scheduleHandler.CreateSchedule)
				schedules.PUT("/:id", scheduleHandler.UpdateSchedule)
				schedules.DELETE("/:id", scheduleHandler.DeleteSchedule)
			}

			// Audit log routes
			logs := protected.Group("/logs", middleware.RequireRole("Admin", "Administrator"))
			{
				logs.GET("", logsHandler.GetLogs)
			}
		}
	}
}
