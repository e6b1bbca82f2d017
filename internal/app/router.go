package app

import (
	"training_backend/docs"
	"training_backend/internal/config"
	"training_backend/internal/middleware"
	"training_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.dashboard.Health)

	public := router.Group("/api")
	{
		public.POST("/login", c.auth.Login)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", c.auth.Me)

		// Account management, admins only
		users := api.Group("/users")
		{
			users.GET("/trainers", c.auth.ListTrainers)
			admin := users.Group("", middleware.ManageRequired())
			{
				admin.POST("", c.auth.Register)
				admin.GET("", c.auth.ListUsers)
				admin.GET("/:id", c.auth.GetUser)
				admin.PUT("/:id", c.auth.UpdateUser)
				admin.DELETE("/:id", c.auth.DeleteUser)
			}
		}

		students := api.Group("/students")
		{
			students.GET("", c.student.List)
			students.GET("/:id", c.student.Get)
			students.GET("/:id/enrollments", c.student.Enrollments)
			students.GET("/:id/progress", c.student.Progress)

			manage := students.Group("", middleware.ManageRequired())
			{
				manage.POST("", c.student.Create)
				manage.PUT("/:id", c.student.Update)
				manage.DELETE("/:id", c.student.Delete)
			}
		}

		trainings := api.Group("/trainings")
		{
			trainings.GET("", c.training.List)
			trainings.GET("/:id", c.training.Get)
			trainings.GET("/:id/sessions", c.training.Sessions)
			trainings.GET("/:id/groups", c.training.Groups)

			manage := trainings.Group("", middleware.ManageRequired())
			{
				manage.POST("", c.training.Create)
				manage.PUT("/:id", c.training.Update)
				manage.DELETE("/:id", c.training.Delete)
			}
		}

		groups := api.Group("/groups")
		{
			groups.GET("", c.group.List)
			groups.GET("/:id", c.group.Get)

			manage := groups.Group("", middleware.ManageRequired())
			{
				manage.POST("", c.group.Create)
				manage.PUT("/:id", c.group.Update)
				manage.DELETE("/:id", c.group.Delete)
				manage.POST("/:id/students/:studentId", c.group.AddStudent)
				manage.DELETE("/:id/students/:studentId", c.group.RemoveStudent)
			}
		}

		seances := api.Group("/seances")
		{
			seances.GET("", c.seance.List)
			seances.GET("/availability", c.seance.Availability)
			seances.GET("/calendar", c.seance.Calendar)
			seances.GET("/my", c.seance.MySeances)
			seances.GET("/reports/my", c.seance.MyReports)
			seances.GET("/:id", c.seance.Get)
			seances.GET("/:id/attendance", c.seance.AttendanceSheet)

			// Trainers run their own seances, managers can step in
			seances.PATCH("/:id/status", middleware.MarkRequired(), c.seance.UpdateStatus)
			seances.POST("/:id/attendance", middleware.MarkRequired(), c.seance.MarkAttendance)
			seances.POST("/:id/report", middleware.MarkRequired(), c.seance.Report)

			manage := seances.Group("", middleware.ManageRequired())
			{
				manage.POST("", c.seance.Create)
				manage.PUT("/:id", c.seance.Update)
				manage.DELETE("/:id", c.seance.Delete)
			}
		}

		enrollments := api.Group("/enrollments")
		{
			enrollments.GET("/:id", c.enrollment.Get)
			enrollments.GET("/:id/attendance", c.enrollment.Attendance)
			enrollments.GET("/:id/progress", c.enrollment.Progress)
			enrollments.GET("/:id/certificate", c.enrollment.Certificate)

			manage := enrollments.Group("", middleware.ManageRequired())
			{
				manage.POST("", c.enrollment.Create)
				manage.DELETE("/:id", c.enrollment.Delete)
			}
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", c.notification.List)
			notifications.GET("/unread-count", c.notification.UnreadCount)
			notifications.PATCH("/:id/read", c.notification.MarkRead)
			notifications.PATCH("/read-all", c.notification.MarkAllRead)
		}

		dashboard := api.Group("/dashboard", middleware.ManageRequired())
		{
			dashboard.GET("/stats", c.dashboard.Stats)
		}
	}
}
