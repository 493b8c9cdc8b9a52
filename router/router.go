package router

import (
	"io/fs"
	"net/http"
	"time"

	"schoolms/api"
	"schoolms/config"
	_ "schoolms/docs"
	"schoolms/middleware"
	"schoolms/models"
	"schoolms/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires all routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// Embedded admin page
	staticFS, _ := fs.Sub(web.StaticFS, ".")
	r.GET("/", func(c *gin.Context) {
		content, err := fs.ReadFile(staticFS, "index.html")
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load page")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", content)
	})

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		authHandler := api.NewAuthHandler(cfg)
		noticeHandler := api.NewNoticeHandler()
		galleryHandler := api.NewGalleryHandler()
		admissionHandler := api.NewAdmissionHandler()

		// Public routes: login plus the marketing-site surface
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}
		v1.GET("/notices/public", noticeHandler.ListPublic)
		v1.GET("/gallery/public", galleryHandler.ListPublic)
		v1.POST("/admissions", admissionHandler.Create)

		// Routes behind JWT auth
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)
			// Only admins can create accounts
			authorized.POST("/auth/register", middleware.RequireRole(models.RoleAdmin), authHandler.Register)

			studentHandler := api.NewStudentHandler()
			students := authorized.Group("/students")
			{
				students.GET("", studentHandler.List)
				students.GET("/next-admission-no", studentHandler.NextAdmissionNo)
				students.GET("/:id", studentHandler.Get)
				students.POST("", studentHandler.Create)
				students.PUT("/:id", studentHandler.Update)
				students.DELETE("/:id", studentHandler.Delete)
			}

			teacherHandler := api.NewTeacherHandler()
			teachers := authorized.Group("/teachers")
			{
				teachers.GET("", teacherHandler.List)
				teachers.GET("/:id", teacherHandler.Get)
				teachers.POST("", teacherHandler.Create)
				teachers.PUT("/:id", teacherHandler.Update)
				teachers.DELETE("/:id", teacherHandler.Delete)
				teachers.GET("/:id/salaries", teacherHandler.ListSalaries)
				teachers.POST("/:id/salaries", teacherHandler.PaySalary)
			}

			classHandler := api.NewClassHandler()
			classes := authorized.Group("/classes")
			{
				classes.GET("", classHandler.List)
				classes.GET("/:id", classHandler.Get)
				classes.POST("", classHandler.Create)
				classes.PUT("/:id", classHandler.Update)
				classes.DELETE("/:id", classHandler.Delete)
			}

			feeHandler := api.NewFeeHandler()
			fees := authorized.Group("/fees")
			{
				fees.GET("", feeHandler.List)
				fees.GET("/pending", feeHandler.Pending)
				fees.GET("/unposted", feeHandler.Unposted)
				fees.GET("/student/:studentId", feeHandler.StudentHistory)
				fees.GET("/:id", feeHandler.Get)
				fees.POST("", feeHandler.Create)
				fees.PUT("/:id", feeHandler.Update)
				fees.DELETE("/:id", feeHandler.Delete)
				fees.POST("/:id/pay", feeHandler.Pay)
			}

			incomeHandler := api.NewIncomeHandler()
			incomes := authorized.Group("/incomes")
			{
				incomes.GET("", incomeHandler.List)
				incomes.GET("/:id", incomeHandler.Get)
				incomes.POST("", incomeHandler.Create)
				incomes.PUT("/:id", incomeHandler.Update)
				incomes.DELETE("/:id", incomeHandler.Delete)
			}

			expenseHandler := api.NewExpenseHandler()
			expenses := authorized.Group("/expenses")
			{
				expenses.GET("", expenseHandler.List)
				expenses.GET("/:id", expenseHandler.Get)
				expenses.POST("", expenseHandler.Create)
				expenses.PUT("/:id", expenseHandler.Update)
				expenses.DELETE("/:id", expenseHandler.Delete)
			}

			attendanceHandler := api.NewAttendanceHandler()
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", attendanceHandler.List)
				attendance.POST("", attendanceHandler.Mark)
				attendance.POST("/bulk", attendanceHandler.MarkBulk)
				attendance.GET("/student/:studentId", attendanceHandler.StudentHistory)
				attendance.GET("/class/:classId", attendanceHandler.ClassRegister)
			}

			examHandler := api.NewExamHandler()
			exams := authorized.Group("/exams")
			{
				exams.GET("", examHandler.List)
				exams.GET("/:id", examHandler.Get)
				exams.POST("", examHandler.Create)
				exams.PUT("/:id", examHandler.Update)
				exams.DELETE("/:id", examHandler.Delete)
			}

			resultHandler := api.NewResultHandler()
			results := authorized.Group("/results")
			{
				results.GET("", resultHandler.List)
				results.GET("/:id", resultHandler.Get)
				results.POST("", resultHandler.Create)
				results.PUT("/:id", resultHandler.Update)
				results.DELETE("/:id", resultHandler.Delete)
			}

			notices := authorized.Group("/notices")
			{
				notices.GET("", noticeHandler.List)
				notices.GET("/:id", noticeHandler.Get)
				notices.POST("", noticeHandler.Create)
				notices.PUT("/:id", noticeHandler.Update)
				notices.DELETE("/:id", noticeHandler.Delete)
			}

			gallery := authorized.Group("/gallery")
			{
				gallery.GET("", galleryHandler.List)
				gallery.GET("/:id", galleryHandler.Get)
				gallery.POST("", galleryHandler.Create)
				gallery.PUT("/:id", galleryHandler.Update)
				gallery.DELETE("/:id", galleryHandler.Delete)
			}

			admissions := authorized.Group("/admissions")
			{
				admissions.GET("", admissionHandler.List)
				admissions.GET("/:id", admissionHandler.Get)
				admissions.PUT("/:id/status", admissionHandler.UpdateStatus)
				admissions.DELETE("/:id", admissionHandler.Delete)
			}

			dashboardHandler := api.NewDashboardHandler()
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/stats", dashboardHandler.Stats)
				dashboard.GET("/chart", dashboardHandler.Chart)
			}

			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/fees/excel", exportHandler.ExportFeesExcel)
				export.GET("/ledger/csv", exportHandler.ExportLedgerCSV)
				export.GET("/ledger/json", exportHandler.ExportLedgerJSON)
			}
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS headers for browser clients
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
