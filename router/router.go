package router

import (
	"log"

	"unilost/config"
	"unilost/controllers"
	"unilost/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public routes, authenticated
// routes and the admin group.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	api.GET("/health", Logger(), controllers.Health)

	// Public (no auth)
	api.POST("/auth/register/request-code", Logger(), controllers.RequestRegistrationCode)
	api.POST("/auth/register/verify", Logger(), controllers.VerifyRegistration)
	api.POST("/auth/login", Logger(), controllers.Login)
	api.POST("/auth/password/forgot", Logger(), controllers.ForgotPasswordSendCode)
	api.POST("/auth/password/reset", Logger(), controllers.ResetPassword)

	// Catalog browsing is public
	api.GET("/items", Logger(), controllers.GetItems)
	api.GET("/items/speciality/:speciality", Logger(), controllers.GetItemsBySpeciality)
	api.GET("/items/:id", Logger(), controllers.GetItemByID)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/auth/me", Logger(), controllers.Me)

	// Profile
	auth.GET("/users/profile", Logger(), controllers.GetProfile)
	auth.PUT("/users/profile", Logger(), controllers.UpdateProfile)
	auth.PUT("/users/change-password", Logger(), controllers.ChangePassword)

	// Found-item reports (user side)
	auth.POST("/users/report", Logger(), controllers.SubmitReport)
	auth.GET("/users/reports", Logger(), controllers.GetMyReports)

	// Claim appointments
	auth.POST("/appointments", Logger(), controllers.BookAppointment)
	auth.GET("/appointments/my-appointments", Logger(), controllers.GetMyAppointments)
	auth.GET("/appointments/:id", Logger(), controllers.GetAppointmentByID)
	auth.PUT("/appointments/:id/status", Logger(), controllers.UpdateAppointmentStatus)
	auth.DELETE("/appointments/:id", Logger(), controllers.CancelAppointment)

	// Admin routes
	admin := auth.Group("/admin")
	admin.Use(Adminizer())

	admin.GET("/reports/pending", Logger(), controllers.GetPendingReports)
	admin.GET("/reports/all", Logger(), controllers.GetAllReports)
	admin.POST("/reports/:id/approve", Logger(), controllers.ApproveReport)
	admin.POST("/reports/:id/reject", Logger(), controllers.RejectReport)
	admin.DELETE("/reports/:id", Logger(), controllers.DeleteReport)

	admin.GET("/items", Logger(), controllers.GetAdminItems)
	admin.DELETE("/items/:id", Logger(), controllers.DeleteItem)

	admin.GET("/appointments", Logger(), controllers.GetAllAppointments)
	admin.GET("/stats", Logger(), controllers.GetStats)

	log.Printf("Routes initialized")
}
