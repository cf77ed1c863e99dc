package routes

import (
	"github.com/gin-gonic/gin"

	"staffhub/internal/authz"
	"staffhub/internal/handlers"
	"staffhub/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	leadHandler *handlers.LeadHandler,
	bookingHandler *handlers.BookingHandler,
	adminHandler *handlers.AdminHandler,
	supportHandler *handlers.SupportHandler,
	resourceHandler *handlers.ResourceHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
	}

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))

	// LEADS (record-level guards live in the service)
	leads := r.Group("/leads")
	{
		leads.GET("/", leadHandler.List)
		leads.GET("/:id", leadHandler.GetByID)
		leads.POST("/request", leadHandler.Request)
		leads.POST("/assign", middleware.RequireAction(authz.ActionAssignLead), leadHandler.Assign)
		leads.POST("/:id/update", leadHandler.Update)
	}

	// BOOKINGS / COMMISSIONS
	bookings := r.Group("/bookings")
	{
		bookings.GET("/", bookingHandler.List)
		bookings.POST("/", bookingHandler.Create)
		bookings.GET("/commissions", bookingHandler.ListCommissions)
		bookings.PUT("/commissions/:id/pay", middleware.RequireAction(authz.ActionMarkCommissionPaid), bookingHandler.MarkPaid)
	}

	// RESOURCES
	resources := r.Group("/resources")
	{
		resources.GET("/", resourceHandler.List)
		resources.POST("/", middleware.RequireAction(authz.ActionManageUsers), resourceHandler.Create)
	}

	// SUPPORT
	support := r.Group("/support")
	{
		support.GET("/messages", supportHandler.LatestAnnouncement)
		support.POST("/messages", middleware.RequireAction(authz.ActionPostAnnouncement), supportHandler.PostAnnouncement)
		support.POST("/contact", supportHandler.Contact)
		support.GET("/requests", middleware.RequireAction(authz.ActionViewAllRecords), supportHandler.ListRequests)
	}

	// ADMIN
	admin := r.Group("/admin", middleware.RequireAction(authz.ActionManageUsers))
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users", adminHandler.CreateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.PUT("/commissions/:id", adminHandler.AdjustCommission)
	}

	// REPORTS (admin)
	reports := r.Group("/reports", middleware.RequireAction(authz.ActionViewAllRecords))
	{
		reports.GET("/summary", reportHandler.GetSummary)
		reports.GET("/commissions/statement", reportHandler.CommissionStatement)
	}

	return r
}
