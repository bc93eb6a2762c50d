package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-api/auth"
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/models"
)

// SetupRoutes registers all routes. The token service is injected so tests
// can run against their own secret.
func SetupRoutes(r *gin.Engine, ts *auth.TokenService) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login(ts))
	}

	// ── Authenticated routes (any role) ────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired(ts))
	{
		authed.GET("/profile", handlers.GetProfile)
		authed.GET("/menu", handlers.ListMenu)
		authed.GET("/menu/:id", handlers.GetMenuItem)
		authed.GET("/orders/:id", handlers.GetOrder)
		authed.GET("/reviews", handlers.ListReviews)
		authed.GET("/reviews/:id", handlers.GetReview)
		authed.POST("/reviews", handlers.CreateReview)
		authed.GET("/coupons", handlers.ListCoupons)
		authed.GET("/restaurants/:id/hours", handlers.ListOperatingHours)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(ts), middleware.RoleRequired(models.RoleStaff))
	{
		staff.GET("/orders", handlers.ListOrders)
		staff.PUT("/orders/:id", handlers.UpdateOrderStatus)
		staff.POST("/orders/:id/approve", handlers.ApproveOrder)

		staff.POST("/menu", handlers.CreateMenuItem)
		staff.PUT("/menu/:id", handlers.UpdateMenuItem)
		staff.DELETE("/menu/:id", handlers.DeleteMenuItem)

		staff.POST("/coupons", handlers.CreateCoupon)
		staff.GET("/coupons/:id", handlers.GetCoupon)
		staff.DELETE("/coupons/:id", handlers.DeactivateCoupon)

		staff.GET("/inventory", handlers.ListInventory)
		staff.POST("/inventory", handlers.CreateInventoryItem)
		staff.PUT("/inventory/:id", handlers.UpdateInventoryItem)

		staff.GET("/workers", handlers.ListWorkers)
		staff.GET("/workers/:id", handlers.GetWorker)
		staff.POST("/workers", handlers.CreateWorker)

		staff.PUT("/restaurants/:id/hours", handlers.SetOperatingHours)

		staff.GET("/dashboard", handlers.Dashboard)
		staff.GET("/revenue-report", handlers.RevenueReport)
	}

	// ── Delivery routes (drivers and staff) ────────────────────────
	delivery := r.Group("/api")
	delivery.Use(middleware.AuthRequired(ts), middleware.RoleRequired(models.RoleDriver, models.RoleStaff))
	{
		delivery.GET("/deliveries", handlers.ListDeliveries)
		delivery.GET("/deliveries/:id", handlers.GetDelivery)
		delivery.POST("/deliveries", handlers.AssignDelivery)
		delivery.PUT("/deliveries/:id", handlers.UpdateDelivery)
	}
}
