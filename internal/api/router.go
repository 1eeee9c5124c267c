package api

import (
	"github.com/gin-gonic/gin"

	"github.com/moqawil/moqawil_server/config"
	"github.com/moqawil/moqawil_server/internal/api/handler"
	"github.com/moqawil/moqawil_server/internal/api/middleware"
	"github.com/moqawil/moqawil_server/internal/repository"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	Public       *handler.PublicHandler
	Company      *handler.CompanyHandler
	Content      *handler.ContentHandler
	Subscription *handler.SubscriptionHandler
	Notification *handler.NotificationHandler
	Support      *handler.SupportHandler
	Statistics   *handler.StatisticsHandler
	Admin        *handler.AdminHandler
	WebSocket    *handler.WebSocketHandler
}

type Repos struct {
	Company      *repository.CompanyRepo
	Subscription *repository.SubscriptionRepo
}

// SetupRouter wires the four access tiers: public, authenticated
// tenant, paid tenant dashboard, and admin.
func SetupRouter(cfg *config.Config, h *Handlers, repos *Repos) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(&cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/ws", h.WebSocket.Serve)

	v1 := r.Group("/api/v1")

	// Public, no token.
	{
		v1.POST("/auth/register", h.Auth.Register)
		v1.POST("/auth/login", h.Auth.Login)

		v1.GET("/companies", h.Public.ListCompanies)
		v1.GET("/companies/:slug", h.Public.GetProfile)
		v1.POST("/companies/:slug/clicks/:type", h.Public.TrackClick)

		v1.GET("/plans", h.Public.PlanCatalog)
		v1.GET("/settings/:key", h.Public.GetSetting)
	}

	auth := middleware.Auth(cfg.JWT.Secret)

	v1.POST("/auth/password", auth, h.Auth.ChangePassword)

	// Tenant tier: logged in company, not banned. Reachable before the
	// subscription is paid so tenants can see status, pay and reach
	// support.
	tenant := v1.Group("", auth, middleware.RequireCompany(repos.Company))
	{
		tenant.GET("/subscription", h.Subscription.Get)
		tenant.POST("/subscription", h.Subscription.RequestChange)
		tenant.POST("/subscription/codes", h.Subscription.ResubmitCodes)
		tenant.GET("/subscription/payments", h.Subscription.ListPayments)

		tenant.POST("/support/tickets", h.Support.Create)
		tenant.GET("/support/tickets", h.Support.List)
	}

	// Dashboard tier: active subscription required.
	dashboard := v1.Group("", auth, middleware.RequireCompany(repos.Company), middleware.RequireActiveSubscription(repos.Subscription))
	{
		dashboard.GET("/company/profile", h.Company.GetProfile)
		dashboard.PUT("/company/profile", h.Company.UpdateProfile)
		dashboard.POST("/company/logo", h.Company.UploadLogo)
		dashboard.POST("/company/images", h.Company.UploadImage)

		dashboard.GET("/projects", h.Content.ListProjects)
		dashboard.POST("/projects", h.Content.CreateProject)
		dashboard.PUT("/projects/:id", h.Content.UpdateProject)
		dashboard.DELETE("/projects/:id", h.Content.DeleteProject)

		dashboard.GET("/services", h.Content.ListServices)
		dashboard.POST("/services", h.Content.CreateService)
		dashboard.PUT("/services/:id", h.Content.UpdateService)
		dashboard.DELETE("/services/:id", h.Content.DeleteService)

		dashboard.GET("/team", h.Content.ListTeamMembers)
		dashboard.POST("/team", h.Content.CreateTeamMember)
		dashboard.PUT("/team/:id", h.Content.UpdateTeamMember)
		dashboard.DELETE("/team/:id", h.Content.DeleteTeamMember)

		dashboard.GET("/works", h.Content.ListWorks)
		dashboard.POST("/works", h.Content.CreateWork)
		dashboard.PUT("/works/:id", h.Content.UpdateWork)
		dashboard.DELETE("/works/:id", h.Content.DeleteWork)

		dashboard.GET("/gallery", h.Content.ListGallery)
		dashboard.POST("/gallery", h.Content.AddGalleryImage)
		dashboard.DELETE("/gallery/:id", h.Content.DeleteGalleryImage)

		dashboard.GET("/notifications", h.Notification.List)
		dashboard.GET("/notifications/unread", h.Notification.UnreadCount)
		dashboard.PUT("/notifications/read", h.Notification.MarkAllRead)
		dashboard.PUT("/notifications/:id/read", h.Notification.MarkRead)

		dashboard.GET("/statistics", h.Statistics.Summary)
	}

	// Admin tier.
	admin := v1.Group("/admin", auth, middleware.AdminOnly())
	{
		admin.GET("/companies", h.Admin.ListCompanies)
		admin.GET("/companies/unverified", h.Admin.VerificationQueue)
		admin.PUT("/companies/:id/moderation", h.Admin.ModerateCompany)
		admin.DELETE("/companies/:id", h.Admin.DeleteCompany)

		admin.GET("/payments", h.Admin.ListPayments)
		admin.POST("/payments/:id/confirm", h.Admin.ConfirmPayment)
		admin.POST("/payments/:id/reject", h.Admin.RejectPayment)

		admin.PUT("/subscriptions/:id/status", h.Admin.OverrideSubscription)

		admin.GET("/support/tickets", h.Admin.ListTickets)
		admin.POST("/support/tickets/:id/reply", h.Admin.ReplyTicket)
		admin.POST("/support/tickets/:id/close", h.Admin.CloseTicket)

		admin.GET("/notifications", h.Admin.ListNotifications)
		admin.POST("/notifications", h.Admin.CreateNotification)

		admin.GET("/promo-codes", h.Admin.ListPromoCodes)
		admin.POST("/promo-codes", h.Admin.CreatePromoCode)
		admin.PUT("/promo-codes/:id", h.Admin.UpdatePromoCode)
		admin.DELETE("/promo-codes/:id", h.Admin.DeletePromoCode)

		admin.GET("/plan-offers", h.Admin.ListPlanOffers)
		admin.POST("/plan-offers", h.Admin.CreatePlanOffer)
		admin.PUT("/plan-offers/:id", h.Admin.UpdatePlanOffer)
		admin.DELETE("/plan-offers/:id", h.Admin.DeletePlanOffer)

		admin.GET("/settings", h.Admin.ListSettings)
		admin.PUT("/settings", h.Admin.UpsertSetting)

		admin.GET("/statistics", h.Admin.Overview)
	}

	return r
}
