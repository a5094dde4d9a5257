package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"showroomos/internal/domain"
	"showroomos/internal/handler"
	"showroomos/internal/middleware"
	"showroomos/internal/service"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Tenant      *handler.TenantHandler
	User        *handler.UserHandler
	Customer    *handler.CustomerHandler
	Employee    *handler.EmployeeHandler
	Appointment *handler.AppointmentHandler
	Invoice     *handler.InvoiceHandler
	Attachment  *handler.AttachmentHandler
	Export      *handler.ExportHandler
	Tax         *handler.TaxHandler
	Stats       *handler.StatsHandler
	Health      *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, corsOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))
	r.Use(middleware.Metrics())

	// Health checks and operational endpoints
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.POST("/register", h.Auth.Register)

	// Public GSTIN validation (no tenant context needed)
	v1.POST("/tax/gstin-check", h.Tax.CheckGSTIN)

	// Protected routes - require valid JWT and an active tenant
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.TenantGuard())

	// Tax previews
	protected.POST("/tax/quote", h.Tax.Quote)
	protected.GET("/tax/quote-inclusive", h.Tax.QuoteInclusive)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Customer routes
	customers := protected.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.GetByID)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Customer.Delete)

	// Employee routes
	employees := protected.Group("/employees")
	employees.POST("", middleware.RequireRole(domain.RoleAdmin), h.Employee.Create)
	employees.GET("", h.Employee.List)
	employees.GET("/:id", h.Employee.GetByID)
	employees.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Employee.Update)
	employees.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Employee.Delete)

	// Appointment routes
	appointments := protected.Group("/appointments")
	appointments.POST("", h.Appointment.Create)
	appointments.GET("", h.Appointment.List)
	appointments.GET("/:id", h.Appointment.GetByID)
	appointments.PUT("/:id", h.Appointment.Update)
	appointments.DELETE("/:id", h.Appointment.Delete)

	// Invoice routes
	invoices := protected.Group("/invoices")
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/export/csv", h.Export.ExportCSV)
	invoices.GET("/export/xlsx", h.Export.ExportExcel)
	invoices.POST("/emi-reminders", h.Invoice.SendReminders)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.POST("/:id/cancel", h.Invoice.Cancel)
	invoices.POST("/:id/pay", h.Invoice.MarkPaid)
	invoices.POST("/:id/installments/:installmentId/pay", h.Invoice.PayInstallment)
	invoices.GET("/:id/print", h.Invoice.Print)
	invoices.POST("/:id/attachments", h.Attachment.Upload)
	invoices.GET("/:id/attachments", h.Attachment.ListByInvoice)

	// Attachment routes
	attachments := protected.Group("/attachments")
	attachments.GET("/:id/download", h.Attachment.Download)
	attachments.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Attachment.Delete)

	// Dashboard stats
	protected.GET("/stats", h.Stats.GetStats)

	// Admin routes - tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/tenants", h.Tenant.Create)
	admin.GET("/tenants", h.Tenant.List)
	admin.GET("/tenants/:id", h.Tenant.GetByID)
	admin.PUT("/tenants/:id", h.Tenant.Update)
	admin.DELETE("/tenants/:id", h.Tenant.Delete)

	return r
}
