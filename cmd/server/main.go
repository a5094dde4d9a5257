package main

import (
	"fmt"
	"log"

	_ "showroomos/docs"
	"showroomos/internal/config"
	"showroomos/internal/email/noop"
	"showroomos/internal/email/ses"
	"showroomos/internal/gst"
	"showroomos/internal/handler"
	"showroomos/internal/port"
	"showroomos/internal/repository/postgres"
	"showroomos/internal/repository/rediscache"
	"showroomos/internal/router"
	"showroomos/internal/service"
	s3storage "showroomos/internal/storage/s3"
)

// @title ShowroomOS API
// @version 1.0
// @description Multi-tenant showroom management backend: customers, employees, appointments, GST invoicing with EMI schedules, and dashboards.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	employeeRepo := postgres.NewEmployeeRepo(db)
	appointmentRepo := postgres.NewAppointmentRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	attachmentRepo := postgres.NewInvoiceAttachmentRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize infrastructure
	statsCache := rediscache.NewStatsCache(&cfg.Redis)

	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	calc := gst.NewCalculator(gst.Config{
		HomeState:      cfg.Tax.HomeState,
		HomeStateCode:  cfg.Tax.HomeStateCode,
		IntraStateRate: cfg.Tax.IntraStateRate,
		InterStateRate: cfg.Tax.InterStateRate,
	})

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	registrationSvc := service.NewRegistrationService(tenantRepo, userRepo, authSvc)
	tenantSvc := service.NewTenantService(tenantRepo)
	userSvc := service.NewUserService(userRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo, customerRepo, tenantRepo, emailSender)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, tenantRepo, calc, cfg.EMI, emailSender, statsCache)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, invoiceRepo, s3Client, &cfg.S3)
	statsSvc := service.NewStatsService(statsRepo, statsCache)

	// Initialize handlers
	handlers := router.Handlers{
		Auth:        handler.NewAuthHandler(authSvc, registrationSvc),
		Tenant:      handler.NewTenantHandler(tenantSvc),
		User:        handler.NewUserHandler(userSvc),
		Customer:    handler.NewCustomerHandler(customerSvc),
		Employee:    handler.NewEmployeeHandler(employeeSvc),
		Appointment: handler.NewAppointmentHandler(appointmentSvc),
		Invoice:     handler.NewInvoiceHandler(invoiceSvc),
		Attachment:  handler.NewAttachmentHandler(attachmentSvc),
		Export:      handler.NewExportHandler(invoiceSvc, tenantSvc),
		Tax:         handler.NewTaxHandler(invoiceSvc, calc),
		Stats:       handler.NewStatsHandler(statsSvc),
		Health:      handler.NewHealthHandler(db, statsCache),
	}

	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, handlers)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
