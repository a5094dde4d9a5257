// Command remindemi emails every customer with a pending EMI installment due
// in the current month, across all active tenants. Intended to run from cron
// at the start of each month.
// Usage: go run ./cmd/remindemi
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"showroomos/internal/config"
	"showroomos/internal/email/noop"
	"showroomos/internal/email/ses"
	"showroomos/internal/gst"
	"showroomos/internal/port"
	"showroomos/internal/repository/postgres"
	"showroomos/internal/service"
)

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

	tenantRepo := postgres.NewTenantRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)

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
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, tenantRepo, calc, cfg.EMI, emailSender, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	now := time.Now()
	totalSent := 0
	offset := 0
	const pageSize = 100

	for {
		tenants, _, err := tenantRepo.List(ctx, offset, pageSize)
		if err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}
		if len(tenants) == 0 {
			break
		}

		for i := range tenants {
			t := &tenants[i]
			if !t.IsActive {
				continue
			}
			sent, err := invoiceSvc.SendEMIReminders(ctx, t.ID, now)
			if err != nil {
				log.Printf("WARNING: reminders for tenant %s (%s) failed: %v", t.Slug, t.ID, err)
				continue
			}
			if sent > 0 {
				log.Printf("tenant %s: sent %d reminders", t.Slug, sent)
			}
			totalSent += sent
		}

		offset += pageSize
	}

	log.Printf("done: %d reminders sent", totalSent)
	return nil
}
