package noop

import (
	"context"
	"log"
	"time"

	"showroomos/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs to stdout. Used in
// development and tests where no SES credentials exist.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendAppointmentConfirmation(_ context.Context, toEmail, toName, showroomName string, scheduledAt time.Time) error {
	log.Printf("[NOOP EMAIL] Appointment confirmation for %s (%s) at %s: %s",
		toName, toEmail, showroomName, scheduledAt.Format(time.RFC1123))
	return nil
}

func (s *noopSender) SendEMIReminder(_ context.Context, toEmail, toName, invoiceNumber string, amount float64, dueDate time.Time) error {
	log.Printf("[NOOP EMAIL] EMI reminder for %s (%s): invoice %s, %.2f due on %s",
		toName, toEmail, invoiceNumber, amount, dueDate.Format("02 Jan 2006"))
	return nil
}
