package port

import (
	"context"
	"time"
)

// EmailSender defines the contract for outbound transactional email.
type EmailSender interface {
	// SendAppointmentConfirmation notifies a customer that an appointment
	// was booked.
	SendAppointmentConfirmation(ctx context.Context, toEmail, toName, showroomName string, scheduledAt time.Time) error
	// SendEMIReminder notifies a customer of an upcoming installment.
	SendEMIReminder(ctx context.Context, toEmail, toName, invoiceNumber string, amount float64, dueDate time.Time) error
}
