package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendAppointmentConfirmation(ctx context.Context, toEmail, toName, showroomName string, scheduledAt time.Time) error {
	args := m.Called(ctx, toEmail, toName, showroomName, scheduledAt)
	return args.Error(0)
}

func (m *MockEmailSender) SendEMIReminder(ctx context.Context, toEmail, toName, invoiceNumber string, amount float64, dueDate time.Time) error {
	args := m.Called(ctx, toEmail, toName, invoiceNumber, amount, dueDate)
	return args.Error(0)
}
