// Package ses sends transactional customer email through Amazon SES v2.
package ses

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"showroomos/internal/port"
)

const dateLayout = "02 Jan 2006"

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender builds an EmailSender on top of SES v2 using the default
// AWS credential chain.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendAppointmentConfirmation(ctx context.Context, toEmail, toName, showroomName string, scheduledAt time.Time) error {
	when := scheduledAt.Format("Monday, 02 Jan 2006 at 3:04 PM")
	msg := message{
		subject: fmt.Sprintf("Your appointment at %s is confirmed", showroomName),
		html:    appointmentHTML(toName, showroomName, when),
		text: fmt.Sprintf("Hi %s,\n\nYour appointment at %s is confirmed for %s.\n\nWe look forward to seeing you.\n\n%s",
			toName, showroomName, when, showroomName),
	}
	return s.send(ctx, toEmail, msg)
}

func (s *sesSender) SendEMIReminder(ctx context.Context, toEmail, toName, invoiceNumber string, amount float64, dueDate time.Time) error {
	due := dueDate.Format(dateLayout)
	msg := message{
		subject: fmt.Sprintf("EMI installment due on %s", due),
		html:    emiReminderHTML(toName, invoiceNumber, amount, due),
		text: fmt.Sprintf("Hi %s,\n\nThis is a reminder that an installment of ₹%.2f against invoice %s is due on %s.\n\nPlease visit the showroom or contact us to make the payment.",
			toName, amount, invoiceNumber, due),
	}
	return s.send(ctx, toEmail, msg)
}

type message struct {
	subject string
	html    string
	text    string
}

func (s *sesSender) send(ctx context.Context, toEmail string, msg message) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)),
		Destination:      &types.Destination{ToAddresses: []string{toEmail}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(msg.html)},
					Text: &types.Content{Data: aws.String(msg.text)},
				},
			},
		},
	}
	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func appointmentHTML(name, showroomName, when string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Helvetica, Arial, sans-serif; max-width: 580px; margin: 0 auto; padding: 24px;">
  <h2 style="color: #222;">Appointment confirmed</h2>
  <p>Hi %s,</p>
  <p>Your appointment at <strong>%s</strong> is confirmed for:</p>
  <p style="text-align: center; margin: 28px 0; font-size: 18px;"><strong>%s</strong></p>
  <p>We look forward to seeing you.</p>
  <hr style="border: none; border-top: 1px solid #e5e5e5; margin: 24px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, name, showroomName, when, showroomName)
}

func emiReminderHTML(name, invoiceNumber string, amount float64, due string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Helvetica, Arial, sans-serif; max-width: 580px; margin: 0 auto; padding: 24px;">
  <h2 style="color: #222;">Installment reminder</h2>
  <p>Hi %s,</p>
  <p>This is a reminder that an installment against invoice <strong>%s</strong> is due:</p>
  <p style="text-align: center; margin: 28px 0; font-size: 18px;"><strong>₹%.2f on %s</strong></p>
  <p>Please visit the showroom or contact us to make the payment.</p>
</body>
</html>`, name, invoiceNumber, amount, due)
}
