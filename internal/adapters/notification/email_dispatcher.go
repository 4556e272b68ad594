package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/murphysheldon05/tsmroofpro-sub002/internal/core/domain"
	portssvc "github.com/murphysheldon05/tsmroofpro-sub002/internal/core/ports/services"
	"github.com/murphysheldon05/tsmroofpro-sub002/internal/middleware"
)

// EmailConfig holds SMTP delivery settings. When Host is empty the
// dispatcher only logs the event.
type EmailConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	Recipients []string
}

type emailDispatcher struct {
	cfg EmailConfig
}

// NewEmailDispatcher creates a dispatcher that delivers workflow events
// by email when SMTP is configured, falling back to structured logging.
func NewEmailDispatcher(cfg EmailConfig) portssvc.NotificationDispatcher {
	return &emailDispatcher{cfg: cfg}
}

func (d *emailDispatcher) Dispatch(ctx context.Context, event domain.NotificationEvent) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.InfoContext(ctx, "Dispatching commission notification",
		"type", string(event.Type),
		"commission_id", event.CommissionID,
		"job_name", event.JobName,
		"status", string(event.Status))

	if d.cfg.Host == "" || len(d.cfg.Recipients) == 0 {
		return nil
	}

	subject := subjectFor(event)
	body := buildBody(event)

	msg := strings.Builder{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", d.cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(d.cfg.Recipients, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", d.cfg.Host, d.cfg.Port)
	var auth smtp.Auth
	if d.cfg.Username != "" {
		auth = smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, d.cfg.From, d.cfg.Recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

func subjectFor(event domain.NotificationEvent) string {
	switch event.Type {
	case domain.NotificationApproved:
		return fmt.Sprintf("Commission Approved - %s", event.JobName)
	case domain.NotificationDenied:
		return fmt.Sprintf("Commission Denied - %s", event.JobName)
	case domain.NotificationRevisionRequired:
		return fmt.Sprintf("Revision Required - %s", event.JobName)
	default:
		return fmt.Sprintf("Commission Update - %s", event.JobName)
	}
}

func buildBody(event domain.NotificationEvent) string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("Submission: %s\n", event.SubmissionType))
	b.WriteString(fmt.Sprintf("Job: %s\n", event.JobName))
	if event.JobAddress != "" {
		b.WriteString(fmt.Sprintf("Address: %s\n", event.JobAddress))
	}
	b.WriteString(fmt.Sprintf("Submitted by: %s\n", event.SubmitterName))
	if event.ContractAmount != nil {
		b.WriteString(fmt.Sprintf("Contract amount: %s\n", event.ContractAmount.StringFixed(2)))
	}
	if event.NetOwed != nil {
		b.WriteString(fmt.Sprintf("Net owed: %s\n", event.NetOwed.StringFixed(2)))
	}
	b.WriteString(fmt.Sprintf("Status: %s\n", string(event.Status)))
	if event.Notes != "" {
		b.WriteString(fmt.Sprintf("Notes: %s\n", event.Notes))
	}
	return b.String()
}
