package notification

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"text/template"
	"time"

	"go.uber.org/zap"

	"github.com/smukkama/crop-advisory/internal/alerting"
	"github.com/smukkama/crop-advisory/internal/protocol"
	"github.com/smukkama/crop-advisory/pkg/config"
)

// SendFunc matches smtp.SendMail
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailNotifier sends email notifications
type EmailNotifier struct {
	config *config.SMTPConfig
	logger *zap.Logger
	send   SendFunc
	now    func() time.Time
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(cfg *config.SMTPConfig, logger *zap.Logger) *EmailNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmailNotifier{
		config: cfg,
		logger: logger,
		send:   smtp.SendMail,
		now:    time.Now,
	}
}

var alertTemplate = template.Must(template.New("alert").Parse(`{{.Alert.Title}}

{{.Body}}
{{- if .Alert.Action}}

Action: {{.Alert.Action}}
{{- end}}

Severity: {{.Alert.Severity}}
Day: {{.Day}}
{{- if .Location}}
Location: {{.Location}}
{{- end}}

---
Crop Advisory Notification System
`))

// Subject prefixes the alert title with a severity marker
func Subject(alert alerting.WeatherAlert) string {
	switch alert.Severity {
	case alerting.SeverityDanger:
		return "🚨 " + alert.Title
	case alerting.SeverityWarning:
		return "⚠️ " + alert.Title
	default:
		return "ℹ️ " + alert.Title
	}
}

// Body is the notification text: the message, then the recommendation if any
func Body(alert alerting.WeatherAlert) string {
	if alert.Recommendation == "" {
		return alert.Message
	}
	return alert.Message + " - " + alert.Recommendation
}

// Render returns the subject and plain text body for n
func Render(n *protocol.AlertNotification) (string, string, error) {
	var buf bytes.Buffer
	err := alertTemplate.Execute(&buf, struct {
		*protocol.AlertNotification
		Body string
	}{n, Body(n.Alert)})
	if err != nil {
		return "", "", fmt.Errorf("failed to render email template: %w", err)
	}
	return Subject(n.Alert), buf.String(), nil
}

// SendAlertNotification sends an email for an alert notification
func (e *EmailNotifier) SendAlertNotification(_ context.Context, n *protocol.AlertNotification) error {
	subject, body, err := Render(n)
	if err != nil {
		return err
	}
	return e.sendEmail(subject, body)
}

func (e *EmailNotifier) sendEmail(subject, body string) error {
	// Skip sending if SMTP is not configured
	if e.config.Username == "" || e.config.Password == "" {
		e.logger.Info("SMTP not configured, skipping email",
			zap.String("subject", subject),
			zap.String("body", body))
		return nil
	}

	message := fmt.Sprintf("From: %s\r\n", e.config.From)
	message += fmt.Sprintf("To: %s\r\n", e.config.To)
	// Titles carry emoji and Devanagari
	message += fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	message += fmt.Sprintf("Date: %s\r\n", e.now().Format(time.RFC1123Z))
	message += "MIME-Version: 1.0\r\n"
	message += "Content-Type: text/plain; charset=UTF-8\r\n"
	message += "\r\n"
	message += body

	auth := smtp.PlainAuth("", e.config.Username, e.config.Password, e.config.Host)

	addr := fmt.Sprintf("%s:%d", e.config.Host, e.config.Port)
	if err := e.send(addr, auth, e.config.From, []string{e.config.To}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	e.logger.Info("email sent", zap.String("subject", subject))
	return nil
}

// TestConnection tests the SMTP connection
func (e *EmailNotifier) TestConnection() error {
	if e.config.Username == "" {
		return fmt.Errorf("SMTP not configured")
	}

	addr := fmt.Sprintf("%s:%d", e.config.Host, e.config.Port)
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	e.logger.Info("SMTP connection test successful", zap.String("addr", addr))
	return nil
}
