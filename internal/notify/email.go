// Package notify delivers the finished verification report to the uploader
// by email. Delivery is best-effort: missing SMTP configuration skips the
// send without affecting the verification result.
package notify

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/veriflowhq/veriflow/internal/config"
	"github.com/veriflowhq/veriflow/internal/core/model"
)

type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendResult emails the report to the recipient. Returns nil without
// sending when SMTP credentials are absent.
func (m *Mailer) SendResult(to string, report model.Report) error {
	if m.cfg.Host == "" || m.cfg.User == "" || m.cfg.Password == "" {
		log.Println("Email configuration missing, skipping result notification")
		return nil
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(from, "Document Verifier"))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Document Verification Update: "+report.Status())
	msg.SetBody("text/html", renderBody(report))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send result email: %w", err)
	}

	log.Printf("Verification email sent to %s", to)
	return nil
}

func renderBody(report model.Report) string {
	number := "N/A"
	if report.DocumentNumber != nil && *report.DocumentNumber != "" {
		number = *report.DocumentNumber
	}

	var checks strings.Builder
	for _, r := range report.Outcome.Results {
		color := "red"
		if r.Status == model.StatusPassed {
			color = "green"
		}
		fmt.Fprintf(&checks, `<li style="color: %s"><strong>%s</strong>: %s (%s)</li>`,
			color, r.Rule, r.Status, r.Details)
	}
	if checks.Len() == 0 {
		checks.WriteString("<li>No verification rules available</li>")
	}

	var body strings.Builder
	body.WriteString("<h2>Document Verification Results</h2>")
	fmt.Fprintf(&body, "<p>We have processed your uploaded <strong>%s</strong>.</p>",
		strings.ToUpper(string(report.Category)))
	body.WriteString("<h3>Summary</h3><ul>")
	fmt.Fprintf(&body, "<li><strong>Status:</strong> %s</li>", report.Status())
	fmt.Fprintf(&body, "<li><strong>Confidence Score:</strong> %.2f / 1.0</li>", report.Score)
	fmt.Fprintf(&body, "<li><strong>Document Number:</strong> %s</li>", number)
	body.WriteString("</ul><h3>Detailed Checks</h3><ul>")
	body.WriteString(checks.String())
	body.WriteString("</ul><p>Thank you,<br/>Document Verification Team</p>")
	return body.String()
}
