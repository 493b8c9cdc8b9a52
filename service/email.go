package service

import (
	"fmt"

	"schoolms/config"

	"gopkg.in/gomail.v2"
)

// EmailService outgoing mail
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates an email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendAdmissionDecision notifies an applicant that their admission enquiry
// was approved or rejected
func (s *EmailService) SendAdmissionDecision(toEmail, applicantName, status, remarks string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("email service disabled, set email.enabled=true")
	}

	schoolName := "School Office"
	if config.GlobalConfig != nil && config.GlobalConfig.School.Name != "" {
		schoolName = config.GlobalConfig.School.Name
	}
	subject := fmt.Sprintf("[%s] Admission Application Update", schoolName)
	body := s.admissionDecisionBody(schoolName, applicantName, status, remarks)

	return s.sendEmail(toEmail, subject, body)
}

func (s *EmailService) admissionDecisionBody(schoolName, applicantName, status, remarks string) string {
	detail := ""
	if remarks != "" {
		detail = fmt.Sprintf(`<p style="color:#555;">Remarks: %s</p>`, remarks)
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; background: #f5f5f5; padding: 20px;">
	<div style="max-width: 600px; margin: 0 auto; background: #fff; border-radius: 8px; overflow: hidden;">
		<div style="background: #1d4ed8; color: #fff; padding: 24px; text-align: center;">
			<h1 style="margin:0; font-size: 20px;">%s</h1>
		</div>
		<div style="padding: 30px;">
			<p>Dear %s,</p>
			<p>Your admission application status has been updated to: <strong>%s</strong>.</p>
			%s
			<p>Please contact the school office for the next steps.</p>
		</div>
		<div style="background: #f8f9fa; padding: 16px; text-align: center; color: #6c757d; font-size: 12px;">
			This is an automated message, please do not reply.
		</div>
	</div>
</body>
</html>`, schoolName, applicantName, status, detail)
}

// sendEmail sends one HTML mail through the configured SMTP server
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
