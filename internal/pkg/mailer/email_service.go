package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendPublishNotice(toEmail, actor string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

// SendPublishNotice tells the site owner that the landing page changed and
// who changed it.
func (s *emailService) SendPublishNotice(toEmail, actor string) error {
	if actor == "" {
		actor = "an editor"
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Landing page updated")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Landing page updated</h2>
			<p>The landing page was just republished by %s.</p>
			<p>Open the admin dashboard to review the new content.</p>
		</div>
	`, actor)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
