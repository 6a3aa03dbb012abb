package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendInterviewLink(toEmail, candidateName, interviewLink, interviewerName string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

func (s *emailService) SendInterviewLink(toEmail, candidateName, interviewLink, interviewerName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Technical Interview Invitation")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; color: #333;">
			<h2>Hello %s,</h2>
			<p>%s has invited you to a timed technical interview.</p>
			<p>The interview consists of 6 questions of increasing difficulty. Each question has its own time limit, so find a quiet place before you begin.</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">Start Interview</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>Good luck!</p>
		</div>
	`, candidateName, interviewerName, interviewLink, interviewLink)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
