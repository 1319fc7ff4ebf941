package utils

import (
	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{host: host, port: port, user: user, password: password, from: from}
}

func (e *EmailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(e.host, e.port, e.user, e.password)
	return d.DialAndSend(m)
}
