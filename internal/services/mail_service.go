package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
)

type IMailService interface {
	SendApplicationAccepted(to, recipientName, collaborationTitle string) error
}

// SMTPConfig holds SMTP connection and branding settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	AppName  string
}

type smtpMailService struct {
	cfg SMTPConfig
	tpl *template.Template
}

const acceptedMailTemplate = `<html>
<body style="font-family:Arial,sans-serif">
  <h2>{{.AppName}}</h2>
  <p>Hola {{.Name}},</p>
  <p>Tu aplicación a la colaboración <strong>{{.Title}}</strong> fue aceptada.</p>
  <p>El restaurante se pondrá en contacto contigo para coordinar los detalles.</p>
</body>
</html>`

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg: cfg,
		tpl: template.Must(template.New("accepted").Parse(acceptedMailTemplate)),
	}
}

func (m *smtpMailService) SendApplicationAccepted(to, recipientName, collaborationTitle string) error {
	var body bytes.Buffer
	err := m.tpl.Execute(&body, map[string]string{
		"AppName": m.cfg.AppName,
		"Name":    recipientName,
		"Title":   collaborationTitle,
	})
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Aplicación aceptada - %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.cfg.From, to, collaborationTitle, body.String())

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
}

// NoopMailService is used when SMTP is not configured.
type NoopMailService struct{}

func (NoopMailService) SendApplicationAccepted(to, recipientName, collaborationTitle string) error {
	log.Printf("mail disabled: skipping acceptance mail to %s", to)
	return nil
}
