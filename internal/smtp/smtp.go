package smtp

import (
	"context"
	"fmt"

	"github.com/JMURv/bloggers-auth/internal/config"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const (
	confirmationSubject = "Confirm your registration"
	recoverySubject     = "Password recovery"
)

const confirmationBody = `<h1>Thank you for your registration</h1>
<p>To finish registration please follow the link below:
	<a href="%s/confirm-email?code=%s">complete registration</a>
</p>`

const recoveryBody = `<h1>Password recovery</h1>
<p>To finish password recovery please follow the link below:
	<a href="%s/password-recovery?recoveryCode=%s">recovery password</a>
</p>`

type EmailServer struct {
	server       string
	port         int
	user         string
	pass         string
	serverConfig config.ServerConfig
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		server:       conf.Email.Server,
		port:         conf.Email.Port,
		user:         conf.Email.User,
		pass:         conf.Email.Pass,
		serverConfig: conf.Server,
	}
}

func (s *EmailServer) GetMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

func (s *EmailServer) Send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *EmailServer) SendConfirmationCode(ctx context.Context, toEmail, code string) error {
	const op = "smtp.SendConfirmationCode"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := s.Send(s.confirmationMessage(toEmail, code)); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}

func (s *EmailServer) SendRecoveryCode(ctx context.Context, toEmail, code string) error {
	const op = "smtp.SendRecoveryCode"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := s.Send(s.recoveryMessage(toEmail, code)); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		return err
	}
	return nil
}

func (s *EmailServer) confirmationMessage(toEmail, code string) *gomail.Message {
	m := s.GetMessageBase(confirmationSubject, toEmail)
	m.SetBody("text/html", s.confirmationHTML(code))
	return m
}

func (s *EmailServer) recoveryMessage(toEmail, code string) *gomail.Message {
	m := s.GetMessageBase(recoverySubject, toEmail)
	m.SetBody("text/html", s.recoveryHTML(code))
	return m
}

func (s *EmailServer) confirmationHTML(code string) string {
	return fmt.Sprintf(confirmationBody, s.baseURL(), code)
}

func (s *EmailServer) recoveryHTML(code string) string {
	return fmt.Sprintf(recoveryBody, s.baseURL(), code)
}

func (s *EmailServer) baseURL() string {
	return fmt.Sprintf("%s://%s", s.serverConfig.Scheme, s.serverConfig.Domain)
}
