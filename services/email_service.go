package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"

	"github.com/softjack/futebol-api/config"
)

type EmailService struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewEmailService(cfg *config.Config, logger *slog.Logger) *EmailService {
	return &EmailService{cfg: cfg, logger: logger}
}

func (s *EmailService) SendPasswordRecoveryEmail(userEmail, resetLink string) error {
	body, err := renderTemplate(passwordRecoveryTemplate, struct {
		ResetLink string
	}{ResetLink: resetLink})
	if err != nil {
		return fmt.Errorf("falha ao gerar corpo do email de recuperação: %w", err)
	}
	return s.send(userEmail, "Recuperar Senha - FutebolSort", body)
}

func (s *EmailService) SendWelcomeEmail(userEmail, nome string) error {
	body, err := renderTemplate(welcomeTemplate, struct {
		Nome string
	}{Nome: nome})
	if err != nil {
		return fmt.Errorf("falha ao gerar corpo do email de boas-vindas: %w", err)
	}
	return s.send(userEmail, "Bem-vindo ao FutebolSort", body)
}

func (s *EmailService) send(to, subject, body string) error {
	// Fora de produção os emails não saem; só registramos no log.
	if !s.cfg.IsProduction() {
		s.logger.Info("email não enviado (modo desenvolvimento)",
			slog.String("to", to),
			slog.String("subject", subject),
		)
		return nil
	}

	msg := []byte("To: " + to + "\r\n" +
		"From: " + s.cfg.SMTPFrom + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)

	tlsconfig := &tls.Config{
		ServerName: s.cfg.SMTPHost,
	}

	var client *smtp.Client
	if s.cfg.SMTPPort == 465 {
		// Conexão TLS direta (porta 465)
		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("erro de conexão TLS: %w", err)
		}
		defer conn.Close()
		client, err = smtp.NewClient(conn, s.cfg.SMTPHost)
		if err != nil {
			return fmt.Errorf("erro ao criar cliente SMTP: %w", err)
		}
	} else {
		// STARTTLS (porta 587)
		c, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("erro de conexão SMTP: %w", err)
		}
		client = c
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("erro no comando STARTTLS: %w", err)
		}
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("erro de autenticação SMTP: %w", err)
	}

	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("erro no MAIL FROM: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("erro no RCPT TO: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("erro no comando DATA: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("erro ao escrever mensagem: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("erro ao fechar DATA: %w", err)
	}

	return nil
}

func renderTemplate(tmpl *template.Template, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

var passwordRecoveryTemplate = template.Must(template.New("recuperacao").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: sans-serif; color: #333;">
  <h1>Recuperar senha</h1>
  <p>Recebemos um pedido para redefinir a sua senha no FutebolSort.</p>
  <p><a href="{{.ResetLink}}">Clique aqui para criar uma nova senha</a>. O link vale por 24 horas.</p>
  <p>Se você não pediu a redefinição, ignore este email.</p>
</body>
</html>`))

var welcomeTemplate = template.Must(template.New("boasvindas").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<body style="font-family: sans-serif; color: #333;">
  <h1>Bem-vindo, {{.Nome}}!</h1>
  <p>Sua conta no FutebolSort foi criada. Compartilhe o seu código com os jogadores para que eles se cadastrem sozinhos.</p>
</body>
</html>`))
