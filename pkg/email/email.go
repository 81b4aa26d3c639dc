package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// Enabled reports whether SMTP credentials are configured.
func (s *EmailService) Enabled() bool {
	return s.config.SMTPHost != "" && s.config.SMTPUsername != ""
}

// SendBirthdayEmail sends a birthday greeting to a customer
func (s *EmailService) SendBirthdayEmail(toEmail, customerName string) error {
	htmlContent, err := s.renderTemplate("birthday", birthdayTemplate, emailData{
		CustomerName: customerName,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Feliz Aniversário, %s! 🎂", customerName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendWithRetry(toEmail, message)
}

// SendInactiveEmail sends a we-miss-you email to an inactive customer
func (s *EmailService) SendInactiveEmail(toEmail, customerName string, daysInactive int) error {
	htmlContent, err := s.renderTemplate("inactive", inactiveTemplate, emailData{
		CustomerName: customerName,
		Days:         daysInactive,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Sentimos sua falta, %s!", customerName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendWithRetry(toEmail, message)
}

// SendQuoteFollowUpEmail sends a follow-up for an open quote
func (s *EmailService) SendQuoteFollowUpEmail(toEmail, customerName, quoteTotal string, daysOpen int) error {
	htmlContent, err := s.renderTemplate("quote_followup", quoteFollowUpTemplate, emailData{
		CustomerName: customerName,
		QuoteTotal:   quoteTotal,
		Days:         daysOpen,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Seu orçamento está esperando, %s", customerName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendWithRetry(toEmail, message)
}

// SendTestEmail sends a test email to verify SMTP configuration
func (s *EmailService) SendTestEmail(toEmail string) error {
	htmlContent, err := s.renderTemplate("test", testTemplate, emailData{})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildHTMLEmail(toEmail, "Teste de envio de email", htmlContent)

	return s.sendWithRetry(toEmail, message)
}

// sendWithRetry attempts delivery up to maxAttempts times, waiting
// between attempts. SMTP providers throttle bursts of greetings.
func (s *EmailService) sendWithRetry(to string, message []byte) error {
	const maxAttempts = 3
	const retryDelay = 2 * time.Second

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if lastErr = s.sendEmail(to, message); lastErr == nil {
			return nil
		}
		if attempt < maxAttempts {
			time.Sleep(retryDelay)
		}
	}

	return fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

type emailData struct {
	CustomerName string
	QuoteTotal   string
	Days         int
}

func (s *EmailService) renderTemplate(name, text string, data emailData) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

const birthdayTemplate = `
<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>Feliz Aniversário</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #f093fb 0%, #f5576c 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px;">🎂 Feliz Aniversário!</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Olá, <strong>{{.CustomerName}}</strong>!
                            </p>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Hoje é um dia muito especial e não poderíamos deixar de desejar um feliz aniversário!
                                Que seu novo ano seja repleto de saúde, alegria e conquistas.
                            </p>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Aproveite seu dia! 🎉
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

const inactiveTemplate = `
<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>Sentimos sua falta</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px;">Sentimos sua falta!</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Olá, <strong>{{.CustomerName}}</strong>!
                            </p>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Já faz <strong>{{.Days}} dias</strong> desde sua última compra e queremos você de volta.
                                Temos novidades que podem te interessar!
                            </p>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Entre em contato conosco e confira nossas ofertas.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

const quoteFollowUpTemplate = `
<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>Seu orçamento está esperando</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #43e97b 0%, #38f9d7 100%); padding: 40px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 28px;">📋 Seu orçamento está esperando</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Olá, <strong>{{.CustomerName}}</strong>!
                            </p>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Seu orçamento no valor de <strong>R$ {{.QuoteTotal}}</strong> está aberto há
                                <strong>{{.Days}} dias</strong>. Podemos ajudar a fechar seu pedido?
                            </p>
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Responda este email ou fale com seu vendedor.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

const testTemplate = `
<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>Teste de envio</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden;">
                    <tr>
                        <td style="padding: 40px 30px;">
                            <p style="color: #4a5568; font-size: 16px; line-height: 1.6;">
                                Este é um email de teste. Se você o recebeu, a configuração SMTP está funcionando.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
