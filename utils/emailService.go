package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"lms/config"
)

// SendEmail sends an HTML mail through the configured SMTP account.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LMS <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered user. Called from a
// goroutine; failures are logged inside SendEmail and otherwise ignored.
func SendWelcomeEmail(email, username string) error {
	body := fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif;">
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. Once an administrator assigns a
		course to you, it will show up under your assigned courses.</p>
	</body>
	</html>`, username)

	return SendEmail([]string{email}, "Welcome to the learning platform", body)
}
