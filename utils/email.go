package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// sendMail delivers a plain-text message through the configured SMTP relay.
// Without SMTP_HOST set the message is logged instead, which keeps local
// development free of mail credentials.
func sendMail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("========================================================")
		log.Printf("SIMULATING EMAIL To: %s", to)
		log.Printf("Subject: %s", subject)
		log.Printf("Body: %s", body)
		log.Println("========================================================")
		return nil
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = username
	}

	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", username, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// SendVerificationEmail mails the account verification link.
func SendVerificationEmail(to, token string) error {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", base, token)
	body := "Welcome to Dariza Fabrics!\n\nPlease verify your email by clicking the link below:\n" + link
	return sendMail(to, "Verify your email", body)
}

// SendOrderConfirmationEmail mails the customer after a paid order is
// recorded. Best effort, callers log and move on.
func SendOrderConfirmationEmail(to string, orderID uint) error {
	body := fmt.Sprintf("Thank you for your purchase!\n\nYour order #%d has been confirmed and will be shipped soon.", orderID)
	return sendMail(to, fmt.Sprintf("Order #%d confirmed", orderID), body)
}
