package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"momentum/config"
	"momentum/models"
)

var smtpConfig *config.Config

// InitEmail stores the SMTP settings for the senders below
func InitEmail(cfg *config.Config) {
	smtpConfig = cfg
}

func sendMail(to, subject, htmlBody string) error {
	if smtpConfig == nil {
		return fmt.Errorf("email not configured")
	}
	c := smtpConfig.SMTP

	auth := smtp.PlainAuth("", c.Username, c.Password, c.Host)
	msg := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"From: %s <%s>\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"%s\r\n",
		to, c.SenderName, c.SenderEmail, subject, htmlBody))

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	if err := smtp.SendMail(addr, auth, c.SenderEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOTPEmail sends a two-factor verification code
func SendOTPEmail(email, code string) error {
	body := fmt.Sprintf(
		"<p>Your verification code is: <strong>%s</strong></p>"+
			"<p>This code will expire in 10 minutes.</p>",
		code)
	return sendMail(email, "Your Momentum verification code", body)
}

// SendReminderEmail sends the daily habit reminder listing today's habits
func SendReminderEmail(user *models.User, habits []models.Habit) error {
	if len(habits) == 0 {
		return nil
	}

	var list strings.Builder
	for _, h := range habits {
		fmt.Fprintf(&list, "<li>%s <small>(%s)</small></li>", h.Name, h.Frequency)
	}

	body := fmt.Sprintf(
		"<h2>Hello %s!</h2>"+
			"<p>Time to check off your daily habits:</p>"+
			"<ul>%s</ul>"+
			"<p>Keep your streaks alive!</p>",
		user.Name, list.String())
	return sendMail(user.Email, "Your Daily Habit Reminder", body)
}

// SendCollaborationEmail notifies a user that an item was shared with them
func SendCollaborationEmail(email, inviterName, itemName, itemType string) error {
	body := fmt.Sprintf(
		"<h2>Collaboration Invitation</h2>"+
			"<p><strong>%s</strong> has shared a %s with you:</p>"+
			"<p><strong>%s</strong></p>",
		inviterName, itemType, itemName)
	return sendMail(email, fmt.Sprintf("%s shared a %s with you", inviterName, itemType), body)
}
