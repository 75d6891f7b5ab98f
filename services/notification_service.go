// services/notification_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"lifetrack-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

const emailTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0"/>
  <title>LifeTrack Notification</title>
</head>
<body style="background-color: #0e0b07; margin: 0; padding: 0;">
  <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: #0e0b07; padding: 40px 20px;">
    <tr>
      <td align="center">
        <div style="text-align: center; margin-bottom: 30px;">
          <div style="font-family: Georgia, serif; font-size: 28px; color: #ede5d8; letter-spacing: 0.08em;">
            life<span style="color: #c49a78;">·</span>track
          </div>
        </div>
        <table width="100%" cellpadding="0" cellspacing="0" border="0" style="max-width: 560px; background-color: #18150f; border: 1px solid #2e2820; border-radius: 20px;">
          <tr><td height="3" style="background-color: #c49a78;"></td></tr>
          <tr>
            <td style="padding: 40px 30px; text-align: center;">
              <div style="display: inline-block; background-color: #201c14; border: 1px solid #3a3020; border-radius: 30px; padding: 6px 18px; font-size: 11px; font-weight: bold; letter-spacing: 0.15em; text-transform: uppercase; color: #c49a78; margin-bottom: 16px;">
                {{.Subject}}
              </div>
              <h1 style="font-family: Georgia, serif; font-size: 32px; font-weight: normal; color: #ede5d8; margin: 0 0 10px 0;">{{.Heading}}</h1>
              <p style="font-size: 14px; color: #7a6e63; line-height: 1.6; margin: 0 0 30px 0;">{{.Body}}</p>
            </td>
          </tr>
        </table>
        <div style="margin-top: 30px; font-size: 10px; color: #3a3028;">© {{.Year}} LifeTrack · Made with care for your wellness journey.</div>
      </td>
    </tr>
  </table>
</body>
</html>`

var emailTmpl = template.Must(template.New("notification").Parse(emailTemplate))

// NotificationService delivers notifications over email (SMTP) or, when the
// user prefers it and has a phone on file, SMS/WhatsApp via Twilio. Every
// attempt is recorded as a NotificationLog row.
type NotificationService struct {
	db     *gorm.DB
	dialer *gomail.Dialer
	client *twilio.RestClient
	from   string
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if env := os.Getenv("SMTP_PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil {
			port = p
		}
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db:     db,
		dialer: gomail.NewDialer(host, port, user, pass),
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: user,
	}
}

// Send delivers one notification to the destination email address. The
// channel is chosen here, not by the caller: registered users who opted into
// SMS or WhatsApp and have a phone number get a text, everyone else email.
func (s *NotificationService) Send(destination, subject, body, heading string) error {
	channel, to := s.resolveChannel(destination)

	var err error
	switch channel {
	case models.ChannelSMS, models.ChannelWhatsApp:
		err = s.sendText(channel, to, heading, body)
	default:
		err = s.sendEmail(to, subject, body, heading, "", nil)
	}

	s.logNotification(destination, subject, channel, err)
	return err
}

// SendBackup emails a report with an HTML attachment. Backups always go over
// email regardless of channel preference.
func (s *NotificationService) SendBackup(to, subject, body, heading, filename string, attachment []byte) error {
	err := s.sendEmail(to, subject, body, heading, filename, attachment)
	s.logNotification(to, subject, models.ChannelEmail, err)
	return err
}

// resolveChannel looks up the user's notification preference by email.
// Unknown destinations (e.g. OTP codes for accounts not yet created) fall
// back to email.
func (s *NotificationService) resolveChannel(destination string) (string, string) {
	var user models.User
	err := s.db.Where("email = ?", destination).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to look up channel for %s: %v", destination, err)
		}
		return models.ChannelEmail, destination
	}

	switch user.NotifyChannel {
	case models.ChannelSMS, models.ChannelWhatsApp:
		if user.Phone != "" {
			return user.NotifyChannel, user.Phone
		}
	}
	return models.ChannelEmail, destination
}

func (s *NotificationService) sendEmail(to, subject, body, heading, filename string, attachment []byte) error {
	var html bytes.Buffer
	err := emailTmpl.Execute(&html, map[string]interface{}{
		"Subject": subject,
		"Heading": heading,
		"Body":    body,
		"Year":    time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.from, "LifeTrack"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html.String())
	if filename != "" {
		m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return err
	}
	log.Printf("Email sent to %s for %s", to, subject)
	return nil
}

func (s *NotificationService) sendText(channel, phone, heading, body string) error {
	to := phone
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if channel == models.ChannelWhatsApp && strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		from = "whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(fmt.Sprintf("%s — %s", heading, body))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send %s to %s: %v", channel, phone, err)
		return err
	}
	if resp.Sid != nil {
		log.Printf("%s sent to %s, SID: %s", channel, phone, *resp.Sid)
	} else {
		log.Printf("%s sent to %s, but no SID returned", channel, phone)
	}
	return nil
}

func (s *NotificationService) logNotification(email, subject, channel string, sendErr error) {
	entry := models.NotificationLog{
		Email:   email,
		Subject: subject,
		Status:  "sent",
		Channel: channel,
		SentAt:  time.Now(),
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.ErrorMessage = sendErr.Error()
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log notification for %s: %v", email, err)
	}
}
