package utils

import (
	"html/template"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// MailConfig holds the SMTP settings used for notification mail.
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Mailer sends notification mail over SMTP.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

func NewMailer(config MailConfig) *Mailer {
	return &Mailer{
		from:   config.User,
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
	}
}

var notificationTemplate = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>{{.Title}}</title>
	<style>
		body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
		.container { background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px; }
		h1 { color: #333333; }
		p { color: #666666; }
	</style>
</head>
<body>
	<div class="container">
		<h1>{{.Title}}</h1>
		<p>{{.Description}}</p>
	</div>
</body>
</html>
`))

// BuildNotificationMessage renders a notification into a mail message.
func (m *Mailer) BuildNotificationMessage(to, title, description string) (*gomail.Message, error) {
	var body strings.Builder
	if err := notificationTemplate.Execute(&body, struct{ Title, Description string }{title, description}); err != nil {
		return nil, errors.Wrap(err, "failed to render notification mail")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "HomoCure: "+title)
	msg.SetBody("text/plain", title+"\n\n"+description)
	msg.AddAlternative("text/html", body.String())
	return msg, nil
}

// SendNotification mails a notification to a single recipient.
func (m *Mailer) SendNotification(to, title, description string) error {
	msg, err := m.BuildNotificationMessage(to, title, description)
	if err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send notification mail")
	}
	return nil
}
