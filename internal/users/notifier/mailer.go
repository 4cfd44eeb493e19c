package notifier

import (
	"bytes"
	"net/mail"
	"text/template"

	"userdir/internal/users/model"

	"gopkg.in/gomail.v2"
)

// Mailer sends the registration mail for a newly created user.
type Mailer interface {
	SendRegistrationEmail(user *model.User) error
}

// MailConfig holds the SMTP settings for the registration mailer.
type MailConfig struct {
	Host        string `env:"SMTP_HOST"         envDefault:"localhost"`
	Port        int    `env:"SMTP_PORT"         envDefault:"25"`
	Username    string `env:"SMTP_USERNAME"     envDefault:""`
	Password    string `env:"SMTP_PASSWORD"     envDefault:""`
	FromAddress string `env:"SMTP_FROM_ADDRESS" envDefault:"no-reply@localhost"`
	FromName    string `env:"SMTP_FROM_NAME"    envDefault:"User Directory"`
	Subject     string `env:"SMTP_SUBJECT"      envDefault:"Welcome to the platform"`
}

const registrationTemplate = `Hello {{.Name}},

An account has been created for you on the platform.
You can sign in with this address: {{.Email}}.
`

type smtpMailer struct {
	conf MailConfig
	tmpl *template.Template
	dial *gomail.Dialer
}

// NewSMTPMailer builds a gomail-backed Mailer.
func NewSMTPMailer(conf MailConfig) (Mailer, error) {
	tmpl, err := template.New("registration").Parse(registrationTemplate)
	if err != nil {
		return nil, err
	}
	return &smtpMailer{
		conf: conf,
		tmpl: tmpl,
		dial: gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password),
	}, nil
}

func (m *smtpMailer) SendRegistrationEmail(user *model.User) error {
	buff := new(bytes.Buffer)
	if err := m.tmpl.Execute(buff, user); err != nil {
		return err
	}

	from := mail.Address{Name: m.conf.FromName, Address: m.conf.FromAddress}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from.String())
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", m.conf.Subject)
	msg.SetBody("text/plain", buff.String())

	return m.dial.DialAndSend(msg)
}
