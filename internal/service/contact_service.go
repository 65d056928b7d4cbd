package service

import (
	"bytes"
	"strings"
	"text/template"

	"gopkg.in/gomail.v2"
)

// ContactMessage is the transient contact-form payload; it is forwarded to
// the relay and never persisted.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// RelayConfig holds the SMTP relay identifiers. Host, Sender and Recipient
// are required before any dial; Username/Password are optional for relays
// that allow unauthenticated submission.
type RelayConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string
	Recipient string
}

// mailDialer abstracts gomail's dialer so tests can intercept the send.
type mailDialer interface {
	DialAndSend(messages ...*gomail.Message) error
}

// ContactDispatcher forwards contact-form submissions through an SMTP
// relay. There is no local queue, retry, or delivery confirmation beyond
// the relay's synchronous response.
type ContactDispatcher struct {
	cfg    RelayConfig
	dialer mailDialer
}

// NewContactDispatcher constructs a dispatcher; the dialer is only used
// once the configuration has been validated.
func NewContactDispatcher(cfg RelayConfig) *ContactDispatcher {
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	cfg.Port = port
	return &ContactDispatcher{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
	}
}

// Configured reports whether the three required relay identifiers are set;
// pages use it to hide the contact form when sending cannot work.
func (d *ContactDispatcher) Configured() bool {
	return len(d.missingConfig()) == 0
}

var contactBodyTemplate = template.Must(template.New("contact").Parse(
	`New inquiry from the website contact form.

Name:  {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}

{{.Message}}
`))

// Send validates the payload, fails fast with a ConfigError when a relay
// identifier is unset, and otherwise forwards the fields verbatim. Relay
// failures surface as a DeliveryError wrapping the dialer's error.
func (d *ContactDispatcher) Send(msg ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" {
		return &ValidationError{Reason: "name is required"}
	}
	email := strings.TrimSpace(msg.Email)
	if email == "" || !strings.Contains(email, "@") {
		return &ValidationError{Reason: "a valid email address is required"}
	}
	if strings.TrimSpace(msg.Message) == "" {
		return &ValidationError{Reason: "message is required"}
	}

	if missing := d.missingConfig(); len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}

	var body bytes.Buffer
	if err := contactBodyTemplate.Execute(&body, msg); err != nil {
		return &DeliveryError{Err: err}
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", d.cfg.Sender)
	mail.SetHeader("To", d.cfg.Recipient)
	mail.SetHeader("Reply-To", email)
	mail.SetHeader("Subject", "Website inquiry from "+strings.TrimSpace(msg.Name))
	mail.SetBody("text/plain", body.String())

	if err := d.dialer.DialAndSend(mail); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}

func (d *ContactDispatcher) missingConfig() []string {
	var missing []string
	if strings.TrimSpace(d.cfg.Host) == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if strings.TrimSpace(d.cfg.Sender) == "" {
		missing = append(missing, "CONTACT_SENDER")
	}
	if strings.TrimSpace(d.cfg.Recipient) == "" {
		missing = append(missing, "CONTACT_RECIPIENT")
	}
	return missing
}
