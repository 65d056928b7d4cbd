package service

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(messages ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)
	return nil
}

func relayConfig() RelayConfig {
	return RelayConfig{
		Host:      "smtp.test",
		Port:      587,
		Sender:    "site@g8studio.id",
		Recipient: "hello@g8studio.id",
	}
}

func validMessage() ContactMessage {
	return ContactMessage{
		Name:    "Budi",
		Email:   "budi@example.com",
		Phone:   "+628123456789",
		Message: "I would like a consultation for a 2-bedroom apartment.",
	}
}

func TestContactSendDeliversMail(t *testing.T) {
	dialer := &fakeDialer{}
	dispatcher := NewContactDispatcher(relayConfig())
	dispatcher.dialer = dialer

	if err := dispatcher.Send(validMessage()); err != nil {
		t.Fatalf("failed to send message: %v", err)
	}
	if len(dialer.sent) != 1 {
		t.Fatalf("expected 1 mail, got %d", len(dialer.sent))
	}

	mail := dialer.sent[0]
	if got := mail.GetHeader("To"); len(got) != 1 || got[0] != "hello@g8studio.id" {
		t.Errorf("unexpected To header: %v", got)
	}
	if got := mail.GetHeader("Reply-To"); len(got) != 1 || got[0] != "budi@example.com" {
		t.Errorf("unexpected Reply-To header: %v", got)
	}
	if got := mail.GetHeader("Subject"); len(got) != 1 || !strings.Contains(got[0], "Budi") {
		t.Errorf("subject should carry the sender's name, got %v", got)
	}
}

func TestContactSendValidatesInput(t *testing.T) {
	dialer := &fakeDialer{}
	dispatcher := NewContactDispatcher(relayConfig())
	dispatcher.dialer = dialer

	cases := []struct {
		name string
		msg  ContactMessage
	}{
		{"blank name", ContactMessage{Email: "a@b.c", Message: "hi"}},
		{"blank email", ContactMessage{Name: "Budi", Message: "hi"}},
		{"malformed email", ContactMessage{Name: "Budi", Email: "not-an-email", Message: "hi"}},
		{"blank message", ContactMessage{Name: "Budi", Email: "a@b.c"}},
	}
	for _, tc := range cases {
		if err := dispatcher.Send(tc.msg); !IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", tc.name, err)
		}
	}
	if len(dialer.sent) != 0 {
		t.Errorf("invalid messages must not be dialed, got %d", len(dialer.sent))
	}
}

func TestContactSendFailsFastWithoutConfig(t *testing.T) {
	dialer := &fakeDialer{}
	dispatcher := NewContactDispatcher(RelayConfig{Host: "smtp.test"})
	dispatcher.dialer = dialer

	err := dispatcher.Send(validMessage())
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	for _, want := range []string{"CONTACT_SENDER", "CONTACT_RECIPIENT"} {
		if !containsString(cfgErr.Missing, want) {
			t.Errorf("missing list should name %s, got %v", want, cfgErr.Missing)
		}
	}
	if containsString(cfgErr.Missing, "SMTP_HOST") {
		t.Errorf("host is configured, missing list should not name it: %v", cfgErr.Missing)
	}
	if len(dialer.sent) != 0 {
		t.Error("no dial attempt should happen without full configuration")
	}
}

func TestContactSendWrapsDialFailure(t *testing.T) {
	dialFailure := errors.New("connection refused")
	dispatcher := NewContactDispatcher(relayConfig())
	dispatcher.dialer = &fakeDialer{err: dialFailure}

	err := dispatcher.Send(validMessage())
	var deliveryErr *DeliveryError
	if !errors.As(err, &deliveryErr) {
		t.Fatalf("expected DeliveryError, got %v", err)
	}
	if !errors.Is(err, dialFailure) {
		t.Errorf("delivery error should wrap the dial failure")
	}
}

func TestContactConfigured(t *testing.T) {
	if NewContactDispatcher(RelayConfig{}).Configured() {
		t.Error("empty config must not report as configured")
	}
	if !NewContactDispatcher(relayConfig()).Configured() {
		t.Error("full config should report as configured")
	}
}
