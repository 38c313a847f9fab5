package email

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/dmitrymomot/remindkit/pkg/dispatch"
)

// Type is the channel's registry key.
const Type = "email"

// defaultPort is used when the stored configuration omits the SMTP port.
const defaultPort = 587

// senderName is the display name on outgoing reminders.
const senderName = "Calendar Reminder"

// sendFunc performs the actual SMTP delivery; replaced in tests.
type sendFunc func(ctx context.Context, cfg Config, msg *mail.Msg) error

// Channel sends notifications through the user's own SMTP server.
type Channel struct {
	timeout time.Duration
	send    sendFunc
}

// Option configures a Channel.
type Option func(*Channel)

// WithTimeout bounds the SMTP dial-and-send. Non-positive values are
// ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Channel) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithSendFunc replaces the SMTP delivery function. Testing only.
func WithSendFunc(fn sendFunc) Option {
	return func(c *Channel) {
		if fn != nil {
			c.send = fn
		}
	}
}

// New creates an email channel.
func New(opts ...Option) *Channel {
	c := &Channel{
		timeout: 15 * time.Second,
	}
	c.send = c.smtpSend

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Type implements dispatch.Channel.
func (c *Channel) Type() string { return Type }

// DecodeConfig implements dispatch.Channel.
func (c *Channel) DecodeConfig(payload json.RawMessage) (dispatch.Config, error) {
	var cfg Config
	if err := json.Unmarshal(payload, &cfg); err != nil {
		return nil, fmt.Errorf("email: decode config: %w", err)
	}
	return cfg, nil
}

// Send implements dispatch.Channel.
func (c *Channel) Send(ctx context.Context, n dispatch.Notification, cfg dispatch.Config) dispatch.Result {
	conf, ok := cfg.(Config)
	if !ok {
		return failed(fmt.Sprintf("unexpected config type %T", cfg))
	}
	if err := conf.Validate(); err != nil {
		return failed(err.Error())
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(senderName, conf.SMTP.User); err != nil {
		return failed(fmt.Sprintf("invalid sender address: %s", err))
	}
	if err := msg.To(conf.Recipient); err != nil {
		return failed(fmt.Sprintf("invalid recipient address: %s", err))
	}
	msg.Subject(n.Title)
	msg.SetBodyString(mail.TypeTextPlain, n.Content)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody(n.Title, n.Content))

	if err := c.send(ctx, conf, msg); err != nil {
		return failed(err.Error())
	}

	return dispatch.Result{
		Channel: Type,
		Success: true,
		Message: fmt.Sprintf("delivered to %s", conf.Recipient),
	}
}

// smtpSend dials the configured server and sends the message.
func (c *Channel) smtpSend(ctx context.Context, cfg Config, msg *mail.Msg) error {
	port := cfg.SMTP.Port
	if port == 0 {
		port = defaultPort
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTP.User),
		mail.WithPassword(cfg.SMTP.Pass),
		mail.WithTimeout(c.timeout),
	}
	if cfg.SMTP.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.SMTP.Host, opts...)
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}

// htmlBody wraps the notification in the styled template used for all
// reminder mails.
func htmlBody(title, content string) string {
	escaped := strings.ReplaceAll(html.EscapeString(content), "\n", "<br>")

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #eee; border-radius: 5px;">
  <h2 style="color: #3498db;">%s</h2>
  <div style="margin: 20px 0; line-height: 1.5;">%s</div>
  <div style="color: #7f8c8d; font-size: 12px; margin-top: 30px; border-top: 1px solid #eee; padding-top: 10px;">
    This reminder was sent automatically; please do not reply.
  </div>
</div>`, html.EscapeString(title), escaped)
}

func failed(message string) dispatch.Result {
	return dispatch.Result{Channel: Type, Message: message}
}
