package email

import "fmt"

// SMTPConfig are the user's mail-server settings. Secure selects
// implicit SSL/TLS (typically port 465); otherwise STARTTLS is attempted
// opportunistically.
type SMTPConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Secure bool   `json:"secure"`
	User   string `json:"user"`
	Pass   string `json:"pass"`
}

// Config is the email variant of the channel configuration union.
type Config struct {
	SMTP      SMTPConfig `json:"smtp"`
	Recipient string     `json:"recipient"`
}

// ChannelType implements dispatch.Config.
func (Config) ChannelType() string { return Type }

// Validate implements dispatch.Config.
func (c Config) Validate() error {
	if c.SMTP.Host == "" {
		return fmt.Errorf("%w: smtp host is required", ErrIncompleteConfig)
	}
	if c.SMTP.User == "" {
		return fmt.Errorf("%w: smtp user is required", ErrIncompleteConfig)
	}
	if c.Recipient == "" {
		return fmt.Errorf("%w: recipient is required", ErrIncompleteConfig)
	}
	return nil
}
