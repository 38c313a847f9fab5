package telegram

import "fmt"

// Config is the Telegram variant of the channel configuration union.
// ChatID holds either a numeric chat id or a @channel username.
type Config struct {
	BotToken string `json:"botToken"`
	ChatID   string `json:"chatId"`
}

// ChannelType implements dispatch.Config.
func (Config) ChannelType() string { return Type }

// Validate implements dispatch.Config.
func (c Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("%w: botToken is required", ErrIncompleteConfig)
	}
	if c.ChatID == "" {
		return fmt.Errorf("%w: chatId is required", ErrIncompleteConfig)
	}
	return nil
}
