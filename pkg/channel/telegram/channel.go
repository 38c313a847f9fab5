package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmitrymomot/remindkit/pkg/dispatch"
)

// Type is the channel's registry key.
const Type = "telegram"

// Channel sends notifications through the Telegram Bot API.
type Channel struct {
	client   *http.Client
	endpoint string
}

// Option configures a Channel.
type Option func(*Channel)

// WithHTTPClient sets a custom HTTP client (custom transport, testing).
func WithHTTPClient(client *http.Client) Option {
	return func(c *Channel) {
		if client != nil {
			c.client = client
		}
	}
}

// WithEndpoint overrides the Bot API endpoint format string. Testing only.
func WithEndpoint(endpoint string) Option {
	return func(c *Channel) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// New creates a Telegram channel. The default client carries a bounded
// timeout so a hanging Bot API call surfaces as an ordinary failed result.
func New(opts ...Option) *Channel {
	c := &Channel{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: tgbotapi.APIEndpoint,
	}

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
		return nil, fmt.Errorf("telegram: decode config: %w", err)
	}
	return cfg, nil
}

// Send implements dispatch.Channel. The bot client is built per send
// because every user brings their own token.
func (c *Channel) Send(ctx context.Context, n dispatch.Notification, cfg dispatch.Config) dispatch.Result {
	conf, ok := cfg.(Config)
	if !ok {
		return failed(fmt.Sprintf("unexpected config type %T", cfg))
	}
	if err := conf.Validate(); err != nil {
		return failed(err.Error())
	}

	bot, err := tgbotapi.NewBotAPIWithClient(conf.BotToken, c.endpoint, c.client)
	if err != nil {
		return failed(fmt.Sprintf("authorize bot: %s", err))
	}

	text := fmt.Sprintf("*%s*\n\n%s", n.Title, n.Content)

	var msg tgbotapi.MessageConfig
	if chatID, perr := strconv.ParseInt(conf.ChatID, 10, 64); perr == nil {
		msg = tgbotapi.NewMessage(chatID, text)
	} else {
		msg = tgbotapi.NewMessageToChannel(conf.ChatID, text)
	}
	msg.ParseMode = tgbotapi.ModeMarkdown

	sent, err := bot.Send(msg)
	if err != nil {
		return failed(err.Error())
	}

	return dispatch.Result{
		Channel: Type,
		Success: true,
		Message: fmt.Sprintf("message %d delivered", sent.MessageID),
	}
}

func failed(message string) dispatch.Result {
	return dispatch.Result{Channel: Type, Message: message}
}
