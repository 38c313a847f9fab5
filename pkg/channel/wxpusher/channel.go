package wxpusher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrymomot/remindkit/pkg/dispatch"
)

// Type is the channel's registry key.
const Type = "wxpusher"

// DefaultEndpoint is the WxPusher message API.
const DefaultEndpoint = "https://wxpusher.zjiecode.com/api/send/message"

// contentTypeText selects plain-text rendering on the provider side.
const contentTypeText = 1

// Channel sends notifications through the WxPusher HTTP API.
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

// WithEndpoint overrides the message API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Channel) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// New creates a WxPusher channel. The default client carries a bounded
// timeout so a hanging provider surfaces as an ordinary failed result.
func New(opts ...Option) *Channel {
	c := &Channel{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: DefaultEndpoint,
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
		return nil, fmt.Errorf("wxpusher: decode config: %w", err)
	}
	return cfg, nil
}

// request is the provider's message payload shape.
type request struct {
	AppToken    string   `json:"appToken"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	ContentType int      `json:"contentType"`
	UIDs        []string `json:"uids,omitempty"`
	TopicIDs    []string `json:"topicIds,omitempty"`
}

// response is the provider's envelope.
type response struct {
	Code    int    `json:"code"`
	Msg     string `json:"msg"`
	Success bool   `json:"success"`
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

	body, err := json.Marshal(request{
		AppToken:    conf.AppToken,
		Content:     n.Content,
		Summary:     n.Title,
		ContentType: contentTypeText,
		UIDs:        conf.UIDs,
		TopicIDs:    conf.TopicIDs,
	})
	if err != nil {
		return failed(fmt.Sprintf("encode request: %s", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return failed(fmt.Sprintf("build request: %s", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return failed(err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return failed(fmt.Sprintf("read response: %s", err))
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return failed(fmt.Sprintf("unexpected response (status %d): %s", resp.StatusCode, raw))
	}

	return dispatch.Result{
		Channel: Type,
		Success: parsed.Success,
		Message: string(raw),
	}
}

func failed(message string) dispatch.Result {
	return dispatch.Result{Channel: Type, Message: message}
}
