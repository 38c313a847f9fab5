package wxpusher

import "fmt"

// Config is the WxPusher variant of the channel configuration union.
type Config struct {
	AppToken string   `json:"appToken"`
	UIDs     []string `json:"uids,omitempty"`
	TopicIDs []string `json:"topicIds,omitempty"`
}

// ChannelType implements dispatch.Config.
func (Config) ChannelType() string { return Type }

// Validate implements dispatch.Config. A message needs the application
// token and at least one target.
func (c Config) Validate() error {
	if c.AppToken == "" {
		return fmt.Errorf("%w: appToken is required", ErrIncompleteConfig)
	}
	if len(c.UIDs) == 0 && len(c.TopicIDs) == 0 {
		return fmt.Errorf("%w: at least one of uids or topicIds is required", ErrIncompleteConfig)
	}
	return nil
}
