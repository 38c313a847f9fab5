// Package telegram delivers notifications through the Telegram Bot API.
//
// Each user configures their own bot token and target chat. Chat targets
// may be numeric chat IDs or @channel usernames. Messages are sent as
// Markdown with the title bolded above the content.
package telegram
