package communication

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Notifier posts short operational notices.
type Notifier interface {
	Info(message string) error
	Error(message string) error
}

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

// ConnectSlack returns a Slack notifier, or a Noop one when no bot token
// is configured.
func ConnectSlack(token string, options SlackOption) Notifier {
	if token == "" {
		return Noop{}
	}
	return NewSlack(token, options)
}

func NewSlack(token string, options SlackOption) *Slack {
	client := slack.New(token)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	if channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}

// Noop drops every notice.
type Noop struct{}

func (Noop) Info(string) error  { return nil }
func (Noop) Error(string) error { return nil }
