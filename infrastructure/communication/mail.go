package communication

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type EmailInfo struct {
	From    string
	To      []string
	Subject string
	Text    string
}

// Mailer delivers a plain text email.
type Mailer interface {
	Send(ctx context.Context, info *EmailInfo) error
}

type SESMailer struct {
	client *ses.Client
}

// ConnectSES returns an SES mailer, or a NoopMailer when from is empty.
func ConnectSES(ctx context.Context, from string) (Mailer, error) {
	if from == "" {
		return NoopMailer{}, nil
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg)}, nil
}

func (m *SESMailer) Send(ctx context.Context, info *EmailInfo) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(info.From),
		Destination: &types.Destination{ToAddresses: info.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(info.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(info.Text), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", strings.Join(info.To, ", "), err)
	}
	return nil
}

type NoopMailer struct{}

func (NoopMailer) Send(context.Context, *EmailInfo) error { return nil }

// WelcomeEmail is sent to a newly created login.
func WelcomeEmail(from, to, role string) *EmailInfo {
	var b strings.Builder
	b.WriteString("Hello,\n\n")
	b.WriteString("An account has been created for you on Simple HR.\n")
	fmt.Fprintf(&b, "Sign in as %s. Your role is %s.\n\n", to, role)
	b.WriteString("Ask your administrator for your initial password.\n")
	return &EmailInfo{
		From:    from,
		To:      []string{to},
		Subject: "Your Simple HR account",
		Text:    b.String(),
	}
}
