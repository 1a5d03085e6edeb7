package communication

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSlackWithoutToken(t *testing.T) {
	n := ConnectSlack("", SlackOption{InfoChannelID: "C1"})
	assert.IsType(t, Noop{}, n)
	assert.NoError(t, n.Info("hired"))
	assert.NoError(t, n.Error("failed"))
}

func TestConnectSlackWithToken(t *testing.T) {
	n := ConnectSlack("xoxb-test", SlackOption{})
	require.IsType(t, &Slack{}, n)
	// no channel configured so nothing is posted
	assert.NoError(t, n.Info("hired"))
}

func TestConnectSESWithoutSender(t *testing.T) {
	m, err := ConnectSES(context.Background(), "")
	require.NoError(t, err)
	assert.IsType(t, NoopMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), WelcomeEmail("", "a@b.c", "employee")))
}

func TestWelcomeEmail(t *testing.T) {
	info := WelcomeEmail("hr@example.com", "jane@example.com", "manager")
	assert.Equal(t, "hr@example.com", info.From)
	assert.Equal(t, []string{"jane@example.com"}, info.To)
	assert.Equal(t, "Your Simple HR account", info.Subject)
	assert.Contains(t, info.Text, "Sign in as jane@example.com. Your role is manager.")
}
