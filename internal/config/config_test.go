package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("VK_BOT_TOKEN", "bot-token")
	t.Setenv("VK_USER_TOKEN", "user-token")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	path := writeConfig(t, `
group_id: 123
chat_id: 2000000001
log_level: debug
metrics_addr: ":9180"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(123), cfg.GroupID)
	assert.Equal(t, int64(2000000001), cfg.ChatID)
	assert.Equal(t, "bot-token", cfg.BotToken)
	assert.Equal(t, "user-token", cfg.UserToken)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9180", cfg.MetricsAddr)

	// Defaults.
	assert.Equal(t, "vk.com", cfg.LinkHost)
	assert.Equal(t, 25, cfg.Wait)
	assert.False(t, cfg.Telegram.Enabled)
}

func TestLoad_MissingTokens(t *testing.T) {
	t.Setenv("VK_BOT_TOKEN", "")
	t.Setenv("VK_USER_TOKEN", "")

	path := writeConfig(t, "group_id: 123\nchat_id: 7\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VK_BOT_TOKEN")
	assert.Contains(t, err.Error(), "VK_USER_TOKEN")
}

func TestLoad_MissingIDs(t *testing.T) {
	t.Setenv("VK_BOT_TOKEN", "bot-token")
	t.Setenv("VK_USER_TOKEN", "user-token")

	path := writeConfig(t, "log_level: info\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group_id")
	assert.Contains(t, err.Error(), "chat_id")
}

func TestLoad_TelegramRequiresTokenAndChat(t *testing.T) {
	t.Setenv("VK_BOT_TOKEN", "bot-token")
	t.Setenv("VK_USER_TOKEN", "user-token")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	path := writeConfig(t, `
group_id: 123
chat_id: 7
telegram:
  enabled: true
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	assert.Contains(t, err.Error(), "telegram.chat_id")
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
