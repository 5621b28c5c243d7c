package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, 30*time.Second, cfg.GameDuration)
	assert.Equal(t, 2, cfg.MinParticipants)
	assert.Equal(t, 3, cfg.MinMembers)
	assert.Equal(t, 200, cfg.EnumerationLimit)
	assert.False(t, cfg.ExcludeAdmins)
	assert.False(t, cfg.ResultsEnabled())
	assert.Zero(t, cfg.RandomSeed)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load(missingFile(t))
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("RPS_GAME_DURATION", "45s")
	t.Setenv("RPS_MIN_MEMBERS", "5")
	t.Setenv("RPS_EXCLUDE_ADMINS", "true")
	t.Setenv("RPS_RANDOM_SEED", "42")
	t.Setenv("DEBUG", "true")

	cfg, err := Load(missingFile(t))
	require.NoError(t, err)

	assert.True(t, cfg.ResultsEnabled())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 45*time.Second, cfg.GameDuration)
	assert.Equal(t, 5, cfg.MinMembers)
	assert.True(t, cfg.ExcludeAdmins)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("RPS_GAME_DURATION", "0s")

	_, err := Load(missingFile(t))
	assert.Error(t, err)

	t.Setenv("RPS_GAME_DURATION", "soon")
	_, err = Load(missingFile(t))
	assert.Error(t, err)
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("RPS_MIN_PARTICIPANTS=4\nGUILD_ID=guild-7\n"), 0o600))

	t.Setenv("DISCORD_TOKEN", "token")
	// registered so the variables godotenv sets are restored after the test
	t.Setenv("RPS_MIN_PARTICIPANTS", "")
	os.Unsetenv("RPS_MIN_PARTICIPANTS")
	t.Setenv("GUILD_ID", "")
	os.Unsetenv("GUILD_ID")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MinParticipants)
	assert.Equal(t, "guild-7", cfg.GuildID)
}
