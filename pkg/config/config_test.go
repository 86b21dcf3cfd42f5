package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigMissingFile(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	cfg, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(err)

	assert.Equal(DefaultModerationConfig(), cfg.Moderation)
}

func TestReadConfigAppliesDefaults(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	contents := `
moderation:
  rules:
    profanity_filter:
      enabled: true
    caps_abuse:
      enabled: true
      max_caps_percentage: 80
irc:
  nick: modbot
  server: irc.libera.chat
  port: 6697
`
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(filename, []byte(contents), 0644))

	cfg, err := ReadConfig(filename)
	require.NoError(err)

	assert.Equal("modbot", cfg.IRC.Nick)
	assert.Equal(80.0, cfg.Moderation.Rules.CapsAbuse.MaxCapsPercentage)
	assert.Equal("warn", cfg.Moderation.Rules.CapsAbuse.Action, "unset parameters fall back to defaults")
	assert.Equal(10, cfg.Moderation.Rules.CapsAbuse.MinMessageLength)
	assert.Equal(3, cfg.Moderation.Escalation.WarnToMuteThreshold)
	assert.Equal([]string{"admin", "moderator"}, cfg.Moderation.Whitelist.ModeratorRoles)
}

func TestReadConfigInvalidYAML(t *testing.T) {
	require := require.New(t)

	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(os.WriteFile(filename, []byte("moderation: [not a map"), 0644))

	_, err := ReadConfig(filename)
	require.Error(err)
}

func TestModerationUpdateApply(t *testing.T) {
	assert := assert.New(t)

	base := DefaultModerationConfig()

	enabled := false
	action := "mute"
	duration := 120
	threshold := 4

	update := &ModerationUpdate{
		Rules: &RulesUpdate{
			ProfanityFilter: &RuleUpdate{Action: &action, Duration: &duration},
			CapsAbuse:       &RuleUpdate{Enabled: &enabled},
		},
		Escalation: &EscalationUpdate{KickToBanThreshold: &threshold},
		Whitelist:  &WhitelistUpdate{BypassUsers: []string{"vip"}},
	}

	merged := update.Apply(base)

	assert.Equal("mute", merged.Rules.ProfanityFilter.Action)
	assert.Equal(120, merged.Rules.ProfanityFilter.Duration)
	assert.True(merged.Rules.ProfanityFilter.Enabled, "fields the update omits stay put")
	assert.False(merged.Rules.CapsAbuse.Enabled)
	assert.Equal(4, merged.Escalation.KickToBanThreshold)
	assert.Equal(2, merged.Escalation.MuteToKickThreshold)
	assert.Equal([]string{"vip"}, merged.Whitelist.BypassUsers)

	// the base is never mutated
	assert.Equal("warn", base.Rules.ProfanityFilter.Action)
	assert.Empty(base.Whitelist.BypassUsers)
}

func TestModerationUpdateApplyNil(t *testing.T) {
	assert := assert.New(t)

	var update *ModerationUpdate
	merged := update.Apply(DefaultModerationConfig())
	assert.Equal(DefaultModerationConfig(), merged)
}

func TestCloneDetachesSlices(t *testing.T) {
	assert := assert.New(t)

	base := DefaultModerationConfig()
	base.Whitelist.BypassUsers = []string{"vip"}

	clone := base.Clone()
	clone.Whitelist.BypassUsers[0] = "someone-else"

	assert.Equal("vip", base.Whitelist.BypassUsers[0])
}
