package moderation

import (
	"fmt"
	"testing"
	"time"

	"chatmod/pkg/config"
	"chatmod/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModerator() *Moderator {
	return New(config.DefaultModerationConfig())
}

func TestModerateCleanMessage(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	decision := m.Moderate("user1", "Hello everyone!", nil)

	assert.True(decision.Allowed)
	assert.Empty(decision.Violations)
	assert.Empty(decision.ActionsTaken)
	assert.Equal("user1", decision.User.UserID)
}

func TestModerateProfanity(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	decision := m.Moderate("user2", "This is a damn test message", nil)

	assert.False(decision.Allowed)
	assert.Contains(decision.Violations, models.ViolationProfanity)
	assert.Contains(decision.ActionsTaken, models.ActionWarn)
	assert.Equal(1, decision.User.ViolationCount)
}

func TestModerateProfanityLeetspeak(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	decision := m.Moderate("user2", "this is sh1t", nil)

	assert.False(decision.Allowed)
	assert.Contains(decision.Violations, models.ViolationProfanity)
}

func TestModerateSpamRepeat(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()

	first := m.Moderate("user3", "Check this out!", nil)
	assert.True(first.Allowed)
	assert.Empty(first.Violations)

	second := m.Moderate("user3", "Check this out!", nil)
	assert.False(second.Allowed)
	assert.Contains(second.Violations, models.ViolationSpam)
	assert.Contains(second.ActionsTaken, models.ActionMute)
	assert.True(second.User.IsMuted)
}

func TestModerateCapsAbuseAllowed(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	decision := m.Moderate("user4", "THIS IS REALLY ANNOYING WHEN PEOPLE TYPE LIKE THIS", nil)

	assert.True(decision.Allowed, "caps abuse flags but does not suppress delivery")
	assert.Contains(decision.Violations, models.ViolationCapsAbuse)
	assert.Contains(decision.ActionsTaken, models.ActionWarn)
}

func TestModerateShortCapsIgnored(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	decision := m.Moderate("user4", "WOW", nil)

	assert.True(decision.Allowed)
	assert.Empty(decision.Violations)
}

func TestModerateRoleBypass(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	decision := m.Moderate("mod1", "This is a damn test message", []string{"admin"})

	assert.True(decision.Allowed)
	assert.Equal(ReasonBypass, decision.Reason)
	assert.Empty(decision.Violations)
	assert.Zero(m.GetStats().TotalViolations, "bypassed messages record nothing")
}

func TestModerateRateLimit(t *testing.T) {
	assert := assert.New(t)

	cfg := config.DefaultModerationConfig()
	cfg.Rules.RateLimiting.MaxMessagesPerMinute = 3
	m := New(cfg)

	for i := 0; i < 3; i++ {
		d := m.Moderate("user5", fmt.Sprintf("message number %d", i), nil)
		assert.True(d.Allowed)
	}

	decision := m.Moderate("user5", "one more message", nil)
	assert.True(decision.Allowed, "rate limiting alone does not suppress the message")
	assert.Contains(decision.Violations, models.ViolationRateLimit)
	assert.True(decision.User.IsMuted)
}

func TestModerateMutedUserRejected(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModerator()
	require.True(m.ApplyManualAction("user6", "mute", 5*time.Minute, "testing", "mod1"))

	decision := m.Moderate("user6", "Hello there", nil)
	assert.False(decision.Allowed)
	assert.Equal(ReasonMuted, decision.Reason)
	assert.NotNil(decision.Until)
	assert.Empty(decision.Violations)
}

func TestModerateBannedUserRejected(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m := newTestModerator()
	require.True(m.ApplyManualAction("user7", "ban", time.Hour, "testing", "mod1"))

	decision := m.Moderate("user7", "Hello there", nil)
	assert.False(decision.Allowed)
	assert.Equal(ReasonBanned, decision.Reason)
}

func TestModerateExpiredPunishmentRuns(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	m.ApplyManualAction("user8", "mute", time.Minute, "testing", "mod1")

	// advance the clock past expiry; the stale mute must not block
	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	decision := m.Moderate("user8", "Hello again", nil)
	assert.True(decision.Allowed)
}

func TestViolationCountMonotonic(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()

	previous := 0
	for i := 0; i < 5; i++ {
		m.Moderate("user9", "This is a damn test message", nil)
		count := m.GetUserStatus("user9").ViolationCount
		assert.GreaterOrEqual(count, previous)
		previous = count
	}
	assert.Greater(previous, 0)
}

func TestEscalationAfterRepeatedWarnings(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()

	// profanity warns each time; message text varies so the spam rule
	// stays out of the way
	m.Moderate("user10", "damn thing number one", nil)
	m.Moderate("user10", "damn thing number two", nil)

	third := m.Moderate("user10", "damn thing number three", nil)
	assert.Contains(third.ActionsTaken, models.ActionWarn)
	assert.Contains(third.ActionsTaken, models.ActionMute, "third warning inside the window escalates to a mute")
	assert.True(third.User.IsMuted)

	fourth := m.Moderate("user10", "hello once more", nil)
	assert.False(fourth.Allowed)
	assert.Equal(ReasonMuted, fourth.Reason)
}

func TestEscalationDisabled(t *testing.T) {
	assert := assert.New(t)

	cfg := config.DefaultModerationConfig()
	cfg.Escalation.Enabled = false
	m := New(cfg)

	m.Moderate("user11", "damn thing number one", nil)
	m.Moderate("user11", "damn thing number two", nil)
	third := m.Moderate("user11", "damn thing number three", nil)

	assert.NotContains(third.ActionsTaken, models.ActionMute)
	assert.False(third.User.IsMuted)
}

func TestApplyManualActionInvalid(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	assert.False(m.ApplyManualAction("user12", "obliterate", 0, "", "mod1"))

	status := m.GetUserStatus("user12")
	assert.False(status.IsMuted)
	assert.False(status.IsBanned)
}

func TestSweepExpiredIdempotent(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	m.ApplyManualAction("user13", "mute", time.Minute, "testing", "mod1")
	assert.True(m.GetUserStatus("user13").IsMuted)

	later := time.Now().Add(2 * time.Minute)
	m.SweepExpired(later)

	status := m.GetUserStatus("user13")
	assert.False(status.IsMuted)
	assert.Nil(status.MuteUntil)

	m.SweepExpired(later)
	assert.False(m.GetUserStatus("user13").IsMuted)
}

func TestSweepLeavesActivePunishments(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	m.ApplyManualAction("user14", "ban", time.Hour, "testing", "mod1")

	m.SweepExpired(time.Now())
	assert.True(m.GetUserStatus("user14").IsBanned)
}

func TestLiftPunishment(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	m.ApplyManualAction("user15", "mute", time.Hour, "testing", "mod1")

	assert.True(m.LiftPunishment("user15"))
	assert.False(m.GetUserStatus("user15").IsMuted)
	assert.False(m.LiftPunishment("user15"))
}

func TestGetStats(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	m.Moderate("user16", "This is a damn test message", nil)
	m.Moderate("user17", "Hello everyone!", nil)
	m.ApplyManualAction("user18", "ban", time.Hour, "testing", "mod1")

	stats := m.GetStats()
	assert.Equal(1, stats.TotalViolations)
	assert.Equal(1, stats.ViolationTypes[models.ViolationProfanity])
	assert.Equal(1, stats.ActiveBans)
	assert.Equal(3, stats.TotalUsersTracked)
}

func TestGetViolationsFiltering(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	m.Moderate("user19", "This is a damn test message", nil)
	m.Moderate("user20", "another damn message", nil)

	assert.Len(m.GetViolations("user19", 7), 1)
	assert.Len(m.GetViolations("", 7), 2)
	assert.Empty(m.GetViolations("user21", 7))
}

func TestUpdateConfigAtomicMerge(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()

	enabled := false
	threshold := 5
	update := &config.ModerationUpdate{
		Rules: &config.RulesUpdate{
			ProfanityFilter: &config.RuleUpdate{Enabled: &enabled},
		},
		Escalation: &config.EscalationUpdate{WarnToMuteThreshold: &threshold},
	}

	assert.True(m.UpdateConfig(update))

	merged := m.Config()
	assert.False(merged.Rules.ProfanityFilter.Enabled)
	assert.Equal(5, merged.Escalation.WarnToMuteThreshold)
	assert.True(merged.Rules.SpamDetection.Enabled, "untouched fields survive the merge")

	decision := m.Moderate("user22", "This is a damn test message", nil)
	assert.True(decision.Allowed)
	assert.Empty(decision.Violations)
}

func TestWhitelistUser(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()

	assert.True(m.WhitelistUser("vip"))
	assert.False(m.WhitelistUser("vip"))

	decision := m.Moderate("vip", "This is a damn test message", nil)
	assert.True(decision.Allowed)
	assert.Equal(ReasonBypass, decision.Reason)

	assert.True(m.UnwhitelistUser("vip"))
	decision = m.Moderate("vip", "This is a damn test message", nil)
	assert.False(decision.Allowed)
}

func TestChatMute(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	m.SetChatMuted(true)

	decision := m.Moderate("user23", "Hello everyone!", nil)
	assert.False(decision.Allowed)
	assert.Equal(ReasonChatMuted, decision.Reason)
	assert.Zero(m.GetUserStatus("user23").ViolationCount)

	bypassed := m.Moderate("mod1", "Hello everyone!", []string{"admin"})
	assert.True(bypassed.Allowed)

	m.SetChatMuted(false)
	assert.True(m.Moderate("user23", "Hello everyone!", nil).Allowed)
}

func TestHistoryCapped(t *testing.T) {
	assert := assert.New(t)

	m := newTestModerator()
	for i := 0; i < 25; i++ {
		m.Moderate("user24", fmt.Sprintf("unique message %d", i), nil)
	}

	u := m.users.get("user24")
	u.mu.Lock()
	defer u.mu.Unlock()
	assert.Len(u.recentMessages, models.MaximumRecentUserMessages)
	assert.Equal("unique message 24", u.recentMessages[len(u.recentMessages)-1])
}
