package moderation

import (
	"testing"
	"time"

	"chatmod/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDetectCapsAbuse(t *testing.T) {
	assert := assert.New(t)

	rule := config.RuleConfig{Enabled: true, MaxCapsPercentage: 70, MinMessageLength: 10}

	assert.True(detectCapsAbuse("STOP SHOUTING AT ME", rule))
	assert.False(detectCapsAbuse("this is perfectly calm", rule))
	assert.False(detectCapsAbuse("WOW", rule), "below the minimum length")
	assert.False(detectCapsAbuse("", rule))

	// spaces and punctuation dilute the ratio
	assert.False(detectCapsAbuse("OK... so, about that thing", rule))

	rule.Enabled = false
	assert.False(detectCapsAbuse("STOP SHOUTING AT ME", rule))
}

func TestDetectCapsAbuseThresholdExclusive(t *testing.T) {
	assert := assert.New(t)

	// 10 runes, 5 upper: exactly 50 percent must not trip a 50 threshold
	rule := config.RuleConfig{Enabled: true, MaxCapsPercentage: 50, MinMessageLength: 5}
	assert.False(detectCapsAbuse("AAAAAbbbbb", rule))
	assert.True(detectCapsAbuse("AAAAAAbbbb", rule))
}

func TestDetectSpamExactRepeat(t *testing.T) {
	assert := assert.New(t)

	rule := config.RuleConfig{Enabled: true}
	history := []string{"hello world", "Check this out!"}

	assert.True(detectSpam("Check this out!", history, rule))
	assert.False(detectSpam("something new entirely", history, rule))
}

func TestDetectSpamLowDiversity(t *testing.T) {
	assert := assert.New(t)

	rule := config.RuleConfig{Enabled: true}
	history := []string{"earlier message"}

	assert.True(detectSpam("spam spam spam spam spam", history, rule))
	assert.False(detectSpam("one two three four five", history, rule))
}

func TestDetectSpamShortRepetition(t *testing.T) {
	assert := assert.New(t)

	rule := config.RuleConfig{Enabled: true}
	history := []string{"earlier message"}

	assert.True(detectSpam("hi hi", history, rule))
	assert.True(detectSpam("buy buy buy", history, rule))
	assert.False(detectSpam("well then", history, rule))
	assert.False(detectSpam("hi", history, rule))
}

func TestDetectSpamDisabled(t *testing.T) {
	assert := assert.New(t)

	rule := config.RuleConfig{Enabled: false}
	assert.False(detectSpam("spam spam spam spam spam", []string{"spam spam spam spam spam"}, rule))
}

func TestDetectRateLimit(t *testing.T) {
	assert := assert.New(t)

	rule := config.RuleConfig{Enabled: true, MaxMessagesPerMinute: 5}
	now := time.Now()

	assert.True(detectRateLimit(5, now.Add(-time.Second), now, rule))
	assert.False(detectRateLimit(4, now.Add(-time.Second), now, rule), "history below the per-minute cap")
	assert.False(detectRateLimit(5, now.Add(-2*time.Minute), now, rule), "last message outside the window")

	rule.Enabled = false
	assert.False(detectRateLimit(5, now.Add(-time.Second), now, rule))
}
