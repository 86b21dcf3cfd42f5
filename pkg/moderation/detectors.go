package moderation

import (
	"strings"
	"time"
	"unicode"

	"chatmod/pkg/config"
	"chatmod/pkg/slicesx"
)

// detectCapsAbuse flags messages whose uppercase share exceeds the
// configured percentage. Messages shorter than the minimum length are
// ignored so short acronyms never trip the rule. Digits and punctuation
// count toward the denominator but not the numerator.
func detectCapsAbuse(message string, rule config.RuleConfig) bool {
	if !rule.Enabled {
		return false
	}

	runes := []rune(message)
	if len(runes) < rule.MinMessageLength {
		return false
	}

	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}

	return float64(upper)/float64(len(runes))*100 > rule.MaxCapsPercentage
}

// detectSpam flags exact repeats of a message already in the user's
// recent history, messages with heavy internal repetition, and short
// bursts of one repeated token.
func detectSpam(message string, history []string, rule config.RuleConfig) bool {
	if !rule.Enabled {
		return false
	}

	for _, m := range history {
		if m == message {
			return true
		}
	}

	tokens := strings.Fields(message)

	if len(tokens) > 3 {
		if float64(slicesx.Distinct(tokens))/float64(len(tokens)) < 0.3 {
			return true
		}
	}

	if len(tokens) > 1 && len(tokens) <= 3 && slicesx.Distinct(tokens) == 1 {
		return true
	}

	return false
}

// detectRateLimit is a heuristic proxy, not a sliding window: it flags
// when the retained history is already at the per-minute budget and the
// previous message landed under a minute ago.
func detectRateLimit(historyLen int, lastMessageAt time.Time, now time.Time, rule config.RuleConfig) bool {
	if !rule.Enabled {
		return false
	}

	if historyLen < rule.MaxMessagesPerMinute {
		return false
	}

	return now.Sub(lastMessageAt) < time.Minute
}
