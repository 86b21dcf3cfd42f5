package models

import "fmt"

// ModerationAction is the closed set of actions the moderation core can
// take against a user or message.
type ModerationAction string

const (
	ActionWarn          ModerationAction = "warn"
	ActionMute          ModerationAction = "mute"
	ActionKick          ModerationAction = "kick"
	ActionBan           ModerationAction = "ban"
	ActionDeleteMessage ModerationAction = "delete_message"
)

// ParseModerationAction validates an action string against the closed
// set. Anything else is rejected before any state changes.
func ParseModerationAction(s string) (ModerationAction, error) {
	switch ModerationAction(s) {
	case ActionWarn, ActionMute, ActionKick, ActionBan, ActionDeleteMessage:
		return ModerationAction(s), nil
	}
	return "", fmt.Errorf("invalid moderation action, %s", s)
}

// Severity orders actions for escalation comparisons, warn < mute < kick < ban.
func (a ModerationAction) Severity() int {
	switch a {
	case ActionWarn:
		return 1
	case ActionMute:
		return 2
	case ActionKick:
		return 3
	case ActionBan:
		return 4
	}
	return 0
}
