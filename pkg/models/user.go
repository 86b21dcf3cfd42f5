package models

import "time"

// MaximumRecentUserMessages bounds the per-user message history used by
// the spam and rate-limit heuristics.
const MaximumRecentUserMessages = 10

// UserStatus is an immutable snapshot of a user's moderation state.
// Callers can never reach back into live state through it; changes go
// through the moderator's operations.
type UserStatus struct {
	UserID         string     `json:"user_id"`
	IsMuted        bool       `json:"is_muted"`
	IsBanned       bool       `json:"is_banned"`
	MuteUntil      *time.Time `json:"mute_until,omitempty"`
	BanUntil       *time.Time `json:"ban_until,omitempty"`
	ViolationCount int        `json:"violation_count"`
	LastMessageAt  time.Time  `json:"last_message_at"`
}

// Stats summarizes moderation activity across all tracked users.
type Stats struct {
	TotalViolations   int                   `json:"total_violations"`
	ViolationTypes    map[ViolationType]int `json:"violation_types"`
	ActiveMutes       int                   `json:"active_mutes"`
	ActiveBans        int                   `json:"active_bans"`
	TotalUsersTracked int                   `json:"total_users_tracked"`
}
