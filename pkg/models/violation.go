package models

import (
	"time"

	"github.com/sqids/sqids-go"
)

// ViolationType is the closed set of rule violations.
type ViolationType string

const (
	ViolationProfanity            ViolationType = "profanity"
	ViolationSpam                 ViolationType = "spam"
	ViolationRateLimit            ViolationType = "rate_limit"
	ViolationCapsAbuse            ViolationType = "caps_abuse"
	ViolationRepetitive           ViolationType = "repetitive"
	ViolationInappropriateContent ViolationType = "inappropriate_content"
)

// Violation is an immutable record of a detected violation. Records are
// append-only and never mutated after creation.
type Violation struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Type        ViolationType    `json:"violation_type"`
	Message     string           `json:"message"`
	Timestamp   time.Time        `json:"timestamp"`
	ActionTaken ModerationAction `json:"action_taken"`
	Moderator   string           `json:"moderator,omitempty"`
}

func NewViolation(userID string, violationType ViolationType, message string, action ModerationAction, at time.Time) *Violation {
	s, _ := sqids.New()
	id, _ := s.Encode([]uint64{uint64(at.UnixNano())})

	return &Violation{
		ID:          id,
		UserID:      userID,
		Type:        violationType,
		Message:     message,
		Timestamp:   at,
		ActionTaken: action,
	}
}
