package moderation

import (
	"time"

	"chatmod/pkg/config"
	"chatmod/pkg/models"
)

// escalationWindow is the rolling period of violation history considered
// when deciding whether to upgrade a punishment.
const escalationWindow = 24 * time.Hour

const (
	defaultMuteDuration = 300 * time.Second
	defaultBanDuration  = 3600 * time.Second
)

type escalation struct {
	action   models.ModerationAction
	duration time.Duration
	reason   string
}

// evaluateEscalation counts the actions taken against a user inside the
// rolling window and walks the threshold ladder in priority order, first
// match wins. It runs once per recorded violation, immediately after the
// violation is appended, so the triggering violation is included in the
// counts.
func evaluateEscalation(cfg *config.ModerationConfig, recent []models.Violation) (escalation, bool) {
	if !cfg.Escalation.Enabled {
		return escalation{}, false
	}

	var warns, mutes, kicks int
	for _, v := range recent {
		switch v.ActionTaken {
		case models.ActionWarn:
			warns++
		case models.ActionMute:
			mutes++
		case models.ActionKick:
			kicks++
		}
	}

	switch {
	case warns >= cfg.Escalation.WarnToMuteThreshold:
		return escalation{models.ActionMute, defaultMuteDuration, "too many warnings"}, true
	case mutes >= cfg.Escalation.MuteToKickThreshold:
		return escalation{models.ActionKick, 0, "too many mutes"}, true
	case kicks >= cfg.Escalation.KickToBanThreshold:
		return escalation{models.ActionBan, defaultBanDuration, "too many kicks"}, true
	}

	return escalation{}, false
}
