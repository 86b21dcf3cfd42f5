package moderation

import (
	"time"

	"chatmod/pkg/log"
	"chatmod/pkg/models"
)

// actionEffects maps each action of the closed set to its effect on user
// state. Warn, kick and delete carry no in-core state change; they are
// recorded and left to the transport adapter to enforce. An action
// missing from this table is a programming error caught at startup by
// the parse step, never a runtime string comparison.
var actionEffects = map[models.ModerationAction]func(u *userState, until time.Time){
	models.ActionWarn:          func(*userState, time.Time) {},
	models.ActionKick:          func(*userState, time.Time) {},
	models.ActionDeleteMessage: func(*userState, time.Time) {},
	models.ActionMute: func(u *userState, until time.Time) {
		u.punishment = punishment{kind: punishmentMute, until: until}
	},
	models.ActionBan: func(u *userState, until time.Time) {
		u.punishment = punishment{kind: punishmentBan, until: until}
	},
}

// applyActionLocked applies an action to a user whose mutex is held.
// Punishment fields are assigned together, never singly, so a failure
// can never leave partial state.
func applyActionLocked(u *userState, action models.ModerationAction, duration time.Duration, reason string, now time.Time) {
	if duration <= 0 {
		switch action {
		case models.ActionMute:
			duration = defaultMuteDuration
		case models.ActionBan:
			duration = defaultBanDuration
		}
	}

	actionEffects[action](u, now.Add(duration))

	logger := log.Logger()
	switch action {
	case models.ActionMute:
		logger.Infof(nil, "user %s muted for %s, %s", u.id, duration, reason)
	case models.ActionBan:
		logger.Infof(nil, "user %s banned for %s, %s", u.id, duration, reason)
	case models.ActionKick:
		logger.Infof(nil, "user %s kicked, %s", u.id, reason)
	case models.ActionWarn:
		logger.Infof(nil, "user %s warned, %s", u.id, reason)
	case models.ActionDeleteMessage:
		logger.Infof(nil, "message from %s deleted, %s", u.id, reason)
	}
}
