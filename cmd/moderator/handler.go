package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"chatmod/pkg/config"
	"chatmod/pkg/firestore"
	"chatmod/pkg/irc"
	"chatmod/pkg/log"
	"chatmod/pkg/models"
	"chatmod/pkg/moderation"
)

type handler struct {
	cfg       *config.Config
	irc       irc.IRC
	moderator *moderation.Moderator
}

func newHandler(cfg *config.Config, svc irc.IRC, moderator *moderation.Moderator) *handler {
	return &handler{
		cfg:       cfg,
		irc:       svc,
		moderator: moderator,
	}
}

func (h *handler) handle(e *irc.Event) {
	if !e.IsChannelMessage() || e.From == h.cfg.IRC.Nick {
		return
	}

	if h.isAdmin(e.From) && strings.HasPrefix(e.Message(), h.commandPrefix()) {
		h.handleCommand(e)
		return
	}

	roles := h.roles(e.From)
	decision := h.moderator.Moderate(e.From, e.Message(), roles)

	if len(decision.Violations) > 0 {
		log.Logger().Infof(e, "violations by %s: %v, actions: %v", e.From, decision.Violations, decision.ActionsTaken)
	}

	h.enforce(e, decision)
}

// enforce translates a moderation decision into channel operations.
// IRC cannot delete a delivered message, so content violations fall
// back to a kick the way disallowed words are handled on this network.
func (h *handler) enforce(e *irc.Event, decision moderation.Decision) {
	channel := e.Channel()

	for _, action := range decision.ActionsTaken {
		switch action {
		case models.ActionWarn:
			h.irc.SendMessage(channel, fmt.Sprintf("%s: please watch your language and keep the channel readable.", e.From))
		case models.ActionMute:
			h.irc.Mute(channel, e.Mask())
			h.schedulePunishmentRemoval(e, models.TaskTypeMuteRemoval, decision.User.MuteUntil)
		case models.ActionBan:
			h.irc.Ban(channel, e.Mask())
			h.irc.Kick(channel, e.From, "banned for repeated violations")
			h.schedulePunishmentRemoval(e, models.TaskTypeBanRemoval, decision.User.BanUntil)
		case models.ActionKick:
			h.irc.Kick(channel, e.From, "removed for repeated violations")
		}
	}

	if !decision.Allowed && len(decision.Violations) > 0 && !slices.Contains(decision.ActionsTaken, models.ActionBan) {
		labels := make([]string, 0, len(decision.Violations))
		for _, v := range decision.Violations {
			labels = append(labels, string(v))
		}
		h.irc.Kick(channel, e.From, fmt.Sprintf("message rejected: %s", strings.Join(labels, ", ")))
	}
}

func (h *handler) schedulePunishmentRemoval(e *irc.Event, taskType string, until *time.Time) {
	if until == nil {
		return
	}

	logger := log.Logger()

	var task *models.Task
	if taskType == models.TaskTypeMuteRemoval {
		task = models.NewMuteRemovalTask(*until, e.Channel(), e.Mask(), e.From)
	} else {
		task = models.NewBanRemovalTask(*until, e.Channel(), e.Mask(), e.From)
	}

	if err := firestore.Get().AddTask(task); err != nil {
		logger.Errorf(e, "error scheduling punishment removal, %s", err)
		return
	}

	logger.Debugf(e, "scheduled %s for %s at %s", taskType, e.From, until)
}

func (h *handler) handleRemovalTask(task *models.Task) {
	logger := log.Logger()

	data, ok := task.Data.(models.PunishmentRemovalTaskData)
	if !ok {
		logger.Warningf(nil, "unexpected task payload for %s", task.ID)
		return
	}

	switch task.Type {
	case models.TaskTypeMuteRemoval:
		h.irc.Unmute(data.Channel, data.Mask)
		logger.Infof(nil, "lifted mute on %s in %s", data.UserID, data.Channel)
	case models.TaskTypeBanRemoval:
		h.irc.Unban(data.Channel, data.Mask)
		logger.Infof(nil, "lifted ban on %s in %s", data.UserID, data.Channel)
	}
}

func (h *handler) isAdmin(nick string) bool {
	return nick == h.cfg.IRC.Owner || slices.Contains(h.cfg.IRC.Admins, nick)
}

// roles maps channel identity onto the moderation whitelist roles.
func (h *handler) roles(nick string) []string {
	if h.isAdmin(nick) {
		return []string{"admin"}
	}
	return nil
}

func (h *handler) commandPrefix() string {
	if len(h.cfg.IRC.CommandPrefix) > 0 {
		return h.cfg.IRC.CommandPrefix
	}
	return "!"
}
