package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"chatmod/pkg/firestore"
	"chatmod/pkg/irc"
	"chatmod/pkg/log"
	"chatmod/pkg/models"
)

// handleCommand dispatches moderator chat commands. Only admins reach
// this point; everyone else goes through the moderation pipeline.
func (h *handler) handleCommand(e *irc.Event) {
	tokens := strings.Fields(e.Message())
	command := strings.TrimPrefix(tokens[0], h.commandPrefix())
	args := tokens[1:]
	channel := e.Channel()

	logger := log.Logger()
	logger.Infof(e, "⚡ %s [%s/%s] %v", command, e.From, channel, args)

	switch command {
	case "warn", "kick":
		if len(args) < 1 {
			return
		}
		h.manualAction(e, args[0], command, 0, reasonFrom(args[1:]))

	case "mute", "ban":
		if len(args) < 1 {
			return
		}
		duration := time.Duration(0)
		reasonArgs := args[1:]
		if len(args) > 1 {
			if seconds, err := strconv.Atoi(args[1]); err == nil {
				duration = time.Duration(seconds) * time.Second
				reasonArgs = args[2:]
			}
		}
		h.manualAction(e, args[0], command, duration, reasonFrom(reasonArgs))

	case "unmute":
		if len(args) < 1 {
			return
		}
		h.irc.Unmute(channel, wildcardMask(args[0]))
		h.moderator.LiftPunishment(args[0])

	case "unban":
		if len(args) < 1 {
			return
		}
		h.irc.Unban(channel, wildcardMask(args[0]))
		h.moderator.LiftPunishment(args[0])

	case "mutechat":
		h.moderator.SetChatMuted(true)
		h.irc.SendMessage(channel, "Chat is currently muted by an administrator.")

	case "unmutechat":
		h.moderator.SetChatMuted(false)
		h.irc.SendMessage(channel, "Chat has been unmuted.")

	case "bannedword":
		h.bannedWordCommand(e, args)

	case "whitelist":
		h.whitelistCommand(e, args)

	case "modstats":
		stats := h.moderator.GetStats()
		h.irc.SendMessage(channel, fmt.Sprintf("violations: %d, active mutes: %d, active bans: %d, users tracked: %d",
			stats.TotalViolations, stats.ActiveMutes, stats.ActiveBans, stats.TotalUsersTracked))

	case "violations":
		userID := ""
		if len(args) > 0 {
			userID = args[0]
		}
		violations := h.moderator.GetViolations(userID, 7)
		h.irc.SendMessage(channel, fmt.Sprintf("%d violation(s) in the last 7 days", len(violations)))

	case "status":
		if len(args) < 1 {
			return
		}
		status := h.moderator.GetUserStatus(args[0])
		h.irc.SendMessage(channel, fmt.Sprintf("%s: muted=%t banned=%t violations=%d",
			status.UserID, status.IsMuted, status.IsBanned, status.ViolationCount))
	}
}

func (h *handler) manualAction(e *irc.Event, nick, action string, duration time.Duration, reason string) {
	if !h.moderator.ApplyManualAction(nick, action, duration, reason, e.From) {
		h.irc.SendMessage(e.Channel(), fmt.Sprintf("Unknown action: %s", action))
		return
	}

	status := h.moderator.GetUserStatus(nick)

	switch models.ModerationAction(action) {
	case models.ActionWarn:
		h.irc.SendMessage(e.Channel(), fmt.Sprintf("%s: you have been warned. %s", nick, reason))
	case models.ActionKick:
		h.irc.Kick(e.Channel(), nick, reason)
	case models.ActionMute:
		h.irc.Mute(e.Channel(), wildcardMask(nick))
		h.schedulePunishmentRemovalFor(e.Channel(), nick, models.TaskTypeMuteRemoval, status.MuteUntil)
	case models.ActionBan:
		h.irc.Ban(e.Channel(), wildcardMask(nick))
		h.irc.Kick(e.Channel(), nick, reason)
		h.schedulePunishmentRemovalFor(e.Channel(), nick, models.TaskTypeBanRemoval, status.BanUntil)
	}
}

func (h *handler) schedulePunishmentRemovalFor(channel, nick, taskType string, until *time.Time) {
	if until == nil {
		return
	}

	var task *models.Task
	if taskType == models.TaskTypeMuteRemoval {
		task = models.NewMuteRemovalTask(*until, channel, wildcardMask(nick), nick)
	} else {
		task = models.NewBanRemovalTask(*until, channel, wildcardMask(nick), nick)
	}

	if err := firestore.Get().AddTask(task); err != nil {
		log.Logger().Errorf(nil, "error scheduling punishment removal, %s", err)
	}
}

func (h *handler) bannedWordCommand(e *irc.Event, args []string) {
	if len(args) < 2 {
		return
	}

	logger := log.Logger()
	word := strings.ToLower(args[1])

	switch args[0] {
	case "add":
		h.moderator.AddProfanityWords([]string{word})
		if err := firestore.Get().AddBannedWord(word, e.From); err != nil {
			logger.Errorf(e, "error persisting banned word, %s", err)
		}
		h.irc.SendMessage(e.Channel(), fmt.Sprintf("Added %s to the banned word list.", word))

	case "del":
		h.moderator.RemoveProfanityWords([]string{word})
		if err := firestore.Get().RemoveBannedWord(word); err != nil {
			logger.Errorf(e, "error removing banned word, %s", err)
		}
		h.irc.SendMessage(e.Channel(), fmt.Sprintf("Removed %s from the banned word list.", word))
	}
}

func (h *handler) whitelistCommand(e *irc.Event, args []string) {
	if len(args) < 2 {
		return
	}

	switch args[0] {
	case "add":
		if h.moderator.WhitelistUser(args[1]) {
			h.irc.SendMessage(e.Channel(), fmt.Sprintf("%s now bypasses moderation.", args[1]))
		}
	case "del":
		if h.moderator.UnwhitelistUser(args[1]) {
			h.irc.SendMessage(e.Channel(), fmt.Sprintf("%s no longer bypasses moderation.", args[1]))
		}
	}
}

func reasonFrom(args []string) string {
	if len(args) == 0 {
		return "manual moderation"
	}
	return strings.Join(args, " ")
}

func wildcardMask(nick string) string {
	return fmt.Sprintf("%s!*@*", nick)
}
