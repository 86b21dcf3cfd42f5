package moderation

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"chatmod/pkg/config"
	"chatmod/pkg/log"
	"chatmod/pkg/models"
	"chatmod/pkg/slicesx"
)

const (
	ReasonBypass    = "user has bypass permissions"
	ReasonChatMuted = "chat is muted"
	ReasonBanned    = "user is banned"
	ReasonMuted     = "user is muted"
)

// Moderator is the moderation core: the message classification pipeline
// plus the per-user punishment and escalation state machine. It is safe
// for concurrent use; calls for the same user are serialized, calls for
// different users proceed independently.
type Moderator struct {
	cfg        atomic.Pointer[config.ModerationConfig]
	cfgMu      sync.Mutex // serializes snapshot writers
	users      *userStore
	violations *violationLog
	profanity  *profanityFilter
	chatMuted  atomic.Bool
	now        func() time.Time
}

func New(cfg config.ModerationConfig) *Moderator {
	m := &Moderator{
		users:      newUserStore(),
		violations: &violationLog{},
		profanity:  newProfanityFilter(DefaultProfanityWords()),
		now:        time.Now,
	}

	snapshot := cfg.Clone()
	m.cfg.Store(&snapshot)

	return m
}

// Decision is the structured result of moderating one message.
type Decision struct {
	Allowed      bool                      `json:"allowed"`
	Reason       string                    `json:"reason,omitempty"`
	Until        *time.Time                `json:"until,omitempty"`
	Violations   []models.ViolationType    `json:"violations"`
	ActionsTaken []models.ModerationAction `json:"actions_taken"`
	User         models.UserStatus         `json:"user_status"`
}

// Moderate classifies a message, applies any resulting actions, updates
// the user's state and returns the decision. Steps run in fixed order:
// bypass check, active punishment check, detection pass, history update,
// allow decision.
func (m *Moderator) Moderate(userID, message string, roles []string) Decision {
	cfg := m.snapshot()
	now := m.now()

	if m.bypassed(cfg, userID, roles) {
		return Decision{
			Allowed:      true,
			Reason:       ReasonBypass,
			Violations:   []models.ViolationType{},
			ActionsTaken: []models.ModerationAction{},
			User:         models.UserStatus{UserID: userID},
		}
	}

	if m.chatMuted.Load() {
		return Decision{
			Allowed:      false,
			Reason:       ReasonChatMuted,
			Violations:   []models.ViolationType{},
			ActionsTaken: []models.ModerationAction{},
			User:         models.UserStatus{UserID: userID},
		}
	}

	u := m.users.get(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.punishment.kind == punishmentBan && now.Before(u.punishment.until) {
		until := u.punishment.until
		return Decision{
			Allowed:      false,
			Reason:       ReasonBanned,
			Until:        &until,
			Violations:   []models.ViolationType{},
			ActionsTaken: []models.ModerationAction{},
			User:         u.status(),
		}
	}

	if u.punishment.kind == punishmentMute && now.Before(u.punishment.until) {
		until := u.punishment.until
		return Decision{
			Allowed:      false,
			Reason:       ReasonMuted,
			Until:        &until,
			Violations:   []models.ViolationType{},
			ActionsTaken: []models.ModerationAction{},
			User:         u.status(),
		}
	}

	violations := make([]models.ViolationType, 0)
	actions := make([]models.ModerationAction, 0)

	record := func(violationType models.ViolationType, rule config.RuleConfig, reason string) {
		action := ruleAction(rule)
		applyActionLocked(u, action, time.Duration(rule.Duration)*time.Second, reason, now)

		violations = append(violations, violationType)
		actions = append(actions, action)

		m.violations.append(models.NewViolation(userID, violationType, message, action, now))
		u.violationCount++

		recent := m.violations.since(userID, now.Add(-escalationWindow))
		if esc, ok := evaluateEscalation(cfg, recent); ok {
			applyActionLocked(u, esc.action, esc.duration, esc.reason, now)
			actions = append(actions, esc.action)
		}
	}

	if cfg.Rules.ProfanityFilter.Enabled {
		if matched, terms := m.profanity.Detect(message); matched {
			record(models.ViolationProfanity, cfg.Rules.ProfanityFilter, fmt.Sprintf("profanity detected: %s", strings.Join(terms, ", ")))
		}
	}

	if len(u.recentMessages) > 0 && detectSpam(message, u.recentMessages, cfg.Rules.SpamDetection) {
		record(models.ViolationSpam, cfg.Rules.SpamDetection, "spam detected")
	}

	if len(u.recentMessages) >= 3 && detectRateLimit(len(u.recentMessages), u.lastMessageAt, now, cfg.Rules.RateLimiting) {
		record(models.ViolationRateLimit, cfg.Rules.RateLimiting, "rate limit exceeded")
	}

	if detectCapsAbuse(message, cfg.Rules.CapsAbuse) {
		record(models.ViolationCapsAbuse, cfg.Rules.CapsAbuse, "excessive caps usage")
	}

	u.pushMessage(message, now)

	// Content violations suppress delivery; behavior violations only
	// restrict future messages.
	allowed := !slicesx.ContainsAny(violations, []models.ViolationType{models.ViolationProfanity, models.ViolationSpam})

	return Decision{
		Allowed:      allowed,
		Violations:   violations,
		ActionsTaken: actions,
		User:         u.status(),
	}
}

// ApplyManualAction applies an out-of-band action issued by a human
// moderator. It reports false, without touching any state, when the
// action is not one of the closed set.
func (m *Moderator) ApplyManualAction(userID, action string, duration time.Duration, reason, moderatorID string) bool {
	logger := log.Logger()

	parsed, err := models.ParseModerationAction(action)
	if err != nil {
		logger.Warningf(nil, "rejected manual action, %s", err)
		return false
	}

	u := m.users.get(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	applyActionLocked(u, parsed, duration, reason, m.now())

	if len(moderatorID) > 0 {
		logger.Infof(nil, "manual action by %s: %s on %s, %s", moderatorID, parsed, userID, reason)
	}

	return true
}

// LiftPunishment clears any active mute or ban for a user immediately,
// regardless of expiry. It reports whether a punishment was active.
func (m *Moderator) LiftPunishment(userID string) bool {
	u := m.users.get(userID)
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.punishment.kind == punishmentNone {
		return false
	}

	u.punishment = punishment{}
	log.Logger().Infof(nil, "punishment lifted for user %s", userID)
	return true
}

// GetUserStatus returns a snapshot of a user's punishment state, creating
// the record lazily for unseen users.
func (m *Moderator) GetUserStatus(userID string) models.UserStatus {
	u := m.users.get(userID)
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.status()
}

// GetViolations returns violations recorded over the past sinceDays days,
// newest last. An empty userID returns them for all users.
func (m *Moderator) GetViolations(userID string, sinceDays int) []models.Violation {
	cutoff := m.now().AddDate(0, 0, -sinceDays)
	return m.violations.since(userID, cutoff)
}

func (m *Moderator) GetStats() models.Stats {
	total, byType := m.violations.counts()

	stats := models.Stats{
		TotalViolations:   total,
		ViolationTypes:    byType,
		TotalUsersTracked: m.users.count(),
	}

	for _, u := range m.users.all() {
		u.mu.Lock()
		switch u.punishment.kind {
		case punishmentMute:
			stats.ActiveMutes++
		case punishmentBan:
			stats.ActiveBans++
		}
		u.mu.Unlock()
	}

	return stats
}

// UpdateConfig deep-merges a partial update into the live snapshot and
// publishes the merged result atomically. In-flight pipeline calls keep
// the snapshot they started with.
func (m *Moderator) UpdateConfig(update *config.ModerationUpdate) bool {
	if update == nil {
		return false
	}

	m.cfgMu.Lock()
	defer m.cfgMu.Unlock()

	merged := update.Apply(*m.cfg.Load())
	m.cfg.Store(&merged)

	log.Logger().Notice(nil, "moderation configuration updated")
	return true
}

// Config returns the current rule snapshot.
func (m *Moderator) Config() config.ModerationConfig {
	return m.cfg.Load().Clone()
}

// AddProfanityWords extends the blocklist, rebuilding the compiled
// pattern set atomically.
func (m *Moderator) AddProfanityWords(words []string) {
	m.profanity.Add(words)
}

func (m *Moderator) RemoveProfanityWords(words []string) {
	m.profanity.Remove(words)
}

func (m *Moderator) ProfanityWords() []string {
	return m.profanity.Words()
}

// WhitelistUser exempts a user id from all checks. It reports whether
// the whitelist changed.
func (m *Moderator) WhitelistUser(userID string) bool {
	m.cfgMu.Lock()
	defer m.cfgMu.Unlock()

	current := m.cfg.Load()
	if slices.Contains(current.Whitelist.BypassUsers, userID) {
		return false
	}

	merged := current.Clone()
	merged.Whitelist.BypassUsers = append(merged.Whitelist.BypassUsers, userID)
	m.cfg.Store(&merged)
	return true
}

func (m *Moderator) UnwhitelistUser(userID string) bool {
	m.cfgMu.Lock()
	defer m.cfgMu.Unlock()

	current := m.cfg.Load()
	i := slices.Index(current.Whitelist.BypassUsers, userID)
	if i < 0 {
		return false
	}

	merged := current.Clone()
	merged.Whitelist.BypassUsers = slices.Delete(merged.Whitelist.BypassUsers, i, i+1)
	m.cfg.Store(&merged)
	return true
}

// SetChatMuted toggles the global chat mute. While muted, messages from
// non-bypassed users are rejected without running detectors or mutating
// state.
func (m *Moderator) SetChatMuted(muted bool) {
	m.chatMuted.Store(muted)
	if muted {
		log.Logger().Notice(nil, "chat muted")
	} else {
		log.Logger().Notice(nil, "chat unmuted")
	}
}

func (m *Moderator) ChatMuted() bool {
	return m.chatMuted.Load()
}

func (m *Moderator) snapshot() *config.ModerationConfig {
	return m.cfg.Load()
}

func (m *Moderator) bypassed(cfg *config.ModerationConfig, userID string, roles []string) bool {
	if !cfg.Whitelist.Enabled {
		return false
	}

	if slices.Contains(cfg.Whitelist.BypassUsers, userID) {
		return true
	}

	return slicesx.ContainsAny(cfg.Whitelist.ModeratorRoles, roles)
}

func ruleAction(rule config.RuleConfig) models.ModerationAction {
	action, err := models.ParseModerationAction(rule.Action)
	if err != nil {
		return models.ActionWarn
	}
	return action
}
