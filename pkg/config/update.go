package config

// ModerationUpdate is a partial moderation config. Nil fields leave the
// corresponding value of the current snapshot untouched; the merge
// produces a new snapshot, it never mutates the old one.
type ModerationUpdate struct {
	Rules      *RulesUpdate      `yaml:"rules" json:"rules"`
	Escalation *EscalationUpdate `yaml:"escalation" json:"escalation"`
	Whitelist  *WhitelistUpdate  `yaml:"whitelist" json:"whitelist"`
}

type RulesUpdate struct {
	ProfanityFilter *RuleUpdate `yaml:"profanity_filter" json:"profanity_filter"`
	SpamDetection   *RuleUpdate `yaml:"spam_detection" json:"spam_detection"`
	RateLimiting    *RuleUpdate `yaml:"rate_limiting" json:"rate_limiting"`
	CapsAbuse       *RuleUpdate `yaml:"caps_abuse" json:"caps_abuse"`
}

type RuleUpdate struct {
	Enabled              *bool    `json:"enabled"`
	Action               *string  `json:"action"`
	Duration             *int     `json:"duration"`
	MaxMessagesPerMinute *int     `yaml:"max_messages_per_minute" json:"max_messages_per_minute"`
	MaxCapsPercentage    *float64 `yaml:"max_caps_percentage" json:"max_caps_percentage"`
	MinMessageLength     *int     `yaml:"min_message_length" json:"min_message_length"`
}

type EscalationUpdate struct {
	Enabled             *bool `json:"enabled"`
	WarnToMuteThreshold *int  `yaml:"warn_to_mute_threshold" json:"warn_to_mute_threshold"`
	MuteToKickThreshold *int  `yaml:"mute_to_kick_threshold" json:"mute_to_kick_threshold"`
	KickToBanThreshold  *int  `yaml:"kick_to_ban_threshold" json:"kick_to_ban_threshold"`
}

type WhitelistUpdate struct {
	Enabled        *bool    `json:"enabled"`
	ModeratorRoles []string `yaml:"moderator_roles" json:"moderator_roles"`
	BypassUsers    []string `yaml:"bypass_users" json:"bypass_users"`
}

// Apply merges the update into a copy of base and returns the copy.
func (u *ModerationUpdate) Apply(base ModerationConfig) ModerationConfig {
	merged := base.Clone()

	if u == nil {
		return merged
	}

	if u.Rules != nil {
		mergeRule(&merged.Rules.ProfanityFilter, u.Rules.ProfanityFilter)
		mergeRule(&merged.Rules.SpamDetection, u.Rules.SpamDetection)
		mergeRule(&merged.Rules.RateLimiting, u.Rules.RateLimiting)
		mergeRule(&merged.Rules.CapsAbuse, u.Rules.CapsAbuse)
	}

	if u.Escalation != nil {
		if u.Escalation.Enabled != nil {
			merged.Escalation.Enabled = *u.Escalation.Enabled
		}
		if u.Escalation.WarnToMuteThreshold != nil {
			merged.Escalation.WarnToMuteThreshold = *u.Escalation.WarnToMuteThreshold
		}
		if u.Escalation.MuteToKickThreshold != nil {
			merged.Escalation.MuteToKickThreshold = *u.Escalation.MuteToKickThreshold
		}
		if u.Escalation.KickToBanThreshold != nil {
			merged.Escalation.KickToBanThreshold = *u.Escalation.KickToBanThreshold
		}
	}

	if u.Whitelist != nil {
		if u.Whitelist.Enabled != nil {
			merged.Whitelist.Enabled = *u.Whitelist.Enabled
		}
		if u.Whitelist.ModeratorRoles != nil {
			merged.Whitelist.ModeratorRoles = append([]string(nil), u.Whitelist.ModeratorRoles...)
		}
		if u.Whitelist.BypassUsers != nil {
			merged.Whitelist.BypassUsers = append([]string(nil), u.Whitelist.BypassUsers...)
		}
	}

	return merged
}

func mergeRule(rule *RuleConfig, update *RuleUpdate) {
	if update == nil {
		return
	}

	if update.Enabled != nil {
		rule.Enabled = *update.Enabled
	}
	if update.Action != nil {
		rule.Action = *update.Action
	}
	if update.Duration != nil {
		rule.Duration = *update.Duration
	}
	if update.MaxMessagesPerMinute != nil {
		rule.MaxMessagesPerMinute = *update.MaxMessagesPerMinute
	}
	if update.MaxCapsPercentage != nil {
		rule.MaxCapsPercentage = *update.MaxCapsPercentage
	}
	if update.MinMessageLength != nil {
		rule.MinMessageLength = *update.MinMessageLength
	}
}
