package config

// ModerationConfig is the rule snapshot read by the moderation core. The
// core treats a snapshot as immutable; dynamic updates build a merged copy
// and publish it wholesale.
type ModerationConfig struct {
	Rules      RulesConfig      `json:"rules"`
	Escalation EscalationConfig `json:"escalation"`
	Whitelist  WhitelistConfig  `json:"whitelist"`
}

type RulesConfig struct {
	ProfanityFilter RuleConfig `yaml:"profanity_filter" json:"profanity_filter"`
	SpamDetection   RuleConfig `yaml:"spam_detection" json:"spam_detection"`
	RateLimiting    RuleConfig `yaml:"rate_limiting" json:"rate_limiting"`
	CapsAbuse       RuleConfig `yaml:"caps_abuse" json:"caps_abuse"`
}

type RuleConfig struct {
	Enabled bool   `json:"enabled"`
	Action  string `json:"action"`
	// Duration of the punishment applied by this rule, in seconds.
	Duration             int     `json:"duration,omitempty"`
	MaxMessagesPerMinute int     `yaml:"max_messages_per_minute" json:"max_messages_per_minute,omitempty"`
	MaxCapsPercentage    float64 `yaml:"max_caps_percentage" json:"max_caps_percentage,omitempty"`
	MinMessageLength     int     `yaml:"min_message_length" json:"min_message_length,omitempty"`
}

type EscalationConfig struct {
	Enabled             bool `json:"enabled"`
	WarnToMuteThreshold int  `yaml:"warn_to_mute_threshold" json:"warn_to_mute_threshold"`
	MuteToKickThreshold int  `yaml:"mute_to_kick_threshold" json:"mute_to_kick_threshold"`
	KickToBanThreshold  int  `yaml:"kick_to_ban_threshold" json:"kick_to_ban_threshold"`
}

type WhitelistConfig struct {
	Enabled        bool     `json:"enabled"`
	ModeratorRoles []string `yaml:"moderator_roles" json:"moderator_roles"`
	BypassUsers    []string `yaml:"bypass_users" json:"bypass_users"`
}

func DefaultModerationConfig() ModerationConfig {
	return ModerationConfig{
		Rules: RulesConfig{
			ProfanityFilter: RuleConfig{
				Enabled: true,
				Action:  "warn",
			},
			SpamDetection: RuleConfig{
				Enabled:  true,
				Action:   "mute",
				Duration: 300,
			},
			RateLimiting: RuleConfig{
				Enabled:              true,
				Action:               "mute",
				Duration:             60,
				MaxMessagesPerMinute: 10,
			},
			CapsAbuse: RuleConfig{
				Enabled:           true,
				Action:            "warn",
				MaxCapsPercentage: 70,
				MinMessageLength:  10,
			},
		},
		Escalation: EscalationConfig{
			Enabled:             true,
			WarnToMuteThreshold: 3,
			MuteToKickThreshold: 2,
			KickToBanThreshold:  2,
		},
		Whitelist: WhitelistConfig{
			Enabled:        true,
			ModeratorRoles: []string{"admin", "moderator"},
		},
	}
}

// applyDefaults fills rule parameters left at their zero value by a
// partially specified config file. Enabled flags are taken as parsed.
func (mc *ModerationConfig) applyDefaults() {
	defaults := DefaultModerationConfig()

	fill := func(rule *RuleConfig, d RuleConfig) {
		if rule.Action == "" {
			rule.Action = d.Action
		}
		if rule.Duration == 0 {
			rule.Duration = d.Duration
		}
		if rule.MaxMessagesPerMinute == 0 {
			rule.MaxMessagesPerMinute = d.MaxMessagesPerMinute
		}
		if rule.MaxCapsPercentage == 0 {
			rule.MaxCapsPercentage = d.MaxCapsPercentage
		}
		if rule.MinMessageLength == 0 {
			rule.MinMessageLength = d.MinMessageLength
		}
	}

	fill(&mc.Rules.ProfanityFilter, defaults.Rules.ProfanityFilter)
	fill(&mc.Rules.SpamDetection, defaults.Rules.SpamDetection)
	fill(&mc.Rules.RateLimiting, defaults.Rules.RateLimiting)
	fill(&mc.Rules.CapsAbuse, defaults.Rules.CapsAbuse)

	if mc.Escalation.WarnToMuteThreshold == 0 {
		mc.Escalation.WarnToMuteThreshold = defaults.Escalation.WarnToMuteThreshold
	}
	if mc.Escalation.MuteToKickThreshold == 0 {
		mc.Escalation.MuteToKickThreshold = defaults.Escalation.MuteToKickThreshold
	}
	if mc.Escalation.KickToBanThreshold == 0 {
		mc.Escalation.KickToBanThreshold = defaults.Escalation.KickToBanThreshold
	}

	if len(mc.Whitelist.ModeratorRoles) == 0 {
		mc.Whitelist.ModeratorRoles = defaults.Whitelist.ModeratorRoles
	}
}

// Clone returns a deep copy, so a snapshot handed to the core can never
// alias slices held by the caller.
func (mc ModerationConfig) Clone() ModerationConfig {
	out := mc
	out.Whitelist.ModeratorRoles = append([]string(nil), mc.Whitelist.ModeratorRoles...)
	out.Whitelist.BypassUsers = append([]string(nil), mc.Whitelist.BypassUsers...)
	return out
}
