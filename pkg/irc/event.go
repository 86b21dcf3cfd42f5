package irc

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	irce "github.com/thoj/go-ircevent"
)

const (
	CodeNotice         = "NOTICE"
	CodeJoin           = "JOIN"
	CodeInvite         = "INVITE"
	CodePrivateMessage = "PRIVMSG"
)

type Event struct {
	ID        string
	Raw       string
	Code      string
	From      string
	Username  string
	Source    string
	Arguments []string
}

func (e *Event) Message() string {
	if len(e.Arguments) == 0 {
		return ""
	}
	return e.Arguments[len(e.Arguments)-1]
}

func (e *Event) IsChannelMessage() bool {
	return e.Code == CodePrivateMessage && len(e.Arguments) > 0 && IsChannel(e.Arguments[0])
}

func (e *Event) Channel() string {
	if len(e.Arguments) == 0 {
		return ""
	}
	return e.Arguments[0]
}

// Mask returns the sender's nick!user@host, with wildcards for missing
// parts, suitable for channel ban and quiet modes.
func (e *Event) Mask() string {
	nick := e.From
	if len(nick) == 0 {
		nick = "*"
	}

	user := e.Username
	if len(user) == 0 {
		user = "*"
	}

	host := e.Source
	if i := strings.Index(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	if len(host) == 0 {
		host = "*"
	}

	return fmt.Sprintf("%s!%s@%s", nick, user, host)
}

func (e *Event) Labels() map[string]string {
	return map[string]string{
		"id":      e.ID,
		"code":    e.Code,
		"from":    e.From,
		"source":  e.Source,
		"channel": e.Channel(),
	}
}

func createEvent(e *irce.Event) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Raw:       e.Raw,
		Code:      e.Code,
		From:      e.Nick,
		Username:  e.User,
		Source:    e.Source,
		Arguments: e.Arguments,
	}
}

func IsChannel(target string) bool {
	return strings.HasPrefix(target, "#") || strings.HasPrefix(target, "&")
}
