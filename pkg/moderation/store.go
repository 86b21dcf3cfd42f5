package moderation

import (
	"sync"
	"time"

	"chatmod/pkg/models"
)

type punishmentKind int

const (
	punishmentNone punishmentKind = iota
	punishmentMute
	punishmentBan
)

// punishment is a tagged variant: the kind and its expiry are always set
// and cleared together.
type punishment struct {
	kind  punishmentKind
	until time.Time
}

// userState is the authoritative mutable record for one user. Its mutex
// serializes every read-modify-write for that user; calls for different
// users proceed independently.
type userState struct {
	mu             sync.Mutex
	id             string
	punishment     punishment
	violationCount int
	recentMessages []string
	lastMessageAt  time.Time
}

// pushMessage appends to the recent-message ring after detection, so a
// message can never spam-match itself.
func (u *userState) pushMessage(message string, at time.Time) {
	u.recentMessages = append(u.recentMessages, message)
	if len(u.recentMessages) > models.MaximumRecentUserMessages {
		u.recentMessages = u.recentMessages[1:]
	}
	u.lastMessageAt = at
}

// status returns a detached snapshot. Callers never receive references
// into live state.
func (u *userState) status() models.UserStatus {
	s := models.UserStatus{
		UserID:         u.id,
		ViolationCount: u.violationCount,
		LastMessageAt:  u.lastMessageAt,
	}

	switch u.punishment.kind {
	case punishmentMute:
		until := u.punishment.until
		s.IsMuted = true
		s.MuteUntil = &until
	case punishmentBan:
		until := u.punishment.until
		s.IsBanned = true
		s.BanUntil = &until
	}

	return s
}

type userStore struct {
	mu    sync.RWMutex
	users map[string]*userState
}

func newUserStore() *userStore {
	return &userStore{users: make(map[string]*userState)}
}

// get returns the state record for a user, creating it lazily.
func (s *userStore) get(id string) *userState {
	s.mu.RLock()
	u, ok := s.users[id]
	s.mu.RUnlock()
	if ok {
		return u
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok = s.users[id]; ok {
		return u
	}

	u = &userState{id: id}
	s.users[id] = u
	return u
}

func (s *userStore) all() []*userState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*userState, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users
}

func (s *userStore) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
