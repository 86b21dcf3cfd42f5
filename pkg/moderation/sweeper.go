package moderation

import (
	"context"
	"time"

	"chatmod/pkg/log"
)

// SweepExpired lifts every mute or ban whose expiry is at or before now.
// The punishment variant and its expiry are cleared together, and the
// sweep is idempotent on any schedule.
func (m *Moderator) SweepExpired(now time.Time) {
	logger := log.Logger()

	for _, u := range m.users.all() {
		u.mu.Lock()
		if u.punishment.kind != punishmentNone && !u.punishment.until.After(now) {
			kind := u.punishment.kind
			u.punishment = punishment{}

			if kind == punishmentMute {
				logger.Infof(nil, "mute expired for user %s", u.id)
			} else {
				logger.Infof(nil, "ban expired for user %s", u.id)
			}
		}
		u.mu.Unlock()
	}
}

// RunSweeper sweeps on a timer until the context is cancelled.
func (m *Moderator) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.SweepExpired(now)
		}
	}
}
