package moderation

import (
	"sync"
	"time"

	"chatmod/pkg/models"
)

const (
	// violationRetention bounds log memory while staying far above the
	// 24-hour escalation window.
	violationRetention  = 7 * 24 * time.Hour
	maxViolationEntries = 10000
)

// violationLog is the append-only, time-ordered record of detected
// violations. Entries are immutable once appended; pruning only ever
// drops from the old end.
type violationLog struct {
	mu      sync.Mutex
	entries []*models.Violation
}

func (l *violationLog) append(v *models.Violation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, v)

	cutoff := v.Timestamp.Add(-violationRetention)
	drop := 0
	for drop < len(l.entries) && l.entries[drop].Timestamp.Before(cutoff) {
		drop++
	}
	if overflow := len(l.entries) - maxViolationEntries; overflow > drop {
		drop = overflow
	}
	if drop > 0 {
		l.entries = append([]*models.Violation(nil), l.entries[drop:]...)
	}
}

// since returns copies of entries at or after the cutoff, optionally
// restricted to one user. An empty userID matches everyone.
func (l *violationLog) since(userID string, cutoff time.Time) []models.Violation {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Violation, 0)
	for _, v := range l.entries {
		if v.Timestamp.Before(cutoff) {
			continue
		}
		if len(userID) > 0 && v.UserID != userID {
			continue
		}
		out = append(out, *v)
	}
	return out
}

func (l *violationLog) counts() (int, map[models.ViolationType]int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	byType := make(map[models.ViolationType]int)
	for _, v := range l.entries {
		byType[v.Type]++
	}
	return len(l.entries), byType
}
