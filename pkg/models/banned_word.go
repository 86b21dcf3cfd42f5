package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const bannedWordIDPrefix = "banned-word"

// BannedWord is a persisted entry of the profanity blocklist.
type BannedWord struct {
	ID        string    `firestore:"id"`
	Bot       string    `firestore:"bot"`
	Word      string    `firestore:"word"`
	AddedBy   string    `firestore:"added_by"`
	CreatedAt time.Time `firestore:"created_at"`
}

func NewBannedWord(bot, word, addedBy string) *BannedWord {
	return &BannedWord{
		ID:        fmt.Sprintf("%s-%s", bannedWordIDPrefix, uuid.NewString()),
		Bot:       bot,
		Word:      strings.ToLower(word),
		AddedBy:   addedBy,
		CreatedAt: time.Now(),
	}
}
