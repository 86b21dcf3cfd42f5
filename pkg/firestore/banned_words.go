package firestore

import (
	"fmt"
	"strings"

	"chatmod/pkg/log"
	"chatmod/pkg/models"

	"cloud.google.com/go/firestore"
)

const CollectionBannedWords = "banned-words"

func (fs *Firestore) BannedWords() ([]*models.BannedWord, error) {
	criteria := QueryCriteria{
		Path:   CollectionBannedWords,
		Filter: createPropertyFilter("bot", Equal, fs.cfg.IRC.Nick),
	}

	return query[models.BannedWord](fs.ctx, fs.client, criteria)
}

func (fs *Firestore) AddBannedWord(word, addedBy string) error {
	bw := models.NewBannedWord(fs.cfg.IRC.Nick, word, addedBy)
	path := fmt.Sprintf("%s/%s", CollectionBannedWords, bw.ID)
	return create(fs.ctx, fs.client, path, bw)
}

func (fs *Firestore) RemoveBannedWord(word string) error {
	logger := log.Logger()

	criteria := QueryCriteria{
		Path: CollectionBannedWords,
		Filter: firestore.AndFilter{
			Filters: []firestore.EntityFilter{
				createPropertyFilter("bot", Equal, fs.cfg.IRC.Nick),
				createPropertyFilter("word", Equal, strings.ToLower(word)),
			},
		},
	}

	bannedWords, err := query[models.BannedWord](fs.ctx, fs.client, criteria)
	if err != nil {
		logger.Rawf(log.Warning, "error querying banned words, %s", err)
		return err
	}

	if len(bannedWords) == 0 {
		logger.Rawf(log.Debug, "no matching banned words found")
		return nil
	}

	for _, bw := range bannedWords {
		path := fmt.Sprintf("%s/%s", CollectionBannedWords, bw.ID)
		if err = remove(fs.ctx, fs.client, path); err != nil {
			return err
		}
	}

	return nil
}
