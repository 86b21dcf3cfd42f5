package main

import (
	"context"
	"fmt"

	"chatmod/pkg/config"
	"chatmod/pkg/firestore"
	"chatmod/pkg/log"
	"chatmod/pkg/moderation"
	"chatmod/pkg/queue"
)

func initializeLogger(ctx context.Context, cfg *config.Config) {
	if len(cfg.GoogleCloud.ProjectID) == 0 {
		log.InitializeStdoutLogger(log.Debug)
		return
	}

	_, err := log.InitializeGCPLogger(ctx, cfg, cfg.IRC.Nick)
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}

func initializeFirestore(ctx context.Context, cfg *config.Config) {
	_, err := firestore.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing firestore, %s", err))
	}
}

func initializeQueue(ctx context.Context, cfg *config.Config) {
	_, err := queue.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing queue, %s", err))
	}
}

func loadBannedWords(moderator *moderation.Moderator) {
	logger := log.Logger()

	bannedWords, err := firestore.Get().BannedWords()
	if err != nil {
		panic(fmt.Errorf("error retrieving banned words, %s", err))
	}

	words := make([]string, 0, len(bannedWords))
	for _, bw := range bannedWords {
		words = append(words, bw.Word)
	}

	moderator.AddProfanityWords(words)
	logger.Rawf(log.Debug, "loaded %d banned words", len(bannedWords))
}
