package main

import (
	"context"
	"os"
	"time"

	"chatmod/pkg/config"
	"chatmod/pkg/firestore"
	"chatmod/pkg/irc"
	"chatmod/pkg/log"
	"chatmod/pkg/models"
	"chatmod/pkg/moderation"
	"chatmod/pkg/queue"
)

const defaultConfigFilename = "config.yaml"

const sweepInterval = 10 * time.Second

func main() {
	ctx := context.Background()

	configFilename := defaultConfigFilename
	if len(os.Args) > 1 {
		configFilename = os.Args[1]
	}

	cfg, err := config.ReadConfig(configFilename)
	if err != nil {
		panic(err)
	}

	initializeLogger(ctx, cfg)
	defer log.Logger().Close()

	initializeFirestore(ctx, cfg)
	defer firestore.Get().Close()

	initializeQueue(ctx, cfg)
	defer queue.Get().Close()

	moderator := moderation.New(cfg.Moderation)
	loadBannedWords(moderator)

	go moderator.RunSweeper(ctx, sweepInterval)

	svc := irc.NewIRC()
	h := newHandler(cfg, svc, moderator)

	go receiveRemovalTasks(h)

	err = svc.Connect(cfg, func() {
		log.Logger().Noticef(nil, "connected to %s as %s", cfg.IRC.Server, cfg.IRC.Nick)
	})
	if err != nil {
		panic(err)
	}

	ech := make(chan *irc.Event)
	go svc.Listen(ech)

	for {
		e := <-ech
		h.handle(e)
	}
}

func receiveRemovalTasks(h *handler) {
	err := queue.Get().Receive(func(task *models.Task) {
		h.handleRemovalTask(task)
	})
	if err != nil {
		log.Logger().Errorf(nil, "error receiving tasks, %s", err)
	}
}
