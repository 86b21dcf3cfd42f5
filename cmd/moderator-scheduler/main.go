package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"chatmod/pkg/config"
	"chatmod/pkg/firestore"
	"chatmod/pkg/log"
	"chatmod/pkg/models"
	"chatmod/pkg/queue"
)

const defaultConfigFilename = "config.yaml"

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

	if _, err = firestore.Initialize(ctx, cfg); err != nil {
		panic(fmt.Errorf("error initializing firestore, %s", err))
	}
	defer firestore.Get().Close()

	if _, err = queue.Initialize(ctx, cfg); err != nil {
		panic(fmt.Errorf("error initializing queue, %s", err))
	}
	defer queue.Get().Close()

	start()
}

func initializeLogger(ctx context.Context, cfg *config.Config) {
	if len(cfg.GoogleCloud.ProjectID) == 0 {
		log.InitializeStdoutLogger(log.Debug)
		return
	}

	_, err := log.InitializeGCPLogger(ctx, cfg, fmt.Sprintf("%s-scheduler", cfg.IRC.Nick))
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}

func start() {
	logger := log.Logger()
	logger.Debug(nil, "starting scheduler")

	for {
		tasks, err := firestore.Get().DueTasks()

		if err != nil {
			logger.Errorf(nil, "error getting due tasks, %s", err)
		} else if len(tasks) > 0 {
			publishDueTasks(tasks)
		}

		time.Sleep(1 * time.Second)
	}
}

func publishDueTasks(tasks []*models.Task) {
	logger := log.Logger()
	q := queue.Get()
	fs := firestore.Get()

	for _, task := range tasks {
		logger.Debugf(nil, "publishing %s: %s", task.ID, task.Type)

		if err := q.Publish(task); err != nil {
			logger.Errorf(nil, "error publishing %s, %s", task.ID, err)
			continue
		}

		if err := fs.CompleteTask(task.ID); err != nil {
			logger.Errorf(nil, "error completing %s, %s", task.ID, err)
		}
	}
}
