package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"chatmod/pkg/config"
	"chatmod/pkg/log"
	"chatmod/pkg/moderation"
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

	moderator := moderation.New(cfg.Moderation)
	go moderator.RunSweeper(ctx, sweepInterval)

	s := &server{cfg: cfg, moderator: moderator}
	s.start()
}

func initializeLogger(ctx context.Context, cfg *config.Config) {
	if len(cfg.GoogleCloud.ProjectID) == 0 {
		log.InitializeStdoutLogger(log.Debug)
		return
	}

	_, err := log.InitializeGCPLogger(ctx, cfg, "moderation-server")
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}
