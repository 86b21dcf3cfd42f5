package main

import (
	"fmt"
	nativeLog "log"
	"net/http"

	"chatmod/pkg/config"
	"chatmod/pkg/log"
	"chatmod/pkg/moderation"
)

type server struct {
	cfg       *config.Config
	moderator *moderation.Moderator
}

func (s *server) start() {
	logger := log.Logger()
	logger.Rawf(log.Info, "starting moderation server on :%d", s.cfg.Server.Port)

	http.HandleFunc("POST /moderate", s.moderateHandler)
	http.HandleFunc("GET /users/{id}", s.userStatusHandler)
	http.HandleFunc("GET /violations", s.violationsHandler)
	http.HandleFunc("GET /stats", s.statsHandler)
	http.HandleFunc("POST /actions", s.authorized(s.manualActionHandler))
	http.HandleFunc("PUT /config", s.authorized(s.updateConfigHandler))
	http.HandleFunc("POST /words", s.authorized(s.wordsHandler))
	http.HandleFunc("POST /sweep", s.authorized(s.sweepHandler))

	nativeLog.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", s.cfg.Server.Port), nil))
}
