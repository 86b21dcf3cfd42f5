package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"chatmod/pkg/config"
	"chatmod/pkg/log"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Logger().Errorf(nil, "error encoding response, %s", err)
	}
}

type moderateRequest struct {
	UserID  string   `json:"user_id"`
	Message string   `json:"message"`
	Roles   []string `json:"roles"`
}

func (s *server) moderateHandler(w http.ResponseWriter, r *http.Request) {
	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.UserID) == 0 {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	decision := s.moderator.Moderate(req.UserID, req.Message, req.Roles)
	writeJSON(w, http.StatusOK, decision)
}

func (s *server) userStatusHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.moderator.GetUserStatus(r.PathValue("id")))
}

func (s *server) violationsHandler(w http.ResponseWriter, r *http.Request) {
	days := 7
	if d, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && d > 0 {
		days = d
	}

	violations := s.moderator.GetViolations(r.URL.Query().Get("user_id"), days)
	writeJSON(w, http.StatusOK, violations)
}

func (s *server) statsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.moderator.GetStats())
}

type manualActionRequest struct {
	UserID      string `json:"user_id"`
	Action      string `json:"action"`
	Duration    int    `json:"duration"`
	Reason      string `json:"reason"`
	ModeratorID string `json:"moderator_id"`
}

func (s *server) manualActionHandler(w http.ResponseWriter, r *http.Request) {
	var req manualActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.UserID) == 0 {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ok := s.moderator.ApplyManualAction(req.UserID, req.Action, time.Duration(req.Duration)*time.Second, req.Reason, req.ModeratorID)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]bool{"success": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *server) updateConfigHandler(w http.ResponseWriter, r *http.Request) {
	var update config.ModerationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": s.moderator.UpdateConfig(&update)})
}

type wordsRequest struct {
	Add    []string `json:"add"`
	Remove []string `json:"remove"`
}

func (s *server) wordsHandler(w http.ResponseWriter, r *http.Request) {
	var req wordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Add) > 0 {
		s.moderator.AddProfanityWords(req.Add)
	}
	if len(req.Remove) > 0 {
		s.moderator.RemoveProfanityWords(req.Remove)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"words":   s.moderator.ProfanityWords(),
	})
}

func (s *server) sweepHandler(w http.ResponseWriter, r *http.Request) {
	s.moderator.SweepExpired(time.Now())
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
