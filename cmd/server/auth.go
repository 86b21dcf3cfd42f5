package main

import (
	"fmt"
	"net/http"
	"strings"

	"chatmod/pkg/log"

	"github.com/golang-jwt/jwt/v5"
)

// authorized wraps admin endpoints with bearer-token authentication.
// Tokens are HS256-signed with the configured server secret.
func (s *server) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method, %v", t.Header["alg"])
			}
			return []byte(s.cfg.Server.JWTSecret), nil
		})

		if err != nil || !parsed.Valid {
			log.Logger().Warningf(nil, "rejected token, %s", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next(w, r)
	}
}
