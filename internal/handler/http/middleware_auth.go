package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

const bearerScheme = "Bearer"

// auth rejects every request whose "Authorization" header is not
// "Bearer <APP_API_TOKEN>" with 401 {"error":"Unauthorized request"}.
// The token comparison runs in constant time.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("path", r.URL.Path).Msg("Unauthorized request to path")
			unauthorized(w)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.apiToken)) != 1 {
			log.Error().Str("path", r.URL.Path).Msg("Unauthorized request to path")
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.UnauthorizedResponse{Error: ErrUnauthorizedRequest.Error()}, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the token from a raw header value of the
// form:
//
//	Authorization: Bearer <token>
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || scheme != bearerScheme {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
