package http

import (
	"net/http"
	"strings"

	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/utils"
)

// Response messages emitted by the auth gate. Every protected route shares
// exactly these two rejection bodies.
const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid or expired token"
)

// auth is the single authorization gate for every protected route.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the caller's identity in the request context via [utils.WithCaller] before
// delegating to the next handler.
//
// The two failure modes are deliberately distinct:
//   - 401 when no credential was presented at all (header absent, or the
//     token segment is missing or empty).
//   - 403 when a credential was presented but failed verification. Expired,
//     tampered, and malformed tokens are indistinguishable here.
//
// There is no per-route permission granularity beyond "authenticated or not".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			utils.WriteMessage(w, msgInvalidToken, http.StatusForbidden)
			return
		}

		// Store the verified identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = utils.WithCaller(ctx, utils.Caller{
			UserID: token.UserID,
			PRN:    token.Claims.PRN,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// The scheme itself is ignored; only the second whitespace-separated part is
// used. It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent or blank.
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
