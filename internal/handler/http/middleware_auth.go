package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-wallet-keeper/internal/app"
	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

// auth resolves the bearer token to the wallet owner identifier.
//
// On success the identifier is stored in the request context (see
// [utils.WithIdentifier]) and added to the request logger. Requests without
// a valid token are rejected with 401 and never reach a handler.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeUnauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeUnauthorized(w)
			return
		}

		ctx = utils.WithIdentifier(ctx, token.Identifier)

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("identifier", token.Identifier)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.ErrorResponse{
		Code:    app.CodeUnauthorized,
		Message: app.MsgTokenIsExpiredOrInvalid,
	}, http.StatusUnauthorized)
}
