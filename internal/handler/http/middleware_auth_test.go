package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wallet-keeper/internal/logger"
	"github.com/MKhiriev/go-wallet-keeper/internal/mock"
	"github.com/MKhiriev/go-wallet-keeper/internal/service"
	"github.com/MKhiriev/go-wallet-keeper/internal/utils"
	"github.com/MKhiriev/go-wallet-keeper/models"
)

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parse          bool
		parseErr       error
		expectedStatus int
		nextCalled     bool
	}{
		{name: "no header", expectedStatus: http.StatusUnauthorized},
		{name: "no scheme", authHeader: "token-without-scheme", expectedStatus: http.StatusUnauthorized},
		{name: "basic scheme", authHeader: "Basic dXNlcjpwYXNz", expectedStatus: http.StatusUnauthorized},
		{name: "empty bearer", authHeader: "Bearer ", expectedStatus: http.StatusUnauthorized},
		{name: "rejected token", authHeader: "Bearer bad", parse: true, parseErr: service.ErrTokenIsExpiredOrInvalid, expectedStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer good", parse: true, expectedStatus: http.StatusOK, nextCalled: true},
		{name: "lower case scheme", authHeader: "bearer good", parse: true, expectedStatus: http.StatusOK, nextCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := mock.NewMockAuthService(ctrl)
			if tt.parse {
				token := models.Token{}
				if tt.parseErr == nil {
					token.Identifier = "alice"
				}
				authSvc.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(token, tt.parseErr)
			}

			h := &Handler{
				logger:   logger.Nop(),
				services: &service.Services{AuthService: authSvc},
			}

			nextCalled := false
			var identifier string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				identifier, _ = utils.GetIdentifierFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, "alice", identifier)
			} else {
				assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`)
			}
		})
	}
}
