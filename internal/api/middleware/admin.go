package middleware

import (
	"net/http"

	appErrors "github.com/digiri/giriloyo-batik/internal/errors"
	"github.com/digiri/giriloyo-batik/internal/utils/response"
	"golang.org/x/crypto/bcrypt"
)

const AdminKeyHeader = "X-Admin-Key"

type AdminMiddleware struct {
	keyHash []byte
}

// NewAdminMiddleware takes the bcrypt hash of the admin key. An empty hash
// disables every admin route.
func NewAdminMiddleware(keyHash string) *AdminMiddleware {
	return &AdminMiddleware{keyHash: []byte(keyHash)}
}

func (m *AdminMiddleware) RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		key := r.Header.Get(AdminKeyHeader)
		if key == "" {
			logger.Warn("Admin route called without key")
			response.Error(w, appErrors.UnauthorizedError("Admin key is required"))
			return
		}

		if len(m.keyHash) == 0 || bcrypt.CompareHashAndPassword(m.keyHash, []byte(key)) != nil {
			logger.Warn("Admin key rejected")
			response.Error(w, appErrors.ForbiddenError("Invalid admin key"))
			return
		}

		next.ServeHTTP(w, r)
	}
}
