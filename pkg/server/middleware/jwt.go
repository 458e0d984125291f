package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
	"github.com/doodlesbykumbi/accrisk/pkg/identity"
)

// JWTAuthenticator is middleware that validates HS256 bearer tokens
type JWTAuthenticator struct {
	secret atomic.Pointer[[]byte]
}

// NewJWTAuthenticator creates a new JWT authenticator middleware
func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	j := &JWTAuthenticator{}
	j.SetSecret(secret)
	return j
}

// SetSecret replaces the verification key. Tokens signed with the old key
// are rejected from then on.
func (j *JWTAuthenticator) SetSecret(secret string) {
	key := []byte(secret)
	j.secret.Store(&key)
}

// Middleware returns an HTTP middleware that validates bearer tokens and
// stores the caller's identity in the request context
func (j *JWTAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := RemoteIP(r)

		authHeader := r.Header.Get("Authorization")
		if len(authHeader) == 0 {
			unauthorized(w, clientIP, "", "Authorization missing")
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			unauthorized(w, clientIP, "", "Malformed authorization header")
			return
		}

		id, err := identity.Parse(*j.secret.Load(), strings.TrimSpace(tokenStr))
		if err != nil {
			unauthorized(w, clientIP, "", "Invalid token")
			return
		}
		id.WithRemoteIP(clientIP)

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

func unauthorized(w http.ResponseWriter, ip net.IP, user, msg string) {
	event := audit.AuthenticateEvent{UserID: user, ErrorMessage: msg}
	if ip != nil {
		event.ClientIP = ip.String()
	}
	audit.Log(event)

	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(msg))
}

// RemoteIP returns the client address of r, without the port
func RemoteIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return net.ParseIP(host)
}
