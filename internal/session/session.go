package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName carries the session marker: a signed token naming the
// authenticated account.
const CookieName = "locker_session"

var ErrInvalidSession = errors.New("session: invalid or missing token")

// Manager signs and verifies session tokens. Holding a valid token is
// sufficient to be treated as logged in; the password is never re-checked.
//
// When no secret is configured a random per-process one is generated, so
// every open session dies with the process.
type Manager struct {
	secret []byte
}

func NewManager(secret string) (*Manager, error) {
	if secret != "" {
		return &Manager{secret: []byte(secret)}, nil
	}

	random := make([]byte, 32)
	if _, err := rand.Read(random); err != nil {
		return nil, fmt.Errorf("generating session secret: %w", err)
	}
	return &Manager{secret: random}, nil
}

// Issue creates a signed token naming the given account.
func (m *Manager) Issue(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and returns the username the token names.
func (m *Manager) Verify(raw string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)

	claims := jwt.MapClaims{}
	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidSession
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidSession
	}
	return sub, nil
}

// Cookie wraps a token in a session-scoped cookie (no Max-Age: it ends with
// the browser session).
func (m *Manager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie expires the session cookie immediately.
func (m *Manager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
