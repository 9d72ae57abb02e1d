// Package sessioncookie centralizes session cookie behavior. The cookie
// value is an HS256-signed token whose subject is the session ID, so a
// tampered cookie never resolves to a stored session.
package sessioncookie

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reuniteapp/reunite/internal/web/platform/httpx"
)

// Name is the canonical session cookie name.
const Name = "reunite_session"

// maxAge bounds how long a browser keeps the cookie. The session store is
// the source of truth; this only caps cookie lifetime client-side.
const maxAge = 30 * 24 * time.Hour

const minSecretLen = 32

// Codec signs and verifies session cookie values.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// NewCodec builds a codec from the signing secret.
func NewCodec(secret []byte) (*Codec, error) {
	if len(secret) < minSecretLen {
		return nil, errors.New("session cookie secret must be at least 32 bytes")
	}
	return &Codec{secret: secret, now: time.Now}, nil
}

// encode signs the session ID into a compact token.
func (c *Codec) encode(sessionID string) (string, error) {
	now := c.now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// decode verifies a token and returns the session ID.
func (c *Codec) decode(value string) (string, error) {
	parsed, err := jwt.ParseWithClaims(
		value,
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("session token has no subject")
	}
	return claims.Subject, nil
}

// Read returns the verified session ID when the cookie is present and its
// signature checks out.
func (c *Codec) Read(r *http.Request) (string, bool) {
	if c == nil || r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	sessionID, err := c.decode(value)
	if err != nil {
		return "", false
	}
	return sessionID, true
}

// Write sets the signed session cookie for the current request context.
func (c *Codec) Write(w http.ResponseWriter, r *http.Request, sessionID string) error {
	if c == nil || w == nil {
		return errors.New("codec and response writer are required")
	}
	value, err := c.encode(strings.TrimSpace(sessionID))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   httpx.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   httpx.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}
