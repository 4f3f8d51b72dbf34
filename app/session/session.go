package session

import (
	"net/http"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const cookieName = "wq_session"

type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// Store binds browser sessions to user ids through an HS256-signed cookie.
// The cookie itself is the only session state; nothing is kept server-side.
type Store struct {
	secret []byte
	ttl    time.Duration
}

func NewStore(secret string, ttl time.Duration) *Store {
	return &Store{secret: []byte(secret), ttl: ttl}
}

// Establish signs a fresh session token for userID and sets it on the
// response.
func (s *Store) Establish(w http.ResponseWriter, userID uint) error {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(s.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Current returns the user id bound to the request's session, if any.
// A missing, malformed or expired cookie all read as "no session".
func (s *Store) Current(r *http.Request) (uint, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return 0, false
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}
	return claims.UserID, true
}

// Clear expires the session cookie, returning the browser to anonymous.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
