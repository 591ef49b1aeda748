package server

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"gameshelf/internal/db"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const sessionCookie = "gs_session"

// sessionStore keeps one record per browser session: the authenticated flag
// and the pending flash. The cookie carries only an opaque session ID signed
// as an HS256 token; a tampered cookie falls back to a fresh session.
type sessionStore struct {
	db       *gorm.DB
	secret   []byte
	mu       sync.Mutex
	sessions map[string]sessionData
}

type sessionData struct {
	Authenticated bool
	Flash         string
	FlashKind     string
}

func newSessionStore(conn *gorm.DB, secret string) *sessionStore {
	return &sessionStore{
		db:       conn,
		secret:   []byte(secret),
		sessions: make(map[string]sessionData),
	}
}

func (s *sessionStore) SetFlash(w http.ResponseWriter, r *http.Request, message, kind string) {
	if message == "" {
		return
	}
	id := s.ensureSessionID(w, r)
	s.mutate(id, func(data *sessionData) {
		data.Flash = message
		data.FlashKind = kind
	})
}

// PopFlash returns and clears the pending flash, if any.
func (s *sessionStore) PopFlash(w http.ResponseWriter, r *http.Request) (string, string) {
	id := s.ensureSessionID(w, r)
	var message, kind string
	s.mutate(id, func(data *sessionData) {
		message = data.Flash
		kind = data.FlashKind
		data.Flash = ""
		data.FlashKind = ""
	})
	return message, kind
}

func (s *sessionStore) Authenticated(w http.ResponseWriter, r *http.Request) bool {
	id := s.ensureSessionID(w, r)
	authenticated := false
	s.mutate(id, func(data *sessionData) {
		authenticated = data.Authenticated
	})
	return authenticated
}

func (s *sessionStore) SetAuthenticated(w http.ResponseWriter, r *http.Request, value bool) {
	id := s.ensureSessionID(w, r)
	s.mutate(id, func(data *sessionData) {
		data.Authenticated = value
	})
}

func (s *sessionStore) mutate(id string, fn func(data *sessionData)) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		data := s.sessions[id]
		fn(&data)
		s.sessions[id] = data
		return
	}
	var record db.Session
	err := s.db.Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = db.Session{ID: id}
	} else if err != nil {
		return
	}
	data := sessionData{
		Authenticated: record.Authenticated,
		Flash:         record.Flash,
		FlashKind:     record.FlashKind,
	}
	fn(&data)
	record.Authenticated = data.Authenticated
	record.Flash = data.Flash
	record.FlashKind = data.FlashKind
	_ = s.db.Save(&record).Error
}

func (s *sessionStore) ensureSessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if id, ok := s.verifyToken(cookie.Value); ok {
			return id
		}
	}
	id := newSessionID()
	token, err := s.signToken(id)
	if err != nil {
		return id
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *sessionStore) signToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"sid": id,
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *sessionStore) verifyToken(value string) (string, bool) {
	token, err := jwt.Parse(value, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("sess-%d", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", buf)
}
