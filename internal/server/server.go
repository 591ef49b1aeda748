package server

import (
	"net/http"

	"gameshelf/internal/catalog"
	"gameshelf/internal/config"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	store    *catalog.Store
	db       *gorm.DB
	cfg      config.Config
	sessions *sessionStore
	verifier CredentialVerifier
	logger   *zap.Logger
}

func New(conn *gorm.DB, cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:    catalog.NewStore(conn),
		db:       conn,
		cfg:      cfg,
		sessions: newSessionStore(conn, cfg.SessionSecret),
		verifier: NewConfigVerifier(cfg),
		logger:   logger,
	}
}

// SetVerifier swaps the credential verification capability.
func (s *Server) SetVerifier(verifier CredentialVerifier) {
	if verifier != nil {
		s.verifier = verifier
	}
}

// Store exposes the catalog store for seeding.
func (s *Server) Store() *catalog.Store {
	return s.store
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /game/", s.handleGamePage)
	mux.HandleFunc("POST /game/", s.handleAddComment)
	mux.HandleFunc("GET /display_image/", s.handleDisplayImage)
	mux.HandleFunc("GET /login", s.handleLoginView)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)
	mux.HandleFunc("GET /admin", s.handleAdminView)
	mux.HandleFunc("POST /admin", s.handleAdminAction)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}
