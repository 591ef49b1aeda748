package server

import (
	"net/http"

	"gameshelf/internal/web"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

func (s *Server) handleLoginView(w http.ResponseWriter, r *http.Request) {
	message, kind := s.sessions.PopFlash(w, r)
	templ.Handler(web.Login(web.Flash{Message: message, Kind: kind})).ServeHTTP(w, r)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	if !s.verifier.Verify(username, password) {
		s.logger.Warn("login rejected", zap.String("username", username))
		// The failed attempt re-renders the form directly, flash included.
		templ.Handler(web.Login(web.Flash{Message: "Access Denied!", Kind: "error"})).ServeHTTP(w, r)
		return
	}
	s.sessions.SetAuthenticated(w, r, true)
	s.logger.Info("admin logged in", zap.String("username", username))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.SetAuthenticated(w, r, false)
	http.Redirect(w, r, "/login", http.StatusFound)
}
