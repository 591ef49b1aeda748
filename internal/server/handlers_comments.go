package server

import (
	"errors"
	"net/http"
	"strconv"

	"gameshelf/internal/catalog"

	"go.uber.org/zap"
)

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseAddCommentPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	gamePath := "/game/" + strconv.Itoa(id)

	name := r.FormValue("name")
	body := r.FormValue("comment")
	_, err := s.store.AddComment(id, name, body)
	switch {
	case err == nil:
		s.sessions.SetFlash(w, r, "Comment added successfully!", "success")
	case catalog.IsValidation(err):
		s.sessions.SetFlash(w, r, err.Error(), "error")
	case errors.Is(err, catalog.ErrNotFound):
		s.sessions.SetFlash(w, r, "Game not found", "error")
	default:
		s.logger.Error("add comment failed", zap.Int("game_id", id), zap.Error(err))
		s.sessions.SetFlash(w, r, "Unexpected error, please try again.", "error")
	}
	http.Redirect(w, r, gamePath, http.StatusSeeOther)
}
