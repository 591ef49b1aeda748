package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gameshelf/internal/catalog"
	"gameshelf/internal/web"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

func (s *Server) handleAdminView(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Authenticated(w, r) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	games, err := s.store.ListGames()
	if err != nil {
		s.logger.Error("list games failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	comments, err := s.store.ListComments()
	if err != nil {
		s.logger.Error("list comments failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	message, kind := s.sessions.PopFlash(w, r)
	data := web.AdminData{Games: gameCards(games)}
	for _, comment := range comments {
		data.Comments = append(data.Comments, commentView(comment))
	}
	templ.Handler(web.Admin(web.Flash{Message: message, Kind: kind}, data)).ServeHTTP(w, r)
}

// handleAdminAction dispatches the four admin mutations. Every branch ends
// in exactly one flash and a redirect back to the panel.
func (s *Server) handleAdminAction(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.Authenticated(w, r) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	switch r.FormValue("action") {
	case "add":
		s.adminAddGame(w, r)
	case "update":
		s.adminUpdateGame(w, r)
	case "delete":
		s.adminDeleteGame(w, r)
	case "delete_comment":
		s.adminDeleteComment(w, r)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (s *Server) adminAddGame(w http.ResponseWriter, r *http.Request) {
	input := catalog.GameInput{
		Name:        r.FormValue("gamename"),
		Description: r.FormValue("description"),
		Developer:   r.FormValue("developer"),
		Publisher:   r.FormValue("publisher"),
		ReleaseDate: r.FormValue("releasedate"),
	}
	// Validate before touching the upload directory so a rejected
	// submission leaves no trace.
	if err := catalog.ValidateNewGame(input); err != nil {
		s.sessions.SetFlash(w, r, err.Error(), "error")
		return
	}
	picture, err := s.pictureFromForm(r)
	if err != nil {
		s.logger.Error("save upload failed", zap.Error(err))
		s.sessions.SetFlash(w, r, "Unexpected error, please try again.", "error")
		return
	}
	if picture == "" {
		picture = s.cfg.DefaultPicture
	}
	input.Picture = picture

	game, err := s.store.AddGame(input)
	if err != nil {
		s.flashStoreError(w, r, err, "")
		return
	}
	s.logger.Info("game added", zap.Int("game_id", game.ID), zap.String("name", game.Name))
	s.sessions.SetFlash(w, r, "Game added successfully!", "success")
}

func (s *Server) adminUpdateGame(w http.ResponseWriter, r *http.Request) {
	rawID := r.FormValue("id")
	id, err := strconv.Atoi(rawID)
	if err != nil {
		s.sessions.SetFlash(w, r, fmt.Sprintf("No game found with ID %s", rawID), "error")
		return
	}
	input := catalog.GameInput{
		Name:        r.FormValue("gamename"),
		Description: r.FormValue("description"),
		Developer:   r.FormValue("developer"),
		Publisher:   r.FormValue("publisher"),
		ReleaseDate: r.FormValue("releasedate"),
	}
	if _, err := s.store.GetGame(id); err != nil {
		s.flashStoreError(w, r, err, rawID)
		return
	}
	if err := catalog.ValidateGameUpdate(input); err != nil {
		s.sessions.SetFlash(w, r, err.Error(), "error")
		return
	}
	picture, err := s.pictureFromForm(r)
	if err != nil {
		s.logger.Error("save upload failed", zap.Error(err))
		s.sessions.SetFlash(w, r, "Unexpected error, please try again.", "error")
		return
	}
	input.Picture = picture

	if err := s.store.UpdateGame(id, input); err != nil {
		s.flashStoreError(w, r, err, rawID)
		return
	}
	s.logger.Info("game updated", zap.Int("game_id", id))
	s.sessions.SetFlash(w, r, fmt.Sprintf("Game with ID %s updated successfully!", rawID), "success")
}

func (s *Server) adminDeleteGame(w http.ResponseWriter, r *http.Request) {
	rawID := r.FormValue("id")
	id, err := strconv.Atoi(rawID)
	if err != nil {
		s.sessions.SetFlash(w, r, fmt.Sprintf("No game found with ID %s", rawID), "error")
		return
	}
	if err := s.store.DeleteGame(id); err != nil {
		s.flashStoreError(w, r, err, rawID)
		return
	}
	s.logger.Info("game deleted", zap.Int("game_id", id))
	s.sessions.SetFlash(w, r, fmt.Sprintf("Game with ID %s deleted successfully!", rawID), "success")
}

func (s *Server) adminDeleteComment(w http.ResponseWriter, r *http.Request) {
	rawID := r.FormValue("commentid")
	id, err := strconv.Atoi(rawID)
	if err != nil {
		s.sessions.SetFlash(w, r, fmt.Sprintf("No comment found with ID %s", rawID), "error")
		return
	}
	if err := s.store.DeleteComment(id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.sessions.SetFlash(w, r, fmt.Sprintf("No comment found with ID %s", rawID), "error")
			return
		}
		s.logger.Error("delete comment failed", zap.Int("comment_id", id), zap.Error(err))
		s.sessions.SetFlash(w, r, "Unexpected error, please try again.", "error")
		return
	}
	s.logger.Info("comment deleted", zap.Int("comment_id", id))
	s.sessions.SetFlash(w, r, fmt.Sprintf("Comment with ID %s deleted successfully!", rawID), "success")
}

// pictureFromForm saves the optional gamepicture upload and returns the
// stored reference, or "" when no file was attached.
func (s *Server) pictureFromForm(r *http.Request) (string, error) {
	file, header, err := r.FormFile("gamepicture")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()
	if header.Filename == "" {
		return "", nil
	}
	return s.saveUpload(file, header)
}

func (s *Server) flashStoreError(w http.ResponseWriter, r *http.Request, err error, rawID string) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		s.sessions.SetFlash(w, r, fmt.Sprintf("No game found with ID %s", rawID), "error")
	case catalog.IsValidation(err):
		s.sessions.SetFlash(w, r, err.Error(), "error")
	default:
		s.logger.Error("store mutation failed", zap.Error(err))
		s.sessions.SetFlash(w, r, "Unexpected error, please try again.", "error")
	}
}
