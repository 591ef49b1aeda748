package server

import (
	"errors"
	"net/http"

	"gameshelf/internal/catalog"
	"gameshelf/internal/web"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	games, err := s.store.ListGames()
	if err != nil {
		s.logger.Error("list games failed", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	message, kind := s.sessions.PopFlash(w, r)
	templ.Handler(web.Home(web.Flash{Message: message, Kind: kind}, gameCards(games))).ServeHTTP(w, r)
}

func (s *Server) handleGamePage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGamePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	game, err := s.store.GetGame(id)
	if errors.Is(err, catalog.ErrNotFound) {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}
	if err != nil {
		s.logger.Error("get game failed", zap.Int("game_id", id), zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	message, kind := s.sessions.PopFlash(w, r)
	templ.Handler(web.GamePage(web.Flash{Message: message, Kind: kind}, gameDetail(game))).ServeHTTP(w, r)
}

func gameCards(games []catalog.GameSummary) []web.GameCard {
	cards := make([]web.GameCard, 0, len(games))
	for _, game := range games {
		cards = append(cards, web.GameCard{ID: game.ID, Name: game.Name, Picture: game.Picture})
	}
	return cards
}

func gameDetail(game catalog.Game) web.GameDetail {
	detail := web.GameDetail{
		ID:          game.ID,
		Name:        game.Name,
		Picture:     game.Picture,
		Description: game.Description,
		Developer:   game.Developer,
		Publisher:   game.Publisher,
		ReleaseDate: game.ReleaseDate,
	}
	for _, comment := range game.Comments {
		detail.Comments = append(detail.Comments, commentView(comment))
	}
	return detail
}

func commentView(comment catalog.Comment) web.CommentView {
	return web.CommentView{
		ID:       comment.ID,
		Author:   comment.Author,
		Body:     comment.Body,
		PostedAt: web.FormatCommentTime(comment.PostedAt),
		GameID:   comment.GameID,
	}
}
