package catalog

import (
	"errors"
	"sort"
	"sync"
	"time"

	"gameshelf/internal/db"

	"gorm.io/gorm"
)

// Game is a catalog entry with its comments loaded.
type Game struct {
	ID          int
	Picture     string
	Name        string
	Description string
	Developer   string
	Publisher   string
	ReleaseDate string
	Comments    []Comment
}

type GameSummary struct {
	ID      int
	Name    string
	Picture string
}

type Comment struct {
	ID       int
	Author   string
	Body     string
	GameID   int
	PostedAt time.Time
}

// GameInput carries the fields of an add or update submission. Picture holds
// the stored picture reference, not the client filename.
type GameInput struct {
	Picture     string
	Name        string
	Description string
	Developer   string
	Publisher   string
	ReleaseDate string
}

// Store performs all game and comment reads and mutations. With a nil
// connection it keeps everything in memory, which is how the tests run.
type Store struct {
	db *gorm.DB

	mu            sync.Mutex
	nextCommentID int
	games         []Game
}

func NewStore(conn *gorm.DB) *Store {
	return &Store{
		db:            conn,
		nextCommentID: 1,
	}
}

// ListGames returns every game's id, name and picture in id order.
func (s *Store) ListGames() ([]GameSummary, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := make([]GameSummary, 0, len(s.games))
		for _, game := range s.games {
			list = append(list, GameSummary{ID: game.ID, Name: game.Name, Picture: game.Picture})
		}
		return list, nil
	}
	var records []db.Game
	if err := s.db.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]GameSummary, 0, len(records))
	for _, record := range records {
		list = append(list, GameSummary{ID: record.ID, Name: record.GameName, Picture: record.GamePicture})
	}
	return list, nil
}

// GetGame returns the full game row and its comments in insertion order.
func (s *Store) GetGame(id int) (Game, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		game, _, ok := s.findGame(id)
		if !ok {
			return Game{}, ErrNotFound
		}
		return cloneGame(*game), nil
	}
	var record db.Game
	err := s.db.Preload("Comments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("commentid ASC")
	}).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Game{}, ErrNotFound
	}
	if err != nil {
		return Game{}, err
	}
	return fromRecord(record), nil
}

// ListComments returns every comment across all games in insertion order,
// for the admin panel.
func (s *Store) ListComments() ([]Comment, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		var list []Comment
		for _, game := range s.games {
			list = append(list, game.Comments...)
		}
		sortCommentsByID(list)
		return list, nil
	}
	var records []db.Comment
	if err := s.db.Order("commentid ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	list := make([]Comment, 0, len(records))
	for _, record := range records {
		list = append(list, fromCommentRecord(record))
	}
	return list, nil
}

func (s *Store) CountGames() (int, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return len(s.games), nil
	}
	var count int64
	if err := s.db.Model(&db.Game{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// AddGame validates and inserts a new game, returning it with its assigned ID.
func (s *Store) AddGame(in GameInput) (Game, error) {
	if err := validateAddGame(in); err != nil {
		return Game{}, err
	}
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		game := Game{
			ID:          s.nextMemGameID(),
			Picture:     in.Picture,
			Name:        in.Name,
			Description: in.Description,
			Developer:   in.Developer,
			Publisher:   in.Publisher,
			ReleaseDate: in.ReleaseDate,
		}
		s.games = append(s.games, game)
		return cloneGame(game), nil
	}
	record := db.Game{
		GamePicture: in.Picture,
		GameName:    in.Name,
		Description: in.Description,
		Developer:   in.Developer,
		Publisher:   in.Publisher,
		ReleaseDate: in.ReleaseDate,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return Game{}, err
	}
	return fromRecord(record), nil
}

// UpdateGame overwrites only the non-empty fields of in. Length violations
// abort before any field is written.
func (s *Store) UpdateGame(id int, in GameInput) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		game, idx, ok := s.findGame(id)
		if !ok {
			return ErrNotFound
		}
		if err := validateGameLengths(in); err != nil {
			return err
		}
		updated := *game
		applyInput(&updated, in)
		s.games[idx] = updated
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var record db.Game
		err := tx.First(&record, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := validateGameLengths(in); err != nil {
			return err
		}
		updates := map[string]any{}
		if in.Name != "" {
			updates["gamename"] = in.Name
		}
		if in.Description != "" {
			updates["description"] = in.Description
		}
		if in.Developer != "" {
			updates["developer"] = in.Developer
		}
		if in.Publisher != "" {
			updates["publisher"] = in.Publisher
		}
		if in.ReleaseDate != "" {
			updates["releasedate"] = in.ReleaseDate
		}
		if in.Picture != "" {
			updates["gamepicture"] = in.Picture
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&db.Game{}).Where("id = ?", id).Updates(updates).Error
	})
}

// DeleteGame removes the game and its comments, then renumbers every game
// with a higher ID down by one so IDs stay contiguous from 1. The whole
// sequence runs in a single transaction; comments follow their game via the
// ON UPDATE CASCADE foreign key.
func (s *Store) DeleteGame(id int) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		_, idx, ok := s.findGame(id)
		if !ok {
			return ErrNotFound
		}
		s.games = append(s.games[:idx], s.games[idx+1:]...)
		for i := range s.games {
			if s.games[i].ID > id {
				s.games[i].ID--
				for j := range s.games[i].Comments {
					s.games[i].Comments[j].GameID--
				}
			}
		}
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&db.Game{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		var higher []db.Game
		if err := tx.Where("id > ?", id).Order("id ASC").Find(&higher).Error; err != nil {
			return err
		}
		// Ascending order keeps each target ID free before it is taken.
		for _, game := range higher {
			if err := tx.Model(&db.Game{}).Where("id = ?", game.ID).Update("id", game.ID-1).Error; err != nil {
				return err
			}
		}
		// Keep the serial sequence aligned with the renumbered rows so the
		// next insert continues the contiguous range.
		return tx.Exec(
			"SELECT setval(pg_get_serial_sequence('game', 'id'), COALESCE((SELECT MAX(id) FROM game), 0) + 1, false)",
		).Error
	})
}

// AddComment validates and appends a visitor comment to a game, stamping it
// with the current UTC time.
func (s *Store) AddComment(gameID int, author, body string) (Comment, error) {
	if err := validateComment(author, body); err != nil {
		return Comment{}, err
	}
	now := time.Now().UTC()
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		game, idx, ok := s.findGame(gameID)
		if !ok {
			return Comment{}, ErrNotFound
		}
		comment := Comment{
			ID:       s.nextCommentID,
			Author:   author,
			Body:     body,
			GameID:   gameID,
			PostedAt: now,
		}
		s.nextCommentID++
		updated := *game
		updated.Comments = append(append([]Comment(nil), game.Comments...), comment)
		s.games[idx] = updated
		return comment, nil
	}
	var comment Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var game db.Game
		err := tx.First(&game, gameID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		record := db.Comment{
			CommentatorsName: author,
			Comment:          body,
			GameID:           gameID,
			Timestamp:        now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		comment = fromCommentRecord(record)
		return nil
	})
	if err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// DeleteComment removes a single comment.
func (s *Store) DeleteComment(id int) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.games {
			for j := range s.games[i].Comments {
				if s.games[i].Comments[j].ID == id {
					comments := s.games[i].Comments
					s.games[i].Comments = append(comments[:j], comments[j+1:]...)
					return nil
				}
			}
		}
		return ErrNotFound
	}
	result := s.db.Delete(&db.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) findGame(id int) (*Game, int, bool) {
	for i := range s.games {
		if s.games[i].ID == id {
			return &s.games[i], i, true
		}
	}
	return nil, 0, false
}

// Memory mode mirrors the original store's behavior of reusing the top of
// the range after a delete, keeping IDs contiguous.
func (s *Store) nextMemGameID() int {
	max := 0
	for _, game := range s.games {
		if game.ID > max {
			max = game.ID
		}
	}
	return max + 1
}

func applyInput(game *Game, in GameInput) {
	if in.Name != "" {
		game.Name = in.Name
	}
	if in.Description != "" {
		game.Description = in.Description
	}
	if in.Developer != "" {
		game.Developer = in.Developer
	}
	if in.Publisher != "" {
		game.Publisher = in.Publisher
	}
	if in.ReleaseDate != "" {
		game.ReleaseDate = in.ReleaseDate
	}
	if in.Picture != "" {
		game.Picture = in.Picture
	}
}

func cloneGame(game Game) Game {
	game.Comments = append([]Comment(nil), game.Comments...)
	return game
}

func sortCommentsByID(list []Comment) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
}

func fromRecord(record db.Game) Game {
	game := Game{
		ID:          record.ID,
		Picture:     record.GamePicture,
		Name:        record.GameName,
		Description: record.Description,
		Developer:   record.Developer,
		Publisher:   record.Publisher,
		ReleaseDate: record.ReleaseDate,
	}
	for _, comment := range record.Comments {
		game.Comments = append(game.Comments, fromCommentRecord(comment))
	}
	return game
}

func fromCommentRecord(record db.Comment) Comment {
	return Comment{
		ID:       record.CommentID,
		Author:   record.CommentatorsName,
		Body:     record.Comment,
		GameID:   record.GameID,
		PostedAt: record.Timestamp,
	}
}
