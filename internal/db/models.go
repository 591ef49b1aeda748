package db

import "time"

// Game is a catalog entry. Column names match the SQL files under
// db/migrations.
type Game struct {
	ID          int       `gorm:"primaryKey;column:id"`
	GamePicture string    `gorm:"size:150;column:gamepicture"`
	GameName    string    `gorm:"size:100;not null;column:gamename"`
	Description string    `gorm:"size:800;not null;column:description"`
	Developer   string    `gorm:"size:100;not null;column:developer"`
	Publisher   string    `gorm:"size:100;not null;column:publisher"`
	ReleaseDate string    `gorm:"size:100;not null;column:releasedate"`
	Comments    []Comment `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Game) TableName() string { return "game" }

type Comment struct {
	CommentID        int       `gorm:"primaryKey;column:commentid"`
	CommentatorsName string    `gorm:"size:80;not null;column:commentatorsname"`
	Comment          string    `gorm:"size:800;not null;column:comment"`
	GameID           int       `gorm:"index;not null;column:game_id"`
	Timestamp        time.Time `gorm:"not null;column:timestamp"`
}

func (Comment) TableName() string { return "comments" }

// Session is a server-side session record keyed by the opaque ID carried in
// the signed session cookie.
type Session struct {
	ID            string    `gorm:"primaryKey;size:64"`
	Authenticated bool      `gorm:"not null;default:false"`
	Flash         string    `gorm:"size:255"`
	FlashKind     string    `gorm:"size:16"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}
