package web

type Flash struct {
	Message string
	Kind    string
}

type GameCard struct {
	ID      int
	Name    string
	Picture string
}

type CommentView struct {
	ID       int
	Author   string
	Body     string
	PostedAt string
	GameID   int
}

type GameDetail struct {
	ID          int
	Name        string
	Picture     string
	Description string
	Developer   string
	Publisher   string
	ReleaseDate string
	Comments    []CommentView
}

type AdminData struct {
	Games    []GameCard
	Comments []CommentView
}
