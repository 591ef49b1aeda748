package web

import (
	"strconv"
	"time"

	"github.com/a-h/templ"
)

func itoa(value int) string {
	return strconv.Itoa(value)
}

func esc(value string) string {
	return templ.EscapeString(value)
}

// FormatCommentTime renders a comment timestamp the way the pages display
// it, minute precision in UTC.
func FormatCommentTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format("2006-01-02 15:04")
}

func pictureURL(picture string) string {
	if picture == "" {
		picture = "default.jpg"
	}
	return "/display_image/" + esc(picture)
}
