package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAdminRequiresLogin(t *testing.T) {
	_, ts, client := newTestServer(t, testConfig(t))

	resp, _ := getPage(t, noRedirect(client), ts.URL+"/admin")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, resp.StatusCode)
	}
	if got := redirectLocation(t, resp); got != "/login" {
		t.Fatalf("expected redirect to /login, got %s", got)
	}

	resp, _ = postForm(t, noRedirect(client), ts.URL+"/admin", map[string]string{
		"action": "delete",
		"id":     "1",
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected status %d for unauthenticated POST, got %d", http.StatusFound, resp.StatusCode)
	}
	if got := redirectLocation(t, resp); got != "/login" {
		t.Fatalf("expected redirect to /login, got %s", got)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	_, ts, client := newTestServer(t, testConfig(t))

	resp, body := postForm(t, client, ts.URL+"/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body, "Access Denied!") {
		t.Fatalf("expected access denied flash, got: %.200s", body)
	}

	// The failed attempt grants nothing, immediately or on a later request.
	for i := 0; i < 2; i++ {
		resp, _ := getPage(t, noRedirect(client), ts.URL+"/admin")
		if resp.StatusCode != http.StatusFound {
			t.Fatalf("expected /admin to stay gated, got %d", resp.StatusCode)
		}
	}
}

func TestLoginGrantsAdminAccess(t *testing.T) {
	srv, ts, client := newTestServer(t, testConfig(t))
	seedGames(t, srv, 2)
	login(t, client, ts)

	resp, body := getPage(t, client, ts.URL+"/admin")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	for _, fragment := range []string{"Admin Panel", "Game 1", "Game 2"} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected %q on the admin panel", fragment)
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	_, ts, client := newTestServer(t, testConfig(t))
	login(t, client, ts)

	resp, _ := getPage(t, noRedirect(client), ts.URL+"/logout")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, resp.StatusCode)
	}
	if got := redirectLocation(t, resp); got != "/login" {
		t.Fatalf("expected redirect to /login, got %s", got)
	}

	resp, _ = getPage(t, noRedirect(client), ts.URL+"/admin")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected /admin gated after logout, got %d", resp.StatusCode)
	}
}

func TestAdminAddGame(t *testing.T) {
	srv, ts, client := newTestServer(t, testConfig(t))
	login(t, client, ts)

	resp, body := postForm(t, client, ts.URL+"/admin", map[string]string{
		"action":      "add",
		"gamename":    "Hollow Knight",
		"description": "A challenging action platformer.",
		"developer":   "Team Cherry",
		"publisher":   "Team Cherry",
		"releasedate": "2017-02-24",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d after redirect, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body, "Game added successfully!") {
		t.Fatalf("expected success flash, got: %.200s", body)
	}

	game, err := srv.Store().GetGame(1)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if game.Name != "Hollow Knight" || game.Developer != "Team Cherry" {
		t.Fatalf("round trip mismatch: %+v", game)
	}
	if game.Picture != "default.jpg" {
		t.Fatalf("expected default picture, got %q", game.Picture)
	}
}

func TestAdminAddGameValidation(t *testing.T) {
	srv, ts, client := newTestServer(t, testConfig(t))
	login(t, client, ts)

	resp, body := postForm(t, client, ts.URL+"/admin", map[string]string{
		"action":      "add",
		"gamename":    "Nameless",
		"description": "",
		"developer":   "Dev",
		"publisher":   "Pub",
		"releasedate": "2024",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body, "All fields must be filled out") {
		t.Fatalf("expected validation flash, got: %.200s", body)
	}

	resp, body = postForm(t, client, ts.URL+"/admin", map[string]string{
		"action":      "add",
		"gamename":    strings.Repeat("a", 101),
		"description": "d",
		"developer":   "Dev",
		"publisher":   "Pub",
		"releasedate": "2024",
	})
	if !strings.Contains(body, "Field lengths exceed the allowed limit") {
		t.Fatalf("expected length flash, got: %.200s", body)
	}

	count, _ := srv.Store().CountGames()
	if count != 0 {
		t.Fatalf("expected no games created, got %d", count)
	}
}

func TestAdminAddGameWithUpload(t *testing.T) {
	cfg := testConfig(t)
	srv, ts, client := newTestServer(t, cfg)
	login(t, client, ts)

	resp, body := postMultipart(t, client, ts.URL+"/admin", map[string]string{
		"action":      "add",
		"gamename":    "Celeste",
		"description": "Climb the mountain.",
		"developer":   "Maddy Makes Games",
		"publisher":   "Maddy Makes Games",
		"releasedate": "2018-01-25",
	}, "gamepicture", "Box Art (Final).PNG", []byte("png bytes"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body, "Game added successfully!") {
		t.Fatalf("expected success flash, got: %.200s", body)
	}

	game, err := srv.Store().GetGame(1)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if game.Picture == "default.jpg" || game.Picture == "" {
		t.Fatalf("expected stored upload reference, got %q", game.Picture)
	}
	// Stored under a generated name, not the client filename.
	if strings.Contains(game.Picture, "Box Art") {
		t.Fatalf("client filename leaked into storage: %q", game.Picture)
	}
	if !strings.HasSuffix(game.Picture, ".png") {
		t.Fatalf("expected lowercased extension preserved, got %q", game.Picture)
	}
	data, err := os.ReadFile(filepath.Join(cfg.UploadDir, game.Picture))
	if err != nil {
		t.Fatalf("read stored upload: %v", err)
	}
	if string(data) != "png bytes" {
		t.Fatalf("stored upload corrupted: %q", data)
	}
}

func TestAdminUpdateGame(t *testing.T) {
	srv, ts, client := newTestServer(t, testConfig(t))
	seedGames(t, srv, 2)
	login(t, client, ts)

	resp, body := postForm(t, client, ts.URL+"/admin", map[string]string{
		"action":      "update",
		"id":          "2",
		"gamename":    "Renamed Game",
		"description": "",
		"developer":   "",
		"publisher":   "New Publisher",
		"releasedate": "",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body, "Game with ID 2 updated successfully!") {
		t.Fatalf("expected success flash, got: %.200s", body)
	}

	game, err := srv.Store().GetGame(2)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if game.Name != "Renamed Game" || game.Publisher != "New Publisher" {
		t.Fatalf("expected updated fields, got %+v", game)
	}
	if game.Description != "Description 2" || game.ReleaseDate != "2024-01-01" {
		t.Fatalf("expected omitted fields kept, got %+v", game)
	}
}

func TestAdminUpdateGameNotFound(t *testing.T) {
	_, ts, client := newTestServer(t, testConfig(t))
	login(t, client, ts)

	resp, body := postForm(t, client, ts.URL+"/admin", map[string]string{
		"action":   "update",
		"id":       "42",
		"gamename": "Ghost",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body, "No game found with ID 42") {
		t.Fatalf("expected not-found flash, got: %.200s", body)
	}
}

func TestAdminUpdateGameOversizedField(t *testing.T) {
	srv, ts, client := newTestServer(t, testConfig(t))
	seedGames(t, srv, 1)
	login(t, client, ts)

	_, body := postForm(t, client, ts.URL+"/admin", map[string]string{
		"action":      "update",
		"id":          "1",
		"gamename":    "Valid",
		"description": strings.Repeat("a", 801),
	})
	if !strings.Contains(body, "Field lengths exceed the allowed limit") {
		t.Fatalf("expected length flash, got: %.200s", body)
	}
	game, _ := srv.Store().GetGame(1)
	if game.Name != "Game 1" {
		t.Fatalf("expected no partial update, got %q", game.Name)
	}
}

func TestAdminDeleteGameRenumbers(t *testing.T) {
	srv, ts, client := newTestServer(t, testConfig(t))
	seedGames(t, srv, 8)
	login(t, client, ts)

	resp, body := postForm(t, client, ts.URL+"/admin", map[string]string{
		"action": "delete",
		"id":     "3",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body, "Game with ID 3 deleted successfully!") {
		t.Fatalf("expected success flash, got: %.200s", body)
	}

	count, _ := srv.Store().CountGames()
	if count != 7 {
		t.Fatalf("expected 7 games, got %d", count)
	}
	game, err := srv.Store().GetGame(3)
	if err != nil {
		t.Fatalf("get game 3: %v", err)
	}
	if game.Name != "Game 4" {
		t.Fatalf("expected Game 4 renumbered to ID 3, got %q", game.Name)
	}
	game, err = srv.Store().GetGame(7)
	if err != nil {
		t.Fatalf("get game 7: %v", err)
	}
	if game.Name != "Game 8" {
		t.Fatalf("expected Game 8 renumbered to ID 7, got %q", game.Name)
	}
}

func TestAdminDeleteGameNotFound(t *testing.T) {
	_, ts, client := newTestServer(t, testConfig(t))
	login(t, client, ts)

	_, body := postForm(t, client, ts.URL+"/admin", map[string]string{
		"action": "delete",
		"id":     "9",
	})
	if !strings.Contains(body, "No game found with ID 9") {
		t.Fatalf("expected not-found flash, got: %.200s", body)
	}
}

func TestAdminDeleteComment(t *testing.T) {
	srv, ts, client := newTestServer(t, testConfig(t))
	seedGames(t, srv, 1)
	comment, err := srv.Store().AddComment(1, "Ada", "Delete me")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	login(t, client, ts)

	_, body := postForm(t, client, ts.URL+"/admin", map[string]string{
		"action":    "delete_comment",
		"commentid": "1",
	})
	if !strings.Contains(body, "Comment with ID 1 deleted successfully!") {
		t.Fatalf("expected success flash, got: %.200s", body)
	}
	game, _ := srv.Store().GetGame(1)
	if len(game.Comments) != 0 {
		t.Fatalf("expected comment %d removed, still have %d", comment.ID, len(game.Comments))
	}

	_, body = postForm(t, client, ts.URL+"/admin", map[string]string{
		"action":    "delete_comment",
		"commentid": "1",
	})
	if !strings.Contains(body, "No comment found with ID 1") {
		t.Fatalf("expected not-found flash, got: %.200s", body)
	}
}

func TestAdminPanelListsComments(t *testing.T) {
	srv, ts, client := newTestServer(t, testConfig(t))
	seedGames(t, srv, 2)
	if _, err := srv.Store().AddComment(2, "Grace", "Lovely game"); err != nil {
		t.Fatalf("add comment: %v", err)
	}
	login(t, client, ts)

	_, body := getPage(t, client, ts.URL+"/admin")
	for _, fragment := range []string{"Grace", "Lovely game", `class="comment-row"`} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("expected %q on the admin panel", fragment)
		}
	}
}
