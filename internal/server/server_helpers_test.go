package server

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"gameshelf/internal/catalog"
	"gameshelf/internal/config"

	"go.uber.org/zap"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.UploadDir = t.TempDir()
	return cfg
}

func newTestServer(t *testing.T, cfg config.Config) (*Server, *httptest.Server, *http.Client) {
	t.Helper()
	srv := New(nil, cfg, zap.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}
	return srv, ts, client
}

func noRedirect(client *http.Client) *http.Client {
	copied := *client
	copied.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &copied
}

func seedGames(t *testing.T, srv *Server, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		_, err := srv.Store().AddGame(catalog.GameInput{
			Picture:     "default.jpg",
			Name:        fmt.Sprintf("Game %d", i),
			Description: fmt.Sprintf("Description %d", i),
			Developer:   fmt.Sprintf("Developer %d", i),
			Publisher:   fmt.Sprintf("Publisher %d", i),
			ReleaseDate: "2024-01-01",
		})
		if err != nil {
			t.Fatalf("seed game %d: %v", i, err)
		}
	}
}

func getPage(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	return resp, readBody(t, resp)
}

func postForm(t *testing.T, client *http.Client, url string, form map[string]string) (*http.Response, string) {
	t.Helper()
	values := make(map[string][]string, len(form))
	for key, value := range form {
		values[key] = []string{value}
	}
	resp, err := client.PostForm(url, values)
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp, readBody(t, resp)
}

func postMultipart(t *testing.T, client *http.Client, target string, fields map[string]string, fileField, fileName string, fileBody []byte) (*http.Response, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(fileBody); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	resp, err := client.Post(target, writer.FormDataContentType(), &buf)
	if err != nil {
		t.Fatalf("post %s: %v", target, err)
	}
	return resp, readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	_ = resp.Body.Close()
	return string(data)
}

func login(t *testing.T, client *http.Client, ts *httptest.Server) {
	t.Helper()
	resp, body := postForm(t, client, ts.URL+"/login", map[string]string{
		"username": "admin",
		"password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d after login, got %d", http.StatusOK, resp.StatusCode)
	}
	if !strings.Contains(body, "Admin Panel") {
		t.Fatalf("expected to land on the admin panel, got: %.200s", body)
	}
}

func redirectLocation(t *testing.T, resp *http.Response) string {
	t.Helper()
	location, err := resp.Location()
	if err != nil {
		t.Fatalf("redirect location: %v", err)
	}
	return location.Path
}
