package server

import (
	"strconv"
	"strings"
)

func parseGamePath(path string) (int, bool) {
	const prefix = "/game/"
	if !strings.HasPrefix(path, prefix) {
		return 0, false
	}
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" || strings.Contains(rest, "/") {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseAddCommentPath(path string) (int, bool) {
	const prefix = "/game/"
	if !strings.HasPrefix(path, prefix) {
		return 0, false
	}
	parts := strings.Split(strings.Trim(strings.TrimPrefix(path, prefix), "/"), "/")
	if len(parts) != 2 || parts[1] != "add_comment" {
		return 0, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseImagePath(path string) (string, bool) {
	const prefix = "/display_image/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	name := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return name, true
}
