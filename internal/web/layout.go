package web

import "io"

func writeHead(w io.Writer, title string) {
	_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`+esc(title)+`</title>
    <link rel="stylesheet" href="/static/styles.css"/>
    <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.4.0/css/all.min.css"/>
  </head>
  <body>
    <nav class="topnav">
      <a href="/" class="home-button"><i class="fas fa-home"></i></a>
      <a href="/login" class="admin-button">Admin</a>
    </nav>
`)
}

func writeFlash(w io.Writer, flash Flash) {
	if flash.Message == "" {
		return
	}
	kind := flash.Kind
	if kind != "success" {
		kind = "error"
	}
	_, _ = io.WriteString(w, `    <div class="`+kind+`">`+esc(flash.Message)+`</div>
`)
}

func writeFoot(w io.Writer) {
	_, _ = io.WriteString(w, `  </body>
</html>
`)
}
