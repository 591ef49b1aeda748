package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Login(flash Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		writeHead(w, "Admin Login")
		writeFlash(w, flash)
		_, _ = io.WriteString(w, `    <main class="shell">
      <section class="panel login-panel">
        <h1>Admin Login</h1>
        <form method="post" action="/login" class="login-form">
          <label for="username">Username</label>
          <input id="username" name="username" autocomplete="username" required/>
          <label for="password">Password</label>
          <input id="password" name="password" type="password" autocomplete="current-password" required/>
          <button type="submit" class="primary">Log in</button>
        </form>
      </section>
    </main>
`)
		writeFoot(w)
		return nil
	})
}
