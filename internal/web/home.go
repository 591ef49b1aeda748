package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home(flash Flash, games []GameCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		writeHead(w, "Homepage - Game Selection")
		writeFlash(w, flash)
		_, _ = io.WriteString(w, `    <main class="shell">
      <header class="hero">
        <h1>Game Selection</h1>
        <p>Browse the catalog and leave a comment on your favorites.</p>
      </header>
      <section class="game-grid">
`)
		for _, game := range games {
			_, _ = io.WriteString(w, `        <div class="game-item">
          <a href="/game/`+itoa(game.ID)+`">
            <img src="`+pictureURL(game.Picture)+`" alt="`+esc(game.Name)+`"/>
            <h2>`+esc(game.Name)+`</h2>
          </a>
        </div>
`)
		}
		_, _ = io.WriteString(w, `      </section>
    </main>
`)
		writeFoot(w)
		return nil
	})
}
