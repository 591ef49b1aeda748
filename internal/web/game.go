package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func GamePage(flash Flash, game GameDetail) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		writeHead(w, game.Name+" - Game Details")
		writeFlash(w, flash)
		_, _ = io.WriteString(w, `    <main class="shell">
      <article class="game-detail">
        <img src="`+pictureURL(game.Picture)+`" alt="`+esc(game.Name)+`" class="game-picture"/>
        <h1>`+esc(game.Name)+`</h1>
        <p class="description">`+esc(game.Description)+`</p>
        <dl class="game-meta">
          <dt>Developer</dt><dd>`+esc(game.Developer)+`</dd>
          <dt>Publisher</dt><dd>`+esc(game.Publisher)+`</dd>
          <dt>Release date</dt><dd>`+esc(game.ReleaseDate)+`</dd>
        </dl>
      </article>

      <section class="comments-section">
        <h2>Comments</h2>
        <ul>
`)
		for _, comment := range game.Comments {
			_, _ = io.WriteString(w, `          <li>
            <strong>`+esc(comment.Author)+`</strong>
            <span class="comment-time">(`+esc(comment.PostedAt)+`)</span>
            <p>`+esc(comment.Body)+`</p>
          </li>
`)
		}
		_, _ = io.WriteString(w, `        </ul>
        <form method="post" action="/game/`+itoa(game.ID)+`/add_comment" class="comment-form">
          <label for="name">Name</label>
          <input id="name" name="name" maxlength="80" required/>
          <label for="comment">Comment</label>
          <textarea id="comment" name="comment" maxlength="800" required></textarea>
          <button type="submit" class="primary">Post comment</button>
        </form>
      </section>
    </main>
`)
		writeFoot(w)
		return nil
	})
}
