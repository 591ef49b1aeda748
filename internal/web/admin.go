package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Admin(flash Flash, data AdminData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		writeHead(w, "Admin Panel")
		writeFlash(w, flash)
		_, _ = io.WriteString(w, `    <main class="shell admin">
      <header class="hero">
        <h1>Admin Panel</h1>
        <a href="/logout" class="logout-button">Log out</a>
      </header>

      <section class="panel">
        <h2>Add game</h2>
        <form method="post" action="/admin" enctype="multipart/form-data" class="admin-form">
          <input type="hidden" name="action" value="add"/>
          <label for="add-gamename">Name</label>
          <input id="add-gamename" name="gamename"/>
          <label for="add-description">Description</label>
          <textarea id="add-description" name="description"></textarea>
          <label for="add-developer">Developer</label>
          <input id="add-developer" name="developer"/>
          <label for="add-publisher">Publisher</label>
          <input id="add-publisher" name="publisher"/>
          <label for="add-releasedate">Release date</label>
          <input id="add-releasedate" name="releasedate"/>
          <label for="add-gamepicture">Picture</label>
          <input id="add-gamepicture" name="gamepicture" type="file" accept="image/*"/>
          <button type="submit" class="primary">Add game</button>
        </form>
      </section>

      <section class="panel">
        <h2>Update game</h2>
        <form method="post" action="/admin" enctype="multipart/form-data" class="admin-form">
          <input type="hidden" name="action" value="update"/>
          <label for="update-id">Game ID</label>
          <input id="update-id" name="id"/>
          <label for="update-gamename">Name</label>
          <input id="update-gamename" name="gamename"/>
          <label for="update-description">Description</label>
          <textarea id="update-description" name="description"></textarea>
          <label for="update-developer">Developer</label>
          <input id="update-developer" name="developer"/>
          <label for="update-publisher">Publisher</label>
          <input id="update-publisher" name="publisher"/>
          <label for="update-releasedate">Release date</label>
          <input id="update-releasedate" name="releasedate"/>
          <label for="update-gamepicture">Picture</label>
          <input id="update-gamepicture" name="gamepicture" type="file" accept="image/*"/>
          <button type="submit" class="primary">Update game</button>
        </form>
      </section>

      <section class="panel">
        <h2>Delete game</h2>
        <form method="post" action="/admin" class="admin-form">
          <input type="hidden" name="action" value="delete"/>
          <label for="delete-id">Game ID</label>
          <input id="delete-id" name="id"/>
          <button type="submit" class="danger">Delete game</button>
        </form>
      </section>

      <section class="panel">
        <h2>Games</h2>
        <table class="admin-table">
          <thead><tr><th>ID</th><th>Name</th><th>Picture</th></tr></thead>
          <tbody>
`)
		for _, game := range data.Games {
			_, _ = io.WriteString(w, `            <tr class="game-row">
              <td>`+itoa(game.ID)+`</td>
              <td><a href="/game/`+itoa(game.ID)+`">`+esc(game.Name)+`</a></td>
              <td>`+esc(game.Picture)+`</td>
            </tr>
`)
		}
		_, _ = io.WriteString(w, `          </tbody>
        </table>
      </section>

      <section class="panel">
        <h2>Comments</h2>
        <table class="admin-table">
          <thead><tr><th>ID</th><th>Game</th><th>Author</th><th>Comment</th><th>Posted</th><th></th></tr></thead>
          <tbody>
`)
		for _, comment := range data.Comments {
			_, _ = io.WriteString(w, `            <tr class="comment-row">
              <td>`+itoa(comment.ID)+`</td>
              <td>`+itoa(comment.GameID)+`</td>
              <td>`+esc(comment.Author)+`</td>
              <td>`+esc(comment.Body)+`</td>
              <td><span class="comment-time">(`+esc(comment.PostedAt)+`)</span></td>
              <td>
                <form method="post" action="/admin">
                  <input type="hidden" name="action" value="delete_comment"/>
                  <input type="hidden" name="commentid" value="`+itoa(comment.ID)+`"/>
                  <button type="submit" class="danger">Delete</button>
                </form>
              </td>
            </tr>
`)
		}
		_, _ = io.WriteString(w, `          </tbody>
        </table>
      </section>
    </main>
`)
		writeFoot(w)
		return nil
	})
}
