package main

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/preload"
)

// layout renders a minimal document around body with the page's preload
// tags in the head and the loadCSS polyfill before </body>.
func layout(title string, page *preload.Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>"+
			templ.EscapeString(title)+"</title>\n"); err != nil {
			return err
		}
		if err := page.HeadComponent().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n</head>\n<body>\n"); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if err := page.FooterComponent().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</body>\n</html>\n")
		return err
	})
}

func homeBody(page *preload.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state := "first visit"
		if d, ok := page.Decision("fonts"); ok && d == preload.LazyPreloadFresh {
			state = "cached"
		}
		_, err := io.WriteString(w, "<main>\n<h1>Preload demo</h1>\n<p>Lazy stylesheets: "+
			templ.EscapeString(state)+"</p>\n</main>\n")
		return err
	})
}
