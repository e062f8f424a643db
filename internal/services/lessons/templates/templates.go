// Package templates provides the shared document shell for lesson pages.
package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

const htmxScriptSrc = "https://unpkg.com/htmx.org@1.9.12"

// Document wraps content in a full standalone HTML document. Lesson index
// routes serve this shell seeded with current state; every other route
// returns bare fragments for htmx swaps.
func Document(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>"+
			html.EscapeString(title)+
			"</title><script src=\""+htmxScriptSrc+"\"></script></head><body>"); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

// LessonLink is one entry on the lesson index page.
type LessonLink struct {
	ID    string
	Title string
	Href  string
}

// LessonIndex renders the service landing page listing every mounted
// lesson.
func LessonIndex(lessons []LessonLink) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main id="lesson-index"><h1>Hypermedia Lessons</h1><ul>`); err != nil {
			return err
		}
		for _, lesson := range lessons {
			entry := `<li data-testid="lesson-` + html.EscapeString(lesson.ID) + `"><a href="` +
				html.EscapeString(lesson.Href) + `">` + html.EscapeString(lesson.Title) + `</a></li>`
			if _, err := io.WriteString(w, entry); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></main>`)
		return err
	})
}
