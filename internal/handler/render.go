package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/minishop/minishop-go/internal/middleware"
	"github.com/minishop/minishop-go/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages rendered inside the base layout.
var pageFiles = []string{
	"index.html",
	"create.html",
	"registre.html",
	"login.html",
	"contact.html",
	"support.html",
	"buy.html",
	"error.html",
}

// pageData is the single payload type passed to every template.
type pageData struct {
	Title  string
	User   *middleware.Identity
	Items  []model.Item
	Item   *model.Item
	Form   map[string]string
	Errors map[string]string
	// Message is a page-level notice, e.g. the generic login failure.
	Message string
}

// Renderer renders embedded HTML templates, each page parsed with the base layout.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded page templates.
func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		ts, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		templates[page] = ts
	}
	return &Renderer{templates: templates}, nil
}

// Render writes the named page to the response. The page is executed into a
// buffer first so a template error never produces a half-written body.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, page string, data *pageData) {
	ts, ok := rd.templates[page]
	if !ok {
		rd.serverError(w, fmt.Errorf("unknown template %s", page))
		return
	}

	if data == nil {
		data = &pageData{}
	}
	if data.User == nil {
		if id, ok := middleware.IdentityFromContext(r.Context()); ok {
			data.User = &id
		}
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		rd.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// serverError logs the cause and writes a plain 500. It deliberately does not
// go back through Render.
func (rd *Renderer) serverError(w http.ResponseWriter, err error) {
	slog.Error("render failed", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// ErrorPage renders the generic failure page with the given status.
func (rd *Renderer) ErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	rd.Render(w, r, status, "error.html", &pageData{Title: "Error", Message: message})
}
