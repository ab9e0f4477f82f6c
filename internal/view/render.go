// Package view renders the HTML pages and htmx fragments served by the handlers.
//
// Every fragment that other responses refresh out-of-band carries a stable
// element id (about-count, items-list, toggle-all, todo-new, todo-count); the
// client matches on those ids, so they must not change.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/BuzzLyutic/htmx-todos/internal/model"
)

const (
	TitleAbout = "About"
	TitleTodos = "Todos"
)

//go:embed templates/*.html
var templateFS embed.FS

// fragment is the data passed to templates that can be emitted out-of-band.
type fragment struct {
	Data any
	OOB  bool
}

type shell struct {
	Title   string
	Content template.HTML
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.New("view").Funcs(template.FuncMap{
		"fragment": func(data any, oob bool) fragment {
			return fragment{Data: data, OOB: oob}
		},
		"filters": model.Filters,
		"lower":   strings.ToLower,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page wraps content in the full document shell used for direct navigation.
func (r *Renderer) Page(w io.Writer, title string, content []byte) error {
	return r.exec(w, "page", shell{Title: title, Content: template.HTML(content)})
}

// Nav wraps content in the light shell returned to boosted navigation.
func (r *Renderer) Nav(w io.Writer, title string, content []byte) error {
	return r.exec(w, "nav", shell{Title: title, Content: template.HTML(content)})
}

func (r *Renderer) About(w io.Writer, count uint64) error {
	return r.exec(w, "about", count)
}

func (r *Renderer) AboutCount(w io.Writer, count uint64) error {
	return r.exec(w, "about-count", count)
}

func (r *Renderer) Todos(w io.Writer, snap model.Snapshot) error {
	return r.exec(w, "todos", snap)
}

func (r *Renderer) TodoItem(w io.Writer, t model.Todo) error {
	return r.exec(w, "todos-item", t)
}

// TodoItems renders the list; items are expected in display order.
func (r *Renderer) TodoItems(w io.Writer, items []model.Todo, oob bool) error {
	return r.exec(w, "todos-items", fragment{Data: items, OOB: oob})
}

func (r *Renderer) ToggleAll(w io.Writer, allDone, oob bool) error {
	return r.exec(w, "todos-toggleall", fragment{Data: allDone, OOB: oob})
}

func (r *Renderer) TodoInput(w io.Writer, oob bool) error {
	return r.exec(w, "todos-input", fragment{OOB: oob})
}

func (r *Renderer) TodoCount(w io.Writer, active int, oob bool) error {
	return r.exec(w, "todos-count", fragment{Data: active, OOB: oob})
}

func (r *Renderer) exec(w io.Writer, name string, data any) error {
	// Пишем в буфер, чтобы при ошибке шаблона не отдать клиенту половину фрагмента
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
