package pages

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/valyala/bytebufferpool"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Links are the URLs pages point at. Server and static output differ only here.
type Links struct {
	Schedule       string
	Teams          string
	FragmentPrefix string
	FragmentSuffix string
}

// ServerLinks are the links used when pages are served over HTTP.
var ServerLinks = Links{
	Schedule:       "/schedule",
	Teams:          "/teams",
	FragmentPrefix: "/schedule/fragment?league=",
}

// SchedulePage is the data behind the full schedule document. A nil View
// renders the loading placeholder.
type SchedulePage struct {
	View    *ScheduleView
	Filter  Filter
	Options []Filter
	Links   Links
}

// TeamsPage is the data behind the teams document. A nil View leaves both
// containers empty.
type TeamsPage struct {
	View  *TeamsView
	Links Links
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustRenderer is NewRenderer for wiring code; the templates are compiled in.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// SchedulePage writes the full schedule document.
func (r *Renderer) SchedulePage(w io.Writer, page SchedulePage) error {
	if page.Options == nil {
		page.Options = FilterOptions()
	}
	return r.execute(w, "schedule_page", page)
}

// ScheduleFragment writes only the schedule container content.
func (r *Renderer) ScheduleFragment(w io.Writer, view *ScheduleView) error {
	return r.execute(w, "schedule_fragment", view)
}

// TeamsPage writes the teams document.
func (r *Renderer) TeamsPage(w io.Writer, page TeamsPage) error {
	return r.execute(w, "teams_page", page)
}

// execute renders into a pooled buffer so a template error never leaves a
// half-written response behind.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := r.tmpl.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
