package web

import (
	"embed"
	"html/template"
	"net/http"
	"wordquest/app/models"
	"wordquest/app/session"
	"wordquest/global"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Data carried into page templates. Unused fields stay zero for the pages
// that do not need them.
type PageData struct {
	Flashes  []session.Flash
	Fullname string
	Users    []models.User
	Words    []models.Word
}

type Renderer struct{ t *template.Template }

func New() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

func (rn *Renderer) Render(w http.ResponseWriter, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rn.t.ExecuteTemplate(w, name, data); err != nil {
		global.Logger.Error().Err(err).Str("template", name).Msg("render")
	}
}
