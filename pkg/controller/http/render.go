package http

import (
	"embed"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	"github.com/m-mizutani/isoshelf/pkg/utils/format"
)

const (
	templateNamePage  = "page"
	templateNameFiles = "files"
)

//go:embed templates/*.html
var templateFS embed.FS

type sortOption struct {
	Value model.SortMode
	Label string
}

var sortOptions = []sortOption{
	{model.SortByName, "Name (A-Z)"},
	{model.SortByNameDesc, "Name (Z-A)"},
	{model.SortByDate, "Newest first"},
	{model.SortByDateOld, "Oldest first"},
}

type pageData struct {
	View        *model.CatalogView
	SortOptions []sortOption
}

// Renderer renders the catalog as HTML. Values are escaped by html/template,
// so file names from the remote listing are treated as untrusted text.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer(f *format.Formatter) (*Renderer, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"size":      f.Size,
		"timestamp": f.Timestamp,
		"comma":     humanize.Comma,
		"icon":      model.IconKey.Class,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse templates")
	}

	return &Renderer{tpl: tpl}, nil
}

// Page renders the full catalog page
func (r *Renderer) Page(w io.Writer, view *model.CatalogView) error {
	data := &pageData{
		View:        view,
		SortOptions: sortOptions,
	}
	if err := r.tpl.ExecuteTemplate(w, templateNamePage, data); err != nil {
		return goerr.Wrap(err, "failed to render page")
	}
	return nil
}

// Files renders the card list of records, or the no-results block when empty
func (r *Renderer) Files(w io.Writer, records []*model.FileRecord) error {
	if err := r.tpl.ExecuteTemplate(w, templateNameFiles, records); err != nil {
		return goerr.Wrap(err, "failed to render files")
	}
	return nil
}
