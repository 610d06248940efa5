package server

import (
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/conneroisu/hop/internal/errors"
)

//go:embed templates/*.html templates/*.xml
var templateFS embed.FS

// templateSet holds the parsed page templates. Pages are parsed once at
// startup; destination templates come from user config and are parsed per
// request.
type templateSet struct {
	index      *htmltemplate.Template
	list       *htmltemplate.Template
	opensearch *texttemplate.Template
}

func parseTemplates() (*templateSet, error) {
	index, err := htmltemplate.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, errors.NewInternalError("parsing index template", err)
	}
	list, err := htmltemplate.ParseFS(templateFS, "templates/list.html")
	if err != nil {
		return nil, errors.NewInternalError("parsing list template", err)
	}
	opensearch, err := texttemplate.ParseFS(templateFS, "templates/opensearch.xml")
	if err != nil {
		return nil, errors.NewInternalError("parsing opensearch template", err)
	}
	return &templateSet{index: index, list: list, opensearch: opensearch}, nil
}

// renderDestination substitutes the percent-encoded residual arguments into
// the destination template's {{query}} placeholder.
func renderDestination(destination, args string) (string, error) {
	encoded := encodeQuery(args)
	tmpl, err := texttemplate.New("destination").Funcs(texttemplate.FuncMap{
		"query": func() string { return encoded },
	}).Parse(destination)
	if err != nil {
		return "", errors.NewParseError("parsing destination template", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, nil); err != nil {
		return "", errors.NewInternalError("rendering destination template", err)
	}
	return sb.String(), nil
}
