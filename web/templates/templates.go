// Package templates holds the embedded HTML views.
package templates

import (
	"embed"
	"html/template"
	"time"

	"simplehr.com/simplehr/hiring"
	"simplehr.com/simplehr/utils"
)

//go:embed *.tmpl
var files embed.FS

func Funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(v interface{}) string {
			switch t := v.(type) {
			case time.Time:
				if t.IsZero() {
					return ""
				}
				return t.Format(utils.DateLayout)
			case *time.Time:
				if t == nil || t.IsZero() {
					return ""
				}
				return t.Format(utils.DateLayout)
			}
			return ""
		},
		"datetime": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
		"deref": func(s *string) string {
			return utils.Format(s)
		},
		"stageLabel": func(s interface{}) string {
			switch v := s.(type) {
			case hiring.Stage:
				return v.Label()
			case string:
				return hiring.Stage(v).Label()
			}
			return ""
		},
	}
}

// New parses every view. Each template is named after its file.
func New() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "*.tmpl")
}
