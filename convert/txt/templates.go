package txt

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"draftr/model"
)

type AuthorDefinition struct {
	Name, Surname, Org string
}

// Values is a struct that holds variables we make available for boilerplate
// template expansion.
type Values struct {
	Title     string
	DocName   string
	Workgroup string
	Status    string
	Date      time.Time
	Expires   string
	Authors   []AuthorDefinition
}

func buildAuthors(authors []model.Author) []AuthorDefinition {
	result := make([]AuthorDefinition, 0, len(authors))
	for i := range authors {
		result = append(result, AuthorDefinition{
			Name:    authors[i].Name,
			Surname: authors[i].Surname(),
			Org:     authors[i].Org,
		})
	}
	return result
}

func buildValues(m *model.Metadata) Values {
	return Values{
		Title:     m.Title,
		DocName:   m.DocName,
		Workgroup: m.Workgroup,
		Status:    m.Category.Status(),
		Date:      m.Date,
		Expires:   formatDate(expiry(m.Date)),
		Authors:   buildAuthors(m.Authors),
	}
}

func expandTemplate(name, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(name).Funcs(funcMap).Option("missingkey=error").Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand template %s: %w", name, err)
	}
	return buf.String(), nil
}
