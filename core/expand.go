package core

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// expand resolves {{ env `VAR` }} placeholders in connection fields,
// so credentials don't have to live in plain text parameters.
func expand(value string) (string, error) {
	tmpl, err := template.New("expand_params").
		Funcs(template.FuncMap{
			"env": func(envvar string) string {
				return strings.TrimSpace(os.Getenv(envvar))
			},
		}).
		Parse(value)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, nil); err != nil {
		return "", err
	}

	return out.String(), nil
}

// expandOrDefault silently suppresses errors.
func expandOrDefault(value string) string {
	ex, err := expand(value)
	if err != nil {
		return value
	}
	return ex
}
