// Package templates holds the text templates assetpack renders.
package templates

import (
	"embed"
	"fmt"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the named template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// MustGet is like Get but panics if the template is missing.
// The template set is compiled in, so a miss is a programming error.
func MustGet(name string) string {
	content, err := Get(name)
	if err != nil {
		panic(err)
	}
	return content
}
