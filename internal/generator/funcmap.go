package generator

import (
	"strconv"
	"text/template"
)

// funcMap returns the helpers available to the loader template.
func funcMap() template.FuncMap {
	return template.FuncMap{
		// quote renders any byte sequence as a Go string literal that decodes
		// back to exactly the same bytes.
		"quote": strconv.Quote,
	}
}
