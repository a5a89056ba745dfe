package scan

import (
	"go/token"
	"path/filepath"
	"strings"
)

// Category is a fixed asset kind. It names the directory scanned under each
// root and selects the symbol naming rule.
type Category string

const (
	Textures Category = "textures"
	Models   Category = "models"
	Shaders  Category = "shaders"
	Scripts  Category = "scripts"
	Sounds   Category = "sounds"
)

// Categories lists every known category in canonical order.
var Categories = []Category{Textures, Models, Shaders, Scripts, Sounds}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// SymbolName derives the Go identifier for a file in category.
//
// Shaders commonly share a stem across stages (basic.vert, basic.frag), so
// their extension is folded into the symbol.
func SymbolName(category Category, fileName string) string {
	ext := filepath.Ext(fileName)
	name := strings.TrimSuffix(fileName, ext)
	if category == Shaders && ext != "" {
		name += "_" + ext[1:]
	}
	return sanitizeIdent(name)
}

// LogicalName is the lookup key for a file in category.
func LogicalName(category Category, fileName, sep string) string {
	return string(category) + sep + fileName
}

// sanitizeIdent maps s onto a valid Go identifier. Keywords and init, which
// only a func may declare, get a '_' suffix.
func sanitizeIdent(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	ident := b.String()
	if ident == "" {
		return "_"
	}
	if token.IsKeyword(ident) || ident == "init" {
		ident += "_"
	}
	return ident
}
