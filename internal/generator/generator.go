// Package generator renders scanned assets into a Go source file that
// compiles them into the binary.
package generator

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"go/format"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/xll-gen/assetpack/internal/scan"
	"github.com/xll-gen/assetpack/internal/templates"
)

// Mode selects how file content reaches the binary.
type Mode string

const (
	// ModeLiteral writes each file as a string constant.
	ModeLiteral Mode = "literal"
	// ModeEmbed references each file with a //go:embed directive.
	ModeEmbed Mode = "embed"
)

// Reserved lists identifiers declared by the generated file itself.
// Asset symbols may not take them.
var Reserved = []string{"_", "NewLoader", "PackID", "resources", "string"}

// ReservedFor returns Reserved plus the identifiers package pkg may only
// declare as funcs.
func ReservedFor(pkg string) []string {
	if pkg != "main" {
		return Reserved
	}
	return append(slices.Clone(Reserved), "main")
}

// packNamespace seeds PackID so that ids from assetpack do not coincide with
// other name-based UUIDs over the same bytes.
var packNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/xll-gen/assetpack"))

// Options controls the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Mode defaults to ModeLiteral.
	Mode Mode
	// PackageDir is the directory the generated file will live in.
	// Only ModeEmbed uses it, to compute directive paths.
	PackageDir string
}

type entryData struct {
	Symbol      string
	LogicalName string
	Size        int
	Data        string
	EmbedPath   string
}

// Generate writes the Go source packaging entries to w.
//
// Output is rendered and formatted in memory first, so w receives nothing when
// generation fails. Identical entries and options always produce identical
// bytes.
func Generate(w io.Writer, entries []scan.Entry, opts Options) error {
	src, err := Render(entries, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Render returns the formatted Go source packaging entries.
func Render(entries []scan.Entry, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("package name is required")
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeLiteral
	}
	if mode != ModeLiteral && mode != ModeEmbed {
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}

	reserved := ReservedFor(opts.Package)
	for _, e := range entries {
		if slices.Contains(reserved, e.Symbol) {
			return nil, &scan.CollisionError{Kind: "symbol", Value: e.Symbol, Second: e.Path}
		}
	}

	items := make([]entryData, 0, len(entries))
	for _, e := range entries {
		item := entryData{
			Symbol:      e.Symbol,
			LogicalName: e.LogicalName,
			Size:        e.Size(),
		}
		if mode == ModeEmbed {
			p, err := embedPath(opts.PackageDir, e.Path)
			if err != nil {
				return nil, err
			}
			item.EmbedPath = p
		} else {
			item.Data = string(e.Data)
		}
		items = append(items, item)
	}

	t, err := template.New("loader").Funcs(funcMap()).Parse(templates.MustGet("loader.go.tmpl"))
	if err != nil {
		return nil, err
	}

	data := struct {
		Package string
		PackID  string
		Embed   bool
		Entries []entryData
	}{
		Package: opts.Package,
		PackID:  PackID(entries).String(),
		Embed:   mode == ModeEmbed,
		Entries: items,
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render loader: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated source does not parse: %w", err)
	}
	return src, nil
}

// PackID derives a deterministic name-based UUID from every logical name and
// its content, in order.
func PackID(entries []scan.Entry) uuid.UUID {
	h := sha256.New()
	var size [8]byte
	for _, e := range entries {
		binary.BigEndian.PutUint64(size[:], uint64(len(e.LogicalName)))
		h.Write(size[:])
		h.Write([]byte(e.LogicalName))
		binary.BigEndian.PutUint64(size[:], uint64(len(e.Data)))
		h.Write(size[:])
		h.Write(e.Data)
	}
	return uuid.NewSHA1(packNamespace, h.Sum(nil))
}

// embedPath returns file relative to pkgDir in the slash form //go:embed wants.
func embedPath(pkgDir, file string) (string, error) {
	if pkgDir == "" {
		pkgDir = "."
	}
	absDir, err := filepath.Abs(pkgDir)
	if err != nil {
		return "", err
	}
	absFile, err := filepath.Abs(file)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absDir, absFile)
	if err != nil {
		return "", fmt.Errorf("cannot embed %s from %s: %w", file, pkgDir, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("cannot embed %s: go:embed only reaches files below %s", file, pkgDir)
	}
	if strings.ContainsAny(rel, `*?[\`) {
		return "", fmt.Errorf("cannot embed %s: name contains pattern characters", file)
	}
	return rel, nil
}
