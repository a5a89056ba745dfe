// Package scan walks asset roots and turns each packagable file into an Entry.
package scan

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Entry is one file selected for packaging.
type Entry struct {
	// Root is the asset root the file was found under.
	Root string
	// Category is the asset kind, which is also the scanned subdirectory.
	Category Category
	// FileName is the base name of the file.
	FileName string
	// Path is the file's location in the scanned filesystem.
	Path string
	// LogicalName is the runtime lookup key.
	LogicalName string
	// Symbol is the identifier of the generated constant.
	Symbol string
	// Data is the file content, verbatim.
	Data []byte
}

// Size returns the content length in bytes.
func (e Entry) Size() int {
	return len(e.Data)
}

// Options selects what to scan.
type Options struct {
	// Roots are scanned in order.
	Roots []string
	// Categories are scanned in order under each root.
	Categories []Category
	// Separator joins category and file name in logical names.
	Separator string
	// Reserved holds identifiers a Symbol may not take.
	Reserved []string
}

// CollisionError reports two files that would share a symbol or a logical name.
type CollisionError struct {
	// Kind is "symbol" or "logical name".
	Kind  string
	Value string
	// First and Second are the colliding file paths, in scan order.
	// First is empty when Value clashes with a reserved identifier.
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	if e.First == "" {
		return fmt.Sprintf("%s %q of %s is reserved", e.Kind, e.Value, e.Second)
	}
	return fmt.Sprintf("%s %q of %s collides with %s", e.Kind, e.Value, e.Second, e.First)
}

// Scan collects the files directly under <root>/<category> for every root and
// category in opts.
//
// Directory entries are processed in name order so repeated scans of an
// unchanged tree give identical results. Subdirectories and names starting
// with '.' are skipped. Any read error aborts the scan.
func Scan(fsys afero.Fs, opts Options) ([]Entry, error) {
	sep := opts.Separator
	if sep == "" {
		sep = "/"
	}

	symbols := make(map[string]string)
	names := make(map[string]string)
	for _, r := range opts.Reserved {
		symbols[r] = ""
	}

	var entries []Entry
	for _, root := range opts.Roots {
		for _, category := range opts.Categories {
			dir := filepath.Join(root, string(category))

			// afero.ReadDir returns entries sorted by name.
			infos, err := afero.ReadDir(fsys, dir)
			if err != nil {
				return nil, fmt.Errorf("failed to read asset directory %s: %w", dir, err)
			}

			for _, info := range infos {
				if info.IsDir() {
					continue
				}
				if strings.HasPrefix(info.Name(), ".") {
					slog.Debug("skipping hidden file", "dir", dir, "name", info.Name())
					continue
				}

				e := Entry{
					Root:        root,
					Category:    category,
					FileName:    info.Name(),
					Path:        filepath.Join(dir, info.Name()),
					LogicalName: LogicalName(category, info.Name(), sep),
					Symbol:      SymbolName(category, info.Name()),
				}

				if prev, dup := symbols[e.Symbol]; dup {
					return nil, &CollisionError{Kind: "symbol", Value: e.Symbol, First: prev, Second: e.Path}
				}
				if prev, dup := names[e.LogicalName]; dup {
					return nil, &CollisionError{Kind: "logical name", Value: e.LogicalName, First: prev, Second: e.Path}
				}
				symbols[e.Symbol] = e.Path
				names[e.LogicalName] = e.Path

				e.Data, err = afero.ReadFile(fsys, e.Path)
				if err != nil {
					return nil, fmt.Errorf("failed to read asset %s: %w", e.Path, err)
				}

				slog.Debug("found asset", "name", e.LogicalName, "symbol", e.Symbol, "size", e.Size())
				entries = append(entries, e)
			}
		}
	}

	return entries, nil
}
