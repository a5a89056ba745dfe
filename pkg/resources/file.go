package resources

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileLoader resolves logical names against asset roots on disk.
//
// It mirrors the layout the generator scans, so a program can swap its
// embedded loader for a FileLoader while iterating on assets without
// regenerating. Roots are searched in order and the first hit wins.
type FileLoader struct {
	fs    afero.Fs
	sep   string
	roots []string
}

var _ Loader = (*FileLoader)(nil)

// NewFileLoader returns a loader over roots in fsys. sep is the separator used
// in logical names; an empty sep means DefaultSeparator.
func NewFileLoader(fsys afero.Fs, sep string, roots ...string) *FileLoader {
	if sep == "" {
		sep = DefaultSeparator
	}
	return &FileLoader{
		fs:    fsys,
		sep:   sep,
		roots: roots,
	}
}

// LoadString reads the named resource as text.
func (l *FileLoader) LoadString(name string) (string, error) {
	data, err := l.load(name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadDataBuffer reads the named resource as bytes.
func (l *FileLoader) LoadDataBuffer(name string) (DataBuffer, error) {
	data, err := l.load(name)
	if err != nil {
		return nil, err
	}
	return DataBuffer(data), nil
}

func (l *FileLoader) load(name string) ([]byte, error) {
	rel, ok := l.relPath(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	for _, root := range l.roots {
		p := filepath.Join(root, rel)
		info, err := l.fs.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if info.IsDir() {
			continue
		}

		data, err := afero.ReadFile(l.fs, p)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded resource", "name", name, "path", p, "size", len(data))
		return data, nil
	}

	return nil, &NotFoundError{Name: name}
}

// relPath converts a logical name to a path relative to a root. Like the
// generator, it only accepts <category><sep><file> where file is not hidden,
// so nothing resolves here that could not have been packaged.
func (l *FileLoader) relPath(name string) (string, bool) {
	category, file, ok := strings.Cut(name, l.sep)
	if !ok || category == "" || file == "" {
		return "", false
	}
	if strings.ContainsAny(category, `/\`) || strings.ContainsAny(file, `/\`) {
		return "", false
	}
	if category == "." || category == ".." || strings.HasPrefix(file, ".") {
		return "", false
	}
	return filepath.Join(category, file), true
}
