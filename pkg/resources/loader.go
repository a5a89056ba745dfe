// Package resources is the runtime side of assetpack. It resolves logical
// asset names, such as "textures/logo.png", to the bytes packaged into the
// binary by the generator, or to files on disk during development.
package resources

import (
	"errors"
	"fmt"
)

// DefaultSeparator joins a category and a file name into a logical name.
// The generator and the loaders must agree on it; see Entry.Name.
const DefaultSeparator = "/"

// ErrNotFound is returned (wrapped in a *NotFoundError) when a logical name
// is not known to a loader.
var ErrNotFound = errors.New("resource not found")

// NotFoundError reports a lookup of a name that was never packaged.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource %s does not exist", e.Name)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DataBuffer is an owned copy of a resource's raw bytes.
type DataBuffer []byte

// Loader resolves logical names to resource content.
//
// Both methods fail with ErrNotFound when the name is unknown, and every call
// returns content the caller owns.
type Loader interface {
	LoadString(name string) (string, error)
	LoadDataBuffer(name string) (DataBuffer, error)
}

// MustLoadString loads name as text and panics if it is not found.
// Use this for resources the program cannot run without.
func MustLoadString(l Loader, name string) string {
	s, err := l.LoadString(name)
	if err != nil {
		panic(err)
	}
	return s
}

// MustLoadDataBuffer loads name as bytes and panics if it is not found.
func MustLoadDataBuffer(l Loader, name string) DataBuffer {
	b, err := l.LoadDataBuffer(name)
	if err != nil {
		panic(err)
	}
	return b
}
