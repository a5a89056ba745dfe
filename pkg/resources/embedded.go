package resources

import "fmt"

// Entry pairs a logical name with the packaged content.
//
// Data is normally a string constant emitted by the generator, so the table
// only holds headers pointing into the binary's read-only data.
type Entry struct {
	Name string
	Data string
}

// Embedded serves resources compiled into the binary.
//
// The lookup table is built once by NewEmbedded and never modified, so an
// *Embedded may be shared by any number of goroutines without locking.
type Embedded struct {
	lookup map[string]string
}

var _ Loader = (*Embedded)(nil)

// NewEmbedded builds the lookup table from entries.
// Duplicate names are rejected rather than silently overwritten.
func NewEmbedded(entries []Entry) (*Embedded, error) {
	lookup := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, dup := lookup[e.Name]; dup {
			return nil, fmt.Errorf("duplicate resource name: %s", e.Name)
		}
		lookup[e.Name] = e.Data
	}
	return &Embedded{lookup: lookup}, nil
}

// MustNewEmbedded is like NewEmbedded but panics on error.
// Generated loaders use it: the generator has already rejected duplicates.
func MustNewEmbedded(entries []Entry) *Embedded {
	e, err := NewEmbedded(entries)
	if err != nil {
		panic(err)
	}
	return e
}

// LoadString returns the resource as text.
func (e *Embedded) LoadString(name string) (string, error) {
	data, ok := e.lookup[name]
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	// Strings are immutable, so handing out the packaged value is already an
	// owned copy as far as the caller can tell.
	return data, nil
}

// LoadDataBuffer returns a fresh copy of the resource's bytes.
func (e *Embedded) LoadDataBuffer(name string) (DataBuffer, error) {
	data, ok := e.lookup[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return DataBuffer(data), nil
}
