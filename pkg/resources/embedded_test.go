package resources

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func newTestEmbedded(t *testing.T) *Embedded {
	t.Helper()
	e, err := NewEmbedded([]Entry{
		{Name: "textures/logo.png", Data: "\x89PNG\r\n\x1a\n\x00\x01\x02"},
		{Name: "shaders/basic.vert", Data: "#version 460 core\nvoid main() {}\n"},
		{Name: "scripts/empty.lua", Data: ""},
	})
	if err != nil {
		t.Fatalf("NewEmbedded failed: %v", err)
	}
	return e
}

func TestEmbedded_StringAndBufferAgree(t *testing.T) {
	e := newTestEmbedded(t)

	for _, name := range []string{"textures/logo.png", "shaders/basic.vert", "scripts/empty.lua"} {
		t.Run(name, func(t *testing.T) {
			s, err := e.LoadString(name)
			if err != nil {
				t.Fatalf("LoadString(%q) failed: %v", name, err)
			}
			b, err := e.LoadDataBuffer(name)
			if err != nil {
				t.Fatalf("LoadDataBuffer(%q) failed: %v", name, err)
			}
			if !bytes.Equal([]byte(s), b) {
				t.Errorf("content mismatch: string %q, buffer %q", s, b)
			}
		})
	}
}

func TestEmbedded_BinaryContentIsVerbatim(t *testing.T) {
	e := newTestEmbedded(t)

	b, err := e.LoadDataBuffer("textures/logo.png")
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x01, 0x02}
	if !bytes.Equal(b, want) {
		t.Errorf("LoadDataBuffer = %v, want %v", []byte(b), want)
	}
}

func TestEmbedded_DataBufferIsACopy(t *testing.T) {
	e := newTestEmbedded(t)

	first, err := e.LoadDataBuffer("shaders/basic.vert")
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		first[i] = 'x'
	}

	second, err := e.LoadDataBuffer("shaders/basic.vert")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(second), "#version") {
		t.Errorf("table content changed after caller mutated its buffer: %q", second)
	}
}

func TestEmbedded_NotFound(t *testing.T) {
	e := newTestEmbedded(t)

	missing := []string{"", "textures/missing.png", "textures\\logo.png", "logo.png", "TEXTURES/logo.png"}
	for _, name := range missing {
		// Repeat to show the failure is deterministic.
		for i := 0; i < 2; i++ {
			if _, err := e.LoadString(name); !errors.Is(err, ErrNotFound) {
				t.Errorf("LoadString(%q) error = %v, want ErrNotFound", name, err)
			}
			_, err := e.LoadDataBuffer(name)
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("LoadDataBuffer(%q) error = %v, want ErrNotFound", name, err)
			}
			var nf *NotFoundError
			if !errors.As(err, &nf) || nf.Name != name {
				t.Errorf("LoadDataBuffer(%q) error = %v, want *NotFoundError naming it", name, err)
			}
		}
	}
}

func TestNewEmbedded_RejectsDuplicates(t *testing.T) {
	_, err := NewEmbedded([]Entry{
		{Name: "models/cube.obj", Data: "a"},
		{Name: "models/cube.obj", Data: "b"},
	})
	if err == nil {
		t.Fatal("expected duplicate name error, got nil")
	}
	if !strings.Contains(err.Error(), "models/cube.obj") {
		t.Errorf("error %q does not name the duplicate", err)
	}
}

func TestMustNewEmbedded_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewEmbedded did not panic on duplicate names")
		}
	}()
	MustNewEmbedded([]Entry{{Name: "a", Data: "1"}, {Name: "a", Data: "2"}})
}

func TestMustLoad(t *testing.T) {
	e := newTestEmbedded(t)

	if got := MustLoadString(e, "shaders/basic.vert"); !strings.Contains(got, "void main") {
		t.Errorf("MustLoadString = %q", got)
	}
	if got := MustLoadDataBuffer(e, "scripts/empty.lua"); len(got) != 0 {
		t.Errorf("MustLoadDataBuffer = %q, want empty", got)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNotFound) {
			t.Errorf("recovered %v, want ErrNotFound", r)
		}
	}()
	MustLoadString(e, "sounds/nope.wav")
}

func TestEmbedded_ConcurrentReads(t *testing.T) {
	e := newTestEmbedded(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := e.LoadDataBuffer("textures/logo.png"); err != nil {
					t.Error(err)
					return
				}
				if _, err := e.LoadString("missing"); err == nil {
					t.Error("expected error for missing name")
					return
				}
			}
		}()
	}
	wg.Wait()
}
