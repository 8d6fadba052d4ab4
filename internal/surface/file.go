package surface

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Justice-Caban/Irodori/internal/variables"
)

const (
	rootOpen  = ":root {"
	rootClose = "}"
)

// File is a surface backed by a stylesheet on disk. The declarations are
// wrapped in a :root rule so a host page can link the file directly.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file surface writing to path
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the stylesheet location
func (f *File) Path() string {
	return f.path
}

// ApplyBlock replaces the stylesheet with the given declarations
func (f *File) ApplyBlock(block string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.write(variables.ParseDeclarations(block))
}

// SetProperty rewrites one declaration in the current stylesheet
func (f *File) SetProperty(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	decls, err := f.read()
	if err != nil {
		return err
	}

	replaced := false
	for i := range decls {
		if decls[i].Name == name {
			decls[i].Value = value
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, variables.Variable{Name: name, Value: value})
	}

	return f.write(decls)
}

// Declarations returns what the stylesheet currently declares
func (f *File) Declarations() (variables.Set, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.read()
}

func (f *File) read() (variables.Set, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}

	body := strings.TrimSpace(string(data))
	body = strings.TrimPrefix(body, rootOpen)
	body = strings.TrimSuffix(body, rootClose)
	return variables.ParseDeclarations(body), nil
}

func (f *File) write(decls variables.Set) error {
	var b strings.Builder
	b.WriteString(rootOpen)
	b.WriteByte('\n')
	for _, d := range decls {
		fmt.Fprintf(&b, "  %s: %s;\n", d.Name, d.Value)
	}
	b.WriteString(rootClose)
	b.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create stylesheet directory: %w", err)
	}

	// Write to a sibling temp file and rename so a host never reads half a sheet
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".irodori-*.css")
	if err != nil {
		return fmt.Errorf("failed to create temp stylesheet: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace stylesheet: %w", err)
	}
	return nil
}
