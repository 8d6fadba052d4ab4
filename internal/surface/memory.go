// Package surface provides live targets for rendered theme blocks: an
// in-process property table and a stylesheet file a host application loads.
package surface

import (
	"strings"
	"sync"

	"github.com/Justice-Caban/Irodori/internal/variables"
)

// Memory is an in-process style surface. It keeps custom properties in the
// order they were first set, mirroring how a host element's inline style
// behaves.
type Memory struct {
	mu    sync.RWMutex
	names []string
	props map[string]string
}

// NewMemory creates an empty surface
func NewMemory() *Memory {
	return &Memory{props: make(map[string]string)}
}

// ApplyBlock replaces every property with the declarations in block
func (m *Memory) ApplyBlock(block string) error {
	decls := variables.ParseDeclarations(block)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.names = m.names[:0]
	m.props = make(map[string]string, len(decls))
	for _, d := range decls {
		m.set(d.Name, d.Value)
	}
	return nil
}

// SetProperty sets a single property, leaving the others untouched
func (m *Memory) SetProperty(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.set(name, value)
	return nil
}

// Property returns the current value of a property
func (m *Memory) Property(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.props[name]
	return v, ok
}

// Len returns the number of properties set
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.names)
}

// CSSText renders the current properties as a declaration block
func (m *Memory) CSSText() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var b strings.Builder
	for i, name := range m.names {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(m.props[name])
		b.WriteByte(';')
	}
	return b.String()
}

func (m *Memory) set(name, value string) {
	if _, exists := m.props[name]; !exists {
		m.names = append(m.names, name)
	}
	m.props[name] = value
}
