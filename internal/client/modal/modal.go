// Package modal models the page's overlay forms as hidden/visible switches.
package modal

import "sync"

// Modal is one overlay. Instances are built at startup and handed to the code
// that opens or closes them.
type Modal struct {
	name string

	mu       sync.Mutex
	visible  bool
	onChange func(visible bool)
}

// New returns a hidden modal. onChange, when set, runs after every real
// transition; repeated Show or Hide calls do not fire it again.
func New(name string, onChange func(visible bool)) *Modal {
	return &Modal{name: name, onChange: onChange}
}

func (m *Modal) Name() string { return m.name }

func (m *Modal) Show() { m.set(true) }

func (m *Modal) Hide() { m.set(false) }

func (m *Modal) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

// OnChange replaces the transition hook.
func (m *Modal) OnChange(fn func(visible bool)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

func (m *Modal) set(visible bool) {
	m.mu.Lock()
	if m.visible == visible {
		m.mu.Unlock()
		return
	}
	m.visible = visible
	fn := m.onChange
	m.mu.Unlock()

	if fn != nil {
		fn(visible)
	}
}
