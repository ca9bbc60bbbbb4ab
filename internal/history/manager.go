package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/datagrid/pkg/types"
)

// entry wraps a command with timeline metadata.
type entry struct {
	id  string
	at  time.Time
	cmd Command
}

// EntryInfo is the read-only view of one history entry, consumed by
// timeline renderers.
type EntryInfo struct {
	Index       int
	ID          string
	Description string
	At          time.Time
}

// Manager keeps a linear, branch-discarding log of commands over one
// store, with a cursor at the last applied command. Cursor -1 means no
// edits are applied and the store holds the pristine dataset.
type Manager struct {
	mu        sync.Mutex
	store     Store
	entries   []*entry
	cursor    int
	listeners []func()
}

// NewManager creates an empty history over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store, cursor: -1}
}

// OnChange registers a callback invoked after every history mutation
// (append, undo, redo, clear), before the mutating call returns.
func (m *Manager) OnChange(fn func()) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// Append records an already-applied command. Any commands after the
// cursor are discarded first, so redo becomes unavailable immediately.
func (m *Manager) Append(cmd Command) {
	m.mu.Lock()
	if m.cursor < len(m.entries)-1 {
		m.entries = m.entries[:m.cursor+1]
	}
	m.entries = append(m.entries, &entry{
		id:  generateID(),
		at:  time.Now(),
		cmd: cmd,
	})
	m.cursor++
	m.mu.Unlock()

	m.notify()
}

// Undo reverses the command at the cursor and moves the cursor back.
// A no-op at the pristine state.
func (m *Manager) Undo() error {
	m.mu.Lock()
	if m.cursor == -1 {
		m.mu.Unlock()
		return nil
	}
	e := m.entries[m.cursor]
	if err := e.cmd.Undo(m.store); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("undo %s: %w", e.cmd.Describe(), err)
	}
	m.cursor--
	m.mu.Unlock()

	m.notify()
	return nil
}

// Redo advances the cursor and reapplies the command there. A no-op
// when no undone commands remain.
func (m *Manager) Redo() error {
	m.mu.Lock()
	if m.cursor == len(m.entries)-1 {
		m.mu.Unlock()
		return nil
	}
	e := m.entries[m.cursor+1]
	if err := e.cmd.Redo(m.store); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("redo %s: %w", e.cmd.Describe(), err)
	}
	m.cursor++
	m.mu.Unlock()

	m.notify()
	return nil
}

// JumpTo replays or reverses one command at a time until the cursor
// reaches target. Target -1 restores the pristine dataset. Returns
// ErrHistoryIndex if target is outside [-1, len-1].
func (m *Manager) JumpTo(target int) error {
	m.mu.Lock()
	length := len(m.entries)
	m.mu.Unlock()

	if target < -1 || target >= length {
		return fmt.Errorf("%w: %d", types.ErrHistoryIndex, target)
	}
	for m.Cursor() > target {
		if err := m.Undo(); err != nil {
			return err
		}
	}
	for m.Cursor() < target {
		if err := m.Redo(); err != nil {
			return err
		}
	}
	return nil
}

// Clear empties the log and resets the cursor; the store is not
// touched. Called whenever a fresh dataset is loaded.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.entries = nil
	m.cursor = -1
	m.mu.Unlock()

	m.notify()
}

// CanUndo reports whether any applied command remains.
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor > -1
}

// CanRedo reports whether any undone command remains.
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor < len(m.entries)-1
}

// Len returns the number of recorded commands.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Cursor returns the index of the last applied command, -1 at the
// pristine state.
func (m *Manager) Cursor() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor
}

// Entries returns the ordered timeline view of the log.
func (m *Manager) Entries() []EntryInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	infos := make([]EntryInfo, len(m.entries))
	for i, e := range m.entries {
		infos[i] = EntryInfo{
			Index:       i,
			ID:          e.id,
			Description: e.cmd.Describe(),
			At:          e.at,
		}
	}
	return infos
}

// notify invokes the registered change listeners. Called without the
// lock held so listeners may read the manager.
func (m *Manager) notify() {
	m.mu.Lock()
	listeners := make([]func(), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// generateID generates a UUID v7 for a history entry.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
