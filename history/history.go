package history

import (
	"log"
	"os"

	"github.com/javanhut/RavenGrid/commands"
	"github.com/javanhut/RavenGrid/grid"
)

var debugHistory = os.Getenv("RAVEN_GRID_DEBUG") == "1"

// Redrawer is notified whenever a command changes the grid
type Redrawer interface {
	RequestRedraw()
}

// Manager applies and reverses commands and owns the undo and redo stacks
type Manager struct {
	grid     *grid.Grid
	redrawer Redrawer
	limit    int

	undo []commands.Command
	redo []commands.Command
}

// New creates a history for g. limit caps the undo depth; 0 means no cap.
func New(g *grid.Grid, redrawer Redrawer, limit int) *Manager {
	return &Manager{grid: g, redrawer: redrawer, limit: limit}
}

// Execute applies cmd and records it
func (m *Manager) Execute(cmd commands.Command) {
	if cmd == nil {
		return
	}
	cmd.Apply(m.grid)
	m.push(cmd)
	m.debugf("execute %s", cmd.Name())
	m.requestRedraw()
}

// Record stores a command whose effect is already on the grid, such as a
// resize applied live during a drag.
func (m *Manager) Record(cmd commands.Command) {
	if cmd == nil {
		return
	}
	m.push(cmd)
	m.debugf("record %s", cmd.Name())
	m.requestRedraw()
}

// push adds to the undo stack. Any new action invalidates the redo stack.
func (m *Manager) push(cmd commands.Command) {
	m.undo = append(m.undo, cmd)
	m.trim()
	clear(m.redo)
	m.redo = m.redo[:0]
}

// trim drops the oldest undo entries beyond the limit. Their effects stay
// on the grid.
func (m *Manager) trim() {
	if m.limit > 0 && len(m.undo) > m.limit {
		drop := len(m.undo) - m.limit
		clear(m.undo[:drop])
		m.undo = m.undo[drop:]
	}
}

// SetLimit changes the undo depth cap; 0 means no cap
func (m *Manager) SetLimit(limit int) {
	m.limit = max(0, limit)
	m.trim()
}

// Undo reverts the most recent command. It reports false when there is
// nothing to undo.
func (m *Manager) Undo() bool {
	if len(m.undo) == 0 {
		return false
	}
	cmd := m.undo[len(m.undo)-1]
	m.undo[len(m.undo)-1] = nil
	m.undo = m.undo[:len(m.undo)-1]

	cmd.Revert(m.grid)
	m.redo = append(m.redo, cmd)
	m.debugf("undo %s", cmd.Name())
	m.requestRedraw()
	return true
}

// Redo reapplies the most recently undone command
func (m *Manager) Redo() bool {
	if len(m.redo) == 0 {
		return false
	}
	cmd := m.redo[len(m.redo)-1]
	m.redo[len(m.redo)-1] = nil
	m.redo = m.redo[:len(m.redo)-1]

	cmd.Apply(m.grid)
	m.undo = append(m.undo, cmd)
	m.debugf("redo %s", cmd.Name())
	m.requestRedraw()
	return true
}

// CanUndo reports whether Undo would do anything
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether Redo would do anything
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}

// UndoLen returns the depth of the undo stack
func (m *Manager) UndoLen() int {
	return len(m.undo)
}

// RedoLen returns the depth of the redo stack
func (m *Manager) RedoLen() int {
	return len(m.redo)
}

// Peek returns the command Undo would revert, or nil
func (m *Manager) Peek() commands.Command {
	if len(m.undo) == 0 {
		return nil
	}
	return m.undo[len(m.undo)-1]
}

// Clear drops both stacks
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}

func (m *Manager) requestRedraw() {
	if m.redrawer != nil {
		m.redrawer.RequestRedraw()
	}
}

func (m *Manager) debugf(format string, args ...interface{}) {
	if !debugHistory {
		return
	}
	log.Printf("history: "+format, args...)
}
