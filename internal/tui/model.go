// Package tui is the interactive terminal front end for a graph session.
//
// # Description
//
// The screen shows an ASCII drawing of the graph, four node selectors (two
// endpoints for a new edge and two for a path query), a status line and a
// key legend. File names for load and save are typed into a prompt.
//
// # Thread Safety
//
// Model is used from the bubbletea event loop only. The optional file watcher
// runs in its own goroutine and talks to the loop through messages.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/graphptol/core"
	"github.com/katalvlaran/graphptol/internal/session"
	"github.com/katalvlaran/graphptol/internal/watch"
)

// =============================================================================
// Selectors
// =============================================================================

// Selector identifies one of the four node pickers.
type Selector int

const (
	EdgeFrom Selector = iota
	EdgeTo
	PathFrom
	PathTo
	selectorCount
)

func (s Selector) String() string {
	switch s {
	case EdgeFrom:
		return "edge from"
	case EdgeTo:
		return "edge to"
	case PathFrom:
		return "path from"
	case PathTo:
		return "path to"
	}

	return "?"
}

// =============================================================================
// Messages
// =============================================================================

// fileChangedMsg carries a debounced change of the watched file.
type fileChangedMsg watch.Event

// watchStoppedMsg is sent once the watcher's event channel closes.
type watchStoppedMsg struct{}

// waitForChange blocks on the watcher and turns its next event into a message.
func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-w.Events()
		if !ok {
			return watchStoppedMsg{}
		}
		return fileChangedMsg(e)
	}
}

// =============================================================================
// Model
// =============================================================================

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarn
	statusError
)

// promptAction is what Enter does in the file name prompt.
type promptAction int

const (
	promptNone promptAction = iota
	promptLoadList
	promptLoadMatrix
	promptSaveList
	promptSaveMatrix
)

func (a promptAction) title() string {
	switch a {
	case promptLoadList:
		return "Load adjacency list from: "
	case promptLoadMatrix:
		return "Load adjacency matrix from: "
	case promptSaveList:
		return "Save adjacency list to: "
	case promptSaveMatrix:
		return "Save adjacency matrix to: "
	}

	return ""
}

// Config holds optional collaborators.
type Config struct {
	// Watcher, if set, triggers a reload whenever the watched file changes.
	Watcher *watch.Watcher
	// WatchFormat is how the watched file is parsed. Empty means the
	// session's source format at the time New is called.
	WatchFormat session.FileFormat
}

// Model is the bubbletea model.
type Model struct {
	sess        *session.Session
	watcher     *watch.Watcher
	watchFormat session.FileFormat

	selected [selectorCount]int // indexes into sess.Selectors()
	focus    Selector

	input  textinput.Model
	action promptAction

	status     string
	statusKind statusKind

	width, height int
	quitting      bool
}

// New creates a model over sess.
func New(sess *session.Session, cfg Config) Model {
	ti := textinput.New()
	ti.CharLimit = 4096
	ti.Width = 60

	m := Model{
		sess:        sess,
		watcher:     cfg.Watcher,
		watchFormat: cfg.WatchFormat,
		input:       ti,
		status:      "Ready",
	}
	if m.watchFormat == "" {
		_, m.watchFormat = sess.Source()
	}
	m.resetSelectors()

	return m
}

// Init starts the watcher, if any.
func (m Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	m.watcher.Start(context.Background())

	return waitForChange(m.watcher)
}

// Update handles key presses, window resizes and watcher messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case fileChangedMsg:
		m.onFileChanged(watch.Event(msg))
		return m, waitForChange(m.watcher)

	case watchStoppedMsg:
		m.watcher = nil
		return m, nil

	case tea.KeyMsg:
		if m.action != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controls := m.sess.Controls()

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		if m.watcher != nil {
			_ = m.watcher.Close()
		}
		return m, tea.Quit

	case "n":
		id := m.sess.AddNode()
		if m.sess.NodeCount() == 2 {
			m.resetSelectors()
		} else {
			m.clampSelectors()
		}
		m.setStatus(statusInfo, fmt.Sprintf("Added node %s", id))

	case "e":
		if !controls.AddEdge {
			m.setStatus(statusWarn, "Add at least two nodes first")
			break
		}
		a, b := m.selection(EdgeFrom), m.selection(EdgeTo)
		if err := m.sess.AddEdge(a, b); err != nil {
			m.setStatus(statusError, session.Describe(err))
			break
		}
		m.setStatus(statusInfo, fmt.Sprintf("Linked %s - %s", a, b))

	case "p":
		if !controls.FindPath {
			m.setStatus(statusWarn, "Add at least two nodes first")
			break
		}
		path, err := m.sess.FindPath(m.selection(PathFrom), m.selection(PathTo))
		if err != nil {
			m.setStatus(statusWarn, session.Describe(err))
			break
		}
		m.setStatus(statusInfo, "Path: "+joinIDs(path))

	case "tab", "right":
		m.focus = (m.focus + 1) % selectorCount
	case "shift+tab", "left":
		m.focus = (m.focus + selectorCount - 1) % selectorCount
	case "up", "k":
		m.step(1)
	case "down", "j":
		m.step(-1)

	case "l":
		return m.openPrompt(promptLoadList)
	case "L":
		return m.openPrompt(promptLoadMatrix)
	case "w":
		if !controls.SaveList {
			m.setStatus(statusWarn, "Nothing to save yet")
			break
		}
		return m.openPrompt(promptSaveList)
	case "W":
		if !controls.SaveMatrix {
			m.setStatus(statusWarn, "Nothing to save yet")
			break
		}
		return m.openPrompt(promptSaveMatrix)

	case "r":
		if err := m.sess.Reload(); err != nil {
			m.setStatus(statusError, session.Describe(err))
			break
		}
		m.resetSelectors()
		m.setStatus(statusInfo, "Reloaded")
	}

	return m, nil
}

func (m Model) openPrompt(a promptAction) (tea.Model, tea.Cmd) {
	m.action = a
	m.input.Prompt = a.title()
	src, _ := m.sess.Source()
	m.input.SetValue(src)
	m.input.CursorEnd()

	return m, m.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		m.setStatus(statusInfo, "Cancelled")
		return m, nil

	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		action := m.action
		m.closePrompt()
		if name == "" {
			m.setStatus(statusWarn, "No file name given")
			return m, nil
		}
		m.runFileAction(action, name)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) closePrompt() {
	m.action = promptNone
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) runFileAction(a promptAction, name string) {
	var err error
	switch a {
	case promptLoadList:
		err = m.sess.LoadListFile(name)
	case promptLoadMatrix:
		err = m.sess.LoadMatrixFile(name)
	case promptSaveList:
		err = m.sess.SaveListFile(name)
	case promptSaveMatrix:
		err = m.sess.SaveMatrixFile(name)
	}
	if err != nil {
		m.setStatus(statusError, session.Describe(err))
		return
	}

	switch a {
	case promptLoadList, promptLoadMatrix:
		m.resetSelectors()
		m.setStatus(statusInfo, fmt.Sprintf("Loaded %s (%d nodes, %d edges)",
			name, m.sess.NodeCount(), m.sess.EdgeCount()))
	default:
		m.setStatus(statusInfo, "Saved "+name)
	}
}

// onFileChanged loads the watched file itself, not whatever was loaded last.
func (m *Model) onFileChanged(e watch.Event) {
	if e.Removed() {
		m.setStatus(statusWarn, "Watched file was removed")
		return
	}
	if m.watchFormat == "" {
		m.setStatus(statusWarn, "Watched file changed but its format is unknown")
		return
	}
	if err := m.sess.LoadFile(e.Path, m.watchFormat); err != nil {
		m.setStatus(statusError, session.Describe(err))
		return
	}
	m.clampSelectors()
	m.setStatus(statusInfo, "Reloaded after change on disk")
}

// =============================================================================
// Selector helpers
// =============================================================================

// resetSelectors points edge and path selectors at the first and second node.
func (m *Model) resetSelectors() {
	m.selected = [selectorCount]int{0, 1, 0, 1}
	m.clampSelectors()
}

func (m *Model) clampSelectors() {
	n := m.sess.NodeCount()
	for i := range m.selected {
		m.selected[i] = max(0, min(m.selected[i], n-1))
	}
}

func (m *Model) step(delta int) {
	n := m.sess.NodeCount()
	if n == 0 {
		return
	}
	m.selected[m.focus] = (m.selected[m.focus] + delta + n) % n
}

// selection returns the node chosen by a selector. Callers check Controls first.
func (m Model) selection(s Selector) core.NodeID {
	nodes := m.sess.Nodes()
	if len(nodes) == 0 {
		return 0
	}

	return nodes[m.selected[s]]
}

// Selection reports the node a selector currently points at.
func (m Model) Selection(s Selector) (core.NodeID, bool) {
	if m.sess.NodeCount() == 0 || s < 0 || s >= selectorCount {
		return 0, false
	}

	return m.selection(s), true
}

// Focus returns the selector that arrow keys change.
func (m Model) Focus() Selector { return m.focus }

// Status returns the current status line text.
func (m Model) Status() string { return m.status }

// Prompting reports whether the file name prompt is open.
func (m Model) Prompting() bool { return m.action != promptNone }

func (m *Model) setStatus(kind statusKind, text string) {
	m.status, m.statusKind = text, kind
}

func joinIDs(ids []core.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	return strings.Join(parts, " -> ")
}
