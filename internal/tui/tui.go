package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fmizzell/todo"
	"github.com/fmizzell/todo/internal/logging"
)

// AddDelay is the pause between submitting a task and adding it, while the
// add animation plays
const AddDelay = 300 * time.Millisecond

type uiMode int

const (
	modeNormal uiMode = iota
	modeAdd
	modeEdit
)

// changedMsg tells the model the store committed a change it did not make itself
type changedMsg struct {
	change todo.Change
}

// addTaskMsg fires once the add animation delay has elapsed
type addTaskMsg struct {
	input todo.TaskInput
}

// Model is the bubbletea model rendering a todo.Store
type Model struct {
	store *todo.Store
	input textinput.Model
	bell  io.Writer

	mode   uiMode
	cursor int
	editID string
	status string

	width int
}

// NewModel creates a model reading from and dispatching to store
func NewModel(store *todo.Store) *Model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.CharLimit = 200

	return &Model{
		store: store,
		input: input,
		bell:  os.Stderr,
	}
}

// Run starts the interactive UI and blocks until the user quits. Log output
// goes to logPath while the UI owns the terminal.
func Run(store *todo.Store, logPath string) error {
	restore, err := redirectLog(logPath)
	if err != nil {
		return err
	}
	defer restore()

	m := NewModel(store)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Send from a goroutine: the store notifies synchronously, possibly from
	// inside Update where the program loop cannot receive.
	unsubscribe := store.Subscribe(func(c todo.Change) {
		go p.Send(changedMsg{change: c})
	})
	defer unsubscribe()

	_, err = p.Run()
	return err
}

// redirectLog sends the standard logger to path and returns a function that
// puts the previous output and prefix back
func redirectLog(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	prevOut, prevPrefix := log.Writer(), log.Prefix()
	f, err := tea.LogToFile(path, "todo")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
		f.Close()
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case changedMsg:
		if msg.change.Event != nil {
			logging.Debug("tui", "store changed: %s", msg.change.Event.Type())
		}
		m.clampCursor()
	case addTaskMsg:
		m.finishAdd(msg.input)
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m, m.updateInputMode(msg)
		default:
			return m, m.updateNormalMode(msg)
		}
	}
	return m, nil
}

func (m *Model) updateNormalMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "a":
		m.startInput(modeAdd, "", "")
		return textinput.Blink
	case "e":
		if task, ok := m.selected(); ok {
			m.startInput(modeEdit, task.ID, task.Title)
			return textinput.Blink
		}
	case " ", "x":
		if task, ok := m.selected(); ok && m.store.ToggleTask(task.ID) {
			m.ring()
			m.clampCursor()
		}
	case "d":
		if task, ok := m.selected(); ok && m.store.DeleteTask(task.ID) {
			m.setStatus("Deleted: " + logging.Truncate(task.Title, 40))
			m.clampCursor()
		}
	case "c":
		n := m.store.ClearCompleted()
		m.setStatus(fmt.Sprintf("Cleared %d completed", n))
		m.clampCursor()
	case "1", "2", "3":
		m.store.SetFilter(todo.Filters[msg.String()[0]-'1'])
		m.cursor = 0
	case "tab":
		m.store.SetFilter(m.store.Filter().Next())
		m.cursor = 0
	case "m":
		m.store.ToggleDarkMode()
	case "s":
		if m.store.ToggleSound() {
			m.setStatus("Sound on")
			m.ring()
		} else {
			m.setStatus("Sound off")
		}
	}
	return nil
}

func (m *Model) updateInputMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.stopInput()
		return nil
	case "enter":
		value := m.input.Value()
		mode, editID := m.mode, m.editID
		m.stopInput()

		// Blank input is a no-op, like the store itself
		if strings.TrimSpace(value) == "" {
			return nil
		}
		if mode == modeEdit {
			if m.store.EditTask(editID, value) {
				m.setStatus("Updated")
			}
			return nil
		}

		m.store.SetIsAnimating(true)
		input := todo.TaskInput{Title: value}
		return tea.Tick(AddDelay, func(time.Time) tea.Msg {
			return addTaskMsg{input: input}
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) finishAdd(input todo.TaskInput) {
	defer m.store.SetIsAnimating(false)

	task, ok := m.store.AddTask(input)
	if !ok {
		return
	}
	m.setStatus("Added: " + logging.Truncate(task.Title, 40))
	m.ring()
}

func (m *Model) startInput(mode uiMode, editID, value string) {
	m.mode = mode
	m.editID = editID
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) stopInput() {
	m.mode = modeNormal
	m.editID = ""
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) selected() (todo.Task, bool) {
	tasks := m.store.FilteredTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return todo.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.store.FilteredTasks())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
}

// ring sounds the terminal bell when sound is enabled
func (m *Model) ring() {
	if m.bell != nil && m.store.SoundEnabled() {
		fmt.Fprint(m.bell, "\a")
	}
}
