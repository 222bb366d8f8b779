package main

import (
	"fmt"
	"strings"

	"github.com/fmizzell/todo"
	"github.com/fmizzell/todo/internal/config"
	"github.com/fmizzell/todo/internal/logging"
)

// session is one command's handle on the workspace store
type session struct {
	store    *todo.Store
	cfg      *config.Config
	closeFn  func() error
	saveErrs []error
}

// openSession resolves config and hydrates the store for the workspace
func openSession() (*session, error) {
	cfg, err := config.Load(workspaceFlag, backendFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Debug {
		logging.SetDebug(true)
	}

	s := &session{cfg: cfg}
	store, closeFn, err := todo.NewStoreWithPersistence(cfg.WorkspaceDir, cfg.Backend,
		todo.WithErrorHandler(func(err error) {
			s.saveErrs = append(s.saveErrs, err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	s.store = store
	s.closeFn = closeFn

	logging.Debug("cli", "workspace=%s backend=%s", cfg.WorkspaceDir, cfg.Backend)
	return s, nil
}

// close retries a failed save once with Flush, then releases the backend.
// It reports the persistence failure only when the retry fails too.
func (s *session) close() error {
	var flushErr error
	if len(s.saveErrs) > 0 {
		logging.Debug("cli", "%d save(s) failed, flushing: %v", len(s.saveErrs), s.saveErrs[0])
		flushErr = s.store.Flush()
	}

	closeErr := s.closeFn()
	if flushErr != nil {
		return fmt.Errorf("failed to save tasks: %w", flushErr)
	}
	return closeErr
}

// mustOpenSession is openSession for command handlers
func mustOpenSession() *session {
	s, err := openSession()
	if err != nil {
		fatal("%v", err)
	}
	return s
}

func (s *session) mustClose() {
	if err := s.close(); err != nil {
		fatal("%v", err)
	}
}

// parseFilterArg accepts the store's filter names plus a few aliases
func parseFilterArg(value string) (todo.Filter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "todo", "pending", "open":
		return todo.FilterActive, nil
	case "done":
		return todo.FilterCompleted, nil
	}
	return todo.ParseFilter(value)
}

func formatTask(task todo.Task) string {
	status := "○"
	if task.Completed {
		status = "✓"
	}
	return fmt.Sprintf("%s [%s] %s (%s)", status, task.ID, task.Title, task.Priority)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
