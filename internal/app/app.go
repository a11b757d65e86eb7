// Package app drives a builder session from terminal prompts. Each menu
// action translates into the same gestures a pointer would produce: drags
// for adding and moving, selection for the inspector actions.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/goliatone/go-formbuilder/internal/outline"
	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/session"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// Action is a main menu entry.
type Action int

const (
	ActionAdd Action = iota
	ActionMove
	ActionSelect
	ActionRename
	ActionDelete
	ActionSetValue
	ActionToggleRequired
	ActionOutline
	ActionExport
	ActionClear
	ActionQuit
)

var actionLabels = []string{
	ActionAdd:            "Add component",
	ActionMove:           "Move node",
	ActionSelect:         "Select node",
	ActionRename:         "Rename selected",
	ActionDelete:         "Delete selected",
	ActionSetValue:       "Set value",
	ActionToggleRequired: "Toggle required",
	ActionOutline:        "Show outline",
	ActionExport:         "Export",
	ActionClear:          "Clear form",
	ActionQuit:           "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionLabels) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionLabels[a]
}

// App is the interactive builder loop.
type App struct {
	session *session.Session
	driver  prompt.Driver
	palette *palette.Palette
	outline *outline.Renderer

	format    export.Format
	output    string
	writeFile func(path string, data []byte) error
	debug     bool
	logger    *slog.Logger
}

// New wires an App around s and driver.
func New(s *session.Session, driver prompt.Driver, options ...Option) (*App, error) {
	if s == nil {
		return nil, errors.New("app: session is required")
	}
	if driver == nil {
		return nil, errors.New("app: prompt driver is required")
	}
	a := &App{
		session: s,
		driver:  driver,
		palette: palette.Default(),
		format:  export.FormatJSON,
		writeFile: func(path string, data []byte) error {
			return os.WriteFile(path, data, 0o644)
		},
		logger: discardLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	if a.outline == nil {
		r, err := outline.New()
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
		a.outline = r
	}
	if a.palette.Empty() {
		return nil, errors.New("app: palette has no components")
	}
	return a, nil
}

// Run shows the main menu until the user quits or aborts it.
func (a *App) Run(ctx context.Context) error {
	for {
		idx, err := a.driver.Select(ctx, prompt.SelectConfig{
			Message:  "What next?",
			Options:  actionLabels,
			PageSize: len(actionLabels),
		})
		if errors.Is(err, prompt.ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		action := Action(idx)
		if action == ActionQuit {
			return nil
		}
		if err := a.Do(ctx, action); err != nil {
			return fmt.Errorf("app: %s: %w", action, err)
		}
		a.check(action)
	}
}

// Do runs a single action. Backing out of one of its prompts is not an
// error.
func (a *App) Do(ctx context.Context, action Action) error {
	var err error
	switch action {
	case ActionAdd:
		err = a.add(ctx)
	case ActionMove:
		err = a.move(ctx)
	case ActionSelect:
		err = a.selectNode(ctx)
	case ActionRename:
		err = a.rename(ctx)
	case ActionDelete:
		err = a.delete(ctx)
	case ActionSetValue:
		err = a.setValue(ctx)
	case ActionToggleRequired:
		err = a.toggleRequired(ctx)
	case ActionOutline:
		err = a.showOutline(ctx)
	case ActionExport:
		err = a.export(ctx)
	case ActionClear:
		err = a.clear(ctx)
	case ActionQuit:
	default:
		err = fmt.Errorf("unknown action %d", int(action))
	}
	if errors.Is(err, prompt.ErrAborted) {
		return nil
	}
	return err
}

func (a *App) check(action Action) {
	if !a.debug {
		return
	}
	st := a.session.Snapshot()
	for _, issue := range validation.CheckConsistency(st.Tree, st.DataSchema, st.UILayout, st.FormData) {
		a.logger.Warn("app: inconsistent state", "action", action.String(), "path", issue.Path, "field", issue.Field, "message", issue.Message)
	}
}
