package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/internal/outline"
	"github.com/goliatone/go-formbuilder/internal/prompt"
	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/palette"
	"github.com/goliatone/go-formbuilder/pkg/session"
	"github.com/goliatone/go-formbuilder/pkg/tree"
)

func (a *App) add(ctx context.Context) error {
	var (
		items  []palette.Item
		labels []string
	)
	for _, group := range a.palette.Groups() {
		for _, item := range group.Items {
			items = append(items, item)
			labels = append(labels, group.Title+" / "+item.Label)
		}
	}
	idx, err := a.driver.Select(ctx, prompt.SelectConfig{Message: "Component", Options: labels})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(items) {
		return nil
	}

	a.session.DragStart(session.FromPaletteItem(items[idx]))
	res, err := a.dropAt(ctx, "")
	if err != nil {
		return err
	}
	if !res.Committed {
		return a.driver.Info(ctx, "Nothing added")
	}
	a.session.Select(res.NodeID)
	return a.driver.Info(ctx, fmt.Sprintf("Added %s [%s]", items[idx].Label, res.NodeID))
}

func (a *App) move(ctx context.Context) error {
	node, err := a.pickNode(ctx, "Move which node?", nil)
	if err != nil || node == nil {
		return err
	}

	a.session.DragStart(session.ExistingNode(node.ID))
	res, err := a.dropAt(ctx, node.ID)
	if err != nil {
		return err
	}
	if !res.Committed {
		return a.driver.Info(ctx, fmt.Sprintf("%s stayed in place", node.Title))
	}
	return a.driver.Info(ctx, fmt.Sprintf("Moved %s", node.Title))
}

// dropAt asks for a drop target and finishes the drag in progress. Backing
// out cancels the drag.
func (a *App) dropAt(ctx context.Context, exclude string) (session.DropResult, error) {
	targets := outline.Targets(a.session.Tree(), exclude)
	labels := make([]string, len(targets))
	for i, target := range targets {
		labels[i] = target.Label
	}

	idx, err := a.driver.Select(ctx, prompt.SelectConfig{Message: "Drop where?", Options: labels, DefaultIndex: len(labels) - 1})
	if err != nil {
		a.session.DragCancel()
		return session.DropResult{}, err
	}
	if idx < 0 || idx >= len(targets) {
		a.session.DragCancel()
		return session.DropResult{}, nil
	}

	raw := targets[idx].Address
	a.session.DragOver(raw)
	return a.session.DragEnd(raw), nil
}

func (a *App) selectNode(ctx context.Context) error {
	node, err := a.pickNode(ctx, "Select which node?", nil)
	if err != nil || node == nil {
		return err
	}
	a.session.Select(node.ID)
	return a.driver.Info(ctx, fmt.Sprintf("Selected %s", node.Title))
}

func (a *App) rename(ctx context.Context) error {
	node, ok := a.session.Selected()
	if !ok {
		return a.driver.Info(ctx, "Select a node first")
	}
	title, err := a.driver.Input(ctx, prompt.InputConfig{Message: "Title", Default: node.Title})
	if err != nil {
		return err
	}
	if !a.session.RenameSelected(title) {
		return a.driver.Info(ctx, "Title unchanged")
	}
	return nil
}

func (a *App) delete(ctx context.Context) error {
	node, ok := a.session.Selected()
	if !ok {
		return a.driver.Info(ctx, "Select a node first")
	}
	message := fmt.Sprintf("Delete %s?", node.Title)
	if n := tree.Count(node) - 1; n > 0 {
		message = fmt.Sprintf("Delete %s and the %d node(s) inside it?", node.Title, n)
	}
	confirmed, err := a.driver.Confirm(ctx, prompt.ConfirmConfig{Message: message})
	if err != nil || !confirmed {
		return err
	}
	removed := a.session.DeleteSelected()
	return a.driver.Info(ctx, fmt.Sprintf("Removed %d node(s)", len(removed)))
}

func (a *App) setValue(ctx context.Context) error {
	node, err := a.pickNode(ctx, "Set the value of which field?", (*tree.Node).IsDataField)
	if err != nil || node == nil {
		return err
	}
	raw, err := a.driver.Input(ctx, prompt.InputConfig{
		Message: node.Title,
		Help:    "Leave empty to clear the value",
		Validator: func(s string) error {
			_, err := parseValue(node.Type, s)
			return err
		},
	})
	if err != nil {
		return err
	}
	value, err := parseValue(node.Type, raw)
	if err != nil {
		return a.driver.Info(ctx, err.Error())
	}
	a.session.SetValue(node.ID, value)
	return nil
}

func (a *App) toggleRequired(ctx context.Context) error {
	info, ok := a.session.Inspect()
	if !ok {
		return a.driver.Info(ctx, "Select a node first")
	}
	if !a.session.SetRequired(info.ID, !info.Required) {
		return a.driver.Info(ctx, "Only fields can be required")
	}
	state := "required"
	if info.Required {
		state = "optional"
	}
	return a.driver.Info(ctx, fmt.Sprintf("%s is now %s", info.Title, state))
}

func (a *App) showOutline(ctx context.Context) error {
	st := a.session.Snapshot()
	out, err := a.outline.Render(st.Tree, st.Selection)
	if err != nil {
		return err
	}
	return a.driver.Info(ctx, strings.TrimRight(out, "\n"))
}

func (a *App) export(ctx context.Context) error {
	out, err := export.Encode(ctx, a.format, export.FromState(a.session.Snapshot()))
	if err != nil {
		return err
	}
	if a.output == "" {
		return a.driver.Info(ctx, strings.TrimRight(string(out), "\n"))
	}
	if err := a.writeFile(a.output, out); err != nil {
		return fmt.Errorf("write %s: %w", a.output, err)
	}
	return a.driver.Info(ctx, fmt.Sprintf("Exported %s to %s", a.format, a.output))
}

func (a *App) clear(ctx context.Context) error {
	confirmed, err := a.driver.Confirm(ctx, prompt.ConfirmConfig{Message: "Clear the whole form?"})
	if err != nil || !confirmed {
		return err
	}
	a.session.ClearAll()
	return a.driver.Info(ctx, "Form cleared")
}

// pickNode lists the nodes below the root that pass keep. A nil node with a
// nil error means there was nothing to pick.
func (a *App) pickNode(ctx context.Context, message string, keep func(*tree.Node) bool) (*tree.Node, error) {
	st := a.session.Snapshot()
	var (
		nodes  []*tree.Node
		labels []string
	)
	defaultIdx := 0
	for _, row := range outline.Rows(st.Tree, st.Selection) {
		node := tree.Find(st.Tree, row.ID)
		if keep != nil && !keep(node) {
			continue
		}
		if row.Selected {
			defaultIdx = len(nodes)
		}
		nodes = append(nodes, node)
		labels = append(labels, fmt.Sprintf("%s%s: %s", row.Indent, row.Label, row.Title))
	}
	if len(nodes) == 0 {
		return nil, a.driver.Info(ctx, "Nothing to pick, add components first")
	}

	idx, err := a.driver.Select(ctx, prompt.SelectConfig{Message: message, Options: labels, DefaultIndex: defaultIdx})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(nodes) {
		return nil, nil
	}
	return nodes[idx], nil
}

func parseValue(typ tree.FieldType, raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	switch typ {
	case tree.FieldTypeNumber:
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return v, nil
	case tree.FieldTypeBoolean:
		v, err := strconv.ParseBool(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%q is not true or false", raw)
		}
		return v, nil
	default:
		return raw, nil
	}
}
